package resin

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/resin-fmt/resin/internal/version"
	"github.com/resin-fmt/resin/pkg/cobrax/topics"
	"github.com/resin-fmt/resin/pkg/config"
	"github.com/resin-fmt/resin/pkg/errors"
	"github.com/resin-fmt/resin/pkg/fileproc"
	"github.com/resin-fmt/resin/pkg/logging"
	"github.com/resin-fmt/resin/pkg/printer"
	"github.com/resin-fmt/resin/pkg/style"
)

//go:embed topics
var topicsFS embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "resin",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but flag the usage error.
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	// Disable automatic help command (replaced by the topics system)
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newPrintCmd())
	rootCmd.AddCommand(newExplainCmd())
	rootCmd.AddCommand(newSetCmd())
	rootCmd.AddCommand(newGenconfigCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	// Topic-based help from the embedded topic files
	if sub, err := fs.Sub(topicsFS, "topics"); err == nil {
		opts := topics.Options{
			Extensions: []string{".txt", ".md"},
			Renderer:   topics.NewGlamourRenderer(),
		}
		_ = topics.Initialize(rootCmd, sub, opts)
	}

	return rootCmd
}

// callOptions assembles the per-call option map from the shared flags.
func callOptions(width int, styleNames string) map[string]interface{} {
	opts := map[string]interface{}{}
	if width > 0 {
		opts["width"] = width
	}
	if styleNames != "" {
		opts["style"] = styleNames
	}
	return opts
}

// outputRenderer picks rich or plain rendering for status output.
func outputRenderer(plain bool) style.Renderer {
	if plain || !isatty.IsTerminal(os.Stdout.Fd()) {
		return style.NewPlainRenderer()
	}
	return style.NewTerminalRenderer()
}

func newFmtCmd() *cobra.Command {
	var (
		width      int
		styleNames string
		output     string
		plain      bool
	)

	cmd := &cobra.Command{
		Use:     "fmt <files...>",
		Short:   MsgFmtShort,
		Long:    MsgFmtLong,
		Example: MsgFmtExample,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "" && len(args) > 1 {
				return errors.New(errors.ErrInvalidInput, MsgErrOutputManyFiles)
			}
			opts := callOptions(width, styleNames)

			results := make([]style.FileResult, 0, len(args))
			for _, path := range args {
				outPath := path
				if output != "" {
					outPath = output
				}

				docs, err := fileproc.Process(path, outPath, opts)
				if err != nil {
					results = append(results, style.FileResult{
						Path:   path,
						Status: style.StatusError,
						Err:    err,
					})
					continue
				}
				results = append(results, style.FileResult{
					Path:      path,
					Status:    style.StatusFormatted,
					Documents: docs,
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), outputRenderer(plain).RenderFileResults(results))

			if style.Summarize(results) == style.StatusError {
				return fmt.Errorf("some files failed to format")
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, MsgFlagWidth)
	cmd.Flags().StringVarP(&styleNames, "style", "s", "", MsgFlagStyle)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().BoolVar(&plain, "plain", false, MsgFlagPlain)

	return cmd
}

func newPrintCmd() *cobra.Command {
	var (
		width      int
		styleNames string
		color      bool
	)

	cmd := &cobra.Command{
		Use:     "print [expression]",
		Short:   MsgPrintShort,
		Long:    MsgPrintLong,
		Example: MsgPrintExample,
		Args:    cobra.ArbitraryArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readExpression(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			opts := callOptions(width, styleNames)

			var out string
			if color {
				out, err = printer.PrintColor(text, opts)
			} else {
				out, err = printer.PrintString(text, opts)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, MsgFlagWidth)
	cmd.Flags().StringVarP(&styleNames, "style", "s", "", MsgFlagStyle)
	cmd.Flags().BoolVarP(&color, "color", "c", false, MsgFlagColor)

	return cmd
}

// readExpression joins the arguments, or reads stdin when none are
// given and stdin is not a terminal.
func readExpression(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if f, ok := stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return "", errors.New(errors.ErrInvalidInput, MsgErrNoInput)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileRead, "reading stdin")
	}
	return string(data), nil
}

func newExplainCmd() *cobra.Command {
	var (
		all       bool
		justified bool
		plain     bool
	)

	cmd := &cobra.Command{
		Use:     "explain",
		Short:   MsgExplainShort,
		Long:    MsgExplainLong,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			flag := "explain"
			switch {
			case all:
				flag = "explain-all"
			case justified:
				flag = "explain-justified"
			}

			snapshot, err := printer.Print(nil, flag)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), outputRenderer(plain).RenderExplain(snapshot))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, MsgFlagAll)
	cmd.Flags().BoolVar(&justified, "justified", false, MsgFlagJustify)
	cmd.Flags().BoolVar(&plain, "plain", false, MsgFlagPlain)

	return cmd
}

func newSetCmd() *cobra.Command {
	var noSave bool

	cmd := &cobra.Command{
		Use:     "set <option> <value>",
		Short:   MsgSetShort,
		Long:    MsgSetLong,
		Example: MsgSetExample,
		Args:    cobra.ExactArgs(2),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := nestedOption(args[0], parseOptionLiteral(args[1]))

			// Validates against the schema and commits process-wide.
			if err := printer.SetOptions(opts); err != nil {
				return err
			}

			if noSave {
				fmt.Fprintf(cmd.OutOrStdout(), MsgOptionSet, args[0], args[1])
				return nil
			}

			path, err := config.UserConfigPath()
			if err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, "locating config directory")
			}
			saved := map[string]interface{}{}
			if data, err := os.ReadFile(path); err == nil {
				if err := toml.Unmarshal(data, &saved); err != nil {
					return errors.Wrapf(err, errors.ErrConfigParse, "parsing %s", path)
				}
			}
			config.MergeMaps(saved, opts)

			data, err := toml.Marshal(saved)
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "encoding configuration")
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "writing %s", path)
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgOptionSaved, args[0], args[1], path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noSave, "no-save", false, MsgFlagNoSave)

	return cmd
}

// parseOptionLiteral reads the value as a TOML literal so booleans,
// numbers, strings and arrays all round-trip; anything that does not
// parse as one is taken as a bare string.
func parseOptionLiteral(raw string) interface{} {
	var doc map[string]interface{}
	if err := toml.Unmarshal([]byte("value = "+raw), &doc); err == nil {
		return doc["value"]
	}
	return raw
}

// nestedOption expands a dotted option path into the nested map the
// configuration layers use ("input.parse-string" -> {input: {...}}).
func nestedOption(path string, value interface{}) map[string]interface{} {
	keys := strings.Split(path, ".")
	opts := map[string]interface{}{}
	cur := opts
	for _, k := range keys[:len(keys)-1] {
		next := map[string]interface{}{}
		cur[k] = next
		cur = next
	}
	cur[keys[len(keys)-1]] = value
	return opts
}

func newGenconfigCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenconfigShort,
		Long:    MsgGenconfigLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.UserConfigPath()
			if err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, "locating config directory")
			}

			if config.HasUserConfig() && !force {
				fmt.Fprintf(cmd.OutOrStdout(), MsgConfigExists, path)
				return nil
			}

			data, err := toml.Marshal(config.Defaults())
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "encoding defaults")
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "writing %s", path)
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)

	return cmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil {
				if helpCmd.RunE != nil {
					return helpCmd.RunE(helpCmd, []string{"topics"})
				} else if helpCmd.Run != nil {
					helpCmd.Run(helpCmd, []string{"topics"})
					return nil
				}
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "resin version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}
