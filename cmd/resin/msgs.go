package resin

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "A configurable s-expression pretty-printer"
	MsgFmtShort        = "Format files in place"
	MsgPrintShort      = "Format an expression to stdout"
	MsgExplainShort    = "Show the resolved configuration"
	MsgSetShort        = "Commit a configuration option"
	MsgGenconfigShort  = "Write a starter configuration file"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"
	MsgVersionShort    = "Print version information"

	// Status messages
	MsgConfigWritten = "Wrote starter configuration to %s\n"
	MsgOptionSet     = "Set %s = %s for this process\n"
	MsgOptionSaved   = "Set %s = %s and saved to %s\n"
	MsgConfigExists  = "Configuration file already exists at %s (use --force to overwrite)\n"

	// Error messages
	MsgErrOutputManyFiles = "--output can only be used with a single input file"
	MsgErrNoInput         = "no expression given and stdin is a terminal"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagWidth   = "Target line width (0 uses the configured width)"
	MsgFlagStyle   = "Named style preset(s) to apply, comma separated"
	MsgFlagColor   = "Colorize output"
	MsgFlagOutput  = "Write to this file instead of formatting in place"
	MsgFlagPlain   = "Plain output without styled status lines"
	MsgFlagForce   = "Overwrite an existing configuration file"
	MsgFlagAll     = "List every recognized option"
	MsgFlagNoSave  = "Commit for this process only, without saving to the configuration file"
	MsgFlagJustify = "Column-align the values"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/fmt-long.txt
	msgFmtLongRaw string
	MsgFmtLong    = strings.TrimSpace(msgFmtLongRaw)

	//go:embed msgs/fmt-example.txt
	msgFmtExampleRaw string
	MsgFmtExample    = strings.TrimSpace(msgFmtExampleRaw)

	//go:embed msgs/print-long.txt
	msgPrintLongRaw string
	MsgPrintLong    = strings.TrimSpace(msgPrintLongRaw)

	//go:embed msgs/print-example.txt
	msgPrintExampleRaw string
	MsgPrintExample    = strings.TrimSpace(msgPrintExampleRaw)

	//go:embed msgs/explain-long.txt
	msgExplainLongRaw string
	MsgExplainLong    = strings.TrimSpace(msgExplainLongRaw)

	//go:embed msgs/set-long.txt
	msgSetLongRaw string
	MsgSetLong    = strings.TrimSpace(msgSetLongRaw)

	//go:embed msgs/set-example.txt
	msgSetExampleRaw string
	MsgSetExample    = strings.TrimSpace(msgSetExampleRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenconfigLongRaw string
	MsgGenconfigLong    = strings.TrimSpace(msgGenconfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
