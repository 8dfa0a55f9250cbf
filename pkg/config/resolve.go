package config

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"

	"github.com/resin-fmt/resin/pkg/errors"
	"github.com/resin-fmt/resin/pkg/terminal"
	"github.com/resin-fmt/resin/pkg/traverse"
)

// Representation tags which capability set is valid for an input.
type Representation string

const (
	// RepDocument marks a structural, comment-preserving document.
	RepDocument Representation = "document"
	// RepValue marks a plain in-memory value.
	RepValue Representation = "value"
)

// Special identifies diagnostic flags that bypass normal resolution.
type Special int

const (
	SpecialNone Special = iota
	SpecialExplain
	SpecialExplainJustified
	SpecialExplainAll
	SpecialHelp
)

// ParseSpecial maps a flag string to its Special variant.
func ParseSpecial(flag string) (Special, bool) {
	switch strings.TrimPrefix(flag, ":") {
	case "explain":
		return SpecialExplain, true
	case "explain-justified":
		return SpecialExplainJustified, true
	case "explain-all":
		return SpecialExplainAll, true
	case "help":
		return SpecialHelp, true
	default:
		return SpecialNone, false
	}
}

// Resolved is the fully merged, validated, derived configuration for
// one print call. Rep and Caps are bound together from the
// classifier's decision; they are never set independently.
type Resolved struct {
	// Options is the merged nested option tree.
	Options map[string]interface{}
	// Schema is the typed view of Options.
	Schema Schema

	// Rep and Caps are set by Bind after classification.
	Rep  Representation
	Caps traverse.Caps

	widthExplicit bool
}

// Bind attaches the representation tag and the matching capability
// set. The pairing is fixed here so the dispatcher cannot pick a
// capability set that disagrees with the classifier.
func (r *Resolved) Bind(rep Representation) {
	r.Rep = rep
	switch rep {
	case RepDocument:
		r.Caps = traverse.DocCaps{}
	case RepValue:
		r.Caps = traverse.ValueCaps{}
	default:
		panic(fmt.Sprintf("config: unknown representation %q", rep))
	}
}

// Width returns the effective line width.
func (r *Resolved) Width() int { return r.Schema.Width }

// IndentWidth returns the indentation per nesting level.
func (r *Resolved) IndentWidth() int { return r.Schema.Indent.Width }

// widthProbe is swapped out in tests.
var widthProbe = terminal.Width

// Resolve merges every configuration layer for one call and returns
// the resolved options, or a diagnostic string when flag names a
// special request, or a ConfigurationError carrying every aggregated
// problem. width is folded into the call options under "width" when
// widthGiven is set.
//
// Unknown special flags are reported as a warning-style diagnostic,
// not an error.
func (s *Store) Resolve(call map[string]interface{}, width int, widthGiven bool, flag string) (*Resolved, string, error) {
	if flag != "" {
		special, ok := ParseSpecial(flag)
		if !ok {
			return nil, fmt.Sprintf("warning: unknown special flag %q", flag), nil
		}
		return nil, s.Explain(special), nil
	}

	committed := s.Snapshot()
	loadErrs := s.LoadErrors()

	call = CloneMap(call)
	if widthGiven {
		call["width"] = width
	}
	_, callHasWidth := call["width"]
	committedHasWidth := s.WidthCommitted()

	merged := committed
	MergeMaps(merged, call)

	styleSetWidth, callErrs := ApplyStyles(merged)
	callErrs = append(callErrs, Validate(merged)...)

	if diag := combineDiagnostics(loadErrs, callErrs); diag != "" {
		return nil, "", errors.New(errors.ErrConfigValid, diag)
	}

	res := &Resolved{
		Options:       merged,
		widthExplicit: callHasWidth || committedHasWidth || styleSetWidth,
	}
	if err := decodeSchema(merged, &res.Schema); err != nil {
		return nil, "", errors.Wrap(err, errors.ErrConfigValid, "this call: decoding options")
	}

	// Auto-width only fills in when nothing above the built-in default
	// supplied a width; call, committed and style-preset widths all win
	// over the probe.
	if !res.widthExplicit && res.Schema.AutoWidth {
		if w, ok := widthProbe(); ok && w > 0 {
			res.Schema.Width = w
			res.Options["width"] = w
		}
	}

	return res, "", nil
}

// combineDiagnostics concatenates load and call errors into one
// message, prefixed by origin. Empty when there is nothing to report.
func combineDiagnostics(loadErrs, callErrs []string) string {
	var parts []string
	if len(loadErrs) > 0 {
		parts = append(parts, "global configuration: "+strings.Join(loadErrs, "; "))
	}
	if len(callErrs) > 0 {
		parts = append(parts, "this call: "+strings.Join(callErrs, "; "))
	}
	return strings.Join(parts, "\n")
}

// decodeSchema unmarshals the merged tree into the typed view using
// the same koanf/mapstructure machinery the loader uses, so weakly
// typed values (float widths from TOML, say) decode consistently.
func decodeSchema(merged map[string]interface{}, out *Schema) error {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(merged, "."), nil); err != nil {
		return err
	}
	return k.UnmarshalWithConf("", out, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           out,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	})
}
