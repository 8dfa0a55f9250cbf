// Package colorize is the colorized finisher: it tags each token with a
// display color from the resolved color map, compacts adjacent tokens
// that share a color into runs, and encodes the runs with ANSI escape
// sequences. The plain finisher lives on token.Stream itself.
package colorize

import (
	_ "embed"
	"strings"
	"unicode"

	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/resin-fmt/resin/pkg/config"
	"github.com/resin-fmt/resin/pkg/token"
)

//go:embed scheme.yaml
var schemeYAML []byte

// ansiCodes maps recognized color names to ANSI foreground codes.
var ansiCodes = loadScheme()

func loadScheme() map[string]string {
	codes := map[string]string{}
	if err := yaml.Unmarshal(schemeYAML, &codes); err != nil {
		panic("colorize: invalid embedded color scheme: " + err.Error())
	}
	return codes
}

// Apply returns a copy of the stream with every token's Color set from
// the resolved color map, keyed by the token's semantic role. The input
// stream is not modified.
func Apply(stream token.Stream, res *config.Resolved) token.Stream {
	out := make(token.Stream, len(stream))
	for i, t := range stream {
		t.Color = res.Schema.ColorMap[roleOf(t)]
		out[i] = t
	}
	return out
}

// roleOf classifies a token into a color-map key. Boundaries are keyed
// by their delimiter, elements by their leading character.
func roleOf(t token.Token) string {
	if t.Kind == token.Whitespace {
		return "whitespace"
	}
	if t.Boundary() {
		switch t.Text {
		case "[", "]":
			return "bracket"
		case "{", "}":
			return "brace"
		default:
			return "paren"
		}
	}
	if t.Text == "" {
		return "symbol"
	}
	switch r := rune(t.Text[0]); {
	case r == ':':
		return "keyword"
	case r == '"':
		return "string"
	case r == ';':
		return "comment"
	case r == '\'' || r == '`' || r == '~' || r == '@' || r == '^' || r == '#':
		return "quote"
	case unicode.IsDigit(r):
		return "number"
	case (r == '+' || r == '-' || r == '.') && len(t.Text) > 1 && unicode.IsDigit(rune(t.Text[1])):
		return "number"
	default:
		return "symbol"
	}
}

// Run is a maximal sequence of adjacent tokens sharing one color.
type Run struct {
	Text  string
	Color string
	Kind  token.Kind
}

// Compact merges adjacent same-color tokens into runs. Boundary tokens
// never merge, in either direction, so structural positions survive
// compaction. Order is preserved.
func Compact(stream token.Stream) []Run {
	var runs []Run
	for _, t := range stream {
		if n := len(runs); n > 0 &&
			!t.Boundary() &&
			runs[n-1].Kind != token.LeftBoundary &&
			runs[n-1].Kind != token.RightBoundary &&
			runs[n-1].Color == t.Color {
			runs[n-1].Text += t.Text
			runs[n-1].Kind = token.Element
			continue
		}
		runs = append(runs, Run{Text: t.Text, Color: t.Color, Kind: t.Kind})
	}
	return runs
}

// Decompact turns runs back into a token stream. Merged runs come back
// as single tokens, so the expansion is not token-for-token, but the
// plain finish of the result always matches the original stream's.
func Decompact(runs []Run) token.Stream {
	out := make(token.Stream, len(runs))
	for i, r := range runs {
		out[i] = token.Token{Text: r.Text, Color: r.Color, Kind: r.Kind}
	}
	return out
}

// Encode renders runs with ANSI foreground colors. Runs with no color,
// an explicit "none", or an unrecognized name pass through unstyled.
func Encode(runs []Run) string {
	p := termenv.ANSI
	var sb strings.Builder
	for _, r := range runs {
		code, ok := ansiCodes[r.Color]
		if !ok {
			sb.WriteString(r.Text)
			continue
		}
		sb.WriteString(p.String(r.Text).Foreground(p.Color(code)).String())
	}
	return sb.String()
}

// Finish is the colorized terminal conversion: tag, compact, encode.
// When color is off in the resolved options it degrades to the plain
// finish.
func Finish(stream token.Stream, res *config.Resolved) string {
	if !res.Schema.Color {
		return stream.String()
	}
	return Encode(Compact(Apply(stream, res)))
}
