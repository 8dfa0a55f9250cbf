package colorize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resin-fmt/resin/pkg/config"
	"github.com/resin-fmt/resin/pkg/token"
)

func coloredOptions(t *testing.T) *config.Resolved {
	t.Helper()
	res := &config.Resolved{}
	res.Schema.Color = true
	res.Schema.ColorMap = map[string]string{
		"symbol":     "none",
		"keyword":    "magenta",
		"string":     "red",
		"number":     "yellow",
		"comment":    "green",
		"paren":      "none",
		"bracket":    "none",
		"brace":      "none",
		"quote":      "cyan",
		"whitespace": "none",
	}
	return res
}

func TestRoleOf(t *testing.T) {
	tests := []struct {
		tok  token.Token
		want string
	}{
		{token.Token{Text: " ", Kind: token.Whitespace}, "whitespace"},
		{token.Token{Text: "(", Kind: token.LeftBoundary}, "paren"},
		{token.Token{Text: "]", Kind: token.RightBoundary}, "bracket"},
		{token.Token{Text: "{", Kind: token.LeftBoundary}, "brace"},
		{token.Token{Text: "defn", Kind: token.Element}, "symbol"},
		{token.Token{Text: ":key", Kind: token.Element}, "keyword"},
		{token.Token{Text: `"hi"`, Kind: token.Element}, "string"},
		{token.Token{Text: "42", Kind: token.Element}, "number"},
		{token.Token{Text: "-1.5", Kind: token.Element}, "number"},
		{token.Token{Text: "-main", Kind: token.Element}, "symbol"},
		{token.Token{Text: "; note", Kind: token.Element}, "comment"},
		{token.Token{Text: "'", Kind: token.Element}, "quote"},
		{token.Token{Text: "~@", Kind: token.Element}, "quote"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, roleOf(tt.tok), tt.tok.Text)
	}
}

func TestApplyTagsWithoutMutating(t *testing.T) {
	stream := token.Stream{
		{Text: "(", Kind: token.LeftBoundary},
		{Text: ":a", Kind: token.Element},
		{Text: ")", Kind: token.RightBoundary},
	}

	tagged := Apply(stream, coloredOptions(t))
	assert.Equal(t, "none", tagged[0].Color)
	assert.Equal(t, "magenta", tagged[1].Color)

	// The input stream keeps empty colors.
	assert.Empty(t, stream[1].Color)
}

func TestCompactMergesSameColorRuns(t *testing.T) {
	stream := token.Stream{
		{Text: "a", Color: "none", Kind: token.Element},
		{Text: " ", Color: "none", Kind: token.Whitespace},
		{Text: "b", Color: "none", Kind: token.Element},
		{Text: ":k", Color: "magenta", Kind: token.Element},
	}

	runs := Compact(stream)
	require.Len(t, runs, 2)
	assert.Equal(t, "a b", runs[0].Text)
	assert.Equal(t, ":k", runs[1].Text)
}

func TestCompactNeverMergesBoundaries(t *testing.T) {
	stream := token.Stream{
		{Text: "(", Color: "none", Kind: token.LeftBoundary},
		{Text: "a", Color: "none", Kind: token.Element},
		{Text: ")", Color: "none", Kind: token.RightBoundary},
		{Text: ")", Color: "none", Kind: token.RightBoundary},
	}

	runs := Compact(stream)
	require.Len(t, runs, 4)
	assert.Equal(t, token.LeftBoundary, runs[0].Kind)
	assert.Equal(t, token.RightBoundary, runs[2].Kind)
}

func TestCompactionLossless(t *testing.T) {
	streams := []token.Stream{
		nil,
		{{Text: "x", Kind: token.Element}},
		{
			{Text: "(", Color: "none", Kind: token.LeftBoundary},
			{Text: "def", Color: "none", Kind: token.Element},
			{Text: " ", Color: "none", Kind: token.Whitespace},
			{Text: ":a", Color: "magenta", Kind: token.Element},
			{Text: " ", Color: "none", Kind: token.Whitespace},
			{Text: "1", Color: "yellow", Kind: token.Element},
			{Text: ")", Color: "none", Kind: token.RightBoundary},
		},
	}

	for _, s := range streams {
		assert.Equal(t, s.String(), Decompact(Compact(s)).String())
	}
}

func TestEncodeStylesColoredRuns(t *testing.T) {
	runs := []Run{
		{Text: "plain", Color: "none"},
		{Text: ":k", Color: "magenta"},
	}

	out := Encode(runs)
	assert.True(t, strings.HasPrefix(out, "plain"))
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, ":k")
}

func TestEncodeUnknownColorPassesThrough(t *testing.T) {
	assert.Equal(t, "x", Encode([]Run{{Text: "x", Color: "chartreuse"}}))
}

func TestFinishDegradesToPlainWithoutColor(t *testing.T) {
	res := &config.Resolved{}
	stream := token.Stream{
		{Text: "(", Kind: token.LeftBoundary},
		{Text: "a", Kind: token.Element},
		{Text: ")", Kind: token.RightBoundary},
	}

	assert.Equal(t, "(a)", Finish(stream, res))
}

func TestFinishColorsKeywords(t *testing.T) {
	stream := token.Stream{
		{Text: "(", Kind: token.LeftBoundary},
		{Text: ":a", Kind: token.Element},
		{Text: ")", Kind: token.RightBoundary},
	}

	out := Finish(stream, coloredOptions(t))
	assert.Contains(t, out, "\x1b[35m")
	assert.Contains(t, out, ":a")
}
