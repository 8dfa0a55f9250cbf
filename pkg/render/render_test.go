package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resin-fmt/resin/pkg/config"
	"github.com/resin-fmt/resin/pkg/sexpr"
	"github.com/resin-fmt/resin/pkg/zipper"
)

func docOptions(t *testing.T, width int) *config.Resolved {
	t.Helper()
	res := &config.Resolved{}
	res.Schema.Width = width
	res.Schema.Indent.Width = 2
	res.Bind(config.RepDocument)
	return res
}

func valueOptions(t *testing.T, width int) *config.Resolved {
	t.Helper()
	res := &config.Resolved{}
	res.Schema.Width = width
	res.Schema.Indent.Width = 2
	res.Bind(config.RepValue)
	return res
}

func renderDoc(t *testing.T, src string, width int) string {
	t.Helper()
	node, err := sexpr.ParseOne(src)
	require.NoError(t, err)
	stream, err := Basic{}.Render(docOptions(t, width), 0, zipper.New(node))
	require.NoError(t, err)
	return stream.String()
}

func TestRenderFitsOnOneLine(t *testing.T) {
	assert.Equal(t, "(defn f [x] x)", renderDoc(t, "(defn   f\n  [x]\n  x)", 80))
}

func TestRenderBreaksWhenNarrow(t *testing.T) {
	got := renderDoc(t, "(defn f [x] (inc x))", 10)
	assert.Equal(t, "(defn\n  f\n  [x]\n  (inc x))", got)
}

func TestRenderNestedBreaking(t *testing.T) {
	got := renderDoc(t, "(a (bbbbbbb ccccccc ddddddd) e)", 14)
	assert.Equal(t, "(a\n  (bbbbbbb\n    ccccccc\n    ddddddd)\n  e)", got)
}

func TestRenderCommentForcesBreak(t *testing.T) {
	got := renderDoc(t, "(a ; note\n b)", 80)
	assert.Equal(t, "(a\n  ; note\n  b)", got)
}

func TestRenderTrailingCommentKeepsCloserOffItsLine(t *testing.T) {
	got := renderDoc(t, "(a b ; tail\n)", 80)
	assert.Equal(t, "(a\n  b\n  ; tail\n  )", got)
}

func TestRenderQuoteForms(t *testing.T) {
	assert.Equal(t, "'(a b)", renderDoc(t, "'(a b)", 80))
	assert.Equal(t, "~@xs", renderDoc(t, "~@xs", 80))
}

func TestRenderCollectionDelimiters(t *testing.T) {
	assert.Equal(t, "[1 2 3]", renderDoc(t, "[1 2 3]", 80))
	assert.Equal(t, "{:a 1}", renderDoc(t, "{:a 1}", 80))
}

func TestRenderEmptyCollection(t *testing.T) {
	assert.Equal(t, "()", renderDoc(t, "()", 80))
}

func TestRenderTokenKinds(t *testing.T) {
	node, err := sexpr.ParseOne("(a b)")
	require.NoError(t, err)
	stream, err := Basic{}.Render(docOptions(t, 80), 0, zipper.New(node))
	require.NoError(t, err)

	require.Len(t, stream, 5)
	assert.True(t, stream[0].Boundary())
	assert.True(t, stream[4].Boundary())
	// Reassembling the texts reproduces the output exactly.
	assert.Equal(t, "(a b)", stream.String())
}

func TestRenderPlainValue(t *testing.T) {
	res := valueOptions(t, 80)
	stream, err := Basic{}.Render(res, 0, []interface{}{1, "two", map[string]interface{}{"a": 1}})
	require.NoError(t, err)
	assert.Equal(t, `[1 "two" {"a" 1}]`, stream.String())
}

func TestRenderPlainValueBreaks(t *testing.T) {
	res := valueOptions(t, 8)
	stream, err := Basic{}.Render(res, 0, []interface{}{"aaaa", "bbbb"})
	require.NoError(t, err)
	assert.Equal(t, "[\"aaaa\"\n  \"bbbb\"]", stream.String())
}

func TestRenderDepthShiftsBudget(t *testing.T) {
	node, err := sexpr.ParseOne("(aa bb)")
	require.NoError(t, err)

	// At depth 0 the form fits in 9 columns; at depth 3 the remaining
	// budget is too small and the form breaks.
	res := docOptions(t, 9)
	stream, err := Basic{}.Render(res, 0, zipper.New(node))
	require.NoError(t, err)
	assert.Equal(t, "(aa bb)", stream.String())

	stream, err = Basic{}.Render(res, 3, zipper.New(node))
	require.NoError(t, err)
	assert.Equal(t, "(aa\n        bb)", stream.String())
}
