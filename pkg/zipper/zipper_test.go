package zipper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resin-fmt/resin/pkg/sexpr"
)

func mustParse(t *testing.T, src string) *sexpr.Node {
	t.Helper()
	n, err := sexpr.ParseOne(src)
	require.NoError(t, err)
	require.NotNil(t, n)
	return n
}

func TestNavigation(t *testing.T) {
	root := New(mustParse(t, "(a (b c) d)"))

	require.Equal(t, sexpr.KindList, root.Tag())

	first := root.Down()
	require.NotNil(t, first)
	assert.Equal(t, "a", first.Node().Text)

	inner := first.Right()
	require.NotNil(t, inner)
	assert.Equal(t, sexpr.KindList, inner.Tag())

	b := inner.Down()
	require.NotNil(t, b)
	assert.Equal(t, "b", b.Node().Text)
	assert.Equal(t, "c", b.Right().Node().Text)
	assert.Nil(t, b.Right().Right())

	assert.Equal(t, inner.Node(), b.Up().Node())

	d := inner.Right()
	require.NotNil(t, d)
	assert.Equal(t, "d", d.Node().Text)
	assert.Nil(t, d.Right())
}

func TestNavigationIsNonMutating(t *testing.T) {
	doc := mustParse(t, "(a b)")
	root := New(doc)

	// Walking around never changes the underlying tree or the original
	// location.
	_ = root.Down().Right()
	_ = root.Down()

	assert.Equal(t, doc, root.Node())
	assert.Equal(t, "(a b)", doc.String())
}

func TestRoot(t *testing.T) {
	root := New(mustParse(t, "(a (b (c)))"))
	deep := root.Down().Right().Down().Right().Down()
	require.NotNil(t, deep)
	assert.Equal(t, root.Node(), deep.Root().Node())
}

func TestEdges(t *testing.T) {
	assert.Nil(t, New(nil))

	leaf := New(mustParse(t, "x"))
	assert.Nil(t, leaf.Down())
	assert.Nil(t, leaf.Right())
	assert.Nil(t, leaf.Up())

	empty := New(mustParse(t, "()"))
	assert.Nil(t, empty.Down())
}
