package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resin-fmt/resin/pkg/errors"
)

func TestExtractAndPrint(t *testing.T) {
	Register("my/fn", "(defn   my-fn\n  [x]\n  x)")

	out, err := ExtractAndPrint("my/fn")
	require.NoError(t, err)
	assert.Equal(t, "(defn my-fn [x] x)", out)
}

func TestExtractAndPrintHonorsWidth(t *testing.T) {
	Register("wide/fn", "(aaaa bbbb cccc)")

	out, err := ExtractAndPrint("wide/fn", 10)
	require.NoError(t, err)
	assert.Equal(t, "(aaaa\n  bbbb\n  cccc)", out)
}

func TestExtractAndPrintUnknownRef(t *testing.T) {
	_, err := ExtractAndPrint("no/such/ref")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceNotFound))
	assert.Contains(t, err.Error(), "no/such/ref")
}

func TestLookupRootFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "util.edn"), []byte("(inc   x)"), 0o644))
	RegisterRoot(dir)

	out, err := ExtractAndPrint("util.edn")
	require.NoError(t, err)
	assert.Equal(t, "(inc x)", out)
}

func TestRegistryWinsOverRoots(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "both"), []byte("(from-file)"), 0o644))
	RegisterRoot(dir)
	Register("both", "(from-registry)")

	text, ok := Lookup("both")
	require.True(t, ok)
	assert.Equal(t, "(from-registry)", text)
}

func TestRegisterReplaces(t *testing.T) {
	Register("dup", "(a)")
	Register("dup", "(b)")

	text, ok := Lookup("dup")
	require.True(t, ok)
	assert.Equal(t, "(b)", text)
}
