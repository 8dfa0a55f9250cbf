// Package source resolves symbolic references to source text and feeds
// the text through the print pipeline. References are registered by the
// embedding program; there is no ambient source discovery.
package source

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/resin-fmt/resin/pkg/errors"
	"github.com/resin-fmt/resin/pkg/printer"
)

var (
	mu       sync.RWMutex
	registry = map[string]string{}
	roots    []string
)

// Register associates a symbolic reference with its source text,
// replacing any previous registration.
func Register(ref, text string) {
	mu.Lock()
	registry[ref] = text
	mu.Unlock()
}

// RegisterRoot adds a directory that Lookup searches for a file named
// after the reference when the in-process registry has no entry. Roots
// are searched in registration order.
func RegisterRoot(dir string) {
	mu.Lock()
	roots = append(roots, dir)
	mu.Unlock()
}

// Lookup returns the source text registered under ref, falling back to
// the registered lookup roots.
func Lookup(ref string) (string, bool) {
	mu.RLock()
	text, ok := registry[ref]
	dirs := append([]string(nil), roots...)
	mu.RUnlock()
	if ok {
		return text, true
	}
	for _, dir := range dirs {
		if data, err := os.ReadFile(filepath.Join(dir, ref)); err == nil {
			return string(data), true
		}
	}
	return "", false
}

// ExtractAndPrint retrieves the source text for ref and pretty-prints
// it with the parse-from-text requirement forced on. Trailing arguments
// are interpreted as in printer.Print.
func ExtractAndPrint(ref string, args ...interface{}) (string, error) {
	text, ok := Lookup(ref)
	if !ok {
		return "", errors.Newf(errors.ErrSourceNotFound,
			"no source registered for %q", ref)
	}
	return printer.PrintString(text, args...)
}
