// Package terminal probes the controlling terminal for the pipeline.
package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Width returns the terminal width in columns when stdout is an
// interactive terminal of known size. The second return is false when
// no usable width is available (pipes, redirects, dumb terminals).
func Width() (int, bool) {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return 0, false
	}
	w, _, err := term.GetSize(int(fd))
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}

// IsInteractive reports whether stdout is attached to a terminal.
func IsInteractive() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
