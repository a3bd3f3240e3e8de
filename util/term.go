package util

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether f is attached to a terminal.  Usage
// hints such as "Press Ctrl+C to exit" are only worth printing when a
// human is typing.
func IsInteractive(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
