package ui

import (
	"os"

	"golang.org/x/term"
)

// defaultWidth is assumed when the output is not a terminal.
const defaultWidth = 80

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Width returns the column width of the terminal behind f, or a
// conservative default when f is not one.
func Width(f *os.File) int {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}
