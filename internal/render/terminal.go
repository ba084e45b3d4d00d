package render

import (
	"io"
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when w is not a terminal.
const DefaultWidth = 80

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Width returns the terminal width for w, defaulting to DefaultWidth.
func Width(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return DefaultWidth
}
