// Package terminal answers questions about the terminal a debug dump is written to.
package terminal

import (
	"io"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// fdWriter is satisfied by *os.File and anything else backed by a descriptor
type fdWriter interface {
	Fd() uintptr
}

// IsTerminal reports whether w writes to an interactive terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// SizeOf returns the width and height of the terminal behind w.
// Falls back to defaults if w is not a terminal or the size cannot be determined.
func SizeOf(w io.Writer) (width, height int) {
	f, ok := w.(fdWriter)
	if !ok {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}
