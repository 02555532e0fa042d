package output

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether w is a terminal file descriptor.
func IsTerminal(w any) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// StdinIsTerminal reports whether standard input is interactive.
func StdinIsTerminal() bool {
	return IsTerminal(os.Stdin)
}

// UseColor reports whether colored output should be written to w.
func UseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return IsTerminal(w)
}
