package console

import (
	"os"

	"golang.org/x/term"
)

// MakeRaw switches f to raw mode when it is a terminal so that '~' sees
// each keystroke as it is typed. The returned function restores the
// previous state; it is a no-op when f is not a terminal.
func MakeRaw(f *os.File) (restore func() error, err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return func() error { return nil }, nil
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() error { return term.Restore(fd, state) }, nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
