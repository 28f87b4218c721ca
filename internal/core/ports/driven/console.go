package driven

import "io"

// Console is the character device programs read from and write to.
type Console interface {
	// ReadSymbol returns the next input character code.
	// ok is false once input is exhausted.
	ReadSymbol() (code int, ok bool, err error)

	// WriteSymbol writes one output character.
	WriteSymbol(code int) error
}

// ConsoleFactory builds a Console over in-memory streams.
type ConsoleFactory func(in io.Reader, out io.Writer) Console
