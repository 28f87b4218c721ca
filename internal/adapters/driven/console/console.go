// Package console provides the character device programs talk to through
// ',' and '~'.
package console

import (
	"bufio"
	"errors"
	"io"

	"github.com/custodia-labs/flobnar/internal/core/ports/driven"
)

// Ensure Console implements the interface.
var _ driven.Console = (*Console)(nil)

// ctrlD ends input when the terminal is in raw mode.
const ctrlD = 0x04

// Console reads input bytes from a reader and writes output bytes to a
// writer. Output is not buffered by the console itself.
type Console struct {
	in   *bufio.Reader
	out  io.Writer
	raw  bool
	done bool
}

// Option configures a Console.
type Option func(*Console)

// WithRawInput treats Ctrl-D as end of input, for terminals in raw mode
// where the line discipline no longer turns it into EOF.
func WithRawInput() Option {
	return func(c *Console) { c.raw = true }
}

// New creates a console over in and out.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewConsole matches driven.ConsoleFactory.
func NewConsole(in io.Reader, out io.Writer) driven.Console {
	return New(in, out)
}

// ReadSymbol returns the next input byte. Once input is exhausted every
// further call reports ok == false.
func (c *Console) ReadSymbol() (int, bool, error) {
	if c.done {
		return 0, false, nil
	}
	b, err := c.in.ReadByte()
	if errors.Is(err, io.EOF) {
		c.done = true
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	if c.raw && b == ctrlD {
		c.done = true
		return 0, false, nil
	}
	return int(b), true, nil
}

// WriteSymbol writes the low byte of code.
func (c *Console) WriteSymbol(code int) error {
	_, err := c.out.Write([]byte{byte(code)})
	return err
}
