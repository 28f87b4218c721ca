package services

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/custodia-labs/flobnar/internal/core/domain"
	"github.com/custodia-labs/flobnar/internal/core/ports/driven"
)

// bufferConsole feeds input from a string and collects output bytes.
type bufferConsole struct {
	in  *strings.Reader
	out bytes.Buffer
}

func newBufferConsole(input string) *bufferConsole {
	return &bufferConsole{in: strings.NewReader(input)}
}

func (c *bufferConsole) ReadSymbol() (int, bool, error) {
	b, err := c.in.ReadByte()
	if errors.Is(err, io.EOF) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return int(b), true, nil
}

func (c *bufferConsole) WriteSymbol(code int) error {
	return c.out.WriteByte(byte(code))
}

// streamConsole adapts reader and writer streams, matching driven.ConsoleFactory.
type streamConsole struct {
	in  *bufio.Reader
	out io.Writer
}

func newStreamConsole(in io.Reader, out io.Writer) driven.Console {
	return &streamConsole{in: bufio.NewReader(in), out: out}
}

func (c *streamConsole) ReadSymbol() (int, bool, error) {
	b, err := c.in.ReadByte()
	if errors.Is(err, io.EOF) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return int(b), true, nil
}

func (c *streamConsole) WriteSymbol(code int) error {
	_, err := c.out.Write([]byte{byte(code)})
	return err
}

// failingConsole fails every write.
type failingConsole struct{}

var errConsoleClosed = errors.New("console closed")

func (failingConsole) ReadSymbol() (int, bool, error) { return 0, false, errConsoleClosed }
func (failingConsole) WriteSymbol(int) error          { return errConsoleClosed }

// scriptedChooser returns choices in order, repeating the last one.
type scriptedChooser struct {
	choices []int
	calls   []int
}

func (c *scriptedChooser) Intn(n int) int {
	c.calls = append(c.calls, n)
	if len(c.choices) == 0 {
		return 0
	}
	v := c.choices[0]
	if len(c.choices) > 1 {
		c.choices = c.choices[1:]
	}
	return v
}

// chooserFactory records the seeds it was asked for.
type chooserFactory struct {
	mu      sync.Mutex
	seeds   []int64
	choices []int
}

func (f *chooserFactory) New(seed int64) driven.Chooser {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seeds = append(f.seeds, seed)
	return &scriptedChooser{choices: f.choices}
}

// mapSource serves programs from memory.
type mapSource map[string][]byte

func (m mapSource) Read(_ context.Context, name string) ([]byte, error) {
	data, ok := m[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return data, nil
}

// staticLoader returns fixed cases for any document.
type staticLoader struct {
	cases []domain.TestCase
	err   error
}

func (l staticLoader) Load(string, []byte) ([]domain.TestCase, error) {
	return l.cases, l.err
}

// failingRunStore fails every operation.
type failingRunStore struct{}

var errStoreDown = errors.New("store down")

func (failingRunStore) Save(context.Context, *domain.RunRecord) error { return errStoreDown }
func (failingRunStore) Get(context.Context, string) (*domain.RunRecord, error) {
	return nil, errStoreDown
}
func (failingRunStore) List(context.Context, int) ([]domain.RunRecord, error) {
	return nil, errStoreDown
}
func (failingRunStore) Clear(context.Context) (int, error) { return 0, errStoreDown }

// program joins rows with newlines.
func program(rows ...string) string {
	return strings.Join(rows, "\n")
}
