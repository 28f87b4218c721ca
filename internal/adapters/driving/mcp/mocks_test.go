package mcp

import (
	"bufio"
	"context"
	"io"

	"github.com/custodia-labs/flobnar/internal/core/domain"
	"github.com/custodia-labs/flobnar/internal/core/ports/driven"
	"github.com/custodia-labs/flobnar/internal/core/ports/driving"
)

// mockInterpreter is a mock implementation of driving.InterpreterService.
type mockInterpreter struct {
	output   string
	result   *domain.RunResult
	check    *domain.CheckResult
	err      error
	lastReq  domain.RunRequest
	lastOpts driving.RunOptions
	input    string
}

func (m *mockInterpreter) Run(_ context.Context, req domain.RunRequest, opts driving.RunOptions) (*domain.RunResult, error) {
	m.lastReq = req
	m.lastOpts = opts
	for {
		code, ok, err := opts.Console.ReadSymbol()
		if err != nil || !ok {
			break
		}
		m.input += string(rune(code))
	}
	for _, b := range []byte(m.output) {
		if err := opts.Console.WriteSymbol(int(b)); err != nil {
			return nil, err
		}
	}
	return m.result, m.err
}

func (m *mockInterpreter) RunFile(ctx context.Context, name string, req domain.RunRequest, opts driving.RunOptions) (*domain.RunResult, error) {
	req.Name = name
	return m.Run(ctx, req, opts)
}

func (m *mockInterpreter) Check(_ context.Context, _ []byte) (*domain.CheckResult, error) {
	return m.check, m.err
}

func (m *mockInterpreter) Load(_ context.Context, _ []byte) (*domain.Grid, domain.Position, error) {
	return nil, domain.Position{}, m.err
}

// mockHistory is a mock implementation of driving.HistoryService.
type mockHistory struct {
	records []domain.RunRecord
	record  *domain.RunRecord
	err     error
}

func (m *mockHistory) List(_ context.Context, _ int) ([]domain.RunRecord, error) {
	return m.records, m.err
}

func (m *mockHistory) Get(_ context.Context, _ string) (*domain.RunRecord, error) {
	return m.record, m.err
}

func (m *mockHistory) Clear(_ context.Context) (int, error) {
	return len(m.records), m.err
}

// byteConsole is a minimal in-memory console.
type byteConsole struct {
	in  *bufio.Reader
	out io.Writer
}

func newByteConsole(in io.Reader, out io.Writer) driven.Console {
	return &byteConsole{in: bufio.NewReader(in), out: out}
}

func (c *byteConsole) ReadSymbol() (int, bool, error) {
	b, err := c.in.ReadByte()
	if err == io.EOF {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return int(b), true, nil
}

func (c *byteConsole) WriteSymbol(code int) error {
	_, err := c.out.Write([]byte{byte(code)})
	return err
}

func validPorts(interp *mockInterpreter) *Ports {
	return &Ports{Interpreter: interp, NewConsole: newByteConsole}
}
