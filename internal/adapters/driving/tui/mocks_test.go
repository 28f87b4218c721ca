package tui

import (
	"bufio"
	"bytes"
	"context"
	"io"

	"github.com/custodia-labs/flobnar/internal/core/domain"
	"github.com/custodia-labs/flobnar/internal/core/ports/driven"
	"github.com/custodia-labs/flobnar/internal/core/ports/driving"
)

// MockInterpreter implements driving.InterpreterService for testing.
// Run replays Events to the tracer, echoes input to the console and
// returns Result or RunErr.
type MockInterpreter struct {
	Events  []domain.TraceEvent
	Result  *domain.RunResult
	RunErr  error
	LoadErr error
	LastReq domain.RunRequest
}

func (m *MockInterpreter) Run(_ context.Context, req domain.RunRequest, opts driving.RunOptions) (*domain.RunResult, error) {
	m.LastReq = req
	for _, ev := range m.Events {
		if opts.Tracer != nil {
			opts.Tracer(ev)
		}
	}
	for {
		code, ok, err := opts.Console.ReadSymbol()
		if err != nil || !ok {
			break
		}
		if err := opts.Console.WriteSymbol(code); err != nil {
			return nil, err
		}
	}
	if m.RunErr != nil {
		return nil, m.RunErr
	}
	return m.Result, nil
}

func (m *MockInterpreter) RunFile(ctx context.Context, name string, req domain.RunRequest, opts driving.RunOptions) (*domain.RunResult, error) {
	req.Name = name
	return m.Run(ctx, req, opts)
}

func (m *MockInterpreter) Check(_ context.Context, _ []byte) (*domain.CheckResult, error) {
	return &domain.CheckResult{}, nil
}

func (m *MockInterpreter) Load(_ context.Context, source []byte) (*domain.Grid, domain.Position, error) {
	if m.LoadErr != nil {
		return nil, domain.Position{}, m.LoadErr
	}
	grid, err := domain.ParseGrid(bytes.NewReader(source), domain.DefaultRows, domain.DefaultColumns)
	if err != nil {
		return nil, domain.Position{}, err
	}
	anchor, err := grid.FindAnchor()
	return grid, anchor, err
}

// MockPrograms implements driven.ProgramSource for testing.
type MockPrograms map[string]string

func (m MockPrograms) Read(_ context.Context, name string) ([]byte, error) {
	src, ok := m[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return []byte(src), nil
}

type byteConsole struct {
	in  *bufio.Reader
	out io.Writer
}

func newByteConsole(in io.Reader, out io.Writer) driven.Console {
	return &byteConsole{in: bufio.NewReader(in), out: out}
}

func (c *byteConsole) ReadSymbol() (int, bool, error) {
	b, err := c.in.ReadByte()
	if err != nil {
		return 0, false, nil
	}
	return int(b), true, nil
}

func (c *byteConsole) WriteSymbol(code int) error {
	_, err := c.out.Write([]byte{byte(code)})
	return err
}

// addProgram is " 1\n2+@\n 3", traced the way the evaluator visits it.
const addProgram = " 1\n2+@\n 3"

func addEvents() []domain.TraceEvent {
	return []domain.TraceEvent{
		{Step: 1, Depth: 1, Pos: domain.Position{Row: 1, Column: 1}, From: domain.East, Symbol: '+'},
		{Step: 2, Depth: 2, Pos: domain.Position{Row: 0, Column: 1}, From: domain.South, Symbol: '1'},
		{Step: 3, Depth: 2, Pos: domain.Position{Row: 2, Column: 1}, From: domain.North, Symbol: '3'},
	}
}

func newTestPorts(interp *MockInterpreter) *Ports {
	return &Ports{
		Interpreter: interp,
		Programs:    MockPrograms{"add.flob": addProgram},
		NewConsole:  newByteConsole,
	}
}
