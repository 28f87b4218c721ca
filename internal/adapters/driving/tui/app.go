package tui

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/flobnar/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/flobnar/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/flobnar/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/flobnar/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/flobnar/internal/core/domain"
	"github.com/custodia-labs/flobnar/internal/core/ports/driving"
)

// App is the trace viewer following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context the recorded run is evaluated under.
	ctx context.Context

	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusBar *status.Bar

	// name is the program to record; input feeds '~'.
	name  string
	input string
	limit int

	// trace is nil until recording finishes.
	trace   *Trace
	current int

	output string
	result *domain.RunResult
	err    error

	currentView messages.ViewType

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a viewer that records the named program.
func NewApp(ports *Ports, name string) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		statusBar:   status.NewBar(s, km),
		name:        name,
		limit:       DefaultEventLimit,
		currentView: messages.ViewTrace,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// WithInput sets the characters the program reads.
func (a *App) WithInput(input string) *App {
	a.input = input
	return a
}

// WithEventLimit caps how many visits are recorded. Zero keeps all.
func (a *App) WithEventLimit(n int) *App {
	a.limit = n
	return a
}

// Init implements tea.Model.
// It starts recording the program.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("flobnar - "+a.name),
		a.record,
	)
}

// record evaluates the program with a tracer attached. The run is kept out
// of history.
func (a *App) record() tea.Msg {
	source, err := a.ports.Programs.Read(a.ctx, a.name)
	if err != nil {
		return messages.TraceRecorded{Err: err}
	}
	grid, _, err := a.ports.Interpreter.Load(a.ctx, source)
	if err != nil {
		return messages.TraceRecorded{Err: err}
	}

	rec := newRecorder(a.limit)
	var out bytes.Buffer
	console := a.ports.NewConsole(strings.NewReader(a.input), &out)

	req := domain.RunRequest{Name: a.name, Source: source, SkipHistory: true}
	result, err := a.ports.Interpreter.Run(a.ctx, req, driving.RunOptions{
		Console: console,
		Tracer:  rec.record,
	})

	return messages.TraceRecorded{
		Grid:      grid,
		Events:    rec.events,
		Truncated: rec.truncated,
		Output:    out.String(),
		Result:    result,
		Err:       err,
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case messages.TraceRecorded:
		a.handleRecorded(msg)
		return a, nil

	case messages.StepChanged:
		a.seek(msg.Index)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleRecorded(msg messages.TraceRecorded) {
	a.output = msg.Output
	a.result = msg.Result
	a.err = msg.Err
	if msg.Grid != nil {
		a.trace = NewTrace(msg.Grid, msg.Events, msg.Truncated)
	}

	if a.err != nil {
		a.statusBar.SetState(status.StateFailed)
	} else {
		a.statusBar.SetState(status.StateReady)
	}
	a.seek(0)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keymap.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keymap.Help):
		a.toggleHelp()
	case key.Matches(msg, a.keymap.Prev):
		a.seek(a.current - 1)
	case key.Matches(msg, a.keymap.Next):
		a.seek(a.current + 1)
	case key.Matches(msg, a.keymap.PageBack):
		a.seek(a.current - keymap.JumpSize)
	case key.Matches(msg, a.keymap.PageForward):
		a.seek(a.current + keymap.JumpSize)
	case key.Matches(msg, a.keymap.First):
		a.seek(0)
	case key.Matches(msg, a.keymap.Last):
		if a.trace != nil {
			a.seek(a.trace.Len() - 1)
		}
	}
	return a, nil
}

func (a *App) toggleHelp() {
	if a.currentView == messages.ViewHelp {
		a.currentView = messages.ViewTrace
		a.statusBar.SetState(a.traceState())
		return
	}
	a.currentView = messages.ViewHelp
	a.statusBar.SetState(status.StateHelp)
}

func (a *App) traceState() status.State {
	switch {
	case a.trace == nil && a.err == nil:
		return status.StateRecording
	case a.err != nil:
		return status.StateFailed
	default:
		return status.StateReady
	}
}

// seek moves to visit i, clamped to the recording.
func (a *App) seek(i int) {
	if a.trace == nil || a.trace.Len() == 0 {
		a.current = 0
		return
	}
	a.current = max(0, min(i, a.trace.Len()-1))
	a.statusBar.SetStep(a.current, a.trace.Len(), a.trace.Event(a.current))
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("flobnar trace: " + a.name))
	b.WriteString("\n\n")

	if a.currentView == messages.ViewHelp {
		b.WriteString(a.renderHelp())
	} else {
		b.WriteString(a.renderTrace())
	}

	b.WriteString("\n")
	b.WriteString(a.statusBar.View())
	return b.String()
}

func (a *App) renderTrace() string {
	var b strings.Builder

	if a.trace != nil {
		b.WriteString(a.styles.Board.Render(a.renderBoard()))
		b.WriteString("\n")
		if a.trace.Truncated() {
			b.WriteString(a.styles.Warning.Render(
				fmt.Sprintf("Only the first %d visits were recorded.", a.trace.Len())))
			b.WriteString("\n")
		}
	} else if a.err == nil {
		b.WriteString(a.styles.Muted.Render("Recording..."))
		b.WriteString("\n")
	}

	if a.output != "" {
		b.WriteString(a.styles.Muted.Render("Output:"))
		b.WriteString("\n")
		b.WriteString(a.styles.Normal.Render(a.output))
		b.WriteString("\n")
	}

	switch {
	case a.err != nil:
		b.WriteString(a.styles.Error.Render("Error: " + a.err.Error()))
		b.WriteString("\n")
	case a.result != nil:
		b.WriteString(a.styles.Success.Render(fmt.Sprintf("Result: %d", a.result.Value)))
		b.WriteString("\n")
	}
	return b.String()
}

func (a *App) renderBoard() string {
	highlight := domain.Position{Row: -1, Column: -1}
	upto := -1
	if a.trace.Len() > 0 {
		highlight = a.trace.Event(a.current).Pos
		upto = a.current
	}
	minPos, _ := a.trace.Area()
	cells, visited := a.trace.Frame(upto)

	rows := make([]string, len(cells))
	for r := range cells {
		var line strings.Builder
		for c, code := range cells[r] {
			ch := string(domain.Printable(code))
			pos := domain.Position{Row: minPos.Row + r, Column: minPos.Column + c}
			switch {
			case pos == highlight:
				line.WriteString(a.styles.Current.Render(ch))
			case visited[r][c]:
				line.WriteString(a.styles.Visited.Render(ch))
			case code == domain.Blank:
				line.WriteString(ch)
			default:
				line.WriteString(a.styles.Normal.Render(ch))
			}
		}
		rows[r] = line.String()
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (a *App) renderHelp() string {
	var b strings.Builder
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(a.styles.Help.Render(fmt.Sprintf("  %-8s %s", h.Key, h.Desc)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.statusBar.SetWidth(width)
}

// Current returns the index of the visit being shown.
func (a *App) Current() int { return a.current }

// CurrentView returns the active view.
func (a *App) CurrentView() messages.ViewType { return a.currentView }

// Trace returns the recording, nil until it finishes.
func (a *App) Trace() *Trace { return a.trace }

// Err returns the evaluation error, if any.
func (a *App) Err() error { return a.err }
