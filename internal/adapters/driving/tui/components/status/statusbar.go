// Package status provides the status bar component for the trace viewer.
package status

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/flobnar/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/flobnar/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/flobnar/internal/core/domain"
)

// State represents the viewer state for display.
type State string

const (
	StateRecording State = "recording"
	StateReady     State = "ready"
	StateFailed    State = "failed"
	StateHelp      State = "help"
)

// Bar displays the current trace step and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	index   int
	total   int
	event   *domain.TraceEvent
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateRecording,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the step description.
func (s *Bar) renderLeft() string {
	switch s.state {
	case StateRecording:
		return s.styles.Muted.Render("Recording...")
	case StateHelp:
		return s.styles.Normal.Render("Help")
	case StateFailed:
		if s.event == nil {
			return s.styles.Error.Render("Failed")
		}
	case StateReady:
		if s.event == nil {
			return s.styles.Muted.Render("No cells visited")
		}
	}
	if s.event == nil {
		return ""
	}
	return s.styles.Normal.Render(Describe(s.index, s.total, *s.event))
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// Describe formats a trace event as shown in the status bar.
// index is zero based.
func Describe(index, total int, ev domain.TraceEvent) string {
	return fmt.Sprintf("step %d/%d  depth %d  %s from %s  %q",
		index+1, total, ev.Depth, ev.Pos, ev.From, domain.Printable(ev.Symbol))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetStep records which visit is shown.
func (s *Bar) SetStep(index, total int, ev domain.TraceEvent) {
	s.index = index
	s.total = total
	s.event = &ev
}

// Step returns the shown visit index and the total.
func (s *Bar) Step() (index, total int) {
	return s.index, s.total
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to its initial state.
func (s *Bar) Clear() {
	s.state = StateRecording
	s.message = ""
	s.index = 0
	s.total = 0
	s.event = nil
}
