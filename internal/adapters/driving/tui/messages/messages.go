// Package messages defines Bubbletea message types for the trace viewer.
// Messages represent events that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/flobnar/internal/core/domain"
)

// TraceRecorded carries a finished recording back to the model.
// Err is the evaluation error, if any; Events still holds the visits
// made before the failure.
type TraceRecorded struct {
	// Grid is the program as loaded, before any 'p' writes.
	Grid *domain.Grid

	// Events are the recorded cell visits in order.
	Events []domain.TraceEvent

	// Truncated is set when the run visited more cells than were kept.
	Truncated bool

	// Output is the program's character output.
	Output string

	// Result is nil when evaluation failed.
	Result *domain.RunResult

	Err error
}

// StepChanged is sent when the viewer moves to another visit.
type StepChanged struct {
	Index int
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewTrace is the board and status view.
	ViewTrace ViewType = iota
	// ViewHelp is the keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewTrace:
		return "trace"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}
