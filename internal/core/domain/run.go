package domain

import "time"

// RunRequest describes a single program evaluation.
type RunRequest struct {
	// Name identifies the program, usually its file path.
	Name string

	// Source is the program text.
	Source []byte

	// Overrides replace configured interpreter settings when non-nil.
	MaxDepth *int
	Seed     *int64
	EOFValue *int

	// SkipHistory keeps the run out of the history store.
	SkipHistory bool
}

// RunResult is the outcome of a successful evaluation.
type RunResult struct {
	// Value is the integer the entry cell evaluated to.
	Value int

	// Anchor is where the @ sign was found.
	Anchor Position

	// Steps is the number of cells visited.
	Steps int

	// MaxDepth is the deepest recursion reached.
	MaxDepth int

	// Duration is the wall-clock evaluation time.
	Duration time.Duration

	// RecordID is the history record id, empty when history is disabled.
	RecordID string
}

// CheckResult describes a program that loaded successfully.
type CheckResult struct {
	Anchor   Position
	Min      Position
	Max      Position
	NonBlank int
	Lines    []string
}

// RunRecord is a persisted run history entry.
type RunRecord struct {
	ID        string
	Program   string
	Digest    string
	Value     int
	Output    string
	Error     string
	Steps     int
	StartedAt time.Time
	Duration  time.Duration
}

// Succeeded reports whether the run finished without error.
func (r RunRecord) Succeeded() bool {
	return r.Error == ""
}

// TraceEvent describes one cell visit during evaluation.
type TraceEvent struct {
	Step   int
	Depth  int
	Pos    Position
	From   Direction
	Symbol int
}

// Tracer receives trace events. It must not retain the grid.
type Tracer func(TraceEvent)
