package tui

import (
	"github.com/custodia-labs/flobnar/internal/core/domain"
)

// DefaultEventLimit caps how many visits a recording keeps.
const DefaultEventLimit = 100_000

// recorder collects trace events up to a limit.
type recorder struct {
	limit     int
	events    []domain.TraceEvent
	truncated bool
}

func newRecorder(limit int) *recorder {
	return &recorder{limit: limit}
}

func (r *recorder) record(ev domain.TraceEvent) {
	if r.limit > 0 && len(r.events) >= r.limit {
		r.truncated = true
		return
	}
	r.events = append(r.events, ev)
}

// Trace is a recorded run that can be replayed one visit at a time.
//
// The board shows the program as loaded. Cells rewritten by 'p' show their
// new symbol once the trace has visited them.
type Trace struct {
	grid      *domain.Grid
	events    []domain.TraceEvent
	truncated bool
	min       domain.Position
	max       domain.Position
}

// NewTrace builds a trace over grid. The displayed area is the grid's
// bounding box grown to cover every visited cell, limited to grid storage.
// Visits outside storage, possible once 'p' has blanked the whole box,
// are not drawn.
func NewTrace(grid *domain.Grid, events []domain.TraceEvent, truncated bool) *Trace {
	t := &Trace{grid: grid, events: events, truncated: truncated}
	t.min, t.max = grid.Bounds()
	if grid.Empty() {
		t.min, t.max = domain.Position{}, domain.Position{}
	}
	for _, ev := range events {
		if !grid.InStorage(ev.Pos.Row, ev.Pos.Column) {
			continue
		}
		t.min.Row = min(t.min.Row, ev.Pos.Row)
		t.min.Column = min(t.min.Column, ev.Pos.Column)
		t.max.Row = max(t.max.Row, ev.Pos.Row+1)
		t.max.Column = max(t.max.Column, ev.Pos.Column+1)
	}
	return t
}

// Len returns the number of recorded visits.
func (t *Trace) Len() int { return len(t.events) }

// Truncated reports whether visits were dropped.
func (t *Trace) Truncated() bool { return t.truncated }

// Event returns visit i.
func (t *Trace) Event(i int) domain.TraceEvent { return t.events[i] }

// Area returns the displayed region. min is inclusive, max is exclusive.
func (t *Trace) Area() (minPos, maxPos domain.Position) { return t.min, t.max }

// Frame returns the displayed cells as of visit upto, along with which of
// them the trace had reached by then.
func (t *Trace) Frame(upto int) (cells [][]int, visited [][]bool) {
	height := t.max.Row - t.min.Row
	width := t.max.Column - t.min.Column
	cells = make([][]int, height)
	visited = make([][]bool, height)
	for r := range cells {
		cells[r] = make([]int, width)
		visited[r] = make([]bool, width)
		for c := range cells[r] {
			cells[r][c] = t.grid.Get(t.min.Row+r, t.min.Column+c)
		}
	}
	for i := 0; i <= upto && i < len(t.events); i++ {
		ev := t.events[i]
		if !t.contains(ev.Pos) {
			continue
		}
		r, c := ev.Pos.Row-t.min.Row, ev.Pos.Column-t.min.Column
		cells[r][c] = ev.Symbol
		visited[r][c] = true
	}
	return cells, visited
}

func (t *Trace) contains(pos domain.Position) bool {
	return t.min.Row <= pos.Row && pos.Row < t.max.Row &&
		t.min.Column <= pos.Column && pos.Column < t.max.Column
}
