package domain

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Default grid storage extent.
const (
	DefaultRows    = 100
	DefaultColumns = 100

	// MaxExtent bounds either side of grid storage.
	MaxExtent = 10_000
)

// Blank is the symbol code of an empty cell.
const Blank int = ' '

// Anchor is the symbol code of the start marker.
const Anchor int = '@'

// Grid is fixed-size cell storage with a bounding box of non-blank cells.
//
// Every non-blank cell lies within [min, max): min is inclusive and max is
// exclusive. The box is extended on non-blank writes and rescanned from
// scratch when a cell is blanked.
type Grid struct {
	rows    int
	columns int
	cells   []int
	min     Position
	max     Position
}

// NewGrid creates an all-blank grid with the given storage extent.
// Each side is clamped to [0, MaxExtent].
func NewGrid(rows, columns int) *Grid {
	rows = clampExtent(rows)
	columns = clampExtent(columns)
	g := &Grid{
		rows:    rows,
		columns: columns,
		cells:   make([]int, rows*columns),
	}
	for i := range g.cells {
		g.cells[i] = Blank
	}
	g.resetBounds()
	return g
}

// ParseGrid loads program text into a new grid of the given extent.
// Rows are separated by '\n' and each byte occupies one column starting at
// column 0, so a multibyte character fills several cells.
//
// Unlike a plain byte copy, a '\r' that ends a row is dropped rather than
// stored as a cell, so CRLF files load with the same bounding box as LF ones.
func ParseGrid(r io.Reader, rows, columns int) (*Grid, error) {
	if !ValidExtent(rows) || !ValidExtent(columns) {
		return nil, fmt.Errorf("%w: grid extent %dx%d, each side must be 1 to %d",
			ErrInvalidInput, rows, columns, MaxExtent)
	}
	g := NewGrid(rows, columns)
	br := bufio.NewReader(r)

	row, column := 0, 0
	for {
		ch, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		if ch == '\r' {
			next, err := br.Peek(1)
			if err != nil || next[0] == '\n' {
				continue
			}
		}

		if ch == '\n' {
			row++
			column = 0
			continue
		}

		if row >= rows || column >= columns {
			return nil, &LoadError{Row: row, Column: column, Err: ErrGridTooLarge}
		}
		g.cells[row*columns+column] = int(ch)
		if int(ch) != Blank {
			g.extend(row, column)
		}
		column++
	}

	return g, nil
}

// ValidExtent reports whether n is a usable grid side.
func ValidExtent(n int) bool {
	return 0 < n && n <= MaxExtent
}

// Rows returns the storage row count.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the storage column count.
func (g *Grid) Columns() int { return g.columns }

// Bounds returns the bounding box. min is inclusive, max is exclusive.
func (g *Grid) Bounds() (minPos, maxPos Position) {
	return g.min, g.max
}

// Empty reports whether the bounding box has no area.
func (g *Grid) Empty() bool {
	return g.max.Row <= g.min.Row || g.max.Column <= g.min.Column
}

// InStorage reports whether (row, column) lies inside the fixed storage extent.
func (g *Grid) InStorage(row, column int) bool {
	return 0 <= row && row < g.rows && 0 <= column && column < g.columns
}

// Get returns the symbol at (row, column), or Blank outside storage.
func (g *Grid) Get(row, column int) int {
	if !g.InStorage(row, column) {
		return Blank
	}
	return g.cells[row*g.columns+column]
}

// Put stores value at (row, column).
// It fails with an *OutOfBoundsError outside storage.
func (g *Grid) Put(row, column, value int) error {
	if !g.InStorage(row, column) {
		return &OutOfBoundsError{Row: row, Column: column}
	}
	g.cells[row*g.columns+column] = value
	if value != Blank {
		g.extend(row, column)
	} else {
		g.RecomputeBounds()
	}
	return nil
}

// Wrap maps pos into the bounding box, treating the box as a torus.
// The box must not be empty.
func (g *Grid) Wrap(pos Position) Position {
	height := g.max.Row - g.min.Row
	width := g.max.Column - g.min.Column
	if height <= 0 || width <= 0 {
		return pos
	}

	if pos.Row < g.min.Row || pos.Row >= g.max.Row {
		pos.Row = g.min.Row + floorMod(pos.Row-g.min.Row, height)
	}
	if pos.Column < g.min.Column || pos.Column >= g.max.Column {
		pos.Column = g.min.Column + floorMod(pos.Column-g.min.Column, width)
	}
	return pos
}

// RecomputeBounds rebuilds the bounding box by scanning every cell.
func (g *Grid) RecomputeBounds() {
	g.resetBounds()
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.columns; c++ {
			if g.cells[r*g.columns+c] != Blank {
				g.extend(r, c)
			}
		}
	}
}

// FindAnchor returns the position of the single @ cell.
func (g *Grid) FindAnchor() (Position, error) {
	var result Position
	found := false
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.columns; c++ {
			if g.cells[r*g.columns+c] != Anchor {
				continue
			}
			if found {
				return Position{}, &LoadError{Row: r, Column: c, Err: ErrMultipleAnchors}
			}
			result = Position{Row: r, Column: c}
			found = true
		}
	}
	if !found {
		return Position{}, &LoadError{Err: ErrNoAnchor}
	}
	return result, nil
}

// NonBlank returns the number of non-blank cells.
func (g *Grid) NonBlank() int {
	n := 0
	for _, v := range g.cells {
		if v != Blank {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = make([]int, len(g.cells))
	copy(c.cells, g.cells)
	return &c
}

// Lines renders the bounding box contents, one string per row.
// Codes that are not printable characters render as '.'.
func (g *Grid) Lines() []string {
	if g.Empty() {
		return nil
	}
	lines := make([]string, 0, g.max.Row-g.min.Row)
	for r := g.min.Row; r < g.max.Row; r++ {
		line := make([]rune, 0, g.max.Column-g.min.Column)
		for c := g.min.Column; c < g.max.Column; c++ {
			line = append(line, Printable(g.Get(r, c)))
		}
		lines = append(lines, string(line))
	}
	return lines
}

// Printable maps a cell code to a rune suitable for display.
func Printable(code int) rune {
	if code < ' ' || code > 0x10FFFF || (code >= 0x7F && code < 0xA0) {
		return '.'
	}
	return rune(code)
}

func (g *Grid) resetBounds() {
	g.min = Position{Row: g.rows, Column: g.columns}
	g.max = Position{}
}

func (g *Grid) extend(row, column int) {
	g.min.Row = min(g.min.Row, row)
	g.min.Column = min(g.min.Column, column)
	g.max.Row = max(g.max.Row, row+1)
	g.max.Column = max(g.max.Column, column+1)
}

func clampExtent(n int) int {
	return min(max(n, 0), MaxExtent)
}

func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
