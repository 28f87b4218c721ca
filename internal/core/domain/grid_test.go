package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) *Grid {
	t.Helper()
	g, err := ParseGrid(strings.NewReader(src), DefaultRows, DefaultColumns)
	require.NoError(t, err)
	return g
}

func TestNewGrid_AllBlank(t *testing.T) {
	g := NewGrid(4, 6)

	assert.Equal(t, 4, g.Rows())
	assert.Equal(t, 6, g.Columns())
	assert.True(t, g.Empty())
	assert.Equal(t, 0, g.NonBlank())
	assert.Equal(t, Blank, g.Get(0, 0))
}

func TestNewGrid_ClampsExtent(t *testing.T) {
	g := NewGrid(1<<32, 3)
	assert.Equal(t, MaxExtent, g.Rows())
	assert.Equal(t, 3, g.Columns())

	g = NewGrid(-1, 5)
	assert.Equal(t, 0, g.Rows())
	assert.Equal(t, Blank, g.Get(0, 0))
	assert.ErrorIs(t, g.Put(0, 0, '5'), ErrOutOfBounds)
}

func TestParseGrid_RejectsExtent(t *testing.T) {
	tests := []struct {
		name          string
		rows, columns int
	}{
		{"zero rows", 0, DefaultColumns},
		{"negative columns", DefaultRows, -1},
		{"rows past limit", MaxExtent + 1, DefaultColumns},
		{"area overflow", 1 << 32, 1 << 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGrid(strings.NewReader("5@"), tt.rows, tt.columns)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestParseGrid_OneBytePerColumn(t *testing.T) {
	g := parse(t, "\u00e95@")

	assert.Equal(t, 0xC3, g.Get(0, 0))
	assert.Equal(t, 0xA9, g.Get(0, 1))
	assert.Equal(t, int('5'), g.Get(0, 2))
	anchor, err := g.FindAnchor()
	require.NoError(t, err)
	assert.Equal(t, Position{Row: 0, Column: 3}, anchor)
	_, maxPos := g.Bounds()
	assert.Equal(t, 4, maxPos.Column)
}

func TestParseGrid_KeepsInvalidUTF8Bytes(t *testing.T) {
	g := parse(t, "\xff@")

	assert.Equal(t, 0xFF, g.Get(0, 0))
}

func TestParseGrid_BoundingBox(t *testing.T) {
	g := parse(t, "  \n 1 \n2+@\n 3 ")

	minPos, maxPos := g.Bounds()
	assert.Equal(t, Position{Row: 1, Column: 0}, minPos)
	assert.Equal(t, Position{Row: 4, Column: 3}, maxPos)
	assert.Equal(t, int('+'), g.Get(2, 1))
	assert.Equal(t, 5, g.NonBlank())
}

func TestParseGrid_DropsCarriageReturn(t *testing.T) {
	g := parse(t, "5@\r\n7\r")

	assert.Equal(t, int('@'), g.Get(0, 1))
	assert.Equal(t, Blank, g.Get(0, 2))
	assert.Equal(t, int('7'), g.Get(1, 0))
	_, maxPos := g.Bounds()
	assert.Equal(t, 2, maxPos.Column)
}

func TestParseGrid_KeepsCarriageReturnInsideRow(t *testing.T) {
	g := parse(t, "5\r@")

	assert.Equal(t, int('\r'), g.Get(0, 1))
	assert.Equal(t, int('@'), g.Get(0, 2))
}

func TestParseGrid_TooManyColumns(t *testing.T) {
	_, err := ParseGrid(strings.NewReader(strings.Repeat("1", 101)), DefaultRows, DefaultColumns)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGridTooLarge))
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, 100, loadErr.Column)
}

func TestParseGrid_TooManyRows(t *testing.T) {
	src := strings.Repeat("1\n", 100) + "1"

	_, err := ParseGrid(strings.NewReader(src), DefaultRows, DefaultColumns)

	assert.ErrorIs(t, err, ErrGridTooLarge)
}

func TestParseGrid_TrailingNewlineAfterLastRowIsFine(t *testing.T) {
	src := strings.Repeat("1\n", 100)

	_, err := ParseGrid(strings.NewReader(src), DefaultRows, DefaultColumns)

	assert.NoError(t, err)
}

func TestFindAnchor(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		want    Position
		wantErr error
	}{
		{"single", "5@", Position{Row: 0, Column: 1}, nil},
		{"lower row", " 1 \n2+@\n 3 ", Position{Row: 1, Column: 2}, nil},
		{"none", "5", Position{}, ErrNoAnchor},
		{"two", "@5@", Position{}, ErrMultipleAnchors},
		{"two rows", "@\n@", Position{}, ErrMultipleAnchors},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := parse(t, tt.src).FindAnchor()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, pos)
		})
	}
}

func TestGrid_GetOutOfRangeIsBlank(t *testing.T) {
	g := parse(t, "5@")

	coords := [][2]int{{-1, 0}, {0, -1}, {100, 0}, {0, 100}, {-1 << 30, 1 << 30}}
	for _, c := range coords {
		assert.Equal(t, Blank, g.Get(c[0], c[1]))
	}
}

func TestGrid_PutThenGet(t *testing.T) {
	g := parse(t, "5@")

	require.NoError(t, g.Put(3, 4, 'x'))

	assert.Equal(t, int('x'), g.Get(3, 4))
	minPos, maxPos := g.Bounds()
	assert.Equal(t, Position{Row: 0, Column: 0}, minPos)
	assert.Equal(t, Position{Row: 4, Column: 5}, maxPos)
}

func TestGrid_PutOutOfBounds(t *testing.T) {
	g := parse(t, "5@")

	err := g.Put(100, 0, '1')

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, Blank, g.Get(100, 0))
}

func TestGrid_PutBlankShrinksBounds(t *testing.T) {
	g := parse(t, "5@\n\n\n   9")

	require.NoError(t, g.Put(3, 3, Blank))

	minPos, maxPos := g.Bounds()
	assert.Equal(t, Position{Row: 0, Column: 0}, minPos)
	assert.Equal(t, Position{Row: 1, Column: 2}, maxPos)
}

func TestGrid_PutBlankKeepsOtherExtremalCells(t *testing.T) {
	g := parse(t, "9  9\n@")

	require.NoError(t, g.Put(0, 0, Blank))

	minPos, maxPos := g.Bounds()
	assert.Equal(t, Position{Row: 0, Column: 0}, minPos)
	assert.Equal(t, Position{Row: 2, Column: 4}, maxPos)
}

func TestGrid_RecomputeBoundsMatchesIncremental(t *testing.T) {
	g := parse(t, "  1\n@  \n    2")
	minPos, maxPos := g.Bounds()

	g.RecomputeBounds()

	gotMin, gotMax := g.Bounds()
	assert.Equal(t, minPos, gotMin)
	assert.Equal(t, maxPos, gotMax)
}

func TestGrid_WrapIdempotentInsideBox(t *testing.T) {
	g := parse(t, "\n  123\n  4@5\n  678")
	minPos, maxPos := g.Bounds()

	for r := minPos.Row; r < maxPos.Row; r++ {
		for c := minPos.Column; c < maxPos.Column; c++ {
			p := Position{Row: r, Column: c}
			assert.Equal(t, p, g.Wrap(p))
			assert.Equal(t, p, g.Wrap(g.Wrap(p)))
		}
	}
}

func TestGrid_WrapIsPeriodic(t *testing.T) {
	g := parse(t, "\n  123\n  4@5")
	minPos, maxPos := g.Bounds()
	height := maxPos.Row - minPos.Row
	width := maxPos.Column - minPos.Column

	for _, p := range []Position{{Row: 0, Column: 0}, {Row: 1, Column: 2}, {Row: -7, Column: 55}} {
		base := g.Wrap(p)
		for k := -3; k <= 3; k++ {
			shifted := Position{Row: p.Row + k*height, Column: p.Column + k*width}
			assert.Equal(t, base, g.Wrap(shifted))
		}
	}
}

func TestGrid_WrapMapsAcrossEdges(t *testing.T) {
	g := parse(t, "123\n4@5")

	assert.Equal(t, Position{Row: 1, Column: 2}, g.Wrap(Position{Row: 1, Column: -1}))
	assert.Equal(t, Position{Row: 0, Column: 0}, g.Wrap(Position{Row: 0, Column: 3}))
	assert.Equal(t, Position{Row: 1, Column: 1}, g.Wrap(Position{Row: -1, Column: 1}))
	assert.Equal(t, Position{Row: 0, Column: 1}, g.Wrap(Position{Row: 2, Column: 1}))
}

func TestGrid_CloneIsIndependent(t *testing.T) {
	g := parse(t, "5@")
	c := g.Clone()

	require.NoError(t, c.Put(0, 0, '7'))

	assert.Equal(t, int('5'), g.Get(0, 0))
	assert.Equal(t, int('7'), c.Get(0, 0))
}

func TestGrid_Lines(t *testing.T) {
	g := parse(t, "\n 1 \n2+@\n 3 ")
	require.NoError(t, g.Put(1, 0, 1))

	assert.Equal(t, []string{".1", "2+@", " 3"}, trimRight(g.Lines()))
}

func trimRight(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimRight(l, " ")
	}
	return out
}
