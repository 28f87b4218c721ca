package domain

import "fmt"

// Direction is one of the four directions flow can travel between cells.
type Direction int

// Directions. The zero value is North.
const (
	North Direction = iota
	South
	East
	West
)

// Opposite returns the reverse direction. Opposite is an involution.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Position is a row/column coordinate. It is not bounds-checked by itself.
type Position struct {
	Row    int
	Column int
}

// Step returns the adjacent position in direction d.
func (p Position) Step(d Direction) Position {
	switch d {
	case North:
		return Position{Row: p.Row - 1, Column: p.Column}
	case South:
		return Position{Row: p.Row + 1, Column: p.Column}
	case East:
		return Position{Row: p.Row, Column: p.Column + 1}
	default:
		return Position{Row: p.Row, Column: p.Column - 1}
	}
}

// String formats the position as (row, column).
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Column)
}
