// Package grid holds the fixed geometry of the monorail board: coordinates,
// the four step directions, and bounds-checked movement on the 4x5 grid.
package grid

import "fmt"

const (
	NumRows = 4
	NumCols = 5
)

// A Coordinate is a single square on the board. Row 0 is the top row.
// Coordinates are value types; two are equal iff both fields match.
type Coordinate struct {
	Row int
	Col int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction is one of the four grid directions.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction, used for adjacency scans.
var Directions = [4]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// MoveIn steps delta squares from c in the given direction. The second
// return value is false if the destination would fall off the board.
func (c Coordinate) MoveIn(dir Direction, delta int) (Coordinate, bool) {
	switch dir {
	case Up:
		if c.Row >= delta {
			return Coordinate{Row: c.Row - delta, Col: c.Col}, true
		}
	case Down:
		if c.Row+delta < NumRows {
			return Coordinate{Row: c.Row + delta, Col: c.Col}, true
		}
	case Left:
		if c.Col >= delta {
			return Coordinate{Row: c.Row, Col: c.Col - delta}, true
		}
	case Right:
		if c.Col+delta < NumCols {
			return Coordinate{Row: c.Row, Col: c.Col + delta}, true
		}
	}
	return Coordinate{}, false
}
