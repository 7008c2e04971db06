// Package region models the lazily-resolved classification of the board's
// lower-left sub-region. Certain placements there are compatible with more
// than one final track layout, so the game defers committing to one: the
// classification starts Unresolved and only ever narrows. LeftOrMiddle may
// become Left or Middle, RightOrMiddle may become Right or Middle, and the
// three final values admit no further change.
package region

import "github.com/haneul/monorail/grid"

// Constraint is a classification of the constrained sub-region. The zero
// value, Unresolved, means no placement has forced a classification yet.
type Constraint uint8

const (
	Unresolved Constraint = iota
	Left
	LeftOrMiddle
	Middle
	RightOrMiddle
	Right
)

// Constraints lists the concrete classifications in canonical ascending
// order. Legal-move generation relies on this order being stable.
var Constraints = [5]Constraint{Left, LeftOrMiddle, Middle, RightOrMiddle, Right}

func (ct Constraint) String() string {
	switch ct {
	case Unresolved:
		return "Unresolved"
	case Left:
		return "Left"
	case LeftOrMiddle:
		return "LeftOrMiddle"
	case Middle:
		return "Middle"
	case RightOrMiddle:
		return "RightOrMiddle"
	case Right:
		return "Right"
	}
	return "unknown"
}

// IsFinal reports whether ct admits no further narrowing.
func (ct Constraint) IsFinal() bool {
	return ct == Left || ct == Middle || ct == Right
}

// InRegion reports whether c lies in the constrained lower-left sub-region.
func InRegion(c grid.Coordinate) bool {
	return c.Col < 2 && c.Row >= 1
}

// The individually forbidden squares of the sub-region.
var (
	row1col0 = grid.Coordinate{Row: 1, Col: 0}
	row1col1 = grid.Coordinate{Row: 1, Col: 1}
	row2col0 = grid.Coordinate{Row: 2, Col: 0}
	row2col1 = grid.Coordinate{Row: 2, Col: 1}
	row3col0 = grid.Coordinate{Row: 3, Col: 0}
	row3col1 = grid.Coordinate{Row: 3, Col: 1}
)

// AppliesTo reports whether a board currently classified as current may
// transition to ct. The relation is a monotone narrowing: an Unresolved
// board may become anything, the ambiguous values may only keep themselves
// or pick one of their refinements, and the final values are stuck.
func (ct Constraint) AppliesTo(current Constraint) bool {
	switch current {
	case Unresolved:
		return true
	case LeftOrMiddle:
		return ct == LeftOrMiddle || ct == Left || ct == Middle
	case RightOrMiddle:
		return ct == RightOrMiddle || ct == Right || ct == Middle
	default:
		return ct == current
	}
}

// InducedBy reports whether placing a tile at c is consistent with the board
// eventually being classified as ct. Squares outside the sub-region always
// pass; inside it, each classification has squares that are geometrically
// incompatible with its track layout.
func (ct Constraint) InducedBy(c grid.Coordinate) bool {
	if !InRegion(c) {
		return true
	}
	switch ct {
	case Left:
		return c != row2col1 && c != row1col1
	case LeftOrMiddle:
		return c == row1col0
	case Middle:
		return c != row3col0 && c != row1col1
	case RightOrMiddle:
		return c == row3col1
	case Right:
		return c != row3col0 && c != row2col0
	}
	return true
}

// Allows reports whether, with the board *currently* classified as ct, a
// tile may be placed at c. This is looser than InducedBy for the ambiguous
// values: a LeftOrMiddle board only rules out the squares forbidden by both
// Left and Middle, since either refinement is still on the table.
func (ct Constraint) Allows(c grid.Coordinate) bool {
	if !InRegion(c) {
		return true
	}
	switch ct {
	case Left:
		return c != row2col1 && c != row1col1
	case LeftOrMiddle:
		return c != row1col1
	case Middle:
		return c != row3col0 && c != row1col1
	case RightOrMiddle:
		return c != row3col0
	case Right:
		return c != row3col0 && c != row2col0
	}
	// Unresolved allows everything.
	return true
}
