// Package move describes a single monorail placement: the anchor square it
// attaches at, the shape extending from the anchor, and the region
// classification the placement forces, if any.
package move

import (
	"fmt"

	"github.com/haneul/monorail/grid"
	"github.com/haneul/monorail/region"
)

// Shape is a placement shape. Every shape is a compile-time-fixed footprint
// pattern relative to the anchor.
type Shape uint8

const (
	Single Shape = iota
	OneUp
	OneDown
	OneLeft
	OneRight
	TwoUp
	TwoDown
	TwoLeft
	TwoRight
	UpAndDown
	LeftAndRight
)

// Shapes lists every placement shape in generation order.
var Shapes = [11]Shape{
	Single,
	OneUp,
	OneDown,
	OneLeft,
	OneRight,
	TwoUp,
	TwoDown,
	TwoLeft,
	TwoRight,
	UpAndDown,
	LeftAndRight,
}

type step struct {
	dir   grid.Direction
	delta int
}

// shapeSteps is the footprint pattern of every shape relative to the anchor.
// Pure data; never mutated.
var shapeSteps = [11][]step{
	Single:       {},
	OneUp:        {{grid.Up, 1}},
	OneDown:      {{grid.Down, 1}},
	OneLeft:      {{grid.Left, 1}},
	OneRight:     {{grid.Right, 1}},
	TwoUp:        {{grid.Up, 1}, {grid.Up, 2}},
	TwoDown:      {{grid.Down, 1}, {grid.Down, 2}},
	TwoLeft:      {{grid.Left, 1}, {grid.Left, 2}},
	TwoRight:     {{grid.Right, 1}, {grid.Right, 2}},
	UpAndDown:    {{grid.Up, 1}, {grid.Down, 1}},
	LeftAndRight: {{grid.Left, 1}, {grid.Right, 1}},
}

func (s Shape) String() string {
	switch s {
	case Single:
		return "Single"
	case OneUp:
		return "OneUp"
	case OneDown:
		return "OneDown"
	case OneLeft:
		return "OneLeft"
	case OneRight:
		return "OneRight"
	case TwoUp:
		return "TwoUp"
	case TwoDown:
		return "TwoDown"
	case TwoLeft:
		return "TwoLeft"
	case TwoRight:
		return "TwoRight"
	case UpAndDown:
		return "UpAndDown"
	case LeftAndRight:
		return "LeftAndRight"
	}
	return "unknown"
}

// Move is a single placement. When a placement must narrow the region
// classification, constraint carries the value it narrows to;
// region.Unresolved means the classification is untouched.
type Move struct {
	anchor     grid.Coordinate
	shape      Shape
	constraint region.Constraint
}

// New creates a placement that does not touch the region classification.
func New(anchor grid.Coordinate, shape Shape) *Move {
	return &Move{anchor: anchor, shape: shape}
}

// NewConstraining creates a placement that narrows the region classification
// to ct when played.
func NewConstraining(anchor grid.Coordinate, shape Shape, ct region.Constraint) *Move {
	return &Move{anchor: anchor, shape: shape, constraint: ct}
}

func (m *Move) Anchor() grid.Coordinate {
	return m.anchor
}

func (m *Move) Shape() Shape {
	return m.shape
}

// Constraint is the classification this move narrows the board to, or
// region.Unresolved if the move leaves the classification alone.
func (m *Move) Constraint() region.Constraint {
	return m.constraint
}

// Constrains reports whether playing this move narrows the classification.
func (m *Move) Constrains() bool {
	return m.constraint != region.Unresolved
}

// InBounds reports whether every footprint square of the move stays on the
// grid. It must hold before Footprint is called; the footprint of an
// out-of-bounds move is undefined.
func (m *Move) InBounds() bool {
	r, c := m.anchor.Row, m.anchor.Col
	switch m.shape {
	case Single:
		return true
	case OneUp:
		return r >= 1
	case OneDown:
		return r < grid.NumRows-1
	case OneLeft:
		return c >= 1
	case OneRight:
		return c < grid.NumCols-1
	case TwoUp:
		return r >= 2
	case TwoDown:
		return r < grid.NumRows-2
	case TwoLeft:
		return c >= 2
	case TwoRight:
		return c < grid.NumCols-2
	case UpAndDown:
		return r >= 1 && r < grid.NumRows-1
	case LeftAndRight:
		return c >= 1 && c < grid.NumCols-1
	}
	return false
}

// Footprint returns the squares, beyond the anchor, that this move occupies.
// The move must be in bounds.
func (m *Move) Footprint() []grid.Coordinate {
	steps := shapeSteps[m.shape]
	fp := make([]grid.Coordinate, 0, len(steps))
	for _, st := range steps {
		dest, ok := m.anchor.MoveIn(st.dir, st.delta)
		if !ok {
			panic(fmt.Sprintf("footprint of out-of-bounds move %v", m))
		}
		fp = append(fp, dest)
	}
	return fp
}

// Equals reports whether two moves describe the same placement.
func (m *Move) Equals(o *Move) bool {
	return m.anchor == o.anchor && m.shape == o.shape && m.constraint == o.constraint
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (m *Move) ShortDescription() string {
	if m.Constrains() {
		return fmt.Sprintf("%v %v [%v]", m.anchor, m.shape, m.constraint)
	}
	return fmt.Sprintf("%v %v", m.anchor, m.shape)
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	return fmt.Sprintf("<%p anchor: %v shape: %v constraint: %v>",
		m, m.anchor, m.shape, m.constraint)
}
