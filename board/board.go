// Package board implements the mutable monorail board: the 4x5 occupancy
// grid, the current region classification, legal-move enumeration, and
// exact apply/undo backed by an internal history stack.
package board

import (
	"errors"
	"fmt"

	"github.com/haneul/monorail/grid"
	"github.com/haneul/monorail/move"
	"github.com/haneul/monorail/region"
)

// Layout is an occupancy grid; true means the square holds track.
type Layout [grid.NumRows][grid.NumCols]bool

// StartingLayout is the canonical starting track of the monorail puzzle.
var StartingLayout = Layout{
	{false, true, true, true, false},
	{false, false, false, true, false},
	{false, false, false, true, false},
	{false, false, false, false, false},
}

var (
	// ErrIncompatibleConstraint is returned by PlayMove when a move wants to
	// narrow the classification to a value unreachable from the current one.
	// Moves produced by LegalMoves never trip this; seeing it means a caller
	// bypassed the generator.
	ErrIncompatibleConstraint = errors.New(
		"move constraint is incompatible with the current board classification")
	// ErrNoHistory is returned by UnplayLastMove when no move has been played.
	ErrNoHistory = errors.New("no moves have been played")
)

// historyEntry records enough to revert one move exactly.
type historyEntry struct {
	m     *move.Move
	prior region.Constraint
}

// Board owns the occupancy grid, the current classification, and the history
// stack. It is mutated only through PlayMove/UnplayLastMove and is not safe
// for concurrent use; parallel searches must each work on a Copy.
type Board struct {
	squares    Layout
	constraint region.Constraint
	history    []historyEntry
}

// NewBoard creates a board from a starting occupancy and classification.
func NewBoard(layout Layout, ct region.Constraint) *Board {
	return &Board{squares: layout, constraint: ct}
}

// Occupied reports whether the square at c holds track.
func (b *Board) Occupied(c grid.Coordinate) bool {
	return b.squares[c.Row][c.Col]
}

// Constraint is the board's current region classification.
func (b *Board) Constraint() region.Constraint {
	return b.constraint
}

// Squares returns a copy of the current occupancy grid.
func (b *Board) Squares() Layout {
	return b.squares
}

// MovesPlayed is the number of moves on the history stack.
func (b *Board) MovesPlayed() int {
	return len(b.history)
}

// compatible reports whether a tile may be placed at c under the current
// classification.
func (b *Board) compatible(c grid.Coordinate) bool {
	return b.constraint.Allows(c)
}

// Frontier returns, in row-major order, every unoccupied compatible square
// that is 4-adjacent to at least one occupied square. Placements must attach
// to the existing track, so only frontier squares anchor moves.
func (b *Board) Frontier() []grid.Coordinate {
	var results []grid.Coordinate
	for row := 0; row < grid.NumRows; row++ {
		for col := 0; col < grid.NumCols; col++ {
			c := grid.Coordinate{Row: row, Col: col}
			if b.Occupied(c) || !b.compatible(c) {
				continue
			}
			for _, dir := range grid.Directions {
				if dest, ok := c.MoveIn(dir, 1); ok && b.Occupied(dest) {
					results = append(results, c)
					break
				}
			}
		}
	}
	return results
}

// LegalMoves enumerates every legal placement in a fixed deterministic
// order: frontier squares row-major, shapes in declaration order, and for
// region-touching placements one move per surviving candidate
// classification, ascending.
func (b *Board) LegalMoves() []*move.Move {
	var results []*move.Move
	for _, anchor := range b.Frontier() {
		for _, shape := range move.Shapes {
			m := move.New(anchor, shape)
			if !m.InBounds() {
				continue
			}
			footprint := m.Footprint()
			blocked := false
			touchesRegion := region.InRegion(anchor)
			for _, c := range footprint {
				if region.InRegion(c) {
					touchesRegion = true
				}
				if b.Occupied(c) || !b.compatible(c) {
					blocked = true
					break
				}
			}
			if blocked {
				continue
			}
			if !touchesRegion || b.constraint.IsFinal() {
				results = append(results, m)
				continue
			}
			results = append(results, b.constrainedMoves(anchor, shape, footprint)...)
		}
	}
	return results
}

// constrainedMoves expands one region-touching placement into one move per
// classification it could leave the board in. A candidate must be reachable
// from the current classification and induced by the anchor and every
// footprint square. An ambiguous candidate dominates its refinements:
// narrowing to LeftOrMiddle keeps Left and Middle reachable later, so
// emitting those now would only duplicate search branches.
func (b *Board) constrainedMoves(anchor grid.Coordinate, shape move.Shape,
	footprint []grid.Coordinate) []*move.Move {

	var candidates [region.Right + 1]bool
	for _, ct := range region.Constraints {
		if !ct.AppliesTo(b.constraint) || !ct.InducedBy(anchor) {
			continue
		}
		induced := true
		for _, c := range footprint {
			if !ct.InducedBy(c) {
				induced = false
				break
			}
		}
		if induced {
			candidates[ct] = true
		}
	}
	if candidates[region.LeftOrMiddle] {
		candidates[region.Left] = false
		candidates[region.Middle] = false
	}
	if candidates[region.RightOrMiddle] {
		candidates[region.Right] = false
		candidates[region.Middle] = false
	}
	var results []*move.Move
	for _, ct := range region.Constraints {
		if candidates[ct] {
			results = append(results, move.NewConstraining(anchor, shape, ct))
		}
	}
	return results
}

// PlayMove occupies the move's anchor and footprint, narrows the
// classification if the move carries one, and pushes an undo entry.
func (b *Board) PlayMove(m *move.Move) error {
	if m.Constrains() && !m.Constraint().AppliesTo(b.constraint) {
		return fmt.Errorf("%w: board is %v, move wants %v",
			ErrIncompatibleConstraint, b.constraint, m.Constraint())
	}
	prior := b.constraint
	if m.Constrains() {
		b.constraint = m.Constraint()
	}
	b.setSquares(m, true)
	b.history = append(b.history, historyEntry{m: m, prior: prior})
	return nil
}

// UnplayLastMove reverts the most recently played move, restoring the prior
// classification exactly.
func (b *Board) UnplayLastMove() error {
	if len(b.history) == 0 {
		return ErrNoHistory
	}
	entry := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	b.constraint = entry.prior
	b.setSquares(entry.m, false)
	return nil
}

func (b *Board) setSquares(m *move.Move, occupied bool) {
	b.squares[m.Anchor().Row][m.Anchor().Col] = occupied
	for _, c := range m.Footprint() {
		b.squares[c.Row][c.Col] = occupied
	}
}

// Copy returns a deep copy, history stack included.
func (b *Board) Copy() *Board {
	history := make([]historyEntry, len(b.history))
	copy(history, b.history)
	return &Board{
		squares:    b.squares,
		constraint: b.constraint,
		history:    history,
	}
}
