package board

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"

	"github.com/haneul/monorail/grid"
	"github.com/haneul/monorail/move"
	"github.com/haneul/monorail/region"
)

func startingBoard() *Board {
	return NewBoard(StartingLayout, region.Unresolved)
}

func TestFrontierStartingBoard(t *testing.T) {
	b := startingBoard()
	want := []grid.Coordinate{
		{Row: 0, Col: 0},
		{Row: 0, Col: 4},
		{Row: 1, Col: 1},
		{Row: 1, Col: 2},
		{Row: 1, Col: 4},
		{Row: 2, Col: 2},
		{Row: 2, Col: 4},
		{Row: 3, Col: 3},
	}
	assert.Equal(t, want, b.Frontier())
}

func TestFrontierExcludesIncompatible(t *testing.T) {
	// All occupied except the two squares Right forbids; they are adjacent
	// to track but must not appear as anchors.
	layout := Layout{}
	for row := 0; row < grid.NumRows; row++ {
		for col := 0; col < grid.NumCols; col++ {
			layout[row][col] = true
		}
	}
	layout[2][0] = false
	layout[3][0] = false
	b := NewBoard(layout, region.Right)
	assert.Empty(t, b.Frontier())
	assert.Empty(t, b.LegalMoves())
}

// The very first region-touching moves: the generator must offer exactly one
// narrowing to LeftOrMiddle and exactly one to RightOrMiddle.
func TestFirstMoveNarrowings(t *testing.T) {
	b := startingBoard()
	moves := b.LegalMoves()
	require.NotEmpty(t, moves)

	var leftOrMiddle, rightOrMiddle []*move.Move
	for _, m := range moves {
		switch m.Constraint() {
		case region.LeftOrMiddle:
			leftOrMiddle = append(leftOrMiddle, m)
		case region.RightOrMiddle:
			rightOrMiddle = append(rightOrMiddle, m)
		}
	}
	require.Len(t, leftOrMiddle, 1)
	require.Len(t, rightOrMiddle, 1)
	assert.True(t, leftOrMiddle[0].Equals(
		move.NewConstraining(grid.Coordinate{Row: 0, Col: 0}, move.OneDown, region.LeftOrMiddle)))
	assert.True(t, rightOrMiddle[0].Equals(
		move.NewConstraining(grid.Coordinate{Row: 3, Col: 3}, move.TwoLeft, region.RightOrMiddle)))
}

// An ambiguous candidate suppresses its refinements for the same
// (anchor, shape) pair.
func TestDominanceReduction(t *testing.T) {
	b := startingBoard()

	type pair struct {
		anchor grid.Coordinate
		shape  move.Shape
	}
	byPair := make(map[pair][]region.Constraint)
	for _, m := range b.LegalMoves() {
		if !m.Constrains() {
			continue
		}
		p := pair{anchor: m.Anchor(), shape: m.Shape()}
		byPair[p] = append(byPair[p], m.Constraint())
	}
	for p, cts := range byPair {
		hasLoM, hasRoM := false, false
		for _, ct := range cts {
			if ct == region.LeftOrMiddle {
				hasLoM = true
			}
			if ct == region.RightOrMiddle {
				hasRoM = true
			}
		}
		for _, ct := range cts {
			if hasLoM {
				assert.NotEqual(t, region.Left, ct, "anchor %v shape %v", p.anchor, p.shape)
				assert.NotEqual(t, region.Middle, ct, "anchor %v shape %v", p.anchor, p.shape)
			}
			if hasRoM {
				assert.NotEqual(t, region.Right, ct, "anchor %v shape %v", p.anchor, p.shape)
				assert.NotEqual(t, region.Middle, ct, "anchor %v shape %v", p.anchor, p.shape)
			}
		}
	}
}

// Every constrained move the generator returns satisfies the lattice: its
// value applies to the current classification and is induced by the anchor
// and every footprint square.
func TestConstrainedMovesSatisfyLattice(t *testing.T) {
	b := startingBoard()
	for _, m := range b.LegalMoves() {
		if !m.Constrains() {
			continue
		}
		ct := m.Constraint()
		assert.True(t, ct.AppliesTo(b.Constraint()), "%v", m.ShortDescription())
		assert.True(t, ct.InducedBy(m.Anchor()), "%v", m.ShortDescription())
		for _, c := range m.Footprint() {
			assert.True(t, ct.InducedBy(c), "%v footprint %v", m.ShortDescription(), c)
		}
	}
}

func TestPlayUnplayExact(t *testing.T) {
	b := startingBoard()
	beforeSquares := b.Squares()
	beforeConstraint := b.Constraint()

	for _, m := range b.LegalMoves() {
		require.NoError(t, b.PlayMove(m))
		require.NoError(t, b.UnplayLastMove())
		assert.Equal(t, beforeSquares, b.Squares(), "after %v", m.ShortDescription())
		assert.Equal(t, beforeConstraint, b.Constraint(), "after %v", m.ShortDescription())
		assert.Equal(t, 0, b.MovesPlayed())
	}
}

// Play random full games, then unwind them completely; the board must come
// back bit-for-bit.
func TestPlayUnplayRandomWalk(t *testing.T) {
	for trial := 0; trial < 20; trial++ {
		b := startingBoard()
		beforeSquares := b.Squares()
		beforeConstraint := b.Constraint()

		played := 0
		for {
			moves := b.LegalMoves()
			if len(moves) == 0 {
				break
			}
			m := moves[frand.Intn(len(moves))]
			require.NoError(t, b.PlayMove(m))
			played++
		}
		require.Greater(t, played, 0)
		for i := 0; i < played; i++ {
			require.NoError(t, b.UnplayLastMove())
		}
		assert.Equal(t, beforeSquares, b.Squares())
		assert.Equal(t, beforeConstraint, b.Constraint())
		assert.Equal(t, 0, b.MovesPlayed())
	}
}

// Once the classification is final, no later move may carry a different one.
func TestTerminalConstraintSticky(t *testing.T) {
	b := startingBoard()

	var rightMove *move.Move
	for _, m := range b.LegalMoves() {
		if m.Constraint() == region.Right {
			rightMove = m
			break
		}
	}
	require.NotNil(t, rightMove)
	require.NoError(t, b.PlayMove(rightMove))
	require.Equal(t, region.Right, b.Constraint())

	// Play random moves to the end of the game, checking the property at
	// every step.
	for {
		moves := b.LegalMoves()
		if len(moves) == 0 {
			break
		}
		for _, m := range moves {
			if m.Constrains() {
				assert.Equal(t, region.Right, m.Constraint(), "%v", m.ShortDescription())
			}
		}
		require.NoError(t, b.PlayMove(moves[frand.Intn(len(moves))]))
		assert.Equal(t, region.Right, b.Constraint())
	}
}

// Narrowing monotonicity from an ambiguous classification: after a
// LeftOrMiddle move, every later constrained move stays within
// {LeftOrMiddle, Left, Middle}.
func TestAmbiguousNarrowsMonotonically(t *testing.T) {
	b := startingBoard()

	var lomMove *move.Move
	for _, m := range b.LegalMoves() {
		if m.Constraint() == region.LeftOrMiddle {
			lomMove = m
			break
		}
	}
	require.NotNil(t, lomMove)
	require.NoError(t, b.PlayMove(lomMove))

	for _, m := range b.LegalMoves() {
		if !m.Constrains() {
			continue
		}
		assert.True(t, m.Constraint().AppliesTo(region.LeftOrMiddle),
			"%v", m.ShortDescription())
	}
}

func TestPlayIncompatibleMoveFails(t *testing.T) {
	b := startingBoard()

	var rightMove *move.Move
	for _, m := range b.LegalMoves() {
		if m.Constraint() == region.Right {
			rightMove = m
			break
		}
	}
	require.NotNil(t, rightMove)
	require.NoError(t, b.PlayMove(rightMove))

	// Bypassing the generator with a stale narrowing must be rejected.
	stale := move.NewConstraining(grid.Coordinate{Row: 0, Col: 0}, move.Single, region.Left)
	err := b.PlayMove(stale)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncompatibleConstraint))
}

func TestUnplayEmptyHistory(t *testing.T) {
	b := startingBoard()
	err := b.UnplayLastMove()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoHistory))
}

func TestCopyIsIndependent(t *testing.T) {
	b := startingBoard()
	moves := b.LegalMoves()
	require.NotEmpty(t, moves)
	require.NoError(t, b.PlayMove(moves[0]))

	cp := b.Copy()
	assert.Equal(t, b.Squares(), cp.Squares())
	assert.Equal(t, b.Constraint(), cp.Constraint())
	assert.Equal(t, b.MovesPlayed(), cp.MovesPlayed())

	cpMoves := cp.LegalMoves()
	require.NotEmpty(t, cpMoves)
	require.NoError(t, cp.PlayMove(cpMoves[0]))
	assert.NotEqual(t, b.Squares(), cp.Squares())

	// The copy's history is its own: unwinding it does not disturb b.
	require.NoError(t, cp.UnplayLastMove())
	require.NoError(t, cp.UnplayLastMove())
	assert.Equal(t, 1, b.MovesPlayed())
	assert.Equal(t, 0, cp.MovesPlayed())
}
