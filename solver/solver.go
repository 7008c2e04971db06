// Package solver computes the forced result of a monorail position by
// exhaustive search. The grid is finite and every move occupies at least one
// square, so every line of play terminates and every position is a forced
// win for exactly one player; there is no draw. The search is the binary
// degenerate case of minimax: a position is a win for the mover iff at least
// one child is, and a loss iff every child is a win for the opponent.
package solver

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/haneul/monorail/game"
	"github.com/haneul/monorail/move"
)

// checkInterval is how many nodes we search between context checks.
const checkInterval = 4096

// Solver walks the game tree, mutating the one shared game in place: apply
// before recursing, undo after. Memory stays O(depth); the tradeoff is that
// a Solver must never be shared between goroutines. SolveParallel hands each
// worker its own deep copy instead.
type Solver struct {
	game  *game.Game
	nodes atomic.Uint64
}

// Init initializes the solver with the game to search.
func (s *Solver) Init(g *game.Game) {
	s.game = g
}

// Nodes is the number of positions visited by the last solve.
func (s *Solver) Nodes() uint64 {
	return s.nodes.Load()
}

// Solve determines the forced winner with player to move. The returned move
// is the first discovered forcing win for player, or nil when player is
// lost. The position is left exactly as it was found.
func (s *Solver) Solve(ctx context.Context, player game.Player) (game.Player, *move.Move, error) {
	s.nodes.Store(0)
	winner, best, err := s.solve(ctx, player)
	if err != nil {
		return winner, nil, err
	}
	log.Debug().
		Uint64("nodes", s.nodes.Load()).
		Str("winner", winner.String()).
		Msg("search complete")
	return winner, best, nil
}

func (s *Solver) solve(ctx context.Context, player game.Player) (game.Player, *move.Move, error) {
	if n := s.nodes.Add(1); n%checkInterval == 0 {
		if err := ctx.Err(); err != nil {
			return player, nil, err
		}
	}
	moves := s.game.Board().LegalMoves()
	// No moves left: the opponent completed the track, so player loses.
	if len(moves) == 0 {
		return player.Opponent(), nil, nil
	}
	for _, m := range moves {
		if err := s.game.PlayMove(m); err != nil {
			return player, nil, err
		}
		winner, _, err := s.solve(ctx, player.Opponent())
		if uerr := s.game.UnplayLastMove(); uerr != nil {
			return player, nil, uerr
		}
		if err != nil {
			return player, nil, err
		}
		// One proof of a forced win suffices.
		if winner == player {
			return player, m, nil
		}
	}
	return player.Opponent(), nil, nil
}
