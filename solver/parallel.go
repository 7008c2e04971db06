package solver

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/haneul/monorail/game"
	"github.com/haneul/monorail/move"
)

// SolveParallel splits the root moves over at most threads workers, each
// searching its own deep copy of the game (a Board is never shared between
// goroutines). The result is the lowest-index winning root move, which is
// exactly the move the sequential solver would report, so the two forms are
// behaviorally equivalent.
func (s *Solver) SolveParallel(ctx context.Context, player game.Player, threads int) (game.Player, *move.Move, error) {
	s.nodes.Store(0)
	moves := s.game.Board().LegalMoves()
	if len(moves) == 0 {
		return player.Opponent(), nil, nil
	}
	if threads < 1 {
		threads = 1
	}
	winners := make([]game.Player, len(moves))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			sub := new(Solver)
			sub.Init(s.game.Copy())
			if err := sub.game.PlayMove(m); err != nil {
				return err
			}
			winner, _, err := sub.solve(ctx, player.Opponent())
			if err != nil {
				return err
			}
			winners[i] = winner
			s.nodes.Add(sub.nodes.Load())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return player, nil, err
	}
	log.Debug().
		Uint64("nodes", s.nodes.Load()).
		Int("threads", threads).
		Int("rootMoves", len(moves)).
		Msg("parallel search complete")
	for i, winner := range winners {
		if winner == player {
			return player, moves[i], nil
		}
	}
	return player.Opponent(), nil, nil
}
