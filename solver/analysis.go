package solver

import (
	"context"

	"github.com/samber/lo"

	"github.com/haneul/monorail/game"
	"github.com/haneul/monorail/move"
)

// RootAnalysis pairs a root move with its forced outcome and the opponent's
// proving reply, if the opponent has one.
type RootAnalysis struct {
	Move   *move.Move
	Winner game.Player
	Reply  *move.Move
}

// Analyze solves the position after every legal root move for the player on
// turn, so a caller can display the full consequence of each choice. The
// position is left exactly as it was found.
func (s *Solver) Analyze(ctx context.Context, player game.Player) ([]RootAnalysis, error) {
	s.nodes.Store(0)
	var analyses []RootAnalysis
	for _, m := range s.game.Board().LegalMoves() {
		if err := s.game.PlayMove(m); err != nil {
			return nil, err
		}
		winner, reply, err := s.solve(ctx, player.Opponent())
		if uerr := s.game.UnplayLastMove(); uerr != nil {
			return nil, uerr
		}
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, RootAnalysis{Move: m, Winner: winner, Reply: reply})
	}
	return analyses, nil
}

// WinningMoves extracts the root moves that win for player.
func WinningMoves(analyses []RootAnalysis, player game.Player) []*move.Move {
	wins := lo.Filter(analyses, func(a RootAnalysis, _ int) bool {
		return a.Winner == player
	})
	return lo.Map(wins, func(a RootAnalysis, _ int) *move.Move {
		return a.Move
	})
}
