// Package automatic plays monorail games with uniformly random move
// selection. The shell's autoplay command uses it to eyeball how lopsided a
// position is, and the tests use it to confirm that every line of play
// terminates.
package automatic

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/haneul/monorail/board"
	"github.com/haneul/monorail/game"
	"github.com/haneul/monorail/region"
)

// GameRunner plays out random games from a fixed starting position.
type GameRunner struct {
	layout     board.Layout
	constraint region.Constraint
	first      game.Player
}

// NewGameRunner just instantiates a game runner.
func NewGameRunner(layout board.Layout, ct region.Constraint, first game.Player) *GameRunner {
	return &GameRunner{layout: layout, constraint: ct, first: first}
}

// PlayGame plays a single game with uniformly random moves and returns the
// winner and the number of moves played.
func (r *GameRunner) PlayGame() (game.Player, int) {
	g := game.NewGame(r.layout, r.constraint, r.first)
	for {
		moves := g.Board().LegalMoves()
		if len(moves) == 0 {
			return g.PlayerOnTurn().Opponent(), g.Board().MovesPlayed()
		}
		m := moves[frand.Intn(len(moves))]
		if err := g.PlayMove(m); err != nil {
			// Moves come straight from LegalMoves; this cannot happen.
			panic(err)
		}
	}
}

// PlayGames plays n random games and returns win counts per player.
func (r *GameRunner) PlayGames(n int) map[game.Player]int {
	wins := make(map[game.Player]int)
	for i := 0; i < n; i++ {
		winner, plies := r.PlayGame()
		wins[winner]++
		log.Debug().
			Int("game", i).
			Int("plies", plies).
			Str("winner", winner.String()).
			Msg("autoplay game finished")
	}
	return wins
}

// WinStats formats win counts for display.
func WinStats(wins map[game.Player]int) string {
	return fmt.Sprintf("YeonSeung %d - JunSeok %d",
		wins[game.YeonSeung], wins[game.JunSeok])
}
