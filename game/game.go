// Package game tracks whose turn it is on top of a board. Turn order
// strictly alternates; no player ever skips a turn.
package game

import (
	"fmt"

	"github.com/haneul/monorail/board"
	"github.com/haneul/monorail/move"
	"github.com/haneul/monorail/region"
)

// Game is a board plus the player on turn and a turn counter.
type Game struct {
	board   *board.Board
	onturn  Player
	turnnum int
}

// NewGame creates a game from a starting occupancy, classification, and
// first player.
func NewGame(layout board.Layout, ct region.Constraint, first Player) *Game {
	return &Game{
		board:   board.NewBoard(layout, ct),
		onturn:  first,
		turnnum: 1,
	}
}

func (g *Game) Board() *board.Board {
	return g.board
}

func (g *Game) PlayerOnTurn() Player {
	return g.onturn
}

func (g *Game) TurnNum() int {
	return g.turnnum
}

// PlayMove plays m and passes the turn to the opponent.
func (g *Game) PlayMove(m *move.Move) error {
	if err := g.board.PlayMove(m); err != nil {
		return err
	}
	g.onturn = g.onturn.Opponent()
	g.turnnum++
	return nil
}

// UnplayLastMove reverts the most recent move and gives the turn back.
func (g *Game) UnplayLastMove() error {
	if err := g.board.UnplayLastMove(); err != nil {
		return err
	}
	g.onturn = g.onturn.Opponent()
	g.turnnum--
	return nil
}

// Playing reports whether the player on turn still has a legal move. When
// false, the opponent has completed the track and won.
func (g *Game) Playing() bool {
	return len(g.board.LegalMoves()) > 0
}

// Copy returns a deep copy of the game, board history included.
func (g *Game) Copy() *Game {
	return &Game{
		board:   g.board.Copy(),
		onturn:  g.onturn,
		turnnum: g.turnnum,
	}
}

func (g *Game) ToDisplayText() string {
	return fmt.Sprintf("%sTurn %d, %v to move\n",
		g.board.ToDisplayText(), g.turnnum, g.onturn)
}
