package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/haneul/monorail/board"
	"github.com/haneul/monorail/config"
	"github.com/haneul/monorail/game"
	"github.com/haneul/monorail/layout"
	"github.com/haneul/monorail/region"
	"github.com/haneul/monorail/shell"
	"github.com/haneul/monorail/solver"
)

var (
	legalMoves   = flag.Bool("l", false, "print the legal moves for the starting position and exit")
	bestMove     = flag.Bool("b", false, "solve the starting position and exit")
	allResponses = flag.Bool("a", false, "solve the reply to every legal move and exit")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	g := game.NewGame(board.StartingLayout, region.Unresolved, game.YeonSeung)
	if cfg.Layout != "" {
		pos, err := layout.ParseFile(cfg.Layout)
		if err != nil {
			log.Fatal().Err(err).Str("layout", cfg.Layout).Msg("loading layout")
		}
		g = game.NewGame(pos.Layout, pos.Constraint, pos.OnTurn)
	}

	switch {
	case *legalMoves:
		for i, m := range g.Board().LegalMoves() {
			fmt.Printf("%2d %v\n", i, m.ShortDescription())
		}
	case *bestMove:
		s := new(solver.Solver)
		s.Init(g)
		winner, best, err := s.SolveParallel(context.Background(), g.PlayerOnTurn(), cfg.Threads)
		if err != nil {
			log.Fatal().Err(err).Msg("solving")
		}
		if best != nil {
			fmt.Printf("%v wins by playing %v\n", winner, best.ShortDescription())
		} else {
			fmt.Printf("%v wins; %v has no saving move\n", winner, g.PlayerOnTurn())
		}
	case *allResponses:
		s := new(solver.Solver)
		s.Init(g)
		player := g.PlayerOnTurn()
		analyses, err := s.Analyze(context.Background(), player)
		if err != nil {
			log.Fatal().Err(err).Msg("analyzing")
		}
		for _, a := range analyses {
			if a.Reply != nil {
				fmt.Printf("if %v does %v: %v does %v, %v wins\n",
					player, a.Move.ShortDescription(),
					player.Opponent(), a.Reply.ShortDescription(), a.Winner)
			} else {
				fmt.Printf("if %v does %v: %v wins\n",
					player, a.Move.ShortDescription(), a.Winner)
			}
		}
	default:
		sc := shell.NewShellController(cfg, g)
		sc.Loop()
	}
}
