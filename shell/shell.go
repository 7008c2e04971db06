// Package shell implements the interactive monorail console.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/logrusorgru/aurora"
	"github.com/rs/zerolog/log"

	"github.com/haneul/monorail/automatic"
	"github.com/haneul/monorail/board"
	"github.com/haneul/monorail/config"
	"github.com/haneul/monorail/game"
	"github.com/haneul/monorail/grid"
	"github.com/haneul/monorail/layout"
	"github.com/haneul/monorail/move"
	"github.com/haneul/monorail/region"
	"github.com/haneul/monorail/solver"
)

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	game *game.Game
	// curLegalMoves is the listing the user last saw; play-by-index refers
	// to it.
	curLegalMoves []*move.Move
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "show - display the board\n")
	io.WriteString(w, "moves (l) - list legal moves for the player on turn\n")
	io.WriteString(w, "play <n> (or just <n>) - play move number n from the last listing\n")
	io.WriteString(w, "undo (u) - take back the last move\n")
	io.WriteString(w, "best (b) - solve the position and show the forced result\n")
	io.WriteString(w, "analyze (a) - solve the reply to every legal move\n")
	io.WriteString(w, "autoplay [n] - play n random games from here (default 100)\n")
	io.WriteString(w, "load <file> - load a starting position from a YAML layout file\n")
	io.WriteString(w, "reset - return to the standard starting position\n")
	io.WriteString(w, "exit - leave the shell\n")
}

func NewShellController(cfg *config.Config, g *game.Game) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mmonorail>\033[0m ",
		HistoryFile:     "/tmp/monorail_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, cfg: cfg, game: g}
}

// renderBoard colorizes the board: track in yellow, empty squares of the
// constrained sub-region in cyan so the player can see where the
// classification applies.
func (sc *ShellController) renderBoard() string {
	b := sc.game.Board()
	var str strings.Builder
	str.WriteString("   ")
	for col := 0; col < grid.NumCols; col++ {
		fmt.Fprintf(&str, "%d ", col)
	}
	str.WriteString("\n")
	for row := 0; row < grid.NumRows; row++ {
		fmt.Fprintf(&str, "%2d ", row)
		for col := 0; col < grid.NumCols; col++ {
			c := grid.Coordinate{Row: row, Col: col}
			switch {
			case b.Occupied(c):
				str.WriteString(aurora.Yellow("# ").String())
			case region.InRegion(c):
				str.WriteString(aurora.Cyan(". ").String())
			default:
				str.WriteString(". ")
			}
		}
		str.WriteString("\n")
	}
	fmt.Fprintf(&str, "%v | turn %d, %v to move",
		b.Constraint(), sc.game.TurnNum(), sc.game.PlayerOnTurn())
	return str.String()
}

func (sc *ShellController) showBoard() {
	showMessage(sc.renderBoard(), sc.l.Stderr())
}

func (sc *ShellController) listMoves() {
	sc.curLegalMoves = sc.game.Board().LegalMoves()
	if len(sc.curLegalMoves) == 0 {
		showMessage(fmt.Sprintf("no moves left, %v wins",
			sc.game.PlayerOnTurn().Opponent()), sc.l.Stderr())
		return
	}
	for i, m := range sc.curLegalMoves {
		showMessage(fmt.Sprintf("%2d %v", i, m.ShortDescription()), sc.l.Stderr())
	}
}

func (sc *ShellController) playByIndex(arg string) error {
	if sc.curLegalMoves == nil {
		sc.curLegalMoves = sc.game.Board().LegalMoves()
	}
	idx, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("not a number: %q", arg)
	}
	if idx < 0 || idx >= len(sc.curLegalMoves) {
		return fmt.Errorf("move %d not found", idx)
	}
	if err := sc.game.PlayMove(sc.curLegalMoves[idx]); err != nil {
		return err
	}
	sc.curLegalMoves = nil
	sc.showBoard()
	return nil
}

func (sc *ShellController) undo() error {
	if err := sc.game.UnplayLastMove(); err != nil {
		return err
	}
	sc.curLegalMoves = nil
	sc.showBoard()
	return nil
}

func (sc *ShellController) best() error {
	s := new(solver.Solver)
	s.Init(sc.game)
	player := sc.game.PlayerOnTurn()
	var winner game.Player
	var bestMove *move.Move
	var err error
	if sc.cfg.Threads > 1 {
		winner, bestMove, err = s.SolveParallel(context.Background(), player, sc.cfg.Threads)
	} else {
		winner, bestMove, err = s.Solve(context.Background(), player)
	}
	if err != nil {
		return err
	}
	if bestMove == nil {
		showMessage(fmt.Sprintf("%v wins; %v has no saving move (%d nodes)",
			aurora.Red(winner.String()), player, s.Nodes()), sc.l.Stderr())
		return nil
	}
	showMessage(fmt.Sprintf("%v wins by playing %v (%d nodes)",
		aurora.Green(winner.String()), bestMove.ShortDescription(), s.Nodes()),
		sc.l.Stderr())
	return nil
}

func (sc *ShellController) analyze() error {
	s := new(solver.Solver)
	s.Init(sc.game)
	player := sc.game.PlayerOnTurn()
	analyses, err := s.Analyze(context.Background(), player)
	if err != nil {
		return err
	}
	if len(analyses) == 0 {
		showMessage(fmt.Sprintf("no moves left, %v wins", player.Opponent()),
			sc.l.Stderr())
		return nil
	}
	for _, a := range analyses {
		line := fmt.Sprintf("if %v does %v: ", player, a.Move.ShortDescription())
		if a.Reply != nil {
			line += fmt.Sprintf("%v does %v, ",
				player.Opponent(), a.Reply.ShortDescription())
		}
		if a.Winner == player {
			line += aurora.Green(fmt.Sprintf("%v wins", a.Winner)).String()
		} else {
			line += aurora.Red(fmt.Sprintf("%v wins", a.Winner)).String()
		}
		showMessage(line, sc.l.Stderr())
	}
	wins := solver.WinningMoves(analyses, player)
	showMessage(fmt.Sprintf("%d of %d moves win for %v",
		len(wins), len(analyses), player), sc.l.Stderr())
	return nil
}

func (sc *ShellController) autoplay(args []string) error {
	n := 100
	if len(args) > 0 {
		var err error
		n, err = strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("not a number: %q", args[0])
		}
	}
	b := sc.game.Board()
	runner := automatic.NewGameRunner(b.Squares(), b.Constraint(), sc.game.PlayerOnTurn())
	wins := runner.PlayGames(n)
	showMessage(automatic.WinStats(wins), sc.l.Stderr())
	return nil
}

func (sc *ShellController) loadPosition(path string) error {
	pos, err := layout.ParseFile(path)
	if err != nil {
		return err
	}
	sc.game = game.NewGame(pos.Layout, pos.Constraint, pos.OnTurn)
	sc.curLegalMoves = nil
	sc.showBoard()
	return nil
}

func (sc *ShellController) reset() {
	sc.game = game.NewGame(board.StartingLayout, region.Unresolved, game.YeonSeung)
	sc.curLegalMoves = nil
	sc.showBoard()
}

// Loop reads and executes commands until the user exits.
func (sc *ShellController) Loop() {
	defer sc.l.Close()
	sc.showBoard()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields, err := shellquote.Split(line)
		if err != nil {
			showMessage("error: "+err.Error(), sc.l.Stderr())
			continue
		}
		cmd, args := fields[0], fields[1:]
		var cmderr error
		switch cmd {
		case "exit", "quit":
			log.Info().Msg("leaving shell")
			return
		case "help":
			usage(sc.l.Stderr())
		case "show":
			sc.showBoard()
		case "moves", "l":
			sc.listMoves()
		case "play", "p":
			if len(args) != 1 {
				cmderr = errors.New("play needs a move number")
			} else {
				cmderr = sc.playByIndex(args[0])
			}
		case "undo", "u":
			cmderr = sc.undo()
		case "best", "b":
			cmderr = sc.best()
		case "analyze", "a":
			cmderr = sc.analyze()
		case "autoplay":
			cmderr = sc.autoplay(args)
		case "load":
			if len(args) != 1 {
				cmderr = errors.New("load needs a file path")
			} else {
				cmderr = sc.loadPosition(args[0])
			}
		case "reset":
			sc.reset()
		default:
			// A bare number plays that move, like the original prompt.
			if _, aerr := strconv.Atoi(cmd); aerr == nil {
				cmderr = sc.playByIndex(cmd)
			} else {
				showMessage("unknown command; try help", sc.l.Stderr())
			}
		}
		if cmderr != nil {
			showMessage("error: "+cmderr.Error(), sc.l.Stderr())
		}
	}
	log.Info().Msg("leaving shell")
}
