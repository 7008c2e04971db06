// Package layout reads starting positions from YAML files. A layout file
// looks like:
//
//	rows:
//	  - ".###."
//	  - "...#."
//	  - "...#."
//	  - "....."
//	constraint: unresolved
//	onturn: yeonseung
//
// '#' marks an occupied square and '.' an empty one. constraint and onturn
// are optional and default to unresolved and yeonseung.
package layout

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/haneul/monorail/board"
	"github.com/haneul/monorail/game"
	"github.com/haneul/monorail/grid"
	"github.com/haneul/monorail/region"
)

type file struct {
	Rows       []string `yaml:"rows"`
	Constraint string   `yaml:"constraint"`
	OnTurn     string   `yaml:"onturn"`
}

// Position is a parsed starting position.
type Position struct {
	Layout     board.Layout
	Constraint region.Constraint
	OnTurn     game.Player
}

// Parse parses a YAML layout document.
func Parse(data []byte) (*Position, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}
	if len(f.Rows) != grid.NumRows {
		return nil, fmt.Errorf("layout must have %d rows, got %d",
			grid.NumRows, len(f.Rows))
	}
	pos := &Position{}
	for i, row := range f.Rows {
		if len(row) != grid.NumCols {
			return nil, fmt.Errorf("row %d must have %d squares, got %d",
				i, grid.NumCols, len(row))
		}
		for j, ch := range row {
			switch ch {
			case '#':
				pos.Layout[i][j] = true
			case '.':
			default:
				return nil, fmt.Errorf("row %d: unexpected square %q", i, ch)
			}
		}
	}
	ct, err := parseConstraint(f.Constraint)
	if err != nil {
		return nil, err
	}
	pos.Constraint = ct
	player, err := parsePlayer(f.OnTurn)
	if err != nil {
		return nil, err
	}
	pos.OnTurn = player
	return pos, nil
}

// ParseFile parses a YAML layout file from disk.
func ParseFile(path string) (*Position, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func parseConstraint(s string) (region.Constraint, error) {
	switch strings.ToLower(s) {
	case "", "unresolved":
		return region.Unresolved, nil
	case "left":
		return region.Left, nil
	case "leftormiddle":
		return region.LeftOrMiddle, nil
	case "middle":
		return region.Middle, nil
	case "rightormiddle":
		return region.RightOrMiddle, nil
	case "right":
		return region.Right, nil
	}
	return region.Unresolved, fmt.Errorf("unknown constraint %q", s)
}

func parsePlayer(s string) (game.Player, error) {
	switch strings.ToLower(s) {
	case "", "yeonseung":
		return game.YeonSeung, nil
	case "junseok":
		return game.JunSeok, nil
	}
	return game.YeonSeung, fmt.Errorf("unknown player %q", s)
}
