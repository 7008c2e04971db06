package board

import (
	"fmt"
	"strings"

	"github.com/haneul/monorail/grid"
)

// ToDisplayText returns a plain-text rendering of the board with row and
// column headers and the current classification. Colorized rendering is the
// shell's concern.
func (b *Board) ToDisplayText() string {
	var str strings.Builder
	str.WriteString("   ")
	for col := 0; col < grid.NumCols; col++ {
		fmt.Fprintf(&str, "%d ", col)
	}
	str.WriteString("\n   ")
	str.WriteString(strings.Repeat("-", grid.NumCols*2))
	str.WriteString("\n")
	for row := 0; row < grid.NumRows; row++ {
		fmt.Fprintf(&str, "%2d|", row)
		for col := 0; col < grid.NumCols; col++ {
			if b.squares[row][col] {
				str.WriteString("# ")
			} else {
				str.WriteString(". ")
			}
		}
		str.WriteString("|\n")
	}
	str.WriteString("   ")
	str.WriteString(strings.Repeat("-", grid.NumCols*2))
	fmt.Fprintf(&str, "\n%v\n", b.constraint)
	return str.String()
}
