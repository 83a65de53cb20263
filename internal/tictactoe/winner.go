package tictactoe

import "github.com/rocketscienceinc/tictactoe-advisor/internal/entity"

type line [entity.Size][2]int

var (
	antiDiagonal = line{{2, 0}, {1, 1}, {0, 2}}
	mainDiagonal = line{{0, 0}, {1, 1}, {2, 2}}
)

// WinLines lists every line in the order they are checked: rows, columns,
// the anti-diagonal and then the main diagonal.
var WinLines = buildWinLines()

func buildWinLines() []line {
	lines := make([]line, 0, 2*entity.Size+2)

	for row := range entity.Size {
		var l line
		for col := range entity.Size {
			l[col] = [2]int{row, col}
		}
		lines = append(lines, l)
	}

	for col := range entity.Size {
		var l line
		for row := range entity.Size {
			l[row] = [2]int{row, col}
		}
		lines = append(lines, l)
	}

	return append(lines, antiDiagonal, mainDiagonal)
}

// Winner - returns the side owning a completed line. ok is false while nobody
// has won, which includes a full board without a line (a draw).
func Winner(board entity.Board) (entity.Cell, bool) {
	for _, l := range WinLines {
		cells := [entity.Size]entity.Cell{}
		for i, pos := range l {
			cells[i] = board[pos[0]][pos[1]]
		}

		if mark, uniform := sameInLine(cells); uniform && mark != entity.Open {
			return mark, true
		}
	}

	return entity.Open, false
}

// sameInLine folds a line left to right. Once two cells differ the line stays
// non-uniform; a uniform line of Open cells is reported as such.
func sameInLine(cells [entity.Size]entity.Cell) (entity.Cell, bool) {
	var (
		acc     entity.Cell
		defined bool
		broken  bool
	)

	for _, cell := range cells {
		switch {
		case broken:
		case !defined:
			acc, defined = cell, true
		case acc != cell:
			broken = true
		}
	}

	return acc, defined && !broken
}
