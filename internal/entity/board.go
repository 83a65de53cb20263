package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-advisor/internal/apperror"
)

const Size = 3

// Cell is the content of a single board square.
type Cell uint8

const (
	Open Cell = iota
	Naught
	Cross
)

// Naught always opens the game and plays the automated side.
const (
	FirstPlayer  = Naught
	SecondPlayer = Cross
)

const (
	markOpen   = "."
	markNaught = "O"
	markCross  = "X"

	rowSeparator = "/"
)

func (that Cell) String() string {
	switch that {
	case Naught:
		return markNaught
	case Cross:
		return markCross
	default:
		return markOpen
	}
}

// IsSide reports whether the cell holds one of the two players' marks.
func (that Cell) IsSide() bool {
	return that == Naught || that == Cross
}

// Opponent - returns the other side. Open has no opponent and is returned as is.
func (that Cell) Opponent() Cell {
	switch that {
	case Naught:
		return Cross
	case Cross:
		return Naught
	default:
		return Open
	}
}

func (that Cell) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	cell, err := ParseCell(string(text))
	if err != nil {
		return err
	}

	*that = cell

	return nil
}

// ParseCell - parses a single mark: "O", "X" or ".".
func ParseCell(mark string) (Cell, error) {
	switch strings.ToUpper(strings.TrimSpace(mark)) {
	case markNaught:
		return Naught, nil
	case markCross:
		return Cross, nil
	case markOpen:
		return Open, nil
	default:
		return Open, fmt.Errorf("%w: unknown mark %q", apperror.ErrInvalidBoard, mark)
	}
}

// ParseSide - parses a mark that must name a player.
func ParseSide(mark string) (Cell, error) {
	cell, err := ParseCell(mark)
	if err != nil {
		return Open, err
	}

	if !cell.IsSide() {
		return Open, fmt.Errorf("%w: %q is not a side", apperror.ErrInvalidArgument, mark)
	}

	return cell, nil
}

// Board is a row-major 3x3 grid. It is a value type: assignment copies it.
type Board [Size][Size]Cell

func (that Board) Equal(other Board) bool {
	return that == other
}

func (that Board) IsFull() bool {
	return that.Count(Open) == 0
}

func (that Board) Count(cell Cell) int {
	count := 0
	for _, row := range that {
		for _, c := range row {
			if c == cell {
				count++
			}
		}
	}

	return count
}

// OpenCells - returns the coordinates of every open square in row-major order.
func (that Board) OpenCells() [][2]int {
	cells := make([][2]int, 0, Size*Size)
	for row := range that {
		for col := range that[row] {
			if that[row][col] == Open {
				cells = append(cells, [2]int{row, col})
			}
		}
	}

	return cells
}

// With - returns a copy of the board with the cell at row/col set to mark.
func (that Board) With(row, col int, mark Cell) (Board, error) {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return that, fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, row, col)
	}

	if that[row][col] != Open {
		return that, fmt.Errorf("%w: row %d col %d", apperror.ErrCellOccupied, row, col)
	}

	that[row][col] = mark

	return that, nil
}

// Diff - returns the coordinates of the only square that differs between two boards.
// ok is false when the boards are equal or differ in more than one square.
func (that Board) Diff(other Board) (int, int, bool) {
	diffRow, diffCol, found := 0, 0, 0
	for row := range that {
		for col := range that[row] {
			if that[row][col] != other[row][col] {
				diffRow, diffCol = row, col
				found++
			}
		}
	}

	return diffRow, diffCol, found == 1
}

// String - formats the board as three rows joined by "/", e.g. "OX./.X./..O".
func (that Board) String() string {
	var sb strings.Builder
	for row := range that {
		if row > 0 {
			sb.WriteString(rowSeparator)
		}

		for _, cell := range that[row] {
			sb.WriteString(cell.String())
		}
	}

	return sb.String()
}

func (that Board) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Board) UnmarshalText(text []byte) error {
	board, err := ParseBoard(string(text))
	if err != nil {
		return err
	}

	*that = board

	return nil
}

// ParseBoard - parses the notation produced by Board.String. Whitespace is ignored.
func ParseBoard(notation string) (Board, error) {
	var board Board

	compact := strings.Join(strings.Fields(notation), "")
	rows := strings.Split(compact, rowSeparator)
	if len(rows) != Size {
		return board, fmt.Errorf("%w: expected %d rows, got %d", apperror.ErrInvalidBoard, Size, len(rows))
	}

	for row, marks := range rows {
		if len(marks) != Size {
			return board, fmt.Errorf("%w: row %d has %d cells", apperror.ErrInvalidBoard, row, len(marks))
		}

		for col := range marks {
			cell, err := ParseCell(marks[col : col+1])
			if err != nil {
				return board, err
			}

			board[row][col] = cell
		}
	}

	return board, nil
}
