package tictactoe

import "github.com/rocketscienceinc/tictactoe-advisor/internal/entity"

// NextBoards - returns one board per open cell with side's mark placed there,
// in row-major order. The input board is never changed.
func NextBoards(board entity.Board, side entity.Cell) []entity.Board {
	boards := make([]entity.Board, 0, board.Count(entity.Open))

	for row := range board {
		for col := range board[row] {
			if board[row][col] != entity.Open {
				continue
			}

			next := board
			next[row][col] = side
			boards = append(boards, next)
		}
	}

	return boards
}
