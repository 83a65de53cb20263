package apperror

import "errors"

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInvalidBoard     = errors.New("invalid board")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrPositionNotFound = errors.New("position is not reachable from the start board")
	ErrGameFinished     = errors.New("game is already finished")
	ErrNotFound         = errors.New("not found")
)
