package apperror

import "errors"

var (
	// ErrIllegalMove wraps every rejected move; the board is left unchanged.
	ErrIllegalMove = errors.New("illegal move")
	// ErrNoLegalMove is returned when a move is requested on a finished or full board.
	ErrNoLegalMove = errors.New("no legal move")

	ErrGameFinished    = errors.New("game is already finished")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrNotYourTurn     = errors.New("it's not your turn")
	ErrSessionNotFound = errors.New("session not found")
)
