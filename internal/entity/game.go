package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWin        Status = "win"
	StatusDraw       Status = "draw"
)

var (
	ErrInvalidCell = errors.New("cell is out of range")
	ErrInvalidMark = errors.New("invalid player mark")
)

// Outcome - is the result of the game so far. Winner is set only for StatusWin.
type Outcome struct {
	Status Status `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
}

func (that Outcome) IsTerminal() bool {
	return that.Status == StatusWin || that.Status == StatusDraw
}

// Game - is the state of a single match: board, side to move and outcome.
type Game struct {
	Board   Board   `json:"board"`
	Turn    Mark    `json:"turn"`
	Outcome Outcome `json:"outcome"`
	Moves   int     `json:"moves"`
}

func NewGame() *Game {
	return &Game{
		Turn:    PlayerX,
		Outcome: Outcome{Status: StatusInProgress},
	}
}

// ApplyMove - places the mark of the player on turn at (row, col), recomputes
// the outcome and, while the game is still in progress, hands the turn over.
func (that *Game) ApplyMove(row, col int, player Mark) (Outcome, error) {
	if that.IsFinished() {
		return that.Outcome, fmt.Errorf("%w: %w", apperror.ErrIllegalMove, apperror.ErrGameFinished)
	}

	if !player.IsPlayer() {
		return that.Outcome, fmt.Errorf("%w: %w: %q", apperror.ErrIllegalMove, ErrInvalidMark, player)
	}

	if player != that.Turn {
		return that.Outcome, fmt.Errorf("%w: %w", apperror.ErrIllegalMove, apperror.ErrNotYourTurn)
	}

	cell := Cell{Row: row, Col: col}
	if !cell.InRange() {
		return that.Outcome, fmt.Errorf("%w: %w: row %d col %d", apperror.ErrIllegalMove, ErrInvalidCell, row, col)
	}

	if that.Board.At(cell) != Empty {
		return that.Outcome, fmt.Errorf("%w: %w: row %d col %d", apperror.ErrIllegalMove, apperror.ErrCellOccupied, row, col)
	}

	that.Board[row][col] = player
	that.Moves++

	that.UpdateOutcome()
	if !that.IsFinished() {
		that.Turn = that.Turn.Opponent()
	}

	return that.Outcome, nil
}

// UpdateOutcome - derives the outcome from the board alone.
func (that *Game) UpdateOutcome() {
	switch winner := that.Board.Winner(); {
	case winner != Empty:
		that.Outcome = Outcome{Status: StatusWin, Winner: winner}
	case that.Board.IsFull():
		that.Outcome = Outcome{Status: StatusDraw}
	default:
		that.Outcome = Outcome{Status: StatusInProgress}
	}
}

// CellAt - returns the mark at (row, col); out-of-range coordinates read as Empty.
func (that *Game) CellAt(row, col int) Mark {
	cell := Cell{Row: row, Col: col}
	if !cell.InRange() {
		return Empty
	}

	return that.Board.At(cell)
}

func (that *Game) IsFull() bool {
	return that.Board.IsFull()
}

func (that *Game) Winner() Mark {
	return that.Board.Winner()
}

func (that *Game) CurrentPlayer() Mark {
	return that.Turn
}

func (that *Game) EmptyCells() []Cell {
	return that.Board.EmptyCells()
}

func (that *Game) IsFinished() bool {
	return that.Outcome.IsTerminal()
}

func (that *Game) IsOngoing() bool {
	return that.Outcome.Status == StatusInProgress
}

// Clone - returns an independent copy of the game.
func (that *Game) Clone() *Game {
	clone := *that
	return &clone
}
