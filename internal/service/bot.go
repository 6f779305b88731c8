package service

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// coinFlipOdds - is the chance that the computer opens a session.
const coinFlipOdds = 0.5

// Bot - chooses the computer's moves. The random source is shared between
// requests, so every draw goes through mu.
type Bot struct {
	mu  sync.Mutex
	rng *rand.Rand

	// legacyHard makes Hard pick uniformly at random, as the desktop game did.
	legacyHard bool
}

func NewBot(rng *rand.Rand, legacyHard bool) *Bot {
	return &Bot{
		rng:        rng,
		legacyHard: legacyHard,
	}
}

// SelectMove - returns the cell the side to move should play. It never
// modifies game.
func (that *Bot) SelectMove(game *entity.Game, difficulty entity.Difficulty) (entity.Cell, error) {
	if game.IsFinished() {
		return entity.Cell{}, fmt.Errorf("%w: %w", apperror.ErrNoLegalMove, apperror.ErrGameFinished)
	}

	availableCells := game.EmptyCells()
	if len(availableCells) == 0 {
		return entity.Cell{}, fmt.Errorf("%w: board is full", apperror.ErrNoLegalMove)
	}

	mark := game.CurrentPlayer()
	if !mark.IsPlayer() {
		return entity.Cell{}, fmt.Errorf("%w: %w: %q", apperror.ErrNoLegalMove, entity.ErrInvalidMark, mark)
	}

	switch difficulty {
	case entity.Easy:
		return that.pick(availableCells), nil
	case entity.Medium:
		return that.winOrBlock(game.Board, mark, availableCells), nil
	case entity.Hard:
		if that.legacyHard {
			return that.pick(availableCells), nil
		}
		return that.pick(bestCells(game.Board, mark, availableCells)), nil
	default:
		return entity.Cell{}, fmt.Errorf("%w: %q", entity.ErrUnknownDifficulty, string(difficulty))
	}
}

// FlipCoin - reports whether the computer takes the opening move.
func (that *Bot) FlipCoin() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rng.Float64() < coinFlipOdds
}

// winOrBlock - plays the computer's own winning cell first, then the cell that
// stops the opponent, then falls back to a random cell.
func (that *Bot) winOrBlock(board entity.Board, mark entity.Mark, availableCells []entity.Cell) entity.Cell {
	for _, cell := range availableCells {
		if board.WinsWith(cell, mark) {
			return cell
		}
	}

	for _, cell := range availableCells {
		if board.WinsWith(cell, mark.Opponent()) {
			return cell
		}
	}

	return that.pick(availableCells)
}

func (that *Bot) pick(cells []entity.Cell) entity.Cell {
	that.mu.Lock()
	defer that.mu.Unlock()

	return cells[that.rng.IntN(len(cells))]
}

// bestCells - returns every cell with the highest minimax score for mark.
func bestCells(board entity.Board, mark entity.Mark, availableCells []entity.Cell) []entity.Cell {
	best := math.MinInt
	cells := make([]entity.Cell, 0, len(availableCells))

	for _, cell := range availableCells {
		next := board
		next[cell.Row][cell.Col] = mark

		score := -negamax(next, mark.Opponent(), 1, math.MinInt+1, math.MaxInt)

		switch {
		case score > best:
			best = score
			cells = append(cells[:0], cell)
		case score == best:
			cells = append(cells, cell)
		}
	}

	return cells
}

// negamax - scores the board for toMove. Wins count more the sooner they
// happen, so the search prefers quick wins and slow losses.
func negamax(board entity.Board, toMove entity.Mark, depth, alpha, beta int) int {
	if board.Winner() != entity.Empty {
		// the previous move won the game
		return depth - maxScore
	}

	if board.IsFull() {
		return 0
	}

	best := math.MinInt + 1
	for _, cell := range board.EmptyCells() {
		next := board
		next[cell.Row][cell.Col] = toMove

		score := -negamax(next, toMove.Opponent(), depth+1, -beta, -alpha)
		best = max(best, score)
		alpha = max(alpha, score)

		if alpha >= beta {
			break
		}
	}

	return best
}

const maxScore = entity.BoardSize*entity.BoardSize + 1
