package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// ComputerMark - is the computer's side in every computer session; the human
// always plays X.
const ComputerMark = entity.PlayerO

type computer interface {
	SelectMove(game *entity.Game, difficulty entity.Difficulty) (entity.Cell, error)
	FlipCoin() bool
}

type GameController struct {
	computer computer
}

func NewGameController(computer computer) *GameController {
	return &GameController{
		computer: computer,
	}
}

// NewGame - starts a fresh game. A nil difficulty means two local players.
// Otherwise a coin flip decides whether the computer opens with a single
// move, after which X is back on turn.
func (that *GameController) NewGame(difficulty *entity.Difficulty) (*entity.Game, bool, error) {
	game := entity.NewGame()

	if difficulty == nil {
		return game, false, nil
	}

	if err := difficulty.Validate(); err != nil {
		return nil, false, err
	}

	if !that.computer.FlipCoin() {
		return game, false, nil
	}

	game.Turn = ComputerMark
	if _, _, err := that.PlayComputerTurn(game, *difficulty); err != nil {
		return nil, false, fmt.Errorf("computer failed to make opening move: %w", err)
	}
	game.Turn = entity.PlayerX

	return game, true, nil
}

// ApplyMove - applies a move and returns the resulting outcome.
func (that *GameController) ApplyMove(game *entity.Game, row, col int, mark entity.Mark) (entity.Outcome, error) {
	outcome, err := game.ApplyMove(row, col, mark)
	if err != nil {
		return outcome, fmt.Errorf("invalid turn: %w", err)
	}

	return outcome, nil
}

// ComputerMove - picks the computer's next cell without applying it.
func (that *GameController) ComputerMove(game *entity.Game, difficulty entity.Difficulty) (entity.Cell, error) {
	cell, err := that.computer.SelectMove(game, difficulty)
	if err != nil {
		return entity.Cell{}, fmt.Errorf("failed to select computer move: %w", err)
	}

	return cell, nil
}

// PlayComputerTurn - selects a move for the side to move and applies it.
func (that *GameController) PlayComputerTurn(game *entity.Game, difficulty entity.Difficulty) (entity.Cell, entity.Outcome, error) {
	cell, err := that.ComputerMove(game, difficulty)
	if err != nil {
		return entity.Cell{}, game.Outcome, err
	}

	outcome, err := that.ApplyMove(game, cell.Row, cell.Col, game.CurrentPlayer())
	if err != nil {
		return cell, outcome, err
	}

	return cell, outcome, nil
}

func GetOutcome(game *entity.Game) entity.Outcome {
	return game.Outcome
}
