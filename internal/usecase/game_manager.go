package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var (
	ErrDifficultyRequired   = errors.New("difficulty is required against the computer")
	ErrDifficultyNotAllowed = errors.New("local games have no difficulty")
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

type gameController interface {
	NewGame(difficulty *entity.Difficulty) (*entity.Game, bool, error)
	ApplyMove(game *entity.Game, row, col int, mark entity.Mark) (entity.Outcome, error)
	PlayComputerTurn(game *entity.Game, difficulty entity.Difficulty) (entity.Cell, entity.Outcome, error)
}

type GameManager struct {
	logger *slog.Logger

	sessionRepo    sessionRepo
	gameController gameController
	locks          *sessionLocks

	now func() time.Time
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepo, gameController gameController) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		sessionRepo:    sessionRepo,
		gameController: gameController,
		locks:          newSessionLocks(),

		now: time.Now,
	}
}

// StartSession - creates a session. Computer sessions need a difficulty and
// may already contain the computer's opening move.
func (that *GameManager) StartSession(ctx context.Context, mode entity.Mode, difficulty *entity.Difficulty) (*entity.Session, error) {
	switch mode {
	case entity.ModeLocal:
		if difficulty != nil {
			return nil, ErrDifficultyNotAllowed
		}
	case entity.ModeComputer:
		if difficulty == nil {
			return nil, ErrDifficultyRequired
		}
	default:
		return nil, fmt.Errorf("%w: %q", entity.ErrUnknownMode, string(mode))
	}

	game, computerOpened, err := that.gameController.NewGame(difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	now := that.now().UTC()
	session := &entity.Session{
		ID:             pkg.GenerateSessionID(),
		Mode:           mode,
		Game:           game,
		ComputerOpened: computerOpened,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if session.IsWithComputer() {
		session.Difficulty = *difficulty
		session.HumanMark = entity.PlayerX
		session.ComputerMark = tictactoe.ComputerMark
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	that.logger.Info("session started",
		"sessionID", session.ID, "mode", session.Mode, "difficulty", session.Difficulty, "computerOpened", computerOpened)

	return session, nil
}

// MakeMove - plays the human move at (row, col) and, against the computer,
// answers with one computer move. A finished session is returned one last
// time and removed from storage.
func (that *GameManager) MakeMove(ctx context.Context, sessionID string, row, col int) (*entity.Session, error) {
	log := that.logger.With("method", "MakeMove", "sessionID", sessionID)

	unlock := that.locks.lock(sessionID)
	defer unlock()

	session, err := that.getSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	game := session.Game
	mark := game.CurrentPlayer()

	if session.IsWithComputer() && mark != session.HumanMark {
		return session, apperror.ErrNotYourTurn
	}

	if _, err = that.gameController.ApplyMove(game, row, col, mark); err != nil {
		return session, fmt.Errorf("failed to make move: %w", err)
	}

	if session.IsWithComputer() && !game.IsFinished() {
		cell, _, err := that.gameController.PlayComputerTurn(game, session.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("computer failed to make move: %w", err)
		}

		log.Debug("computer moved", "row", cell.Row, "col", cell.Col)
	}

	session.UpdatedAt = that.now().UTC()

	if game.IsFinished() {
		that.deleteSession(ctx, session)

		log.Info("session finished", "status", game.Outcome.Status, "winner", game.Outcome.Winner)

		return session, nil
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return session, nil
}

func (that *GameManager) GetSession(ctx context.Context, sessionID string) (*entity.Session, error) {
	return that.getSessionByID(ctx, sessionID)
}

// ResetSession - abandons the session, like leaving a game for the main menu.
func (that *GameManager) ResetSession(ctx context.Context, sessionID string) error {
	unlock := that.locks.lock(sessionID)
	defer unlock()

	if err := that.sessionRepo.DeleteByID(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	that.logger.Info("session reset", "sessionID", sessionID)

	return nil
}

func (that *GameManager) getSessionByID(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

func (that *GameManager) deleteSession(ctx context.Context, session *entity.Session) {
	log := that.logger.With("method", "deleteSession", "sessionID", session.ID)

	if err := that.sessionRepo.DeleteByID(ctx, session.ID); err != nil {
		log.Error("failed to delete session", "error", err)
	}
}
