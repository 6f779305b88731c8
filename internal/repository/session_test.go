package repository

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTTL = time.Minute

func newTestSession(id string) *entity.Session {
	game := entity.NewGame()
	game.Board[1][1] = entity.PlayerO
	game.Moves = 1

	return &entity.Session{
		ID:             id,
		Mode:           entity.ModeComputer,
		Difficulty:     entity.Hard,
		HumanMark:      entity.PlayerX,
		ComputerMark:   entity.PlayerO,
		ComputerOpened: true,
		Game:           game,
		CreatedAt:      time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
		UpdatedAt:      time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
	}
}

func TestSessionRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	sessionRepo := NewSessionRepository(st.Storage, testTTL)

	// Given: a session
	session := newTestSession("123")

	// When: CreateOrUpdate is called
	err := sessionRepo.CreateOrUpdate(ctx, session)

	// Then: no error is returned and the key carries the TTL
	require.NoError(t, err)

	ttl, err := st.Storage.TTL(ctx, sessionKey(session.ID)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, testTTL)
}

func TestSessionRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, testTTL)

		// Given: a stored session
		session := newTestSession("123")
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, session))

		// When: GetByID is called with its ID
		retrieved, err := sessionRepo.GetByID(ctx, session.ID)

		// Then: the stored session comes back unchanged
		require.NoError(t, err)
		assert.Equal(t, session, retrieved)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, testTTL)

		// When: GetByID is called with an unknown ID
		retrieved, err := sessionRepo.GetByID(ctx, "9999999")

		// Then: ErrSessionNotFound is returned
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
		assert.Nil(t, retrieved)
	})
}

func TestSessionRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, testTTL)

		// Given: a stored session
		session := newTestSession("123")
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, session))

		// When: DeleteByID is called
		err := sessionRepo.DeleteByID(ctx, session.ID)

		// Then: the session is gone
		require.NoError(t, err)

		_, err = sessionRepo.GetByID(ctx, session.ID)
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, testTTL)

		// When: DeleteByID is called with an unknown ID
		err := sessionRepo.DeleteByID(ctx, "9999999")

		// Then: ErrSessionNotFound is returned
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})
}
