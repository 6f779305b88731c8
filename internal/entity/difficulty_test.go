package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	cases := map[string]Difficulty{
		"easy":      Easy,
		"Medium":    Medium,
		" hard ":    Hard,
		"ai_easy":   Easy,
		"ai_medium": Medium,
		"ai_hard":   Hard,
	}

	for value, expected := range cases {
		t.Run(value, func(t *testing.T) {
			// When: parsing a known spelling
			difficulty, err := ParseDifficulty(value)

			// Then: the matching tier is returned
			require.NoError(t, err)
			assert.Equal(t, expected, difficulty)
		})
	}

	t.Run("Unknown tier is rejected", func(t *testing.T) {
		// When: parsing an unknown spelling
		_, err := ParseDifficulty("ai_impossible")

		// Then: the error is ErrUnknownDifficulty
		require.ErrorIs(t, err, ErrUnknownDifficulty)
	})
}

func TestParseMode(t *testing.T) {
	t.Run("Local mode has no difficulty", func(t *testing.T) {
		mode, difficulty, err := ParseMode("local")

		require.NoError(t, err)
		assert.Equal(t, ModeLocal, mode)
		assert.Nil(t, difficulty)
	})

	t.Run("Legacy computer mode carries its difficulty", func(t *testing.T) {
		mode, difficulty, err := ParseMode("ai_medium")

		require.NoError(t, err)
		assert.Equal(t, ModeComputer, mode)
		require.NotNil(t, difficulty)
		assert.Equal(t, Medium, *difficulty)
	})

	t.Run("Unknown mode is rejected", func(t *testing.T) {
		_, _, err := ParseMode("online")

		require.ErrorIs(t, err, ErrUnknownMode)
	})

	t.Run("Legacy mode with unknown difficulty is rejected", func(t *testing.T) {
		_, _, err := ParseMode("ai_brutal")

		require.ErrorIs(t, err, ErrUnknownDifficulty)
	})
}

func TestParseSessionOptions(t *testing.T) {
	t.Run("Explicit difficulty overrides the legacy one", func(t *testing.T) {
		mode, difficulty, err := ParseSessionOptions("ai_easy", "hard")

		require.NoError(t, err)
		assert.Equal(t, ModeComputer, mode)
		require.NotNil(t, difficulty)
		assert.Equal(t, Hard, *difficulty)
	})

	t.Run("Computer mode without difficulty", func(t *testing.T) {
		mode, difficulty, err := ParseSessionOptions("computer", "")

		require.NoError(t, err)
		assert.Equal(t, ModeComputer, mode)
		assert.Nil(t, difficulty)
	})

	t.Run("Bad difficulty is rejected", func(t *testing.T) {
		_, _, err := ParseSessionOptions("computer", "nightmare")

		require.ErrorIs(t, err, ErrUnknownDifficulty)
	})
}
