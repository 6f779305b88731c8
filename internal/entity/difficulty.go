package entity

import (
	"errors"
	"fmt"
	"strings"
)

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

type Mode string

const (
	ModeLocal    Mode = "local"
	ModeComputer Mode = "computer"
)

// legacyPrefix - is how the desktop menu spelled computer modes ("ai_easy").
const legacyPrefix = "ai_"

var (
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrUnknownMode       = errors.New("unknown game mode")
)

// ParseDifficulty - accepts "easy", "medium", "hard" and their "ai_" spellings.
func ParseDifficulty(value string) (Difficulty, error) {
	normalized := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(value)), legacyPrefix)

	difficulty := Difficulty(normalized)
	if err := difficulty.Validate(); err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, value)
	}

	return difficulty, nil
}

func (that Difficulty) Validate() error {
	switch that {
	case Easy, Medium, Hard:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDifficulty, string(that))
	}
}

// ParseMode - accepts "local", "computer" or "ai". A legacy "ai_<difficulty>"
// value also yields the difficulty it names.
func ParseMode(value string) (Mode, *Difficulty, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))

	switch {
	case normalized == string(ModeLocal):
		return ModeLocal, nil, nil
	case normalized == string(ModeComputer), normalized == "ai":
		return ModeComputer, nil, nil
	case strings.HasPrefix(normalized, legacyPrefix):
		difficulty, err := ParseDifficulty(normalized)
		if err != nil {
			return "", nil, err
		}

		return ModeComputer, &difficulty, nil
	default:
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownMode, value)
	}
}

// ParseSessionOptions - reads the mode and difficulty a client asked for.
// An explicit difficulty wins over one implied by a legacy mode.
func ParseSessionOptions(modeValue, difficultyValue string) (Mode, *Difficulty, error) {
	mode, difficulty, err := ParseMode(modeValue)
	if err != nil {
		return "", nil, err
	}

	if difficultyValue != "" {
		parsed, err := ParseDifficulty(difficultyValue)
		if err != nil {
			return "", nil, err
		}
		difficulty = &parsed
	}

	return mode, difficulty, nil
}
