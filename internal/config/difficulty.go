package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDifficulty is returned for difficulty names outside the presets.
var ErrUnknownDifficulty = errors.New("config: unknown difficulty")

// Difficulty represents a named difficulty level.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyModerate Difficulty = "moderate"
	DifficultyHard     Difficulty = "hard"
)

// Difficulties returns the presets in increasing order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyModerate, DifficultyHard}
}

// Valid reports whether d is one of the presets.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyModerate, DifficultyHard:
		return true
	}
	return false
}

// Title returns the display name.
func (d Difficulty) Title() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyModerate:
		return "Moderate"
	case DifficultyHard:
		return "Hard"
	default:
		return string(d)
	}
}

// ParseDifficulty converts a user-supplied name to a Difficulty.
// "normal" and "medium" are accepted as aliases for moderate.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "e", "1":
		return DifficultyEasy, nil
	case "moderate", "normal", "medium", "m", "2":
		return DifficultyModerate, nil
	case "hard", "h", "3":
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}
