// Package config provides YAML-based game configuration loading and
// difficulty presets for the maze game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned by Validate for unusable values.
var ErrInvalidConfig = errors.New("config: invalid")

// MinSize is the smallest playable maze side. A 1x1 maze starts on its goal.
const MinSize = 2

// MazeConfig contains all configuration for the maze game.
type MazeConfig struct {
	Game      GameConfig      `yaml:"game"`
	Sizes     SizesConfig     `yaml:"sizes"`
	Animation AnimationConfig `yaml:"animation"`
	Colors    ColorsConfig    `yaml:"colors"`
}

// GameConfig holds the rules that are not tied to a difficulty.
type GameConfig struct {
	DefaultDifficulty Difficulty    `yaml:"default_difficulty"`
	Algorithm         string        `yaml:"algorithm"`        // Registered generator name
	TickInterval      time.Duration `yaml:"tick_interval"`    // Elapsed-time resolution
	WinNoticeDelay    time.Duration `yaml:"win_notice_delay"` // Delay before the win overlay
}

// SizesConfig maps each difficulty to a grid dimension.
type SizesConfig struct {
	Easy     int `yaml:"easy"`
	Moderate int `yaml:"moderate"`
	Hard     int `yaml:"hard"`
}

// AnimationConfig controls the per-frame visual effects.
type AnimationConfig struct {
	PulseStep         float64       `yaml:"pulse_step"` // Phase advance per frame
	GlowSpeed         float64       `yaml:"glow_speed"` // Hint glow frequency relative to pulse
	ConfettiDuration  time.Duration `yaml:"confetti_duration"`
	ConfettiParticles int           `yaml:"confetti_particles"` // Particles drawn per frame
}

// ColorsConfig names the palette used by the renderer.
// Values are core color names (e.g. "bright_blue").
type ColorsConfig struct {
	Walls   string `yaml:"walls"`
	Player  string `yaml:"player"`
	Goal    string `yaml:"goal"`
	Hint    string `yaml:"hint"`
	HintDim string `yaml:"hint_dim"`
	HUD     string `yaml:"hud"`
}

// Size returns the grid dimension for a difficulty.
func (c MazeConfig) Size(d Difficulty) (int, error) {
	switch d {
	case DifficultyEasy:
		return c.Sizes.Easy, nil
	case DifficultyModerate:
		return c.Sizes.Moderate, nil
	case DifficultyHard:
		return c.Sizes.Hard, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, string(d))
}

// SizeMap returns the difficulty to size table.
func (c MazeConfig) SizeMap() map[Difficulty]int {
	return map[Difficulty]int{
		DifficultyEasy:     c.Sizes.Easy,
		DifficultyModerate: c.Sizes.Moderate,
		DifficultyHard:     c.Sizes.Hard,
	}
}

// Validate checks that the config can drive a game.
func (c MazeConfig) Validate() error {
	for _, d := range Difficulties() {
		size, _ := c.Size(d)
		if size < MinSize {
			return fmt.Errorf("%w: size for %s must be at least %d, got %d", ErrInvalidConfig, d, MinSize, size)
		}
	}
	if c.Game.TickInterval <= 0 {
		return fmt.Errorf("%w: tick_interval must be positive", ErrInvalidConfig)
	}
	if c.Game.WinNoticeDelay < 0 {
		return fmt.Errorf("%w: win_notice_delay must not be negative", ErrInvalidConfig)
	}
	if !c.Game.DefaultDifficulty.Valid() {
		return fmt.Errorf("%w: default_difficulty %q", ErrInvalidConfig, string(c.Game.DefaultDifficulty))
	}
	if c.Game.Algorithm == "" {
		return fmt.Errorf("%w: algorithm must be set", ErrInvalidConfig)
	}
	if c.Animation.ConfettiParticles < 0 {
		return fmt.Errorf("%w: confetti_particles must not be negative", ErrInvalidConfig)
	}
	return nil
}
