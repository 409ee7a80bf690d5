package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the default maze configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Game: GameConfig{
			DefaultDifficulty: DifficultyEasy,
			Algorithm:         "backtracker",
			TickInterval:      time.Second,
			WinNoticeDelay:    300 * time.Millisecond,
		},
		Sizes: SizesConfig{
			Easy:     6,
			Moderate: 10,
			Hard:     15,
		},
		Animation: AnimationConfig{
			PulseStep:         0.04,
			GlowSpeed:         3.0,
			ConfettiDuration:  2 * time.Second,
			ConfettiParticles: 40,
		},
		Colors: ColorsConfig{
			Walls:   "bright_blue",
			Player:  "bright_yellow",
			Goal:    "bright_green",
			Hint:    "bright_magenta",
			HintDim: "magenta",
			HUD:     "white",
		},
	}
}
