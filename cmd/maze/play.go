package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/game"
	"github.com/vovakirdan/tui-maze/internal/platform/tui"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a maze",
	Long: `Start a maze right away.

Controls:
  Arrows/WASD  - Move
  H            - Show the shortest path
  1/2/3        - New easy, moderate or hard maze
  R            - New maze at the same difficulty
  P            - Pause
  Ctrl+S       - Save a text screenshot
  Esc/Q        - Quit

Difficulties:
  easy      - 6x6
  moderate  - 10x10
  hard      - 15x15

Examples:
  maze play
  maze play --difficulty hard
  maze play --seed 42 --config ./my-maze.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagDifficulty, "difficulty", "d", "", "Difficulty: easy, moderate, hard (default from config)")
}

func runPlay(_ *cobra.Command, _ []string) {
	g := game.New(mazeConfig, logger)
	if flagDifficulty != "" {
		d, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		g.SetDifficulty(d)
	}

	store := openStore()

	runErr := tui.Run(g, runtimeConfig(), tui.Options{
		Store:  store,
		Logger: logger,
		Player: playerName(),
	})
	g.Close()

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
