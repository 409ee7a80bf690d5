package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a difficulty menu",
	Long: `Start the maze in interactive menu mode.

Pick a difficulty to play. Esc in a game returns to the menu, and your
best time is kept until you quit. Tab opens the run history.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/1/2/3  - Play
  Tab          - Run history
  Q            - Quit

Examples:
  maze menu
  maze menu --fps 60
  maze menu --db ./runs.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()

	err := tui.RunSession(mazeConfig, runtimeConfig(), tui.Options{
		Store:  store,
		Logger: logger,
		Player: playerName(),
	})

	if store != nil {
		store.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running menu: %v\n", err)
		os.Exit(1)
	}
}
