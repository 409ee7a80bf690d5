package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/game"
	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsClear bool
	flagRunsTUI   bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [difficulty]",
	Short: "Show the run journal",
	Long: `Display finished runs from the journal.

Without a difficulty, lists the most recent runs. With one, lists the
fastest runs at that difficulty.

Examples:
  maze runs
  maze runs hard --limit 5
  maze runs --tui
  maze runs easy --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVarP(&flagRunsLimit, "limit", "n", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete the listed difficulty's runs (all runs without one)")
	runsCmd.Flags().BoolVar(&flagRunsTUI, "tui", false, "Browse the journal interactively")
}

func runRuns(_ *cobra.Command, args []string) {
	var difficulty config.Difficulty
	if len(args) == 1 {
		d, err := config.ParseDifficulty(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		difficulty = d
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRunsClear {
		n, err := store.ClearRuns(string(difficulty))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted %d runs.\n", n)
		return
	}

	if flagRunsTUI && term.IsTerminal(int(os.Stdout.Fd())) {
		cfg := runtimeConfig()
		if _, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printRuns(os.Stdout, store, difficulty, flagRunsLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
}

// printRuns writes a plain text table of runs and a stats footer.
func printRuns(w io.Writer, store *storage.Store, d config.Difficulty, limit int) error {
	var runs []storage.Run
	var err error
	if d == "" {
		fmt.Fprintln(w, "Recent runs")
		runs, err = store.RecentRuns(limit)
	} else {
		fmt.Fprintf(w, "Fastest runs - %s\n", d.Title())
		runs, err = store.FastestRuns(string(d), limit)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'maze play' to record the first one!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-6s  %-5s  %-8s  %-7s  %-11s  %-10s  %s\n",
		"Rank", "Time", "Moves", "Level", "Size", "Algorithm", "Player", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-5s  %-8s  %-7s  %-11s  %-10s  %s\n",
		"----", "----", "-----", "-----", "----", "---------", "------", "----")
	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-6s  %-5d  %-8s  %-7s  %-11s  %-10s  %s\n",
			i+1,
			game.FormatSeconds(r.Seconds),
			r.Moves,
			r.Difficulty,
			fmt.Sprintf("%dx%d", r.Size, r.Size),
			r.Algorithm,
			r.Player,
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}

	st, err := store.Stats(string(d))
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Runs: %d  Fastest: %s  Average: %s  Avg moves: %.1f\n",
		st.Runs,
		game.FormatSeconds(st.Fastest),
		game.FormatSeconds(int(st.AvgSeconds+0.5)),
		st.AvgMoves,
	)
	return nil
}
