package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

var (
	flagGenSize       int
	flagGenDifficulty string
	flagGenAlgorithm  string
	flagGenSolve      bool
	flagGenStats      bool
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Print a generated maze as text",
	Long: `Generate a maze and print it as ASCII art. S marks the start and G
the goal. With --seed the same maze is printed every time, which makes
a journal entry reproducible.

Examples:
  maze gen
  maze gen --difficulty hard --solve
  maze gen --size 20 --algorithm wilson --stats
  maze gen --seed 42`,
	Args: cobra.NoArgs,
	Run:  runGen,
}

func init() {
	genCmd.Flags().IntVar(&flagGenSize, "size", 0, "Grid size (overrides --difficulty)")
	genCmd.Flags().StringVarP(&flagGenDifficulty, "difficulty", "d", "", "Difficulty whose size to use")
	genCmd.Flags().StringVarP(&flagGenAlgorithm, "algorithm", "a", "", "Generation algorithm (default from config)")
	genCmd.Flags().BoolVar(&flagGenSolve, "solve", false, "Mark the shortest path")
	genCmd.Flags().BoolVar(&flagGenStats, "stats", false, "Print maze statistics")
}

// genOptions describes one maze to print.
type genOptions struct {
	Size      int
	Algorithm string
	Seed      int64
	Solve     bool
	Stats     bool
}

func runGen(_ *cobra.Command, _ []string) {
	opts := genOptions{
		Size:      flagGenSize,
		Algorithm: flagGenAlgorithm,
		Seed:      flagSeed,
		Solve:     flagGenSolve,
		Stats:     flagGenStats,
	}
	if opts.Algorithm == "" {
		opts.Algorithm = mazeConfig.Game.Algorithm
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Size == 0 {
		d := mazeConfig.Game.DefaultDifficulty
		if flagGenDifficulty != "" {
			var err error
			if d, err = config.ParseDifficulty(flagGenDifficulty); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
		size, err := mazeConfig.Size(d)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts.Size = size
	}

	if err := writeMaze(os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeMaze generates the maze described by opts and prints it.
func writeMaze(w io.Writer, opts genOptions) error {
	grid, err := registry.Generate(opts.Algorithm, opts.Size, rand.New(rand.NewSource(opts.Seed)))
	if err != nil {
		return err
	}
	start, goal := maze.C(0, 0), maze.C(opts.Size-1, opts.Size-1)

	path, err := maze.ShortestPath(grid, start, goal)
	if err != nil {
		return err
	}

	markers := &maze.Markers{Start: start, Goal: goal}
	if opts.Solve {
		markers.Path = path
	}
	fmt.Fprintf(w, "%s %dx%d, seed %d\n", opts.Algorithm, opts.Size, opts.Size, opts.Seed)
	fmt.Fprint(w, grid.Text(markers))

	if !opts.Stats {
		return nil
	}
	far, farDist, err := maze.Farthest(grid, start)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Passages:      %d\n", grid.OpenPassages())
	fmt.Fprintf(w, "Reachable:     %d/%d\n", maze.Reachable(grid, start), opts.Size*opts.Size)
	fmt.Fprintf(w, "Solution:      %d moves\n", len(path))
	fmt.Fprintf(w, "Dead ends:     %d\n", deadEnds(grid))
	fmt.Fprintf(w, "Farthest cell: %s at %d moves\n", far, farDist)
	return nil
}

// deadEnds counts cells with exactly one opening.
func deadEnds(g *maze.Grid) int {
	n := 0
	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			walls := 0
			for _, d := range maze.Directions {
				if g.Walls(maze.C(x, y)).Has(d) {
					walls++
				}
			}
			if walls == 3 {
				n++
			}
		}
	}
	return n
}
