package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

var algorithmsCmd = &cobra.Command{
	Use:     "algorithms",
	Aliases: []string{"list"},
	Short:   "List maze generation algorithms and difficulties",
	Long:    `Shows the registered maze generators and the configured difficulty sizes.`,
	Args:    cobra.NoArgs,
	Run:     runAlgorithms,
}

func runAlgorithms(_ *cobra.Command, _ []string) {
	algos := registry.List()

	fmt.Println("Algorithms:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, a := range algos {
		maxIDLen = max(maxIDLen, len(a.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----------")
	for _, a := range algos {
		marker := ""
		if a.ID == mazeConfig.Game.Algorithm {
			marker = " (configured)"
		}
		fmt.Printf("  %-*s  %s%s\n", maxIDLen, a.ID, a.Description, marker)
	}

	fmt.Println()
	fmt.Println("Difficulties:")
	fmt.Println()
	for _, d := range config.Difficulties() {
		size, err := mazeConfig.Size(d)
		if err != nil {
			continue
		}
		marker := ""
		if d == mazeConfig.Game.DefaultDifficulty {
			marker = " (default)"
		}
		fmt.Printf("  %-9s %dx%d%s\n", d, size, size, marker)
	}

	fmt.Println()
	fmt.Println("Run 'maze gen --algorithm <id>' to preview one.")
}
