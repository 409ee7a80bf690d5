package registry

import (
	"math/rand"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

// Built-in algorithm IDs.
const (
	Backtracker = "backtracker"
	Wilson      = "wilson"
)

func init() {
	Register(AlgorithmInfo{
		ID:          Backtracker,
		Title:       "Recursive backtracker",
		Description: "Depth-first carving; long winding corridors with few branches.",
	}, func(size int, rng *rand.Rand) (*maze.Grid, error) {
		return maze.Backtracker(size, maze.RandomOrder(rng))
	})

	Register(AlgorithmInfo{
		ID:          Wilson,
		Title:       "Wilson's algorithm",
		Description: "Loop-erased random walks; uniform over all spanning trees.",
	}, maze.Wilson)
}
