// Package registry provides a global registry of maze generation
// algorithms. Algorithms register themselves in init() functions, so the
// game and the CLI can pick one by name from configuration.
package registry

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

// ErrUnknownAlgorithm is returned when no generator is registered under a name.
var ErrUnknownAlgorithm = errors.New("registry: unknown algorithm")

// Generator builds a perfect maze of the given size using rng as its only
// source of randomness. The same rng state must yield the same grid.
type Generator func(size int, rng *rand.Rand) (*maze.Grid, error)

// AlgorithmInfo contains metadata about a registered algorithm.
type AlgorithmInfo struct {
	ID          string
	Title       string
	Description string
}

type entry struct {
	info AlgorithmInfo
	gen  Generator
}

var (
	generators = make(map[string]entry)
	mu         sync.RWMutex
)

// Register adds a generator to the registry.
// Panics if an algorithm with the same ID is already registered.
func Register(info AlgorithmInfo, g Generator) {
	mu.Lock()
	defer mu.Unlock()

	if info.ID == "" || g == nil {
		panic("registry: algorithm needs an id and a generator")
	}
	if _, exists := generators[info.ID]; exists {
		panic(fmt.Sprintf("registry: algorithm %q already registered", info.ID))
	}
	if info.Title == "" {
		info.Title = info.ID
	}
	generators[info.ID] = entry{info: info, gen: g}
}

// List returns information about all registered algorithms, sorted by ID.
func List() []AlgorithmInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]AlgorithmInfo, 0, len(generators))
	for _, e := range generators {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the generator registered under id.
func Get(id string) (Generator, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := generators[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownAlgorithm, id)
	}
	return e.gen, nil
}

// Generate runs the algorithm registered under id.
func Generate(id string, size int, rng *rand.Rand) (*maze.Grid, error) {
	g, err := Get(id)
	if err != nil {
		return nil, err
	}
	return g(size, rng)
}

// Exists checks if an algorithm with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := generators[id]
	return ok
}
