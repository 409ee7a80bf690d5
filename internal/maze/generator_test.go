package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertPerfectMaze checks the spanning-tree property, wall symmetry and
// closed outer boundary.
func assertPerfectMaze(t *testing.T, g *Grid) {
	t.Helper()
	n := g.Size()

	assert.Equal(t, n*n-1, g.OpenPassages(), "open passages")
	assert.Equal(t, n*n, Reachable(g, C(0, 0)), "reachable cells")

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := C(x, y)
			for _, d := range Directions {
				wall, err := g.HasWall(c, d)
				require.NoError(t, err)

				nb, ok := g.Neighbor(c, d)
				if !ok {
					assert.True(t, wall, "boundary wall %s of %v must be closed", d, c)
					continue
				}
				back, err := g.HasWall(nb, d.Opposite())
				require.NoError(t, err)
				assert.Equal(t, wall, back, "wall %s of %v is not symmetric", d, c)
			}
		}
	}
}

// recursiveCarve is the textbook recursive formulation, kept as a reference
// for the stack-based generator.
func recursiveCarve(t *testing.T, size int, shuffle Shuffler) *Grid {
	t.Helper()
	g, err := New(size)
	require.NoError(t, err)
	visited := make(map[Coord]bool)

	var carve func(c Coord)
	carve = func(c Coord) {
		visited[c] = true
		for _, d := range shuffle() {
			n, ok := g.Neighbor(c, d)
			if !ok || visited[n] {
				continue
			}
			require.NoError(t, g.RemoveWallPair(c, d))
			carve(n)
		}
	}
	carve(C(0, 0))
	return g
}

func TestBacktrackerSpanningTree(t *testing.T) {
	for size := 1; size <= 15; size++ {
		for seed := int64(1); seed <= 5; seed++ {
			g, err := Backtracker(size, RandomOrder(rand.New(rand.NewSource(seed))))
			require.NoError(t, err)
			assertPerfectMaze(t, g)
		}
	}
}

func TestBacktrackerMatchesRecursiveCarve(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 2024} {
		stacked, err := Backtracker(10, RandomOrder(rand.New(rand.NewSource(seed))))
		require.NoError(t, err)
		recursive := recursiveCarve(t, 10, RandomOrder(rand.New(rand.NewSource(seed))))

		assert.Equal(t, recursive.String(), stacked.String(), "seed %d", seed)
	}
}

func TestBacktrackerFixedOrderLayout(t *testing.T) {
	g, err := Backtracker(6, FixedOrder(North, East, South, West))
	require.NoError(t, err)
	assertPerfectMaze(t, g)

	// With N,E,S,W the carve runs east along the top row first, so the
	// start cell only opens eastwards.
	assert.Equal(t, WallMask(1<<North|1<<South|1<<West), g.Walls(C(0, 0)))
	assert.Equal(t, WallMask(1<<North|1<<East), g.Walls(C(5, 0)))
	assert.Equal(t, WallMask(1<<North|1<<East|1<<West), g.Walls(C(0, 1)))

	path, err := ShortestPath(g, C(0, 0), C(5, 5))
	require.NoError(t, err)
	want := []Coord{
		C(1, 0), C(2, 0), C(3, 0), C(4, 0), C(5, 0),
		C(5, 1), C(5, 2), C(5, 3), C(5, 4), C(5, 5),
	}
	assert.Equal(t, want, path)
}

func TestBacktrackerDeterministicPerSeed(t *testing.T) {
	a, err := Backtracker(12, RandomOrder(rand.New(rand.NewSource(99))))
	require.NoError(t, err)
	b, err := Backtracker(12, RandomOrder(rand.New(rand.NewSource(99))))
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
}

func TestBacktrackerInvalidSize(t *testing.T) {
	_, err := Backtracker(0, FixedOrder())
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestBacktrackerLargeGrid(t *testing.T) {
	// Deep enough that a naive recursive carve would nest tens of thousands
	// of frames.
	g, err := Backtracker(200, FixedOrder(East, South, West, North))
	require.NoError(t, err)
	assert.Equal(t, 200*200-1, g.OpenPassages())
	assert.Equal(t, 200*200, Reachable(g, C(0, 0)))
}

func TestWilsonSpanningTree(t *testing.T) {
	for size := 1; size <= 12; size++ {
		g, err := Wilson(size, rand.New(rand.NewSource(int64(size))))
		require.NoError(t, err)
		assertPerfectMaze(t, g)
	}

	_, err := Wilson(-2, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFixedOrderFillsMissing(t *testing.T) {
	assert.Equal(t, [4]Direction{South, North, East, West}, FixedOrder(South, South)())
	assert.Equal(t, Directions, FixedOrder()())
}

func TestRandomOrderIsPermutation(t *testing.T) {
	shuffle := RandomOrder(rand.New(rand.NewSource(3)))
	for i := 0; i < 50; i++ {
		order := shuffle()
		seen := map[Direction]bool{}
		for _, d := range order {
			seen[d] = true
		}
		assert.Len(t, seen, 4)
	}
}
