package maze

import (
	"math/rand"
)

// Shuffler supplies the order in which the generator tries the four
// directions at a newly entered cell. Production code uses RandomOrder;
// tests use FixedOrder to get exact, reproducible layouts.
type Shuffler func() [4]Direction

// RandomOrder returns a Shuffler producing uniformly random permutations.
func RandomOrder(rng *rand.Rand) Shuffler {
	return func() [4]Direction {
		order := Directions
		rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
		return order
	}
}

// FixedOrder returns a Shuffler that always yields the same order.
// Missing directions are appended in canonical order.
func FixedOrder(dirs ...Direction) Shuffler {
	var order [4]Direction
	seen := [4]bool{}
	n := 0
	for _, d := range dirs {
		if !d.Valid() || seen[d] || n == 4 {
			continue
		}
		order[n] = d
		seen[d] = true
		n++
	}
	for _, d := range Directions {
		if n == 4 {
			break
		}
		if !seen[d] {
			order[n] = d
			n++
		}
	}
	return func() [4]Direction {
		return order
	}
}

// carveFrame is one level of the depth-first carve: the cell, the direction
// order drawn when it was entered, and how many of those were tried.
type carveFrame struct {
	cell  Coord
	order [4]Direction
	next  int
}

// Backtracker generates a perfect maze by randomized depth-first carving
// from (0,0). Each cell draws its direction order once, on entry, and keeps
// trying the remaining directions after a deeper branch is finished, exactly
// like the recursive formulation. An explicit stack keeps the goroutine stack
// flat for large grids.
func Backtracker(size int, shuffle Shuffler) (*Grid, error) {
	g, err := New(size)
	if err != nil {
		return nil, err
	}

	visited := make([]bool, size*size)
	start := C(0, 0)
	visited[g.index(start)] = true

	stack := []carveFrame{{cell: start, order: shuffle()}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.order) {
			stack = stack[:len(stack)-1]
			continue
		}

		d := top.order[top.next]
		top.next++

		n, ok := g.Neighbor(top.cell, d)
		if !ok || visited[g.index(n)] {
			continue
		}

		// Neighbor is in range, so this cannot fail.
		_ = g.RemoveWallPair(top.cell, d)
		visited[g.index(n)] = true
		stack = append(stack, carveFrame{cell: n, order: shuffle()})
	}

	return g, nil
}

// Wilson generates a uniform spanning tree with loop-erased random walks.
// Every walk starts at a cell outside the tree and wanders until it hits the
// tree; only the last exit taken from each visited cell is kept, which erases
// loops, and the resulting path is carved into the grid.
func Wilson(size int, rng *rand.Rand) (*Grid, error) {
	g, err := New(size)
	if err != nil {
		return nil, err
	}

	total := size * size
	inTree := make([]bool, total)
	exit := make([]Direction, total)
	inTree[rng.Intn(total)] = true

	coord := func(i int) Coord {
		return C(i%size, i/size)
	}

	for i := 0; i < total; i++ {
		if inTree[i] {
			continue
		}

		// Random walk until the tree is hit, remembering the last exit.
		cur := i
		for !inTree[cur] {
			c := coord(cur)
			for {
				d := Directions[rng.Intn(len(Directions))]
				if n, ok := g.Neighbor(c, d); ok {
					exit[cur] = d
					cur = g.index(n)
					break
				}
			}
		}

		// Retrace the loop-erased path and carve it.
		cur = i
		for !inTree[cur] {
			c := coord(cur)
			d := exit[cur]
			_ = g.RemoveWallPair(c, d)
			inTree[cur] = true
			cur = g.index(c.Step(d))
		}
	}

	return g, nil
}
