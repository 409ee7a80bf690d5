package maze

import "fmt"

// ShortestPath returns the cells along a shortest passable route from
// `from` to `to`, excluding `from` and including `to`. The result is empty
// (not nil) when the endpoints coincide, and ErrUnreachable is returned when
// no passage connects them. The grid is not assumed to be a perfect maze.
//
// Neighbours are expanded in North, East, South, West order, so ties between
// equally short routes are broken the same way on every call.
func ShortestPath(g *Grid, from, to Coord) ([]Coord, error) {
	if !g.InBounds(from) {
		return nil, fmt.Errorf("maze: path start %v outside [0,%d): %w", from, g.size, ErrInvalidArgument)
	}
	if !g.InBounds(to) {
		return nil, fmt.Errorf("maze: path goal %v outside [0,%d): %w", to, g.size, ErrInvalidArgument)
	}
	if from == to {
		return []Coord{}, nil
	}

	visited := make([]bool, len(g.cells))
	prev := make([]int, len(g.cells))
	for i := range prev {
		prev[i] = -1
	}

	frontier := []Coord{from}
	visited[g.index(from)] = true
	found := false

	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		if cur == to {
			found = true
			break
		}

		walls := g.cells[g.index(cur)]
		for _, d := range Directions {
			n, ok := g.Neighbor(cur, d)
			if !ok || visited[g.index(n)] || walls.Has(d) {
				continue
			}
			visited[g.index(n)] = true
			prev[g.index(n)] = g.index(cur)
			frontier = append(frontier, n)
		}
	}

	if !found {
		return nil, fmt.Errorf("maze: no route from %v to %v: %w", from, to, ErrUnreachable)
	}

	// Walk predecessors back to the start, then reverse.
	var path []Coord
	for i := g.index(to); i != g.index(from); i = prev[i] {
		path = append(path, C(i%g.size, i/g.size))
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path, nil
}

// Distances returns the BFS distance from `from` to every cell, indexed
// [y][x]. Unreachable cells hold -1.
func Distances(g *Grid, from Coord) ([][]int, error) {
	if !g.InBounds(from) {
		return nil, fmt.Errorf("maze: origin %v outside [0,%d): %w", from, g.size, ErrInvalidArgument)
	}

	dist := make([][]int, g.size)
	for y := range dist {
		dist[y] = make([]int, g.size)
		for x := range dist[y] {
			dist[y][x] = -1
		}
	}

	dist[from.Y][from.X] = 0
	frontier := []Coord{from}
	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]

		walls := g.cells[g.index(cur)]
		for _, d := range Directions {
			n, ok := g.Neighbor(cur, d)
			if !ok || walls.Has(d) || dist[n.Y][n.X] >= 0 {
				continue
			}
			dist[n.Y][n.X] = dist[cur.Y][cur.X] + 1
			frontier = append(frontier, n)
		}
	}
	return dist, nil
}

// Reachable counts the cells reachable from `from`.
func Reachable(g *Grid, from Coord) int {
	dist, err := Distances(g, from)
	if err != nil {
		return 0
	}
	count := 0
	for _, row := range dist {
		for _, d := range row {
			if d >= 0 {
				count++
			}
		}
	}
	return count
}

// Farthest returns the cell with the greatest BFS distance from `from`
// and that distance. Ties keep the first cell in row-major order.
func Farthest(g *Grid, from Coord) (Coord, int, error) {
	dist, err := Distances(g, from)
	if err != nil {
		return from, 0, err
	}
	best, bestDist := from, 0
	for y, row := range dist {
		for x, d := range row {
			if d > bestDist {
				best, bestDist = C(x, y), d
			}
		}
	}
	return best, bestDist, nil
}
