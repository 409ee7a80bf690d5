// Package maze provides the square wall-encoded grid the game is played on,
// the generators that carve it into a perfect maze, the breadth-first
// solver used for hints, and the movement rule shared by every caller.
//
// The package has no terminal or timing dependencies; it is safe to use from
// tests, the CLI exporter and the game alike.
package maze

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Callers should test with errors.Is.
var (
	// ErrInvalidArgument is returned for non-positive sizes and coordinates
	// outside the grid. Values are never clamped.
	ErrInvalidArgument = errors.New("maze: invalid argument")

	// ErrUnreachable is returned by the solver when no passage connects
	// the two cells.
	ErrUnreachable = errors.New("maze: unreachable")
)

// Direction is one of the four cardinal directions. The numeric values
// double as wall bit indexes.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the cardinal directions in their canonical order.
var Directions = [4]Direction{North, East, South, West}

// Opposite returns the direction rotated by 180 degrees.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the coordinate offset of one step. Y grows southwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a direction name to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n", "up":
		return North, nil
	case "east", "e", "right":
		return East, nil
	case "south", "s", "down":
		return South, nil
	case "west", "w", "left":
		return West, nil
	}
	return 0, fmt.Errorf("maze: unknown direction %q: %w", s, ErrInvalidArgument)
}

// Coord is a cell coordinate. X grows eastwards, Y southwards.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Step returns the coordinate one cell away in direction d.
func (c Coord) Step(d Direction) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// WallMask holds the four wall flags of a cell, one bit per Direction.
type WallMask uint8

// AllWalls is the mask of a fully closed cell.
const AllWalls WallMask = 1<<North | 1<<East | 1<<South | 1<<West

// Has reports whether the wall in direction d is present.
func (m WallMask) Has(d Direction) bool {
	return m&(1<<d) != 0
}

// Grid is an N×N maze. Walls are stored per cell and kept symmetric:
// the only way to open a wall is RemoveWallPair, which clears both sides.
type Grid struct {
	size  int
	cells []WallMask // row-major, index y*size+x
}

// New returns a size×size grid with every wall present.
func New(size int) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("maze: grid size %d must be positive: %w", size, ErrInvalidArgument)
	}

	cells := make([]WallMask, size*size)
	for i := range cells {
		cells[i] = AllWalls
	}
	return &Grid{size: size, cells: cells}, nil
}

// Size returns the grid dimension N.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.size && c.Y >= 0 && c.Y < g.size
}

// Neighbor returns the adjacent cell in direction d and whether it exists.
func (g *Grid) Neighbor(c Coord, d Direction) (Coord, bool) {
	if !d.Valid() {
		return c, false
	}
	n := c.Step(d)
	return n, g.InBounds(n)
}

// HasWall reports whether cell c has a wall in direction d.
func (g *Grid) HasWall(c Coord, d Direction) (bool, error) {
	if err := g.check(c, d); err != nil {
		return false, err
	}
	return g.cells[g.index(c)].Has(d), nil
}

// Walls returns the wall mask of cell c. Out-of-range cells report all walls.
func (g *Grid) Walls(c Coord) WallMask {
	if !g.InBounds(c) {
		return AllWalls
	}
	return g.cells[g.index(c)]
}

// RemoveWallPair opens the passage between c and its neighbour in direction d.
// Both mirrored flags are cleared together. Outer boundary walls cannot be
// removed.
func (g *Grid) RemoveWallPair(c Coord, d Direction) error {
	if err := g.check(c, d); err != nil {
		return err
	}
	n, ok := g.Neighbor(c, d)
	if !ok {
		return fmt.Errorf("maze: wall %s of %v is on the boundary: %w", d, c, ErrInvalidArgument)
	}

	g.cells[g.index(c)] &^= 1 << d
	g.cells[g.index(n)] &^= 1 << d.Opposite()
	return nil
}

// OpenPassages counts the removed wall pairs.
func (g *Grid) OpenPassages() int {
	count := 0
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			m := g.cells[y*g.size+x]
			// Count each pair once, from its west/north cell.
			if !m.Has(East) {
				count++
			}
			if !m.Has(South) {
				count++
			}
		}
	}
	return count
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]WallMask, len(g.cells))
	copy(cells, g.cells)
	return &Grid{size: g.size, cells: cells}
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.size + c.X
}

func (g *Grid) check(c Coord, d Direction) error {
	if !g.InBounds(c) {
		return fmt.Errorf("maze: cell %v outside [0,%d): %w", c, g.size, ErrInvalidArgument)
	}
	if !d.Valid() {
		return fmt.Errorf("maze: %v: %w", d, ErrInvalidArgument)
	}
	return nil
}
