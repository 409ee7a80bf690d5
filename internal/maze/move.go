package maze

// TryMove applies the movement rule: a step from pos in direction d is legal
// when pos is inside the grid and no wall blocks that side. Boundary walls
// are never removed, so a legal step always lands inside the grid.
// On an illegal move pos is returned unchanged with ok == false.
func TryMove(g *Grid, pos Coord, d Direction) (next Coord, ok bool) {
	if !g.InBounds(pos) || !d.Valid() {
		return pos, false
	}
	if g.cells[g.index(pos)].Has(d) {
		return pos, false
	}
	return pos.Step(d), true
}
