package maze

import "strings"

// Markers is an optional set of cells highlighted by Text.
type Markers struct {
	Start Coord
	Goal  Coord
	Path  []Coord
}

// String renders the grid as plain ASCII, three columns per cell:
//
//	+---+---+
//	|       |
//	+---+   +
func (g *Grid) String() string {
	return g.Text(nil)
}

// Text renders the grid as ASCII with optional start/goal/path markers
// ("S", "G" and "." respectively).
func (g *Grid) Text(m *Markers) string {
	onPath := make(map[Coord]bool)
	if m != nil {
		for _, c := range m.Path {
			onPath[c] = true
		}
	}

	var b strings.Builder
	b.Grow((g.size*4 + 2) * (g.size*2 + 1))

	b.WriteString("+")
	for x := 0; x < g.size; x++ {
		if g.Walls(C(x, 0)).Has(North) {
			b.WriteString("---+")
		} else {
			b.WriteString("   +")
		}
	}
	b.WriteString("\n")

	for y := 0; y < g.size; y++ {
		if g.Walls(C(0, y)).Has(West) {
			b.WriteString("|")
		} else {
			b.WriteString(" ")
		}
		for x := 0; x < g.size; x++ {
			c := C(x, y)
			switch {
			case m != nil && c == m.Start:
				b.WriteString(" S ")
			case m != nil && c == m.Goal:
				b.WriteString(" G ")
			case onPath[c]:
				b.WriteString(" . ")
			default:
				b.WriteString("   ")
			}
			if g.Walls(c).Has(East) {
				b.WriteString("|")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n+")

		for x := 0; x < g.size; x++ {
			if g.Walls(C(x, y)).Has(South) {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
