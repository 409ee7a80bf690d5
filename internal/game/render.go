package game

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

// Each maze cell is drawn as cellW columns by cellH rows, sharing its
// border with the neighbouring cells.
const (
	cellW   = 4
	cellH   = 2
	hudRows = 2
)

// Junction bits for box-drawing corners.
const (
	segUp = 1 << iota
	segRight
	segDown
	segLeft
)

var junctions = [16]rune{
	0:                                    ' ',
	segUp:                                '│',
	segDown:                              '│',
	segUp | segDown:                      '│',
	segLeft:                              '─',
	segRight:                             '─',
	segLeft | segRight:                   '─',
	segUp | segRight:                     '└',
	segRight | segDown:                   '┌',
	segDown | segLeft:                    '┐',
	segLeft | segUp:                      '┘',
	segUp | segRight | segDown:           '├',
	segRight | segDown | segLeft:         '┬',
	segDown | segLeft | segUp:            '┤',
	segLeft | segUp | segRight:           '┴',
	segUp | segRight | segDown | segLeft: '┼',
}

// BoardSize returns the screen area a maze of n×n cells needs, HUD included.
func BoardSize(n int) (w, h int) {
	return n*cellW + 1, n*cellH + 1 + hudRows
}

// FormatSeconds renders a duration in seconds as m:ss.
func FormatSeconds(s int) string {
	if s < 0 {
		s = 0
	}
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sess == nil || g.sess.Grid() == nil {
		g.renderOverlay(dst, "Maze", "Starting...")
		return
	}

	g.renderHUD(dst)

	grid := g.sess.Grid()
	bw, bh := BoardSize(grid.Size())
	area := core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows)
	if !area.Fits(bw, bh-hudRows) {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d, have %dx%d", bw, bh, dst.Width(), dst.Height()))
		return
	}
	board := area.CenterRect(bw, bh-hudRows)

	g.renderWalls(dst, grid, board)
	g.renderHint(dst, board)
	g.renderMarkers(dst, board)
	g.renderConfetti(dst)

	switch {
	case g.showWinNotice():
		g.renderWinNotice(dst)
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the status line and the separator or message below it.
func (g *Game) renderHUD(dst *core.Screen) {
	st := g.State()
	best := "-"
	if st.HasBest {
		best = FormatSeconds(st.BestTime)
	}
	size := g.sess.Grid().Size()
	hud := fmt.Sprintf(" Maze — %s %d×%d   Time %s   Moves %d   Best %s",
		g.sess.Difficulty().Title(), size, size, FormatSeconds(st.Elapsed), st.Moves, best)
	dst.DrawTextColor(0, 0, hud, g.colors.hud)

	if g.message != "" {
		dst.DrawTextColor(1, 1, g.message, core.ColorBrightRed)
		return
	}
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// hWall reports whether the segment from corner (cx, cy) to (cx+1, cy)
// is a wall.
func hWall(grid *maze.Grid, cx, cy int) bool {
	n := grid.Size()
	if cx < 0 || cx >= n || cy < 0 || cy > n {
		return false
	}
	if cy == n {
		return grid.Walls(maze.C(cx, n-1)).Has(maze.South)
	}
	return grid.Walls(maze.C(cx, cy)).Has(maze.North)
}

// vWall reports whether the segment from corner (cx, cy) to (cx, cy+1)
// is a wall.
func vWall(grid *maze.Grid, cx, cy int) bool {
	n := grid.Size()
	if cy < 0 || cy >= n || cx < 0 || cx > n {
		return false
	}
	if cx == n {
		return grid.Walls(maze.C(n-1, cy)).Has(maze.East)
	}
	return grid.Walls(maze.C(cx, cy)).Has(maze.West)
}

func (g *Game) renderWalls(dst *core.Screen, grid *maze.Grid, b core.Rect) {
	n := grid.Size()
	for cy := 0; cy <= n; cy++ {
		for cx := 0; cx <= n; cx++ {
			px, py := b.X+cx*cellW, b.Y+cy*cellH

			mask := 0
			if vWall(grid, cx, cy-1) {
				mask |= segUp
			}
			if hWall(grid, cx, cy) {
				mask |= segRight
			}
			if vWall(grid, cx, cy) {
				mask |= segDown
			}
			if hWall(grid, cx-1, cy) {
				mask |= segLeft
			}
			dst.SetColored(px, py, junctions[mask], g.colors.walls)

			if mask&segRight != 0 {
				dst.DrawHLine(px+1, py, cellW-1, '─', g.colors.walls)
			}
			if mask&segDown != 0 {
				dst.DrawVLine(px, py+1, cellH-1, '│', g.colors.walls)
			}
		}
	}
}

// cellCenter returns the screen position of a cell's marker.
func cellCenter(b core.Rect, c maze.Coord) (int, int) {
	return b.X + c.X*cellW + cellW/2, b.Y + c.Y*cellH + cellH/2
}

func (g *Game) renderHint(dst *core.Screen, b core.Rect) {
	color := g.colors.hintDim
	if g.glow() >= 0.5 {
		color = g.colors.hint
	}
	for _, c := range g.visibleHint() {
		x, y := cellCenter(b, c)
		dst.SetColored(x, y, '·', color)
	}
}

func (g *Game) renderMarkers(dst *core.Screen, b core.Rect) {
	goalGlyph, playerGlyph := '◇', '○'
	if g.pulseOn() {
		goalGlyph, playerGlyph = '◆', '●'
	}
	gx, gy := cellCenter(b, g.sess.Goal())
	dst.SetColored(gx, gy, goalGlyph, g.colors.goal)

	px, py := cellCenter(b, g.sess.Player())
	dst.SetColored(px, py, playerGlyph, g.colors.player)
}

func (g *Game) renderConfetti(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()-hudRows
	if w <= 0 || h <= 0 {
		return
	}
	for _, p := range g.confetti {
		x := core.Clamp(int(p.x*float64(w)), 0, w-1)
		y := hudRows + core.Clamp(int(p.y*float64(h)), 0, h-1)
		dst.SetColored(x, y, p.glyph, p.color)
	}
}

func (g *Game) renderWinNotice(dst *core.Screen) {
	st := g.State()
	line1 := fmt.Sprintf("Solved in %s with %d moves", FormatSeconds(st.Elapsed), st.Moves)
	line2 := fmt.Sprintf("Best %s", FormatSeconds(st.BestTime))
	if r, ok := g.sess.LastResult(); ok && r.NewBest {
		line2 = "New best time!"
	}
	g.renderOverlay(dst, line1, line2, "R new maze · 1/2/3 difficulty")
}

// renderOverlay draws a centered box with one line of text per row.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).CenterRect(width+4, len(lines)*2+1)

	dst.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ')
	dst.DrawBoxColor(box, g.colors.hud)
	for i, l := range lines {
		color := g.colors.hud
		if i == 0 {
			color = core.ColorBrightWhite
		}
		dst.DrawTextCentered(box, box.Y+1+i*2, l, color)
	}
}

// seconds converts session ticks to whole seconds.
func (g *Game) seconds(ticks int) int {
	return int(time.Duration(ticks) * g.cfg.Game.TickInterval / time.Second)
}
