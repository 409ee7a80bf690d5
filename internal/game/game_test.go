package game

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/session"
)

// 10 frames per second keeps the arithmetic simple: one frame is 100ms.
func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(config.DefaultMazeConfig(), nil)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 40, TickRate: 10, Seed: seed})
	return g
}

func idle(g *Game, frames int) {
	for i := 0; i < frames; i++ {
		g.Step(core.NewInputFrame())
	}
}

func actionToward(from, to maze.Coord) core.Action {
	switch {
	case to.X > from.X:
		return core.ActionRight
	case to.X < from.X:
		return core.ActionLeft
	case to.Y > from.Y:
		return core.ActionDown
	default:
		return core.ActionUp
	}
}

// solve asks for a hint and walks it to the goal.
func solve(t *testing.T, g *Game) core.StepResult {
	t.Helper()
	res := g.Step(core.NewInputFrame(core.ActionHint))
	path := g.sess.HintPath()
	require.NotEmpty(t, path)

	pos := g.sess.Player()
	for _, next := range path {
		res = g.Step(core.NewInputFrame(actionToward(pos, next)))
		require.True(t, res.Moved, "move %v -> %v", pos, next)
		pos = next
	}
	return res
}

func TestResetStartsDefaultDifficulty(t *testing.T) {
	g := newTestGame(t, 1)
	snap := g.Snapshot().Session

	assert.Equal(t, session.Active, snap.State)
	assert.Equal(t, config.DifficultyEasy, snap.Difficulty)
	assert.Equal(t, 6, snap.Size)
	assert.Equal(t, maze.C(0, 0), snap.Player)
	assert.Equal(t, maze.C(5, 5), snap.Goal)
	assert.Equal(t, "active", g.State().Phase)
}

func TestSetDifficulty(t *testing.T) {
	g := New(config.DefaultMazeConfig(), nil)
	g.SetDifficulty(config.DifficultyHard)
	g.Reset(core.RuntimeConfig{Seed: 3})
	assert.Equal(t, 15, g.Snapshot().Session.Size)
}

func TestDeterministicPerSeed(t *testing.T) {
	a := newTestGame(t, 12345)
	b := newTestGame(t, 12345)
	assert.Equal(t, a.Grid().String(), b.Grid().String())
	assert.Equal(t, a.Snapshot().MazeSeed, b.Snapshot().MazeSeed)

	c := newTestGame(t, 54321)
	assert.NotEqual(t, a.Snapshot().MazeSeed, c.Snapshot().MazeSeed)
}

func TestMazeSeedReproducesGrid(t *testing.T) {
	g := newTestGame(t, 77)
	rebuilt, err := maze.Backtracker(6, maze.RandomOrder(rand.New(rand.NewSource(g.Snapshot().MazeSeed))))
	require.NoError(t, err)
	assert.Equal(t, rebuilt.String(), g.Grid().String())
}

func TestClockTicksWithFrames(t *testing.T) {
	g := newTestGame(t, 1)
	idle(g, 9)
	assert.Equal(t, 0, g.State().Elapsed)
	idle(g, 1)
	assert.Equal(t, 1, g.State().Elapsed)
	idle(g, 25)
	assert.Equal(t, 3, g.State().Elapsed)
}

func TestPauseHaltsClockAndMoves(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(core.NewInputFrame(core.ActionPause))
	require.True(t, g.State().Paused)

	idle(g, 50)
	for _, a := range []core.Action{core.ActionRight, core.ActionDown, core.ActionHint} {
		g.Step(core.NewInputFrame(a))
	}
	st := g.State()
	assert.Equal(t, 0, st.Elapsed)
	assert.Equal(t, 0, st.Moves)
	assert.False(t, g.Snapshot().ShowHint)

	g.Step(core.NewInputFrame(core.ActionPause))
	assert.False(t, g.State().Paused)
	idle(g, 10)
	assert.Equal(t, 1, g.State().Elapsed)
}

func TestBlockedMoveIsIgnored(t *testing.T) {
	g := newTestGame(t, 1)
	// The start cell always has its north and west walls.
	res := g.Step(core.NewInputFrame(core.ActionUp))
	assert.False(t, res.Moved)
	res = g.Step(core.NewInputFrame(core.ActionLeft))
	assert.False(t, res.Moved)
	assert.Equal(t, 0, g.State().Moves)
}

func TestSolveWithHint(t *testing.T) {
	g := newTestGame(t, 9)
	idle(g, 20)

	hint, err := maze.ShortestPath(g.Grid(), maze.C(0, 0), maze.C(5, 5))
	require.NoError(t, err)

	res := solve(t, g)
	require.True(t, res.Won)
	require.NotNil(t, res.Run)
	assert.Equal(t, core.RunSummary{
		Difficulty: "easy",
		Size:       6,
		Algorithm:  "backtracker",
		Seed:       g.Snapshot().MazeSeed,
		Moves:      len(hint),
		Seconds:    res.State.Elapsed,
		NewBest:    true,
	}, *res.Run)

	assert.True(t, res.State.GameOver)
	assert.Equal(t, "won", res.State.Phase)
	assert.True(t, res.State.HasBest)
	assert.Equal(t, res.State.Elapsed, res.State.BestTime)

	// Stray input after the win changes nothing.
	elapsed := res.State.Elapsed
	idle(g, 30)
	res = g.Step(core.NewInputFrame(core.ActionLeft))
	assert.False(t, res.Moved)
	assert.Equal(t, elapsed, g.State().Elapsed)
	assert.Equal(t, len(hint), g.State().Moves)
}

func TestWinNoticeAndConfetti(t *testing.T) {
	g := newTestGame(t, 4)
	solve(t, g)

	snap := g.Snapshot()
	assert.False(t, snap.WinNotice, "notice waits for the delay")
	assert.Equal(t, 40, snap.Confetti)

	idle(g, 2)
	assert.True(t, g.Snapshot().WinNotice)

	idle(g, 20)
	assert.Zero(t, g.Snapshot().Confetti)
}

func TestRestartKeepsBestTime(t *testing.T) {
	g := newTestGame(t, 5)
	idle(g, 30)
	first := solve(t, g).State.Elapsed

	g.Step(core.NewInputFrame(core.ActionRestart))
	st := g.State()
	assert.Equal(t, "active", st.Phase)
	assert.Equal(t, 0, st.Moves)
	assert.Equal(t, 0, st.Elapsed)
	assert.True(t, st.HasBest)
	assert.Equal(t, first, st.BestTime)
	assert.Zero(t, g.Snapshot().Confetti)

	res := solve(t, g)
	assert.Less(t, res.State.Elapsed, first)
	assert.True(t, res.Run.NewBest)
	assert.Equal(t, res.State.Elapsed, res.State.BestTime)
}

func TestDifficultyActions(t *testing.T) {
	g := newTestGame(t, 6)
	tests := []struct {
		action core.Action
		size   int
	}{
		{core.ActionDifficulty3, 15},
		{core.ActionDifficulty2, 10},
		{core.ActionRestart, 10},
		{core.ActionDifficulty1, 6},
	}
	for _, tc := range tests {
		g.Step(core.NewInputFrame(tc.action))
		assert.Equal(t, tc.size, g.Snapshot().Session.Size, "after %s", tc.action)
	}
}

func TestHintFollowsRoute(t *testing.T) {
	g := newTestGame(t, 8)
	g.Step(core.NewInputFrame(core.ActionHint))
	require.True(t, g.Snapshot().ShowHint)
	path := g.sess.HintPath()
	assert.Equal(t, path, g.visibleHint())

	// Following the hint keeps the rest of it visible.
	g.Step(core.NewInputFrame(actionToward(maze.C(0, 0), path[0])))
	assert.Equal(t, path[1:], g.visibleHint())

	// Going back to where the hint was asked shows all of it again.
	g.Step(core.NewInputFrame(actionToward(path[0], maze.C(0, 0))))
	assert.Equal(t, path, g.visibleHint())
}

func TestHintHidesWhenLeavingRoute(t *testing.T) {
	// Find a maze whose start cell opens both east and south, so one of
	// the two exits leaves the solution route.
	for seed := int64(1); seed <= 200; seed++ {
		g := newTestGame(t, seed)
		walls := g.Grid().Walls(maze.C(0, 0))
		if walls.Has(maze.East) || walls.Has(maze.South) {
			continue
		}

		g.Step(core.NewInputFrame(core.ActionHint))
		off := core.ActionRight
		if g.sess.HintPath()[0] == maze.C(1, 0) {
			off = core.ActionDown
		}
		res := g.Step(core.NewInputFrame(off))
		require.True(t, res.Moved)
		assert.False(t, g.Snapshot().ShowHint)
		assert.Nil(t, g.visibleHint())
		return
	}
	t.Fatal("no maze with a branching start cell")
}

func TestUnknownAlgorithmFallsBack(t *testing.T) {
	cfg := config.DefaultMazeConfig()
	cfg.Game.Algorithm = "kruskal"
	g := New(cfg, nil)
	g.Reset(core.RuntimeConfig{Seed: 2})
	assert.Equal(t, session.Active, g.Snapshot().Session.State)
	assert.Equal(t, 35, g.Grid().OpenPassages())
}

func TestRenderBoard(t *testing.T) {
	g := newTestGame(t, 1)
	dst := core.NewScreen(80, 40)
	g.Render(dst)

	assert.True(t, strings.HasPrefix(dst.Row(0), " Maze — Easy 6×6"), dst.Row(0))
	assert.Contains(t, dst.Row(0), "Moves 0")
	assert.Contains(t, dst.Row(0), "Best -")

	// 25x13 board centered below the two HUD rows.
	x0, y0 := 27, 14
	assert.Equal(t, '┌', dst.Get(x0, y0))
	assert.Equal(t, '┐', dst.Get(x0+24, y0))
	assert.Equal(t, '└', dst.Get(x0, y0+12))
	assert.Equal(t, '┘', dst.Get(x0+24, y0+12))
	assert.Contains(t, []rune{'●', '○'}, dst.Get(x0+2, y0+1))
	assert.Contains(t, []rune{'◆', '◇'}, dst.Get(x0+22, y0+11))
	assert.Equal(t, core.ColorBrightBlue, dst.GetCell(x0, y0).Color)
}

func TestRenderWallsMatchGrid(t *testing.T) {
	g := newTestGame(t, 2)
	dst := core.NewScreen(80, 40)
	g.Render(dst)
	grid := g.Grid()

	x0, y0 := 27, 14
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			c := maze.C(x, y)
			px, py := x0+x*cellW, y0+y*cellH
			north := dst.Get(px+2, py) == '─'
			west := dst.Get(px, py+1) == '│'
			assert.Equal(t, grid.Walls(c).Has(maze.North), north, "north wall of %v", c)
			assert.Equal(t, grid.Walls(c).Has(maze.West), west, "west wall of %v", c)
		}
	}
}

func TestRenderHint(t *testing.T) {
	g := newTestGame(t, 3)
	g.Step(core.NewInputFrame(core.ActionHint))
	dst := core.NewScreen(80, 40)
	g.Render(dst)

	dots := strings.Count(dst.String(), "·")
	assert.Equal(t, len(g.sess.HintPath())-1, dots, "every hinted cell but the goal")
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, 1)
	dst := core.NewScreen(30, 10)
	g.Render(dst)
	assert.Contains(t, dst.String(), "Window too small")
	assert.Contains(t, dst.String(), "Need 25x15")
}

func TestRenderPausedAndWin(t *testing.T) {
	g := newTestGame(t, 1)
	dst := core.NewScreen(80, 40)

	g.Step(core.NewInputFrame(core.ActionPause))
	g.Render(dst)
	assert.Contains(t, dst.String(), "Paused")

	g.Step(core.NewInputFrame(core.ActionPause))
	solve(t, g)
	idle(g, 5)
	g.Render(dst)
	assert.Contains(t, dst.String(), "Solved in")
	assert.Contains(t, dst.String(), "New best time!")
}

func TestRenderOverlayCoversBoard(t *testing.T) {
	g := newTestGame(t, 1)
	dst := core.NewScreen(80, 40)
	g.Step(core.NewInputFrame(core.ActionPause))
	g.Render(dst)

	// The 23x5 box sits at (28, 17) on top of the board walls.
	assert.Equal(t, strings.Repeat(" ", 21), string([]rune(dst.Row(19))[29:50]))
	assert.Equal(t, "Paused", string([]rune(dst.Row(18))[36:42]))
	assert.Equal(t, '┌', dst.Get(28, 17))

	assert.Equal(t, strings.Repeat("─", 80), dst.Row(1))
	assert.Equal(t, core.ColorGray, dst.GetCell(79, 1).Color)
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "0:00", FormatSeconds(0))
	assert.Equal(t, "0:09", FormatSeconds(9))
	assert.Equal(t, "2:05", FormatSeconds(125))
	assert.Equal(t, "0:00", FormatSeconds(-4))
}

func TestResetKeepsChosenDifficulty(t *testing.T) {
	g := newTestGame(t, 4)
	g.Step(core.NewInputFrame(core.ActionDifficulty2))
	require.Equal(t, 10, g.Snapshot().Session.Size)

	g.Reset(core.RuntimeConfig{Seed: 5, TickRate: 10})
	assert.Equal(t, config.DifficultyModerate, g.Snapshot().Session.Difficulty)

	g.SetDifficulty(config.DifficultyHard)
	g.Reset(core.RuntimeConfig{Seed: 6, TickRate: 10})
	assert.Equal(t, 15, g.Snapshot().Session.Size)
}

// routeActions turns a path starting next to from into movement actions.
func routeActions(from maze.Coord, path []maze.Coord) []core.Action {
	actions := make([]core.Action, 0, len(path))
	for _, next := range path {
		actions = append(actions, actionToward(from, next))
		from = next
	}
	return actions
}

func TestQueuedMovesApplyInOrder(t *testing.T) {
	g := newTestGame(t, 9)
	g.Step(core.NewInputFrame(core.ActionHint))
	path := g.sess.HintPath()
	require.GreaterOrEqual(t, len(path), 3)

	res := g.Step(core.NewInputFrame(routeActions(maze.C(0, 0), path[:2])...))
	assert.True(t, res.Moved)
	assert.Equal(t, 2, res.State.Moves)
	assert.Equal(t, path[1], g.sess.Player())
	assert.True(t, g.Snapshot().ShowHint)
}

func TestWholeRouteInOneFrame(t *testing.T) {
	g := newTestGame(t, 9)
	path, err := maze.ShortestPath(g.Grid(), maze.C(0, 0), maze.C(5, 5))
	require.NoError(t, err)

	// Moves queued after the winning one are dropped.
	actions := append(routeActions(maze.C(0, 0), path), core.ActionLeft, core.ActionUp)
	res := g.Step(core.NewInputFrame(actions...))
	require.True(t, res.Won)
	require.NotNil(t, res.Run)
	assert.Equal(t, len(path), res.Run.Moves)
	assert.Equal(t, maze.C(5, 5), g.sess.Player())
}

func TestFrameDeltaDrivesClock(t *testing.T) {
	g := newTestGame(t, 1)
	frame := core.NewInputFrame()
	frame.Delta = 50 * time.Millisecond
	for i := 0; i < 19; i++ {
		g.Step(frame)
	}
	assert.Equal(t, 0, g.State().Elapsed)
	g.Step(frame)
	assert.Equal(t, 1, g.State().Elapsed)

	// A stalled frame counts for at most maxFrameDelta.
	frame.Delta = 5 * time.Second
	for i := 0; i < 4; i++ {
		g.Step(frame)
	}
	assert.Equal(t, 2, g.State().Elapsed)
}
