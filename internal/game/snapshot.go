package game

import (
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/session"
)

// Snapshot captures the game state for determinism tests and debugging.
type Snapshot struct {
	Tick      uint64
	Session   session.Snapshot
	MazeSeed  int64
	Paused    bool
	ShowHint  bool
	WinNotice bool
	Confetti  int // Live confetti particles
	Message   string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tick,
		MazeSeed:  g.mazeSeed,
		Paused:    g.paused,
		ShowHint:  g.showHint,
		WinNotice: g.showWinNotice(),
		Confetti:  len(g.confetti),
		Message:   g.message,
	}
	if g.sess != nil {
		snap.Session = g.sess.Snapshot()
	}
	return snap
}

// Grid returns a copy of the current maze, or nil before Reset.
func (g *Game) Grid() *maze.Grid {
	if g.sess == nil || g.sess.Grid() == nil {
		return nil
	}
	return g.sess.Grid().Clone()
}
