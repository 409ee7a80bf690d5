// Package tui provides the Bubble Tea integration for the maze.
// It handles the terminal UI loop, input mapping, the menus and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// model that scheduled it, so a stale tick left over from a closed game
// does not start a second loop in the next one.
type TickMsg struct {
	At   time.Time
	Loop uint64
}

var tickLoops atomic.Uint64

// newTickLoop returns a fresh loop identifier.
func newTickLoop() uint64 {
	return tickLoops.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Loop: loop}
	})
}
