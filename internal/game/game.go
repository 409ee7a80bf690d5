// Package game binds a maze session to the platform's core.Game contract:
// it maps actions to session operations, drives the session clock one
// frame at a time and draws the maze, hint, markers and win effects.
package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/session"
)

// ID is the game identifier used in storage.
const ID = "maze"

// Game is the playable maze.
type Game struct {
	cfg    config.MazeConfig
	logger *log.Logger
	colors palette
	next   config.Difficulty // Started by the next Reset

	rng      *rand.Rand
	clock    *session.FrameClock
	sess     *session.Session
	frame    time.Duration
	algo     string // Resolved generator name
	mazeSeed int64  // Seed of the current grid, for reproduction

	tick   uint64
	pulse  float64
	paused bool

	showHint bool
	hintFrom maze.Coord // Player position when the hint was requested

	won      bool
	sinceWin time.Duration
	confetti []particle

	message string // Last error shown in the status line
}

// New creates a maze game. A nil logger discards output.
func New(cfg config.MazeConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:    cfg,
		logger: logger,
		colors: resolvePalette(cfg.Colors, logger),
		next:   cfg.Game.DefaultDifficulty,
	}
}

// SetDifficulty selects the difficulty of the run started by the next Reset.
// Difficulty changes made in game carry over to later Resets as well.
func (g *Game) SetDifficulty(d config.Difficulty) {
	g.next = d
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Maze" }

// Reset seeds the game and starts a run. The session, and with it the
// best time, is created on the first Reset and kept afterwards, so a
// player returning from the menu keeps their best time.
func (g *Game) Reset(rc core.RuntimeConfig) {
	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	rate := rc.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	g.frame = time.Second / time.Duration(rate)

	if g.sess == nil {
		g.clock = session.NewFrameClock()
		g.sess = session.New(session.Options{
			Scheduler:    g.clock,
			Generate:     g.generator(),
			Sizes:        g.cfg.SizeMap(),
			TickInterval: g.cfg.Game.TickInterval,
			Logger:       g.logger,
		})
	}

	g.tick = 0
	g.pulse = 0
	g.start(g.next)
}

// generator resolves the configured algorithm. Every grid gets its own
// seed drawn from the game RNG so a run can be reproduced from the journal.
func (g *Game) generator() session.GenerateFunc {
	g.algo = g.cfg.Game.Algorithm
	gen, err := registry.Get(g.algo)
	if err != nil {
		g.logger.Warn("falling back to default generator", "algorithm", g.algo, "err", err)
		g.algo = registry.Backtracker
		gen, _ = registry.Get(g.algo)
	}
	return func(size int) (*maze.Grid, error) {
		seed := g.rng.Int63()
		grid, err := gen(size, rand.New(rand.NewSource(seed)))
		if err != nil {
			return nil, err
		}
		g.mazeSeed = seed
		return grid, nil
	}
}

// start begins a new run and clears per-run presentation state.
func (g *Game) start(d config.Difficulty) {
	if err := g.sess.Start(d); err != nil {
		g.logger.Error("start run", "difficulty", d, "err", err)
		g.message = fmt.Sprintf("cannot start %s maze", d)
		return
	}
	g.next = d
	g.message = ""
	g.paused = false
	g.showHint = false
	g.won = false
	g.sinceWin = 0
	g.confetti = nil
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.pulse += g.cfg.Animation.PulseStep
	result := core.StepResult{}

	switch {
	case in.Has(core.ActionDifficulty1):
		g.start(config.DifficultyEasy)
	case in.Has(core.ActionDifficulty2):
		g.start(config.DifficultyModerate)
	case in.Has(core.ActionDifficulty3):
		g.start(config.DifficultyHard)
	case in.Has(core.ActionRestart):
		if g.sess.State() != session.Idle {
			g.start(g.sess.Difficulty())
		}
	}

	if in.Has(core.ActionPause) && g.sess.State() == session.Active {
		g.paused = !g.paused
	}

	step := g.frameDelta(in)
	if !g.paused {
		if in.Has(core.ActionHint) {
			g.requestHint()
		}
		for _, a := range in.Moves {
			if g.sess.State() != session.Active {
				break
			}
			res := g.sess.Move(moveDirection(a))
			if !res.Moved {
				continue
			}
			result.Moved = true
			if g.showHint && !g.onHint() {
				g.showHint = false
			}
			if res.Won {
				result.Won = true
				result.Run = g.onWin()
			}
		}
		g.clock.Advance(step)
	}

	if g.won {
		g.sinceWin += step
		g.stepConfetti()
	}

	result.State = g.State()
	return result
}

// maxFrameDelta caps the time one frame may account for, so a stalled
// terminal does not dump seconds onto the clock at once.
const maxFrameDelta = 250 * time.Millisecond

// frameDelta returns the time covered by the frame: the measured delta
// when the caller supplies one, else the nominal frame length.
func (g *Game) frameDelta(in core.InputFrame) time.Duration {
	if in.Delta <= 0 {
		return g.frame
	}
	return min(in.Delta, max(g.frame, maxFrameDelta))
}

// moveDirection maps a movement action to a maze direction.
func moveDirection(a core.Action) maze.Direction {
	switch a {
	case core.ActionUp:
		return maze.North
	case core.ActionRight:
		return maze.East
	case core.ActionDown:
		return maze.South
	default:
		return maze.West
	}
}

func (g *Game) requestHint() {
	if _, err := g.sess.Hint(); err != nil {
		g.logger.Warn("hint", "err", err)
		g.message = "no path to the goal"
		return
	}
	g.showHint = true
	g.hintFrom = g.sess.Player()
}

// visibleHint returns the part of the stored hint still ahead of the player.
func (g *Game) visibleHint() []maze.Coord {
	if !g.showHint {
		return nil
	}
	path := g.sess.HintPath()
	player := g.sess.Player()
	if player == g.hintFrom {
		return path
	}
	for i, c := range path {
		if c == player {
			return path[i+1:]
		}
	}
	return nil
}

// onHint reports whether the player is still on the hinted route.
func (g *Game) onHint() bool {
	player := g.sess.Player()
	if player == g.hintFrom {
		return true
	}
	for _, c := range g.sess.HintPath() {
		if c == player {
			return true
		}
	}
	return false
}

func (g *Game) onWin() *core.RunSummary {
	g.won = true
	g.sinceWin = 0
	g.showHint = false
	g.spawnConfetti()

	r, ok := g.sess.LastResult()
	if !ok {
		return nil
	}
	g.logger.Info("maze solved",
		"difficulty", r.Difficulty,
		"moves", r.Moves,
		"seconds", g.seconds(r.Elapsed),
		"new_best", r.NewBest,
	)
	return &core.RunSummary{
		Difficulty: string(r.Difficulty),
		Size:       r.Size,
		Algorithm:  g.algo,
		Seed:       g.mazeSeed,
		Moves:      r.Moves,
		Seconds:    g.seconds(r.Elapsed),
		NewBest:    r.NewBest,
	}
}

// showWinNotice reports whether the win overlay is due.
func (g *Game) showWinNotice() bool {
	return g.won && g.sinceWin >= g.cfg.Game.WinNoticeDelay
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sess == nil {
		return core.GameState{Phase: session.Idle.String()}
	}
	best, hasBest := g.sess.BestTime()
	return core.GameState{
		Phase:      g.sess.State().String(),
		Difficulty: string(g.sess.Difficulty()),
		Moves:      g.sess.Moves(),
		Elapsed:    g.seconds(g.sess.Elapsed()),
		BestTime:   g.seconds(best),
		HasBest:    hasBest,
		GameOver:   g.sess.State() == session.Won,
		Paused:     g.paused,
	}
}

// Close stops the session clock.
func (g *Game) Close() {
	if g.sess != nil {
		g.sess.Stop()
	}
}
