// Package session holds the state of one maze run: the grid, the player,
// the move counter, the elapsed-time timer and the best time seen by this
// session object. It has no terminal or clock dependency of its own; time
// enters only through the injected Scheduler.
package session

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

var (
	// ErrUnknownDifficulty is returned by Start for a difficulty without a size.
	ErrUnknownDifficulty = fmt.Errorf("session: unknown difficulty: %w", maze.ErrInvalidArgument)

	// ErrNotStarted is returned by operations that need a maze while Idle.
	ErrNotStarted = errors.New("session: not started")
)

// State is the lifecycle phase of a session.
type State int

const (
	Idle State = iota
	Active
	Won
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	case Won:
		return "won"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// GenerateFunc builds a new maze of the given size.
type GenerateFunc func(size int) (*maze.Grid, error)

// Options configures a Session. Zero values select defaults.
type Options struct {
	Scheduler    Scheduler                 // Default: a private FrameClock
	Generate     GenerateFunc              // Default: randomized backtracker
	Sizes        map[config.Difficulty]int // Default: config.DefaultMazeConfig sizes
	TickInterval time.Duration             // Default: one second
	Logger       *log.Logger               // Default: discard
}

// MoveResult reports the outcome of Move.
type MoveResult struct {
	Moved bool // The player changed cell
	Won   bool // This move reached the goal
}

// Result describes a finished run.
type Result struct {
	Difficulty config.Difficulty
	Size       int
	Moves      int
	Elapsed    int
	NewBest    bool
}

// Snapshot is a copy of the observable session state.
type Snapshot struct {
	State      State
	Difficulty config.Difficulty
	Size       int
	Player     maze.Coord
	Goal       maze.Coord
	Moves      int
	Elapsed    int
	BestTime   int
	HasBest    bool
	Hint       []maze.Coord
}

// Session is a single-player maze run. It is not safe for concurrent use;
// all calls, including scheduled ticks, must come from one goroutine.
type Session struct {
	scheduler    Scheduler
	generate     GenerateFunc
	sizes        map[config.Difficulty]int
	tickInterval time.Duration
	logger       *log.Logger

	state      State
	difficulty config.Difficulty
	grid       *maze.Grid
	player     maze.Coord
	goal       maze.Coord
	moves      int
	elapsed    int
	hint       []maze.Coord
	timer      Timer

	best    int
	hasBest bool
	last    *Result
}

// New creates an Idle session.
func New(opts Options) *Session {
	s := &Session{
		scheduler:    opts.Scheduler,
		generate:     opts.Generate,
		tickInterval: opts.TickInterval,
		logger:       opts.Logger,
	}
	if s.scheduler == nil {
		s.scheduler = NewFrameClock()
	}
	if s.generate == nil {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		s.generate = func(size int) (*maze.Grid, error) {
			return maze.Backtracker(size, maze.RandomOrder(rng))
		}
	}
	if s.tickInterval <= 0 {
		s.tickInterval = time.Second
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	sizes := opts.Sizes
	if sizes == nil {
		sizes = config.DefaultMazeConfig().SizeMap()
	}
	s.sizes = make(map[config.Difficulty]int, len(sizes))
	for d, n := range sizes {
		s.sizes[d] = n
	}
	return s
}

// Start begins a new run at the given difficulty. Any previous tick timer
// is cancelled before the new one is installed. If the maze cannot be
// generated the previous run is left untouched. A single-cell maze is won
// on the spot with zero moves and zero elapsed time.
func (s *Session) Start(d config.Difficulty) error {
	size, ok := s.sizes[d]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownDifficulty, string(d))
	}
	g, err := s.generate(size)
	if err != nil {
		return fmt.Errorf("session: generate %s maze: %w", d, err)
	}

	s.stopTimer()

	s.difficulty = d
	s.grid = g
	s.player = maze.C(0, 0)
	s.goal = maze.C(g.Size()-1, g.Size()-1)
	s.moves = 0
	s.elapsed = 0
	s.hint = nil
	s.state = Active
	s.timer = s.scheduler.Every(s.tickInterval, s.Tick)

	s.logger.Debug("session started", "difficulty", d, "size", g.Size())
	if s.player == s.goal {
		s.win()
	}
	return nil
}

// Restart starts a new run at the current difficulty.
func (s *Session) Restart() error {
	if s.state == Idle {
		return ErrNotStarted
	}
	return s.Start(s.difficulty)
}

// Move tries to move the player one cell. It is a no-op unless Active.
func (s *Session) Move(d maze.Direction) MoveResult {
	if s.state != Active {
		return MoveResult{}
	}
	next, ok := maze.TryMove(s.grid, s.player, d)
	if !ok {
		return MoveResult{}
	}
	s.player = next
	s.moves++
	if s.player == s.goal {
		s.win()
		return MoveResult{Moved: true, Won: true}
	}
	return MoveResult{Moved: true}
}

// Tick advances the elapsed time by one unit. It is a no-op unless Active.
func (s *Session) Tick() {
	if s.state != Active {
		return
	}
	s.elapsed++
}

// Hint computes the shortest path from the player to the goal and keeps it
// for HintPath.
func (s *Session) Hint() ([]maze.Coord, error) {
	if s.state == Idle {
		return nil, ErrNotStarted
	}
	path, err := maze.ShortestPath(s.grid, s.player, s.goal)
	if err != nil {
		return nil, err
	}
	s.hint = path
	return clonePath(path), nil
}

// HintPath returns the last computed hint. Moves do not clear it.
func (s *Session) HintPath() []maze.Coord {
	return clonePath(s.hint)
}

// ClearHint drops the stored hint.
func (s *Session) ClearHint() {
	s.hint = nil
}

// Stop cancels the tick timer without changing state.
func (s *Session) Stop() {
	s.stopTimer()
}

func (s *Session) win() {
	s.state = Won
	s.stopTimer()

	newBest := !s.hasBest || s.elapsed < s.best
	if newBest {
		s.best = s.elapsed
		s.hasBest = true
	}
	s.last = &Result{
		Difficulty: s.difficulty,
		Size:       s.grid.Size(),
		Moves:      s.moves,
		Elapsed:    s.elapsed,
		NewBest:    newBest,
	}
	s.logger.Debug("session won",
		"difficulty", s.difficulty,
		"moves", s.moves,
		"elapsed", s.elapsed,
		"new_best", newBest,
	)
}

func (s *Session) stopTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Grid returns the current maze, or nil while Idle. Callers must not modify it.
func (s *Session) Grid() *maze.Grid { return s.grid }

// Player returns the player position.
func (s *Session) Player() maze.Coord { return s.player }

// Goal returns the goal position.
func (s *Session) Goal() maze.Coord { return s.goal }

// Moves returns the number of accepted moves in the current run.
func (s *Session) Moves() int { return s.moves }

// Elapsed returns the number of ticks counted in the current run.
func (s *Session) Elapsed() int { return s.elapsed }

// BestTime returns the lowest winning elapsed time seen by this session.
func (s *Session) BestTime() (int, bool) { return s.best, s.hasBest }

// State returns the lifecycle phase.
func (s *Session) State() State { return s.state }

// Difficulty returns the difficulty of the current run.
func (s *Session) Difficulty() config.Difficulty { return s.difficulty }

// LastResult returns the most recent win, if any.
func (s *Session) LastResult() (Result, bool) {
	if s.last == nil {
		return Result{}, false
	}
	return *s.last, true
}

// Snapshot copies the observable state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:      s.state,
		Difficulty: s.difficulty,
		Player:     s.player,
		Goal:       s.goal,
		Moves:      s.moves,
		Elapsed:    s.elapsed,
		BestTime:   s.best,
		HasBest:    s.hasBest,
		Hint:       clonePath(s.hint),
	}
	if s.grid != nil {
		snap.Size = s.grid.Size()
	}
	return snap
}

func clonePath(p []maze.Coord) []maze.Coord {
	if p == nil {
		return nil
	}
	out := make([]maze.Coord, len(p))
	copy(out, p)
	return out
}
