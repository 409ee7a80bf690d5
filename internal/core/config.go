package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second (default 30)
	Seed     int64 // RNG seed; 0 means seed from the current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState summarizes a game for the platform: menus, the scoreboard and
// the status line read it instead of game internals.
type GameState struct {
	Phase      string // "idle", "active" or "won"
	Difficulty string // Current difficulty name
	Moves      int    // Accepted moves in this run
	Elapsed    int    // Seconds on the run clock
	BestTime   int    // Best winning time, valid when HasBest
	HasBest    bool   // A run has been won in this session
	GameOver   bool   // The run is finished (won)
	Paused     bool   // The clock is halted
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Moved bool        // The player changed cell this step
	Won   bool        // This step finished the run
	Run   *RunSummary // Set together with Won
}

// RunSummary describes a finished run for the run journal.
type RunSummary struct {
	Difficulty string
	Size       int
	Algorithm  string
	Seed       int64 // Seed the grid was generated from
	Moves      int
	Seconds    int
	NewBest    bool
}
