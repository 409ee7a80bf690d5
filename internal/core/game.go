package core

// Game is the contract between a game and the terminal platform.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, frame timing and terminal output.
type Game interface {
	// ID returns a unique identifier for this game, used in storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game for the given screen and seed.
	Reset(cfg RuntimeConfig)

	// Step advances the game by one frame.
	Step(in InputFrame) StepResult

	// Render draws the current frame into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
