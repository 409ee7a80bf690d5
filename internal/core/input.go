package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // W, K, Up arrow - move north
	ActionDown               // S, J, Down arrow - move south
	ActionLeft               // A, Left arrow - move west
	ActionRight              // D, L, Right arrow - move east
	ActionHint               // H - show the shortest path to the goal
	ActionDifficulty1        // 1 - new easy maze
	ActionDifficulty2        // 2 - new moderate maze
	ActionDifficulty3        // 3 - new hard maze
	ActionConfirm            // Enter - confirm selection in menu
	ActionBack               // B, Escape - go back to menu
	ActionRestart            // R key - new maze at the same difficulty
	ActionQuit               // Q, Ctrl+C - exit game/session
	ActionPause              // P - pause/unpause the clock
)

var actionNames = map[Action]string{
	ActionNone:        "None",
	ActionUp:          "Up",
	ActionDown:        "Down",
	ActionLeft:        "Left",
	ActionRight:       "Right",
	ActionHint:        "Hint",
	ActionDifficulty1: "Difficulty1",
	ActionDifficulty2: "Difficulty2",
	ActionDifficulty3: "Difficulty3",
	ActionConfirm:     "Confirm",
	ActionBack:        "Back",
	ActionRestart:     "Restart",
	ActionQuit:        "Quit",
	ActionPause:       "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// IsMove reports whether the action moves the player.
func (a Action) IsMove() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	}
	return false
}

// InputFrame holds the actions triggered during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Moves lists every movement action in arrival order, repeats included.
	Moves []Action
	// Delta is the wall time covered by this frame. Zero means one nominal frame.
	Delta time.Duration
}

// NewInputFrame creates an input frame with the given actions set in order.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{Actions: make(map[Action]bool, len(actions))}
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame. Movement actions are
// also queued so that several presses within one frame all apply.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	if a.IsMove() {
		f.Moves = append(f.Moves, a)
	}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Moves = f.Moves[:0]
	f.Delta = 0
}
