package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Left arrow, A - move left (held)
	ActionRight            // Right arrow, D - move right (held)
	ActionFlip             // Space - invert gravity
	ActionStart            // Enter - leave the front page
	ActionRestart          // R - restart after game over
	ActionPlayAgain        // N - play again after a win
	ActionQuit             // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFlip:
		return "Flip"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionPlayAgain:
		return "PlayAgain"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Point is a position in logical playfield pixels.
type Point struct {
	X, Y int
}

// InputFrame represents the input state for one simulation tick.
//
// Actions holds edge-fired triggers (key-down this frame). Held holds
// actions that are continuously pressed (movement). Click is set when the
// pointer button went down this frame and Pointer is the last known pointer
// position, both in logical coordinates.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
	Click   *Point
	Pointer *Point
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Hold marks an action as held down during this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// IsHeld returns true if the given action is held during this frame.
func (f InputFrame) IsHeld(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// ClickAt records a pointer click at the given logical position.
func (f *InputFrame) ClickAt(x, y int) {
	f.Click = &Point{X: x, Y: y}
}

// PointAt records the current pointer position in logical coordinates.
func (f *InputFrame) PointAt(x, y int) {
	f.Pointer = &Point{X: x, Y: y}
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
	f.Click = nil
	f.Pointer = nil
}
