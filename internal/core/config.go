package core

// RuntimeConfig contains configuration passed to frontends at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters (terminal) or pixels (window)
	ScreenH  int // Screen height in characters (terminal) or pixels (window)
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// StepResult is returned by the game after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// GameState summarizes the round for the platform layer.
type GameState struct {
	Score    int  // Whole seconds since the round started
	Playing  bool // Whether physics is running
	GameOver bool // Whether the round was lost
	Won      bool // Whether the goal was reached
	Round    int  // Rounds started so far; tells a new round from the last one
}

// Finished reports whether the round has ended either way.
func (s GameState) Finished() bool {
	return s.GameOver || s.Won
}

// Sound identifies an edge-fired sound effect.
type Sound int

const (
	SoundCollision Sound = iota + 1
	SoundWin
)

// String returns the asset-friendly name of the sound.
func (s Sound) String() string {
	switch s {
	case SoundCollision:
		return "collision"
	case SoundWin:
		return "win"
	default:
		return "unknown"
	}
}

// Event is something the presentation layer should react to exactly once,
// on the frame it happened.
type Event struct {
	Sound Sound
}
