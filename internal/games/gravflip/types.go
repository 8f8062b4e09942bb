package gravflip

import "github.com/vovakirdan/gravflip/internal/core"

// RoundState is the phase of the game flow.
type RoundState int

const (
	RoundFrontPage RoundState = iota // Start button shown, nothing moves
	RoundPlaying                     // Physics running, score counting
	RoundGameOver                    // Hit an obstacle or left the playfield
	RoundWin                         // Reached the goal
)

// String returns a human-readable name for the round state.
func (s RoundState) String() string {
	switch s {
	case RoundFrontPage:
		return "FrontPage"
	case RoundPlaying:
		return "Playing"
	case RoundGameOver:
		return "GameOver"
	case RoundWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// Player is the controllable sprite.
type Player struct {
	core.Rect
	VelX            int     // Horizontal pixels per frame, set from held input
	VelY            float64 // Vertical velocity, integrated every frame
	GravityReversed bool
	CanFlip         bool
	FlipCooldown    int // Frames until CanFlip is restored
}

// Obstacle is a hazard sliding horizontally between the screen edges.
type Obstacle struct {
	core.Rect
	Direction int // +1 right, -1 left
}

// Outcome is the result of the per-frame win/loss checks.
type Outcome int

const (
	OutcomeNone        Outcome = iota
	OutcomeWin                 // Player overlaps the goal
	OutcomeHitObstacle         // Player overlaps an obstacle
	OutcomeFell                // Player left the vertical bounds
)
