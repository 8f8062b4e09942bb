package gravflip

import "github.com/vovakirdan/gravflip/internal/core"

// Snapshot captures everything a frontend needs to draw one frame.
// Slices are copies; mutating them does not affect the game.
type Snapshot struct {
	Tick            int
	Round           RoundState
	Score           int
	Player          core.Rect
	GravityReversed bool
	CanFlip         bool
	FlipCooldown    int
	Platforms       []core.Rect
	Obstacles       []core.Rect
	Goal            core.Rect
	StartButton     core.Rect
	ButtonHover     bool
	Width           int
	Height          int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]core.Rect, len(g.obstacles))
	for i, o := range g.obstacles {
		obstacles[i] = o.Rect
	}
	platforms := make([]core.Rect, len(g.platforms))
	copy(platforms, g.platforms)

	w, h := g.Size()
	return Snapshot{
		Tick:            g.tickCount,
		Round:           g.round,
		Score:           g.score,
		Player:          g.player.Rect,
		GravityReversed: g.player.GravityReversed,
		CanFlip:         g.player.CanFlip,
		FlipCooldown:    g.player.FlipCooldown,
		Platforms:       platforms,
		Obstacles:       obstacles,
		Goal:            g.goal,
		StartButton:     g.startButton,
		ButtonHover:     g.hover,
		Width:           w,
		Height:          h,
	}
}
