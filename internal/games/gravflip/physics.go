package gravflip

import (
	"math"

	"github.com/vovakirdan/gravflip/internal/core"
)

// ApplyGravity accelerates the player toward the current floor.
func ApplyGravity(p *Player, gravity float64) {
	if p.GravityReversed {
		p.VelY -= gravity
	} else {
		p.VelY += gravity
	}
}

// Integrate moves the player by one frame of velocity.
// Positions stay on whole pixels: the vertical step is rounded half away
// from zero, so any velocity of at least half a pixel moves the player.
func Integrate(p *Player) {
	p.X += p.VelX
	p.Y += int(math.Round(p.VelY))
}

// ClampX keeps the player inside [0, width-p.W]. Velocity is untouched.
func ClampX(p *Player, width int) {
	p.X = core.Clamp(p.X, 0, width-p.W)
}

// OnGround reports whether the player's leading edge exactly touches a
// platform's opposing edge with the player's horizontal center inside the
// platform's [left, right) span. It only holds at the instant of landing.
func OnGround(p Player, platforms []core.Rect) bool {
	cx := p.CenterX()
	for _, plat := range platforms {
		if cx < plat.X || cx >= plat.Right() {
			continue
		}
		if !p.GravityReversed && p.Bottom() == plat.Y {
			return true
		}
		if p.GravityReversed && p.Y == plat.Bottom() {
			return true
		}
	}
	return false
}

// ResolvePlatforms lands the player on any platform it moved into.
// Only motion toward the current floor is stopped, so platforms can be
// passed through from their far side.
func ResolvePlatforms(p *Player, platforms []core.Rect) {
	for _, plat := range platforms {
		if !p.Intersects(plat) {
			continue
		}
		switch {
		case !p.GravityReversed && p.VelY > 0:
			p.Y = plat.Y - p.H
			p.VelY = 0
		case p.GravityReversed && p.VelY < 0:
			p.Y = plat.Bottom()
			p.VelY = 0
		}
	}
}

// MoveObstacles slides each obstacle and bounces it off the screen edges.
func MoveObstacles(obstacles []Obstacle, speed, width int) {
	for i := range obstacles {
		o := &obstacles[i]
		o.X += o.Direction * speed
		if o.X <= 0 || o.Right() >= width {
			o.Direction = -o.Direction
		}
	}
}

// CheckOutcome evaluates the end-of-round conditions in fixed order:
// goal, then obstacles, then vertical bounds. The first match decides.
func CheckOutcome(p Player, goal core.Rect, obstacles []Obstacle, height, margin int) Outcome {
	if p.Intersects(goal) {
		return OutcomeWin
	}
	for _, o := range obstacles {
		if p.Intersects(o.Rect) {
			return OutcomeHitObstacle
		}
	}
	if p.Y > height+margin || p.Y < -margin {
		return OutcomeFell
	}
	return OutcomeNone
}
