package config

import "fmt"

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that the configuration describes a playable level.
// Checks:
//   - Screen and player sizes are positive
//   - Gravity and speeds are positive, cooldown and margin non-negative
//   - At least one platform, every rectangle has a positive size
//   - Obstacle directions are +1 or -1
func (c GameConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return ValidationError{
			Code:    "INVALID_SCREEN",
			Message: fmt.Sprintf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height),
		}
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return ValidationError{
			Code:    "INVALID_PLAYER",
			Message: fmt.Sprintf("player size must be positive, got %dx%d", c.Player.Width, c.Player.Height),
		}
	}
	if c.Player.Width > c.Screen.Width {
		return ValidationError{
			Code:    "INVALID_PLAYER",
			Message: fmt.Sprintf("player width %d exceeds screen width %d", c.Player.Width, c.Screen.Width),
		}
	}

	if err := c.Physics.validate(); err != nil {
		return err
	}

	if len(c.Platforms) == 0 {
		return ValidationError{Code: "NO_PLATFORMS", Message: "level needs at least one platform"}
	}
	for i, p := range c.Platforms {
		if r := p.Resolve(c.Screen); r.W <= 0 || r.H <= 0 {
			return ValidationError{
				Code:    "INVALID_PLATFORM",
				Message: fmt.Sprintf("platform %d has non-positive size %dx%d", i, r.W, r.H),
			}
		}
	}

	for i, o := range c.Obstacles {
		if r := o.Resolve(c.Screen); r.W <= 0 || r.H <= 0 {
			return ValidationError{
				Code:    "INVALID_OBSTACLE",
				Message: fmt.Sprintf("obstacle %d has non-positive size %dx%d", i, r.W, r.H),
			}
		}
		if o.Direction != 1 && o.Direction != -1 {
			return ValidationError{
				Code:    "INVALID_DIRECTION",
				Message: fmt.Sprintf("obstacle %d direction must be 1 or -1, got %d", i, o.Direction),
			}
		}
	}

	if r := c.GoalRect(); r.W <= 0 || r.H <= 0 {
		return ValidationError{Code: "INVALID_GOAL", Message: "goal must have a positive size"}
	}
	if c.StartButton.Width <= 0 || c.StartButton.Height <= 0 {
		return ValidationError{Code: "INVALID_BUTTON", Message: "start button must have a positive size"}
	}

	return nil
}

func (p PhysicsConfig) validate() error {
	if p.Gravity <= 0 {
		return ValidationError{
			Code:    "INVALID_PHYSICS",
			Message: fmt.Sprintf("gravity must be positive, got %g", p.Gravity),
		}
	}
	if p.PlayerSpeed <= 0 || p.ObstacleSpeed <= 0 {
		return ValidationError{
			Code:    "INVALID_PHYSICS",
			Message: fmt.Sprintf("speeds must be positive, got player=%d obstacle=%d", p.PlayerSpeed, p.ObstacleSpeed),
		}
	}
	if p.FlipCooldown < 0 || p.FallMargin < 0 {
		return ValidationError{
			Code:    "INVALID_PHYSICS",
			Message: "flip_cooldown and fall_margin must not be negative",
		}
	}
	return nil
}
