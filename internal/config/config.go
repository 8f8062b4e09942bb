// Package config provides YAML-based level and physics configuration
// for gravflip.
package config

import "github.com/vovakirdan/gravflip/internal/core"

// GameConfig contains all configuration for a gravflip round.
type GameConfig struct {
	Screen      ScreenConfig     `yaml:"screen"`
	Physics     PhysicsConfig    `yaml:"physics"`
	Player      PlayerConfig     `yaml:"player"`
	Platforms   []RectConfig     `yaml:"platforms"`
	Obstacles   []ObstacleConfig `yaml:"obstacles"`
	Goal        RectConfig       `yaml:"goal"`
	StartButton ButtonConfig     `yaml:"start_button"`
}

// ScreenConfig defines the logical playfield size in pixels.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines per-frame physics parameters.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`        // Added to vertical velocity each frame
	PlayerSpeed   int     `yaml:"player_speed"`   // Horizontal pixels per frame while held
	ObstacleSpeed int     `yaml:"obstacle_speed"` // Horizontal pixels per frame
	FlipCooldown  int     `yaml:"flip_cooldown"`  // Frames before another flip is allowed
	FallMargin    int     `yaml:"fall_margin"`    // Distance beyond top/bottom that ends the round
}

// PlayerConfig defines the player hitbox and spawn point.
type PlayerConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	SpawnX       int `yaml:"spawn_x"`
	SpawnYOffset int `yaml:"spawn_y_offset"` // Spawn y is screen height minus this
}

// RectConfig describes a rectangle in the level.
type RectConfig struct {
	X          int  `yaml:"x"`
	Y          int  `yaml:"y"`
	W          int  `yaml:"w"`
	H          int  `yaml:"h"`
	FromBottom bool `yaml:"from_bottom"` // Y is measured up from the bottom edge
	FullWidth  bool `yaml:"full_width"`  // W is the screen width
}

// ObstacleConfig describes a moving obstacle and its starting direction.
type ObstacleConfig struct {
	RectConfig `yaml:",inline"`
	Direction  int `yaml:"direction"` // +1 right, -1 left
}

// ButtonConfig describes the front-page start button, centered horizontally.
type ButtonConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	OffsetY int `yaml:"offset_y"` // Top edge relative to the vertical center
}

// Resolve converts the rectangle to absolute coordinates for the given screen.
func (r RectConfig) Resolve(screen ScreenConfig) core.Rect {
	rect := core.NewRect(r.X, r.Y, r.W, r.H)
	if r.FullWidth {
		rect.W = screen.Width
	}
	if r.FromBottom {
		rect.Y = screen.Height - r.Y
	}
	return rect
}

// Resolve converts the button to an absolute rectangle for the given screen.
func (b ButtonConfig) Resolve(screen ScreenConfig) core.Rect {
	return core.NewRect(screen.Width/2-b.Width/2, screen.Height/2+b.OffsetY, b.Width, b.Height)
}

// PlatformRects returns the resolved platform rectangles.
func (c GameConfig) PlatformRects() []core.Rect {
	rects := make([]core.Rect, len(c.Platforms))
	for i, p := range c.Platforms {
		rects[i] = p.Resolve(c.Screen)
	}
	return rects
}

// GoalRect returns the resolved goal rectangle.
func (c GameConfig) GoalRect() core.Rect {
	return c.Goal.Resolve(c.Screen)
}

// StartButtonRect returns the resolved start button rectangle.
func (c GameConfig) StartButtonRect() core.Rect {
	return c.StartButton.Resolve(c.Screen)
}

// SpawnRect returns the player's hitbox at its spawn point.
func (c GameConfig) SpawnRect() core.Rect {
	return core.NewRect(c.Player.SpawnX, c.Screen.Height-c.Player.SpawnYOffset, c.Player.Width, c.Player.Height)
}
