package config

import (
	_ "embed"
)

//go:embed defaults/gravflip.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in level: a six-platform staircase,
// two bouncing obstacles and a goal near the top of a 1000x700 playfield.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Screen: ScreenConfig{
			Width:  1000,
			Height: 700,
		},
		Physics: PhysicsConfig{
			Gravity:       0.5,
			PlayerSpeed:   5,
			ObstacleSpeed: 3,
			FlipCooldown:  15,
			FallMargin:    100,
		},
		Player: PlayerConfig{
			Width:        90,
			Height:       90,
			SpawnX:       100,
			SpawnYOffset: 80,
		},
		Platforms: []RectConfig{
			{X: 0, Y: 50, H: 50, FromBottom: true, FullWidth: true},
			{X: 150, Y: 150, W: 200, H: 20, FromBottom: true},
			{X: 400, Y: 250, W: 200, H: 20, FromBottom: true},
			{X: 200, Y: 350, W: 200, H: 20, FromBottom: true},
			{X: 500, Y: 450, W: 200, H: 20, FromBottom: true},
			{X: 300, Y: 550, W: 200, H: 20, FromBottom: true},
		},
		Obstacles: []ObstacleConfig{
			{RectConfig: RectConfig{X: 160, Y: 190, W: 40, H: 40, FromBottom: true}, Direction: 1},
			{RectConfig: RectConfig{X: 520, Y: 490, W: 40, H: 40, FromBottom: true}, Direction: -1},
		},
		Goal: RectConfig{X: 720, Y: 40, W: 40, H: 40},
		StartButton: ButtonConfig{
			Width:   200,
			Height:  60,
			OffsetY: 100,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultGameYAML
}
