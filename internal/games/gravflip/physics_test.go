package gravflip

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/gravflip/internal/core"
)

func newPlayer(x, y int) Player {
	return Player{Rect: core.NewRect(x, y, 90, 90), CanFlip: true}
}

func TestApplyGravity(t *testing.T) {
	p := newPlayer(0, 0)
	ApplyGravity(&p, 0.5)
	assert.InDelta(t, 0.5, p.VelY, 1e-9)

	p.GravityReversed = true
	ApplyGravity(&p, 0.5)
	ApplyGravity(&p, 0.5)
	assert.InDelta(t, -0.5, p.VelY, 1e-9)
}

func TestIntegrateRoundsHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		name  string
		velY  float64
		wantY int
	}{
		{"half pixel down", 0.5, 101},
		{"half pixel up", -0.5, 99},
		{"below half", 0.4, 100},
		{"one and a half", 1.5, 102},
		{"whole", -3.0, 97},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newPlayer(10, 100)
			p.VelX = 5
			p.VelY = tc.velY
			Integrate(&p)
			assert.Equal(t, 15, p.X)
			assert.Equal(t, tc.wantY, p.Y)
		})
	}
}

func TestClampX(t *testing.T) {
	p := newPlayer(-10, 0)
	p.VelX = -5
	ClampX(&p, 1000)
	assert.Equal(t, 0, p.X)
	assert.Equal(t, -5, p.VelX, "clamp must not touch velocity")

	p = newPlayer(950, 0)
	ClampX(&p, 1000)
	assert.Equal(t, 910, p.X)

	p = newPlayer(500, 0)
	ClampX(&p, 1000)
	assert.Equal(t, 500, p.X)
}

func TestOnGround(t *testing.T) {
	platforms := []core.Rect{core.NewRect(100, 500, 200, 20)}

	tests := []struct {
		name     string
		x, y     int
		reversed bool
		expected bool
	}{
		{"standing on top", 100, 410, false, true},
		{"center on left edge", 55, 410, false, true},
		{"center one before right edge", 254, 410, false, true},
		{"center on right edge", 255, 410, false, false},
		{"center left of platform", 54, 410, false, false},
		{"one pixel above", 100, 409, false, false},
		{"sunk into platform", 100, 411, false, false},
		{"reversed under bottom", 100, 520, true, true},
		{"reversed standing on top", 100, 410, true, false},
		{"normal under bottom", 100, 520, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newPlayer(tc.x, tc.y)
			p.GravityReversed = tc.reversed
			assert.Equal(t, tc.expected, OnGround(p, platforms))
		})
	}
}

func TestResolvePlatforms(t *testing.T) {
	platforms := []core.Rect{core.NewRect(100, 500, 200, 20)}

	t.Run("lands from above", func(t *testing.T) {
		p := newPlayer(100, 415)
		p.VelY = 3
		ResolvePlatforms(&p, platforms)
		assert.Equal(t, 410, p.Y)
		assert.Zero(t, p.VelY)
		assert.True(t, OnGround(p, platforms))
	})

	t.Run("passes through from below", func(t *testing.T) {
		p := newPlayer(100, 415)
		p.VelY = -3
		ResolvePlatforms(&p, platforms)
		assert.Equal(t, 415, p.Y)
		assert.InDelta(t, -3.0, p.VelY, 1e-9)
	})

	t.Run("reversed lands on underside", func(t *testing.T) {
		p := newPlayer(100, 515)
		p.GravityReversed = true
		p.VelY = -3
		ResolvePlatforms(&p, platforms)
		assert.Equal(t, 520, p.Y)
		assert.Zero(t, p.VelY)
		assert.True(t, OnGround(p, platforms))
	})

	t.Run("no overlap leaves player alone", func(t *testing.T) {
		p := newPlayer(100, 410)
		p.VelY = 2
		ResolvePlatforms(&p, platforms)
		assert.Equal(t, 410, p.Y)
		assert.InDelta(t, 2.0, p.VelY, 1e-9)
	})
}

func TestMoveObstaclesBounce(t *testing.T) {
	obs := []Obstacle{
		{Rect: core.NewRect(955, 0, 40, 40), Direction: 1},
		{Rect: core.NewRect(2, 100, 40, 40), Direction: -1},
	}

	MoveObstacles(obs, 3, 1000)
	assert.Equal(t, 958, obs[0].X)
	assert.Equal(t, 1, obs[0].Direction, "right edge 998 has not reached the wall")
	assert.Equal(t, -1, obs[1].X)
	assert.Equal(t, 1, obs[1].Direction)

	MoveObstacles(obs, 3, 1000)
	assert.Equal(t, 961, obs[0].X)
	assert.Equal(t, -1, obs[0].Direction)
	assert.Equal(t, 2, obs[1].X)

	MoveObstacles(obs, 3, 1000)
	assert.Equal(t, 958, obs[0].X)
}

func TestCheckOutcome(t *testing.T) {
	goal := core.NewRect(100, 100, 40, 40)
	obstacles := []Obstacle{{Rect: core.NewRect(120, 120, 40, 40), Direction: 1}}

	tests := []struct {
		name     string
		x, y     int
		expected Outcome
	}{
		{"goal beats obstacle", 60, 60, OutcomeWin},
		{"obstacle only", 150, 150, OutcomeHitObstacle},
		{"safe", 500, 300, OutcomeNone},
		{"at bottom margin", 500, 800, OutcomeNone},
		{"past bottom margin", 500, 801, OutcomeFell},
		{"at top margin", 500, -100, OutcomeNone},
		{"past top margin", 500, -101, OutcomeFell},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newPlayer(tc.x, tc.y)
			assert.Equal(t, tc.expected, CheckOutcome(p, goal, obstacles, 700, 100))
		})
	}
}
