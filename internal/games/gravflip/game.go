// Package gravflip implements a single-screen platformer where the player
// can invert gravity at the moment of landing, climbing a staircase of
// platforms past bouncing obstacles to reach the goal.
//
// The package holds pure game logic only. Frontends feed it one
// core.InputFrame per tick and draw from Snapshot or Render.
package gravflip

import (
	"time"

	"github.com/vovakirdan/gravflip/internal/config"
	"github.com/vovakirdan/gravflip/internal/core"
)

// ID is the identifier used for score storage.
const ID = "gravflip"

// Title is the display name of the game.
const Title = "Path to Love"

// Game owns the whole round: player, level geometry, score and flow state.
type Game struct {
	cfg         config.GameConfig
	platforms   []core.Rect
	obstacles   []Obstacle
	goal        core.Rect
	startButton core.Rect

	player    Player
	round     RoundState
	score     int
	startTime time.Time
	tickCount int
	rounds    int
	hover     bool // Pointer is over the start button

	now func() time.Time
}

// Option configures a Game.
type Option func(*Game)

// WithClock replaces the wall clock used for the score.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

// New creates a game on the front page using the given level.
func New(cfg config.GameConfig, opts ...Option) *Game {
	g := &Game{
		cfg:         cfg,
		platforms:   cfg.PlatformRects(),
		goal:        cfg.GoalRect(),
		startButton: cfg.StartButtonRect(),
		round:       RoundFrontPage,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return Title
}

// Size returns the logical playfield size in pixels.
func (g *Game) Size() (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}

// Reset puts the player, obstacles, score and timers back to their spawn
// state. The round state is left alone; callers decide the transition.
func (g *Game) Reset() {
	g.player = Player{
		Rect:    g.cfg.SpawnRect(),
		CanFlip: true,
	}

	g.obstacles = g.obstacles[:0]
	for _, o := range g.cfg.Obstacles {
		g.obstacles = append(g.obstacles, Obstacle{
			Rect:      o.Resolve(g.cfg.Screen),
			Direction: o.Direction,
		})
	}

	g.score = 0
	g.tickCount = 0
	g.startTime = g.now()
}

// HandleInput applies one frame of input to the flow state and player.
func (g *Game) HandleInput(in core.InputFrame) {
	if in.Pointer != nil {
		g.hover = g.startButton.Contains(in.Pointer.X, in.Pointer.Y)
	}

	switch g.round {
	case RoundFrontPage:
		clicked := in.Click != nil && g.startButton.Contains(in.Click.X, in.Click.Y)
		if clicked || in.Has(core.ActionStart) {
			g.beginRound()
		}
	case RoundPlaying:
		if in.Has(core.ActionFlip) {
			g.tryFlip()
		}
	case RoundGameOver:
		if in.Has(core.ActionRestart) {
			g.beginRound()
		}
	case RoundWin:
		if in.Has(core.ActionPlayAgain) {
			g.beginRound()
		}
	}

	g.player.VelX = 0
	if in.IsHeld(core.ActionLeft) {
		g.player.VelX = -g.cfg.Physics.PlayerSpeed
	}
	if in.IsHeld(core.ActionRight) {
		g.player.VelX = g.cfg.Physics.PlayerSpeed
	}
}

func (g *Game) beginRound() {
	g.Reset()
	g.round = RoundPlaying
	g.rounds++
}

// tryFlip inverts gravity if the player has just landed and is off cooldown.
func (g *Game) tryFlip() {
	if !g.player.CanFlip || !OnGround(g.player, g.platforms) {
		return
	}
	g.player.GravityReversed = !g.player.GravityReversed
	g.player.CanFlip = false
	g.player.FlipCooldown = g.cfg.Physics.FlipCooldown
}

// Update advances physics by one frame while playing and returns the
// sound events triggered by a round-ending transition. It does nothing
// in any other round state.
func (g *Game) Update() []core.Event {
	if g.round != RoundPlaying {
		return nil
	}
	g.tickCount++

	width, height := g.Size()
	phys := g.cfg.Physics

	ApplyGravity(&g.player, phys.Gravity)
	Integrate(&g.player)
	ClampX(&g.player, width)
	ResolvePlatforms(&g.player, g.platforms)
	MoveObstacles(g.obstacles, phys.ObstacleSpeed, width)

	var events []core.Event
	switch CheckOutcome(g.player, g.goal, g.obstacles, height, phys.FallMargin) {
	case OutcomeWin:
		g.round = RoundWin
		events = append(events, core.Event{Sound: core.SoundWin})
	case OutcomeHitObstacle:
		g.round = RoundGameOver
		events = append(events, core.Event{Sound: core.SoundCollision})
	case OutcomeFell:
		g.round = RoundGameOver
	}

	g.score = int(g.now().Sub(g.startTime) / time.Second)

	if !g.player.CanFlip {
		g.player.FlipCooldown--
		if g.player.FlipCooldown <= 0 {
			g.player.FlipCooldown = 0
			g.player.CanFlip = true
		}
	}

	return events
}

// Step advances the game by one tick: input first, then physics.
// The frame that leaves the front page only starts the round.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	wasFrontPage := g.round == RoundFrontPage
	g.HandleInput(in)

	var events []core.Event
	if !wasFrontPage {
		events = g.Update()
	}
	return core.StepResult{State: g.State(), Events: events}
}

// Round returns the current round state.
func (g *Game) Round() RoundState {
	return g.round
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// OnGround reports whether the player is in a position to flip gravity.
func (g *Game) OnGround() bool {
	return OnGround(g.player, g.platforms)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Playing:  g.round == RoundPlaying,
		GameOver: g.round == RoundGameOver,
		Won:      g.round == RoundWin,
		Round:    g.rounds,
	}
}
