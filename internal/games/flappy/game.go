// Package flappy implements the per-frame simulation of a Flappy Bird-style
// game: actor physics, obstacle pairs, collision and the round state machine.
// It performs no I/O; rendering and sound are driven from the values it returns.
package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  State
	Scored int   // Pairs cleared this step
	Cues   []Cue // Sounds to trigger, in order
}

// Has reports whether the given cue fired this step.
func (r StepResult) Has(c Cue) bool {
	for _, got := range r.Cues {
		if got == c {
			return true
		}
	}
	return false
}

// Game owns one session: the actor, the obstacle field, the timers and the
// phase/score state. All mutation happens inside Step.
type Game struct {
	cfg   config.FlappyConfig
	rng   *rand.Rand
	dt    time.Duration
	actor *Actor
	field *ObstacleField
	state State

	spawnTimer Timer
	flapTimer  Timer

	theme  Theme
	floorX float64
	tick   int
}

// New creates a game from a validated configuration. The seed makes obstacle
// offsets and cosmetic rolls reproducible.
func New(cfg config.FlappyConfig, seed int64) *Game {
	return NewWithRand(cfg, rand.New(rand.NewSource(seed)))
}

// NewWithRand creates a game drawing all randomness from rng.
func NewWithRand(cfg config.FlappyConfig, rng *rand.Rand) *Game {
	midY := cfg.Screen.Height / 2
	g := &Game{
		cfg: cfg,
		rng: rng,
		dt:  cfg.Timing.StepDuration(),
		actor: NewActor(
			cfg.Actor.SpawnX, midY,
			cfg.Actor.Width, cfg.Actor.Height,
			cfg.Physics.Gravity, cfg.Physics.JumpImpulse,
		),
		field: NewObstacleField(FieldConfig{
			SpawnX:  cfg.Screen.Width,
			MidY:    midY,
			Width:   cfg.Obstacles.Width,
			Height:  cfg.Obstacles.Height,
			GapSize: cfg.Obstacles.GapSize,
			Speed:   cfg.Physics.ScrollSpeed,
			Offsets: cfg.Obstacles.Offsets,
		}, rng),
		state:      NewState(),
		spawnTimer: NewTimer(cfg.Timing.SpawnInterval()),
		flapTimer:  NewTimer(cfg.Timing.FlapInterval()),
		theme:      Theme(cfg.Cosmetics.Theme),
	}
	g.actor.Variant = Variant(cfg.Cosmetics.Variant)
	return g
}

// Step advances the simulation by one tick.
//
// Order within a step: input, timers (animation, spawn), obstacle scroll and
// scoring, actor physics and collision, phase transition. A step carrying a
// restart while the round is over only resets the session.
func (g *Game) Step(in core.InputFrame) StepResult {
	g.tick++
	res := StepResult{}

	// Jump is read against the phase at the start of the step, so the key
	// that restarts a round does not also flap.
	if in.Has(core.ActionJump) && g.state.Phase == PhasePlaying {
		g.actor.ApplyImpulse()
		res.Cues = append(res.Cues, CueFlap)
	}
	// A restart consumes the step: the new round starts from rest.
	if in.Has(core.ActionRestart) && g.state.Phase == PhaseGameOver {
		g.restart()
		g.scrollFloor()
		res.State = g.state.Clone()
		return res
	}

	if g.flapTimer.Advance(g.dt) && g.state.Phase == PhasePlaying {
		g.actor.AdvanceAnimation()
	}
	if g.spawnTimer.Advance(g.dt) && g.state.Phase == PhasePlaying {
		g.field.Spawn()
	}

	if g.state.Phase == PhasePlaying {
		res.Scored = g.field.Advance()
		g.state.AddScore(res.Scored)
	}

	if g.actor.Update(g.state.Phase, g.field.Pairs(), g.cfg.Screen.CeilingY, g.cfg.Screen.FloorY) {
		if g.state.EnterGameOver() {
			res.Cues = append(res.Cues, CueCrash)
			g.field.Clear()
			g.actor.Park()
		}
	}

	g.scrollFloor()

	res.State = g.state.Clone()
	return res
}

// restart begins a new round after game over.
func (g *Game) restart() {
	if !g.state.Restart() {
		return
	}
	g.field.Clear()
	g.actor.Reset()
	g.spawnTimer.Reset()
	g.flapTimer.Reset()
	if g.cfg.Cosmetics.Randomize {
		g.theme = themes[g.rng.Intn(len(themes))]
		g.actor.Variant = variants[g.rng.Intn(len(variants))]
	}
}

// scrollFloor moves the decorative floor strip, wrapping every screen width.
func (g *Game) scrollFloor() {
	g.floorX -= g.cfg.Physics.FloorScrollSpeed
	if g.floorX <= -g.cfg.Screen.Width {
		g.floorX = 0
	}
}

// Drawables returns every entity to draw this frame, back to front.
func (g *Game) Drawables() []Sprite {
	pairs := g.field.Pairs()
	items := make([]Drawable, 0, len(pairs)*2+1)
	for _, p := range pairs {
		items = append(items, p.Upper(), p.Lower())
	}
	if g.state.Phase == PhasePlaying {
		items = append(items, g.actor)
	}

	out := make([]Sprite, len(items))
	for i, d := range items {
		out[i] = d.Sprite()
	}
	return out
}

// State returns a copy of the phase and score state.
func (g *Game) State() State {
	return g.state.Clone()
}

// Actor returns the actor. Callers must not mutate it outside tests.
func (g *Game) Actor() *Actor {
	return g.actor
}

// Field returns the obstacle field.
func (g *Game) Field() *ObstacleField {
	return g.field
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Theme returns the current round's time of day.
func (g *Game) Theme() Theme {
	return g.theme
}

// Variant returns the current round's actor colour.
func (g *Game) Variant() Variant {
	return g.actor.Variant
}

// FloorOffset returns the floor strip's horizontal scroll in pixels (<= 0).
func (g *Game) FloorOffset() float64 {
	return g.floorX
}

// Ticks returns the number of steps run so far.
func (g *Game) Ticks() int {
	return g.tick
}
