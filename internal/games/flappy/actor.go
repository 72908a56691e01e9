package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// AnimationFrames is the number of frames in the actor's flap cycle.
const AnimationFrames = 3

// Actor is the player-controlled falling/jumping entity.
type Actor struct {
	X, Y     float64 // Centre position
	Velocity float64 // Vertical velocity, positive = down
	Frame    int     // Current animation frame, 0..AnimationFrames-1
	Variant  Variant // Colour, kept across Reset

	width, height float64
	gravity       float64
	jump          float64
	spawnX        float64
	spawnY        float64
}

// NewActor creates an actor resting at its spawn point.
func NewActor(spawnX, spawnY, width, height, gravity, jump float64) *Actor {
	a := &Actor{
		width:   width,
		height:  height,
		gravity: gravity,
		jump:    jump,
		spawnX:  spawnX,
		spawnY:  spawnY,
	}
	a.Reset()
	return a
}

// Reset puts the actor back at its spawn point with zero velocity and the
// first animation frame.
func (a *Actor) Reset() {
	a.X = a.spawnX
	a.Y = a.spawnY
	a.Velocity = 0
	a.Frame = 0
}

// ApplyGravity accelerates the actor downwards and moves it by one step.
func (a *Actor) ApplyGravity() {
	a.Velocity += a.gravity
	a.Y += a.Velocity
}

// ApplyImpulse replaces the current velocity with the upward jump speed.
func (a *Actor) ApplyImpulse() {
	a.Velocity = -a.jump
}

// Rotation returns the visual tilt in degrees. Rising tilts
// counter-clockwise (positive), falling tilts clockwise. It is derived from
// velocity alone so it never accumulates between frames.
func (a *Actor) Rotation() float64 {
	return -2 * a.Velocity
}

// AdvanceAnimation moves to the next frame of the flap cycle.
func (a *Actor) AdvanceAnimation() {
	a.Frame = (a.Frame + 1) % AnimationFrames
}

// Park moves the actor off the visible play area.
func (a *Actor) Park() {
	a.X = -a.spawnX
	a.Y = a.spawnY
}

// Update runs one step of actor logic and reports whether it collided.
// While the round is over the actor is parked and physics does not advance.
func (a *Actor) Update(phase Phase, pairs []*ObstaclePair, ceiling, floor float64) bool {
	if phase == PhaseGameOver {
		a.Park()
		return false
	}
	a.ApplyGravity()
	return CheckCollisions(a, pairs, ceiling, floor)
}

// Bounds returns the actor's hitbox.
func (a *Actor) Bounds() core.Rect {
	return core.RectAround(a.X, a.Y, a.width, a.height)
}

// Sprite returns the actor's drawable.
func (a *Actor) Sprite() Sprite {
	return Sprite{
		Kind:     SpriteActor,
		Bounds:   a.Bounds(),
		Rotation: a.Rotation(),
		Frame:    a.Frame,
		Variant:  a.Variant,
	}
}
