package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Half is one side of an obstacle pair.
type Half struct {
	Kind SpriteKind // SpriteUpperObstacle or SpriteLowerObstacle
	Rect core.Rect
}

// Bounds returns the half's hitbox.
func (h Half) Bounds() core.Rect {
	return h.Rect
}

// Sprite returns the half's drawable.
func (h Half) Sprite() Sprite {
	return Sprite{Kind: h.Kind, Bounds: h.Rect}
}

// ObstaclePair is an upper and a lower obstacle sharing one horizontal
// position and one vertical offset. The gap between their facing edges is
// always exactly the configured gap size.
type ObstaclePair struct {
	X      float64 // Left edge, shared by both halves
	Offset int     // Vertical displacement of the gap centre from mid-screen
	Alive  bool

	width, height float64
	gapSize       float64
	midY          float64
}

// GapTop returns the y-coordinate of the upper half's bottom edge.
func (p *ObstaclePair) GapTop() float64 {
	return p.midY - p.gapSize/2 + float64(p.Offset)
}

// GapBottom returns the y-coordinate of the lower half's top edge.
func (p *ObstaclePair) GapBottom() float64 {
	return p.midY + p.gapSize/2 + float64(p.Offset)
}

// Right returns the x-coordinate of the pair's right edge.
func (p *ObstaclePair) Right() float64 {
	return p.X + p.width
}

// Upper returns the half above the gap.
func (p *ObstaclePair) Upper() Half {
	return Half{
		Kind: SpriteUpperObstacle,
		Rect: core.NewRect(p.X, p.GapTop()-p.height, p.width, p.height),
	}
}

// Lower returns the half below the gap.
func (p *ObstaclePair) Lower() Half {
	return Half{
		Kind: SpriteLowerObstacle,
		Rect: core.NewRect(p.X, p.GapBottom(), p.width, p.height),
	}
}

// RemovalReason says why a pair left the field.
type RemovalReason int

const (
	RemovedOffScreen RemovalReason = iota // Scrolled past the left edge; scores
	RemovedGameOver                       // Cleared by the round ending; never scores
)

// ObstacleField owns the live obstacle pairs.
type ObstacleField struct {
	pairs []*ObstaclePair

	rng     *rand.Rand
	offsets []int
	spawnX  float64
	midY    float64
	width   float64
	height  float64
	gapSize float64
	speed   float64
}

// FieldConfig holds the geometry an ObstacleField spawns with.
type FieldConfig struct {
	SpawnX  float64 // Left edge of new pairs
	MidY    float64 // Gap centre before offset
	Width   float64
	Height  float64
	GapSize float64
	Speed   float64 // Pixels per step
	Offsets []int
}

// NewObstacleField creates an empty field drawing offsets from rng.
func NewObstacleField(cfg FieldConfig, rng *rand.Rand) *ObstacleField {
	return &ObstacleField{
		pairs:   make([]*ObstaclePair, 0, 8),
		rng:     rng,
		offsets: append([]int(nil), cfg.Offsets...),
		spawnX:  cfg.SpawnX,
		midY:    cfg.MidY,
		width:   cfg.Width,
		height:  cfg.Height,
		gapSize: cfg.GapSize,
		speed:   cfg.Speed,
	}
}

// Spawn adds a new pair just off the right edge with a random offset.
func (f *ObstacleField) Spawn() *ObstaclePair {
	p := &ObstaclePair{
		X:       f.spawnX,
		Offset:  f.offsets[f.rng.Intn(len(f.offsets))],
		Alive:   true,
		width:   f.width,
		height:  f.height,
		gapSize: f.gapSize,
		midY:    f.midY,
	}
	f.pairs = append(f.pairs, p)
	return p
}

// Advance scrolls every pair left by one step and removes those whose right
// edge has reached the left screen edge. It returns the number of lower
// halves removed this way, which is the score earned this step.
func (f *ObstacleField) Advance() int {
	for _, p := range f.pairs {
		p.X -= f.speed
	}
	return f.prune(func(p *ObstaclePair) bool { return p.Right() <= 0 }, RemovedOffScreen)
}

// Clear removes every pair because the round ended. It never scores.
func (f *ObstacleField) Clear() {
	f.prune(func(*ObstaclePair) bool { return true }, RemovedGameOver)
}

// prune removes pairs matching the predicate and returns how many score.
func (f *ObstacleField) prune(remove func(*ObstaclePair) bool, reason RemovalReason) int {
	scored := 0
	kept := f.pairs[:0]
	for _, p := range f.pairs {
		if !remove(p) {
			kept = append(kept, p)
			continue
		}
		p.Alive = false
		if reason == RemovedOffScreen {
			scored++
		}
	}
	// Drop references held past the new length
	for i := len(kept); i < len(f.pairs); i++ {
		f.pairs[i] = nil
	}
	f.pairs = kept
	return scored
}

// Pairs returns the live pairs. The slice is owned by the field.
func (f *ObstacleField) Pairs() []*ObstaclePair {
	return f.pairs
}

// Len returns the number of live pairs.
func (f *ObstacleField) Len() int {
	return len(f.pairs)
}
