package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// HasBounds is implemented by anything that takes part in collision checks.
type HasBounds interface {
	Bounds() core.Rect
}

// Drawable is implemented by entities the renderer can draw.
type Drawable interface {
	HasBounds
	Sprite() Sprite
}

// SpriteKind identifies what a sprite depicts.
type SpriteKind int

const (
	SpriteActor SpriteKind = iota
	SpriteUpperObstacle
	SpriteLowerObstacle
)

// Sprite is one drawable entity handed to the renderer each frame.
type Sprite struct {
	Kind     SpriteKind
	Bounds   core.Rect
	Rotation float64 // Degrees, counter-clockwise positive
	Frame    int     // Animation frame (actor only)
	Variant  Variant // Colour (actor only)
}

// Cue is a fire-and-forget sound trigger.
type Cue int

const (
	CueFlap Cue = iota
	CueCrash
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueFlap:
		return "flap"
	case CueCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// Theme is the time of day a round is played in.
type Theme string

const (
	ThemeDay   Theme = "day"
	ThemeNight Theme = "night"
)

// Variant is the actor's colour.
type Variant string

const (
	VariantBlue   Variant = "blue"
	VariantRed    Variant = "red"
	VariantYellow Variant = "yellow"
)

var (
	themes   = []Theme{ThemeDay, ThemeNight}
	variants = []Variant{VariantBlue, VariantRed, VariantYellow}
)
