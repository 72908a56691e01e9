package config

import (
	"errors"
	"fmt"
	"slices"
)

// Validate reports every value that would make the simulation meaningless.
// All problems are returned together.
func (c FlappyConfig) Validate() error {
	var errs []error
	bad := func(field, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%s: %s", field, fmt.Sprintf(format, args...)))
	}

	if c.Screen.Width <= 0 {
		bad("screen.width", "must be positive, got %v", c.Screen.Width)
	}
	if c.Screen.Height <= 0 {
		bad("screen.height", "must be positive, got %v", c.Screen.Height)
	}
	if c.Screen.FloorY <= c.Screen.CeilingY {
		bad("screen.floor_y", "must be below ceiling_y (%v), got %v", c.Screen.CeilingY, c.Screen.FloorY)
	}
	if c.Screen.FloorY > c.Screen.Height {
		bad("screen.floor_y", "must be inside the screen height (%v), got %v", c.Screen.Height, c.Screen.FloorY)
	}

	if c.Physics.Gravity < 0 {
		bad("physics.gravity", "must not be negative, got %v", c.Physics.Gravity)
	}
	if c.Physics.JumpImpulse <= 0 {
		bad("physics.jump_impulse", "must be positive, got %v", c.Physics.JumpImpulse)
	}
	if c.Physics.ScrollSpeed <= 0 {
		bad("physics.scroll_speed", "must be positive, got %v", c.Physics.ScrollSpeed)
	}
	if c.Physics.FloorScrollSpeed < 0 {
		bad("physics.floor_scroll_speed", "must not be negative, got %v", c.Physics.FloorScrollSpeed)
	}

	if c.Actor.Width <= 0 || c.Actor.Height <= 0 {
		bad("actor", "size must be positive, got %vx%v", c.Actor.Width, c.Actor.Height)
	}
	if c.Actor.SpawnX < 0 || c.Actor.SpawnX > c.Screen.Width {
		bad("actor.spawn_x", "must be inside the screen, got %v", c.Actor.SpawnX)
	}

	if c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0 {
		bad("obstacles", "size must be positive, got %vx%v", c.Obstacles.Width, c.Obstacles.Height)
	}
	if c.Obstacles.GapSize <= 0 {
		bad("obstacles.gap_size", "must be positive, got %v", c.Obstacles.GapSize)
	}
	if len(c.Obstacles.Offsets) == 0 {
		bad("obstacles.offsets", "must list at least one offset")
	}

	if c.Timing.TickRate <= 0 {
		bad("timing.tick_rate", "must be positive, got %d", c.Timing.TickRate)
	}
	if c.Timing.SpawnIntervalMs <= 0 {
		bad("timing.spawn_interval_ms", "must be positive, got %d", c.Timing.SpawnIntervalMs)
	}
	if c.Timing.FlapIntervalMs <= 0 {
		bad("timing.flap_interval_ms", "must be positive, got %d", c.Timing.FlapIntervalMs)
	}

	if !slices.Contains(Themes, c.Cosmetics.Theme) {
		bad("cosmetics.theme", "unknown theme %q (want one of %v)", c.Cosmetics.Theme, Themes)
	}
	if !slices.Contains(Variants, c.Cosmetics.Variant) {
		bad("cosmetics.variant", "unknown variant %q (want one of %v)", c.Cosmetics.Variant, Variants)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
}
