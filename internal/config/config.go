// Package config provides YAML-based game configuration loading and
// validation for the flappy game.
package config

import "time"

// FlappyConfig contains all tunables of the simulation.
// Distances are in world pixels; physics values are per simulation step.
type FlappyConfig struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Actor     ActorConfig     `yaml:"actor"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Timing    TimingConfig    `yaml:"timing"`
	Cosmetics CosmeticsConfig `yaml:"cosmetics"`
}

// ScreenConfig defines the play area in world pixels.
type ScreenConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	FloorY   float64 `yaml:"floor_y"`   // Actor bottom >= floor_y is a crash
	CeilingY float64 `yaml:"ceiling_y"` // Actor top <= ceiling_y is a crash
}

// PhysicsConfig defines per-step motion constants.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	JumpImpulse      float64 `yaml:"jump_impulse"` // Upward speed set on jump (positive number)
	ScrollSpeed      float64 `yaml:"scroll_speed"`
	FloorScrollSpeed float64 `yaml:"floor_scroll_speed"`
}

// ActorConfig defines the actor's spawn point and hitbox.
type ActorConfig struct {
	SpawnX float64 `yaml:"spawn_x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstacleConfig defines obstacle geometry.
type ObstacleConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GapSize float64 `yaml:"gap_size"`
	Offsets []int   `yaml:"offsets"`
}

// TimingConfig defines the step rate and the two periodic triggers.
type TimingConfig struct {
	TickRate        int `yaml:"tick_rate"`
	SpawnIntervalMs int `yaml:"spawn_interval_ms"`
	FlapIntervalMs  int `yaml:"flap_interval_ms"`
}

// CosmeticsConfig selects the look of a round. It never affects physics.
type CosmeticsConfig struct {
	Theme     string `yaml:"theme"`   // "day" or "night"
	Variant   string `yaml:"variant"` // "blue", "red" or "yellow"
	Randomize bool   `yaml:"randomize_on_restart"`
}

// SpawnInterval returns the obstacle spawn period.
func (t TimingConfig) SpawnInterval() time.Duration {
	return time.Duration(t.SpawnIntervalMs) * time.Millisecond
}

// FlapInterval returns the animation frame period.
func (t TimingConfig) FlapInterval() time.Duration {
	return time.Duration(t.FlapIntervalMs) * time.Millisecond
}

// StepDuration returns the simulated time covered by one step.
func (t TimingConfig) StepDuration() time.Duration {
	if t.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(t.TickRate)
}

// Known cosmetic values.
var (
	Themes   = []string{"day", "night"}
	Variants = []string{"blue", "red", "yellow"}
)
