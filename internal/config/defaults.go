package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file
// cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Screen: ScreenConfig{
			Width:    576,
			Height:   1024,
			FloorY:   900,
			CeilingY: -100,
		},
		Physics: PhysicsConfig{
			Gravity:          0.25,
			JumpImpulse:      7.5,
			ScrollSpeed:      5,
			FloorScrollSpeed: 1,
		},
		Actor: ActorConfig{
			SpawnX: 100,
			Width:  68,
			Height: 48,
		},
		Obstacles: ObstacleConfig{
			Width:   104,
			Height:  640,
			GapSize: 250,
			Offsets: []int{-150, -100, -50, 50, 100, 150},
		},
		Timing: TimingConfig{
			TickRate:        120,
			SpawnIntervalMs: 1200,
			FlapIntervalMs:  200,
		},
		Cosmetics: CosmeticsConfig{
			Theme:     "day",
			Variant:   "blue",
			Randomize: true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
