package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultFlappyConfig()) {
		t.Errorf("embedded defaults drifted from DefaultFlappyConfig():\n%+v\n%+v", cfg, DefaultFlappyConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestDefaultOffsets(t *testing.T) {
	want := []int{-150, -100, -50, 50, 100, 150}
	if got := DefaultFlappyConfig().Obstacles.Offsets; !reflect.DeepEqual(got, want) {
		t.Errorf("Offsets = %v, expected %v", got, want)
	}
}

func TestLoadFlappyCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	data := []byte("physics:\n  gravity: 0.5\ntiming:\n  tick_rate: 60\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("Gravity = %v, expected 0.5", cfg.Physics.Gravity)
	}
	if cfg.Timing.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", cfg.Timing.TickRate)
	}
	// Keys missing from the file keep defaults
	if cfg.Obstacles.GapSize != 250 {
		t.Errorf("GapSize = %v, expected default 250", cfg.Obstacles.GapSize)
	}
}

func TestLoadFlappyMissingFile(t *testing.T) {
	_, err := LoadFlappy(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadFlappy() with missing custom path should fail")
	}
	if !strings.Contains(err.Error(), "config: read") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadFlappyMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFlappy(path); err == nil || !strings.Contains(err.Error(), "config: parse") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
		field  string
	}{
		{"floor above ceiling", func(c *FlappyConfig) { c.Screen.FloorY = -200 }, "screen.floor_y"},
		{"floor off screen", func(c *FlappyConfig) { c.Screen.FloorY = 2000 }, "screen.floor_y"},
		{"zero jump", func(c *FlappyConfig) { c.Physics.JumpImpulse = 0 }, "physics.jump_impulse"},
		{"floor scrolling backwards", func(c *FlappyConfig) { c.Physics.FloorScrollSpeed = -1 }, "physics.floor_scroll_speed"},
		{"no offsets", func(c *FlappyConfig) { c.Obstacles.Offsets = nil }, "obstacles.offsets"},
		{"zero gap", func(c *FlappyConfig) { c.Obstacles.GapSize = 0 }, "obstacles.gap_size"},
		{"zero tick rate", func(c *FlappyConfig) { c.Timing.TickRate = 0 }, "timing.tick_rate"},
		{"bad spawn interval", func(c *FlappyConfig) { c.Timing.SpawnIntervalMs = -1 }, "timing.spawn_interval_ms"},
		{"unknown theme", func(c *FlappyConfig) { c.Cosmetics.Theme = "dusk" }, "cosmetics.theme"},
		{"unknown variant", func(c *FlappyConfig) { c.Cosmetics.Variant = "green" }, "cosmetics.variant"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should mention %s", err, tc.field)
			}
		})
	}
}

func TestParseRejectsBackwardFloor(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  floor_scroll_speed: -1\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted a negative floor scroll speed")
	}
}

func TestValidateAllowsStillFloor(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.Physics.FloorScrollSpeed = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() rejected a still floor: %v", err)
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.Physics.ScrollSpeed = 0
	cfg.Timing.FlapIntervalMs = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	for _, field := range []string{"physics.scroll_speed", "timing.flap_interval_ms"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q should mention %s", err, field)
		}
	}
}

func TestTimingDurations(t *testing.T) {
	tm := TimingConfig{TickRate: 100, SpawnIntervalMs: 1200, FlapIntervalMs: 200}

	if got := tm.StepDuration().Milliseconds(); got != 10 {
		t.Errorf("StepDuration() = %dms, expected 10ms", got)
	}
	if got := tm.SpawnInterval().Milliseconds(); got != 1200 {
		t.Errorf("SpawnInterval() = %dms, expected 1200ms", got)
	}
	if got := tm.FlapInterval().Milliseconds(); got != 200 {
		t.Errorf("FlapInterval() = %dms, expected 200ms", got)
	}
	if (TimingConfig{}).StepDuration() != 0 {
		t.Error("StepDuration() with zero tick rate should be 0")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultFlappyConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "gap_size: 250") {
		t.Errorf("Marshal() output missing gap_size:\n%s", data)
	}
}
