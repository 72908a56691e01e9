package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/audio/audiotest"
)

func newTestModel(t *testing.T) (Model, *audiotest.Recorder) {
	t.Helper()
	rec := &audiotest.Recorder{}
	m := NewModel(Options{
		Game: config.DefaultFlappyConfig(),
		Runtime: core.RuntimeConfig{
			ScreenW:  80,
			ScreenH:  41,
			TickRate: 100,
			Seed:     7,
		},
		Audio: rec,
	})
	return m, rec
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return send(t, m, TickMsg(time.Now()))
}

func TestModelFlapForwardsCue(t *testing.T) {
	m, rec := newTestModel(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = tick(t, m)

	cues := rec.Cues()
	if len(cues) != 1 || cues[0] != flappy.CueFlap {
		t.Fatalf("cues = %v, want [flap]", cues)
	}
	if v := m.game.Actor().Velocity; v >= 0 {
		t.Errorf("velocity after flap = %v, want upward", v)
	}

	// The input frame is consumed by the step
	m = tick(t, m)
	if got := len(rec.Cues()); got != 1 {
		t.Errorf("cues after second tick = %d, want 1", got)
	}
}

func TestModelPauseStopsStepping(t *testing.T) {
	m, _ := newTestModel(t)
	m = tick(t, m)
	before := m.game.Ticks()

	m = send(t, m, runeKey('p'))
	if !m.paused {
		t.Fatal("expected model to be paused")
	}
	for i := 0; i < 5; i++ {
		m = tick(t, m)
	}
	if got := m.game.Ticks(); got != before {
		t.Errorf("ticks while paused = %d, want %d", got, before)
	}

	// Flaps are dropped while paused
	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = send(t, m, runeKey('p'))
	m = tick(t, m)
	if got := m.game.Ticks(); got != before+1 {
		t.Errorf("ticks after resume = %d, want %d", got, before+1)
	}
	if v := m.game.Actor().Velocity; v < 0 {
		t.Errorf("velocity = %v, flap while paused should be dropped", v)
	}
}

func TestModelPauseIgnoredWhenOver(t *testing.T) {
	m, rec := newTestModel(t)
	m.game.Actor().Y = m.game.Config().Screen.FloorY
	m = tick(t, m)

	if m.state.Phase != flappy.PhaseGameOver {
		t.Fatalf("phase = %v, want game over", m.state.Phase)
	}
	if cues := rec.Cues(); len(cues) != 1 || cues[0] != flappy.CueCrash {
		t.Errorf("cues = %v, want [crash]", cues)
	}

	m = send(t, m, runeKey('p'))
	if m.paused {
		t.Error("pause toggled while the round is over")
	}

	// Space restarts instead of flapping
	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = tick(t, m)
	if m.state.Phase != flappy.PhasePlaying {
		t.Errorf("phase after space = %v, want playing", m.state.Phase)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key did not produce tea.QuitMsg")
	}
	if v := next.(Model).View(); v != "" {
		t.Errorf("View after quit = %q, want empty", v)
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 41})

	view := m.View()
	if !strings.Contains(view, "HI 000") {
		t.Error("view missing HUD")
	}
	if !strings.Contains(view, "flap") {
		t.Error("view missing help line")
	}
}

func TestModelTickRateFallsBackToConfig(t *testing.T) {
	m := NewModel(Options{Game: config.DefaultFlappyConfig()})
	if m.runtime.TickRate != 120 {
		t.Errorf("tick rate = %d, want 120", m.runtime.TickRate)
	}
	if m.game.Config().Timing.TickRate != 120 {
		t.Errorf("game tick rate = %d, want 120", m.game.Config().Timing.TickRate)
	}
}
