package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func TestFitViewport(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		x, y, w, h int
	}{
		{"height bound", 80, 40, 17, 0, 45, 40},
		{"width bound", 20, 100, 0, 41, 20, 18},
		{"empty", 0, 40, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FitViewport(tt.cols, tt.rows, 576, 1024)
			if v.X != tt.x || v.Y != tt.y || v.W != tt.w || v.H != tt.h {
				t.Errorf("FitViewport(%d, %d) = (%d,%d %dx%d), want (%d,%d %dx%d)",
					tt.cols, tt.rows, v.X, v.Y, v.W, v.H, tt.x, tt.y, tt.w, tt.h)
			}
		})
	}
}

func TestViewportCellRectNeverEmpty(t *testing.T) {
	v := FitViewport(80, 40, 576, 1024)

	// A ten pixel wide rect is well under one cell wide
	x0, y0, x1, y1 := v.CellRect(core.NewRect(100, 100, 10, 10))
	if x1-x0 < 1 || y1-y0 < 1 {
		t.Errorf("CellRect produced empty span: x [%d,%d) y [%d,%d)", x0, x1, y0, y1)
	}
}

func newTestGame(t *testing.T) *flappy.Game {
	t.Helper()
	cfg := config.DefaultFlappyConfig()
	cfg.Timing.TickRate = 100
	return flappy.New(cfg, 1)
}

func TestDrawSceneFloorAndHUD(t *testing.T) {
	g := newTestGame(t)
	s := core.NewScreen(80, 40)

	DrawScene(s, SceneOf(g, false))

	// Floor top sits at world y 900, row 35 of a 40 row viewport
	if got := runeAt(s, 17, 35); got != '═' {
		t.Errorf("floor top at (17,35) = %q, want '═'", got)
	}
	if got := runeAt(s, 17, 36); got != '░' {
		t.Errorf("floor fill at (17,36) = %q, want '░'", got)
	}
	if !strings.Contains(rowOf(s, 3), "HI 000  000") {
		t.Errorf("HUD row = %q, want score line", rowOf(s, 3))
	}
	// Nothing is drawn outside the viewport columns
	if got := runeAt(s, 5, 35); got != ' ' {
		t.Errorf("cell left of viewport = %q, want blank", got)
	}
}

func TestDrawSceneFloorOffsetEitherSign(t *testing.T) {
	sc := SceneOf(newTestGame(t), false)
	s := core.NewScreen(80, 24)

	for _, offset := range []float64{-575, -3, 0, 3, 1e4} {
		sc.FloorOffset = offset
		DrawScene(s, sc)
		if got := rowOf(s, s.Height()-1); !strings.ContainsAny(got, string(groundFill)) {
			t.Errorf("offset %v: bottom row %q has no floor", offset, got)
		}
	}
}

func TestDrawSceneActor(t *testing.T) {
	g := newTestGame(t)
	s := core.NewScreen(80, 40)

	DrawScene(s, SceneOf(g, false))

	if !strings.ContainsRune(s.String(), ActorBodyChar) {
		t.Error("actor body not drawn while playing")
	}
}

func TestDrawSceneActorUsesSpriteVariant(t *testing.T) {
	sc := SceneOf(newTestGame(t), false)
	for i := range sc.Sprites {
		if sc.Sprites[i].Kind == flappy.SpriteActor {
			sc.Sprites[i].Variant = flappy.VariantYellow
		}
	}
	s := core.NewScreen(80, 40)

	DrawScene(s, sc)

	// Actor spans cells x 5..9, rows 19..20 of the viewport at x offset 17
	if c := s.GetCell(17+6, 20); c.Rune != ActorBodyChar || c.Color != core.ColorBrightYellow {
		t.Errorf("actor body cell = %+v, want yellow %q", c, ActorBodyChar)
	}
	// Beak sits on the row holding the actor's centre
	if got := runeAt(s, 17+9, 20); got != headGlyph(0) {
		t.Errorf("beak cell = %q, want %q", got, headGlyph(0))
	}
}

func TestDrawSceneGameOver(t *testing.T) {
	g := newTestGame(t)
	g.Actor().Y = g.Config().Screen.FloorY
	if res := g.Step(core.NewInputFrame()); res.State.Phase != flappy.PhaseGameOver {
		t.Fatalf("phase = %v, want game over", res.State.Phase)
	}

	s := core.NewScreen(80, 40)
	DrawScene(s, SceneOf(g, false))
	out := s.String()

	for _, want := range []string{"GAME OVER", "Last 000  Best 000", "Space / R to fly again"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen missing %q", want)
		}
	}
	if strings.ContainsRune(out, ActorBodyChar) {
		t.Error("actor drawn while the round is over")
	}
}

func TestDrawScenePaused(t *testing.T) {
	g := newTestGame(t)
	s := core.NewScreen(80, 40)

	DrawScene(s, SceneOf(g, true))

	if !strings.Contains(s.String(), "PAUSED") {
		t.Error("paused overlay not drawn")
	}
}

func TestDrawSceneTooSmall(t *testing.T) {
	g := newTestGame(t)
	s := core.NewScreen(30, 5)

	DrawScene(s, SceneOf(g, false))

	if !strings.Contains(rowOf(s, 2), "Terminal too small") {
		t.Errorf("row 2 = %q, want size warning", rowOf(s, 2))
	}
}

func TestDrawSceneNightStars(t *testing.T) {
	sc := SceneOf(newTestGame(t), false)
	sc.Theme = flappy.ThemeNight
	s := core.NewScreen(80, 40)

	DrawScene(s, sc)

	if !strings.ContainsRune(s.String(), StarChar) {
		t.Error("night theme drew no stars")
	}
}

func TestHeadGlyph(t *testing.T) {
	tests := []struct {
		rotation float64
		want     rune
	}{
		{20, '╱'},
		{0, '▶'},
		{-20, '╲'},
	}
	for _, tt := range tests {
		if got := headGlyph(tt.rotation); got != tt.want {
			t.Errorf("headGlyph(%v) = %q, want %q", tt.rotation, got, tt.want)
		}
	}
}

func runeAt(s *core.Screen, x, y int) rune {
	return s.GetCell(x, y).Rune
}

func rowOf(s *core.Screen, y int) string {
	return strings.Split(s.String(), "\n")[y]
}
