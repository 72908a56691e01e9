package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// cellAspect is the height/width ratio of a terminal cell.
const cellAspect = 2.0

// minViewport is the smallest play area worth drawing, in cells.
const minViewport = 8

// Visual characters for rendering
const (
	ObstacleChar    = '█'
	ObstacleCapUp   = '▀' // Top row of a lower obstacle
	ObstacleCapDown = '▄' // Bottom row of an upper obstacle
	ActorBodyChar   = '●'
	StarChar        = '·'
)

var (
	wingFrames = [flappy.AnimationFrames]rune{'^', '-', 'v'}
	groundTop  = []rune("═══╪")
	groundFill = []rune("░▒")
)

// Scene is everything the renderer needs for one frame.
type Scene struct {
	World       config.ScreenConfig
	Sprites     []flappy.Sprite
	State       flappy.State
	Theme       flappy.Theme
	FloorOffset float64
	Paused      bool
}

// SceneOf captures the drawable state of a game.
func SceneOf(g *flappy.Game, paused bool) Scene {
	return Scene{
		World:       g.Config().Screen,
		Sprites:     g.Drawables(),
		State:       g.State(),
		Theme:       g.Theme(),
		FloorOffset: g.FloorOffset(),
		Paused:      paused,
	}
}

// Viewport maps world pixels onto a block of terminal cells.
type Viewport struct {
	X, Y, W, H int // Cell area on screen

	scaleX, scaleY float64 // Cells per world pixel
}

// FitViewport returns the largest area of cols x rows that shows the whole
// world with its proportions intact, centred horizontally.
func FitViewport(cols, rows int, worldW, worldH float64) Viewport {
	if cols <= 0 || rows <= 0 || worldW <= 0 || worldH <= 0 {
		return Viewport{}
	}

	h := rows
	w := int(math.Round(float64(rows) * worldW / worldH * cellAspect))
	if w > cols {
		w = cols
		h = int(math.Round(float64(cols) * worldH / worldW / cellAspect))
	}
	w = core.Max(w, 1)
	h = core.Max(h, 1)

	return Viewport{
		X:      (cols - w) / 2,
		Y:      (rows - h) / 2,
		W:      w,
		H:      h,
		scaleX: float64(w) / worldW,
		scaleY: float64(h) / worldH,
	}
}

// Span converts a world interval on one axis into a half-open cell interval.
// Non-empty world intervals always cover at least one cell.
func span(from, to, scale float64) (int, int) {
	a := int(math.Round(from * scale))
	b := int(math.Round(to * scale))
	if b <= a && to > from {
		b = a + 1
	}
	return a, b
}

// CellRect converts a world rectangle to viewport-relative cells.
func (v Viewport) CellRect(r core.Rect) (x0, y0, x1, y1 int) {
	x0, x1 = span(r.Left(), r.Right(), v.scaleX)
	y0, y1 = span(r.Top(), r.Bottom(), v.scaleY)
	return x0, y0, x1, y1
}

// CellY converts a world y-coordinate to a viewport-relative row.
func (v Viewport) CellY(y float64) int {
	return int(math.Round(y * v.scaleY))
}

// set draws a viewport-relative cell, clipped to the viewport.
func (v Viewport) set(dst *core.Screen, x, y int, r rune, c core.Color) {
	if x < 0 || x >= v.W || y < 0 || y >= v.H {
		return
	}
	dst.SetWithColor(v.X+x, v.Y+y, r, c)
}

// DrawScene renders a frame into dst.
func DrawScene(dst *core.Screen, sc Scene) {
	dst.Clear()

	v := FitViewport(dst.Width(), dst.Height(), sc.World.Width, sc.World.Height)
	if v.W < minViewport || v.H < minViewport {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorBrightRed)
		return
	}

	drawBackground(dst, v, sc.Theme)
	for _, s := range sc.Sprites {
		switch s.Kind {
		case flappy.SpriteUpperObstacle, flappy.SpriteLowerObstacle:
			drawObstacle(dst, v, s, sc.Theme)
		case flappy.SpriteActor:
			drawActor(dst, v, s)
		}
	}
	drawFloor(dst, v, sc.World, sc.FloorOffset)
	drawHUD(dst, v, sc.World, sc.State)

	switch {
	case sc.State.Phase == flappy.PhaseGameOver:
		last := sc.State.HighHistory[len(sc.State.HighHistory)-1]
		drawMessage(dst, v, "GAME OVER",
			fmt.Sprintf("Last %03d  Best %03d", last, sc.State.High()),
			"Space / R to fly again")
	case sc.Paused:
		drawMessage(dst, v, "PAUSED", "P to resume")
	}
}

func drawBackground(dst *core.Screen, v Viewport, theme flappy.Theme) {
	if theme != flappy.ThemeNight {
		return
	}
	for y := 0; y < v.H; y++ {
		for x := 0; x < v.W; x++ {
			if (x*7+y*13)%29 == 0 {
				v.set(dst, x, y, StarChar, core.ColorGray)
			}
		}
	}
}

func drawObstacle(dst *core.Screen, v Viewport, s flappy.Sprite, theme flappy.Theme) {
	body, rim := core.ColorGreen, core.ColorBrightGreen
	if theme == flappy.ThemeNight {
		body, rim = core.ColorRed, core.ColorBrightRed
	}

	x0, y0, x1, y1 := v.CellRect(s.Bounds)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			v.set(dst, x, y, ObstacleChar, body)
		}
	}

	capY, capChar := y1-1, ObstacleCapDown
	if s.Kind == flappy.SpriteLowerObstacle {
		capY, capChar = y0, ObstacleCapUp
	}
	for x := x0; x < x1; x++ {
		v.set(dst, x, capY, capChar, rim)
	}
}

// headGlyph picks the beak character from the actor's tilt.
func headGlyph(rotation float64) rune {
	switch {
	case rotation > 8:
		return '╱'
	case rotation < -8:
		return '╲'
	default:
		return '▶'
	}
}

func variantColor(variant flappy.Variant) core.Color {
	switch variant {
	case flappy.VariantRed:
		return core.ColorBrightRed
	case flappy.VariantYellow:
		return core.ColorBrightYellow
	default:
		return core.ColorBrightBlue
	}
}

func drawActor(dst *core.Screen, v Viewport, s flappy.Sprite) {
	color := variantColor(s.Variant)
	x0, y0, x1, y1 := v.CellRect(s.Bounds)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			v.set(dst, x, y, ActorBodyChar, color)
		}
	}
	if x1-x0 > 1 {
		v.set(dst, x0, y0, wingFrames[s.Frame%flappy.AnimationFrames], core.ColorBrightWhite)
	}

	// Beak on the centre row, clamped into the body
	_, cy := s.Bounds.Center()
	beakY := min(max(v.CellY(cy), y0), y1-1)
	v.set(dst, x1-1, beakY, headGlyph(s.Rotation), core.ColorOrange)
}

func drawFloor(dst *core.Screen, v Viewport, world config.ScreenConfig, offset float64) {
	top := v.CellY(world.FloorY)
	shift := int(math.Round(-offset * v.scaleX))

	for y := top; y < v.H; y++ {
		pattern, color := groundFill, core.ColorYellow
		if y == top {
			pattern, color = groundTop, core.ColorBrightGreen
		}
		for x := 0; x < v.W; x++ {
			n := len(pattern)
			v.set(dst, x, y, pattern[((x+shift)%n+n)%n], color)
		}
	}
}

func drawHUD(dst *core.Screen, v Viewport, world config.ScreenConfig, st flappy.State) {
	row := core.Max(v.CellY(64*world.Height/1024), 0)
	text := fmt.Sprintf("HI %03d  %03d", st.High(), st.Score)
	x := v.X + (v.W-len(text))/2
	dst.DrawText(x, v.Y+row, text, core.ColorBrightWhite)
}

func drawMessage(dst *core.Screen, v Viewport, lines ...string) {
	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2

	x := v.X + (v.W-boxW)/2
	y := v.Y + (v.H-boxH)/2
	dst.FillArea(x, y, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(x, y, boxW, boxH, core.ColorWhite)

	for i, l := range lines {
		lx := x + (boxW-len([]rune(l)))/2
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightYellow
		}
		dst.DrawText(lx, y+1+i, l, color)
	}
}
