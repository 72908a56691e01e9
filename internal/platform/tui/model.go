package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/audio"
)

// Options configures a game model.
type Options struct {
	Game    config.FlappyConfig
	Runtime core.RuntimeConfig
	Audio   audio.Player // Nil means silent
	Logger  *log.Logger  // Nil discards
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	game       *flappy.Game
	screen     *core.Screen
	runtime    core.RuntimeConfig
	inputFrame core.InputFrame
	state      flappy.State
	keys       KeyMap
	help       help.Model
	audio      audio.Player
	logger     *log.Logger
	paused     bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model with a fresh game.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = opts.Game.Timing.TickRate
	}
	// The simulation's step time follows the rate the platform ticks at
	opts.Game.Timing.TickRate = cfg.TickRate

	player := opts.Audio
	if player == nil {
		player = audio.Nop{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game := flappy.New(opts.Game, cfg.Seed)
	logger.Debug("session started", "seed", cfg.Seed, "tick_rate", cfg.TickRate)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 0)),
		runtime:    cfg,
		inputFrame: core.NewInputFrame(),
		state:      game.State(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		audio:      player,
		logger:     logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg, m.state.Phase); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Debug("quit", "high", m.state.High())
		return m, tea.Quit
	case core.ActionPause:
		// Pausing only makes sense mid-round
		if m.state.Phase == flappy.PhasePlaying {
			m.paused = !m.paused
			m.logger.Debug("pause toggled", "paused", m.paused)
		}
	case core.ActionJump, core.ActionRestart:
		if !m.paused {
			m.inputFrame.Set(action)
		}
	}

	return m, nil
}

// handleTick runs one simulation step and forwards its cues.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.runtime.TickRate)
	}

	prev := m.state.Phase
	result := m.game.Step(m.inputFrame)
	m.state = result.State
	m.inputFrame.Clear()

	for _, cue := range result.Cues {
		m.audio.Play(cue)
	}

	switch {
	case result.Has(flappy.CueCrash):
		history := m.state.HighHistory
		m.logger.Info("game over",
			"score", history[len(history)-1],
			"high", m.state.High(),
			"rounds", len(history)-1,
			"step", m.game.Ticks(),
		)
	case prev == flappy.PhaseGameOver && m.state.Phase == flappy.PhasePlaying:
		m.logger.Debug("round restarted", "theme", m.game.Theme(), "variant", m.game.Variant())
	}
	if result.Scored > 0 {
		m.logger.Debug("pair cleared", "score", m.state.Score, "live", m.game.Field().Len())
	}

	return m, tickCmd(m.runtime.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := m.help.View(m.keys)
	helpRows := strings.Count(helpView, "\n") + 1
	m.screen.Resize(m.runtime.ScreenW, core.Max(m.runtime.ScreenH-helpRows, 0))

	DrawScene(m.screen, SceneOf(m.game, m.paused))
	return RenderScreen(m.screen) + "\n" + helpView
}

// Run starts the Bubble Tea program on the local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
