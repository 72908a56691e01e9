package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/audio"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	flagSound    string
	flagLogFile  string
	flagLogLevel string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/W - Flap (restart after game over)
  R/Enter    - Restart after game over
  P          - Pause
  ?          - Toggle key help
  Q/Esc      - Quit

Sound options:
  synth - Generated chirps and crash through the audio device
  bell  - Terminal bell on crash
  off   - Silent

Examples:
  flappy play
  flappy play --sound off
  flappy play --log-file ./flappy.log --log-level debug
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagSound, "sound", string(audio.ModeSynth), "Sound output: synth, bell, off")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write a session log to this file")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func runPlay(_ *cobra.Command, _ []string) {
	stderr := log.NewWithOptions(os.Stderr, log.Options{Prefix: "flappy"})

	gameCfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		stderr.Error("cannot load config", "err", err)
		os.Exit(1)
	}

	rt := core.DefaultConfig()
	rt.Seed = flagSeed
	rt.TickRate = gameCfg.Timing.TickRate
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	// Get terminal size before the program takes over the screen
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	logger, closeLog, err := openSessionLog(flagLogFile, flagLogLevel)
	if err != nil {
		stderr.Error("cannot open log file", "err", err)
		os.Exit(1)
	}
	defer closeLog()

	player, closeAudio := openPlayer(audio.Mode(flagSound), stderr)
	defer closeAudio()

	runErr := tui.Run(tui.Options{
		Game:    gameCfg,
		Runtime: rt,
		Audio:   player,
		Logger:  logger,
	})
	if runErr != nil {
		closeAudio()
		closeLog()
		stderr.Error("game exited", "err", runErr)
		os.Exit(1)
	}
}

// openSessionLog returns a file logger, or nil when no path is given.
// Stderr is unusable while the alternate screen is active.
func openSessionLog(path, level string) (*log.Logger, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           lvl,
	})
	return logger, func() { _ = f.Close() }, nil
}

// openPlayer picks the audio output, falling back to the bell when no
// audio device can be opened.
func openPlayer(mode audio.Mode, logger *log.Logger) (audio.Player, func()) {
	switch mode {
	case audio.ModeOff:
		return audio.Nop{}, func() {}
	case audio.ModeBell:
		return audio.NewBell(os.Stderr), func() {}
	case audio.ModeSynth:
		synth, err := audio.NewSynth()
		if err != nil {
			logger.Warn("audio device unavailable, using terminal bell", "err", err)
			return audio.NewBell(os.Stderr), func() {}
		}
		return synth, synth.Close
	default:
		logger.Warn("unknown sound mode, playing silently", "sound", mode)
		return audio.Nop{}, func() {}
	}
}
