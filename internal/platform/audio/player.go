// Package audio plays the game's sound cues. Every player is fire-and-forget:
// Play returns immediately and nothing waits for playback to finish.
package audio

import (
	"io"
	"sync"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Player receives sound cues from the game loop.
type Player interface {
	Play(cue flappy.Cue)
}

// Nop discards every cue.
type Nop struct{}

// Play does nothing.
func (Nop) Play(flappy.Cue) {}

// Bell rings the terminal bell on a crash. Flaps are too frequent for a bell
// and are ignored.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell creates a bell writing to w (usually os.Stderr, which Bubble Tea
// does not draw on).
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Play writes BEL for the crash cue.
func (b *Bell) Play(cue flappy.Cue) {
	if cue != flappy.CueCrash {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	//nolint:errcheck // Best-effort, a missing bell is not an error
	b.w.Write([]byte{'\a'})
}

// Mode selects a player implementation by name.
type Mode string

const (
	ModeOff   Mode = "off"
	ModeBell  Mode = "bell"
	ModeSynth Mode = "synth"
)
