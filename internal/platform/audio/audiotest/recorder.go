// Package audiotest provides an audio.Player that records cues for tests.
package audiotest

import (
	"sync"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Recorder keeps every cue it receives.
type Recorder struct {
	mu   sync.Mutex
	cues []flappy.Cue
}

// Play records the cue.
func (r *Recorder) Play(cue flappy.Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cues = append(r.cues, cue)
}

// Cues returns a copy of the recorded cues.
func (r *Recorder) Cues() []flappy.Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]flappy.Cue(nil), r.cues...)
}
