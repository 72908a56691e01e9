package audio

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

const (
	sampleRate = beep.SampleRate(44100)

	flapLength  = 90 * time.Millisecond
	crashLength = 350 * time.Millisecond

	flapGain  = 0.25
	crashGain = 0.4

	crashSeed = 0x9e3779b9
)

// Synth plays procedurally generated cues through the system speaker.
type Synth struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSynth opens the speaker and starts an empty mixer on it.
func NewSynth() (*Synth, error) {
	s := &Synth{mixer: &beep.Mixer{}}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return s, nil
}

// Play queues the cue's sound on the mixer and returns immediately.
func (s *Synth) Play(cue flappy.Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	var streamer beep.Streamer
	switch cue {
	case flappy.CueFlap:
		chirp := NewChirpGenerator(sampleRate, 520, 980, flapLength)
		streamer = WithGain(beep.Take(sampleRate.N(flapLength), chirp), flapGain)
	case flappy.CueCrash:
		crash := NewCrashGenerator(sampleRate, crashLength, rand.New(rand.NewSource(crashSeed)))
		streamer = WithGain(beep.Take(sampleRate.N(crashLength), crash), crashGain)
	default:
		return
	}

	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// Close silences the mixer. The speaker itself stays open for the process.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

// WithGain scales s by a linear gain. A gain of zero or less is silent.
func WithGain(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// ChirpGenerator sweeps a sine tone between two frequencies with a fading envelope.
type ChirpGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

// NewChirpGenerator creates a chirp lasting d.
func NewChirpGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *ChirpGenerator {
	return &ChirpGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: max(sr.N(d), 1),
	}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.samples), 1)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := (1 - progress) * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// CrashGenerator produces a decaying noise burst over a low thump.
type CrashGenerator struct {
	sr      beep.SampleRate
	samples int
	pos     int
	rng     *rand.Rand
}

// NewCrashGenerator creates a crash lasting d with noise drawn from rng.
func NewCrashGenerator(sr beep.SampleRate, d time.Duration, rng *rand.Rand) *CrashGenerator {
	return &CrashGenerator{
		sr:      sr,
		samples: max(sr.N(d), 1),
		rng:     rng,
	}
}

func (g *CrashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-6 * float64(g.pos) / float64(g.samples))

		white := g.rng.Float64()*2 - 1

		sample := envelope * 0.5 * (white + math.Sin(2*math.Pi*70*t))
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrashGenerator) Err() error {
	return nil
}
