package flappy

import "time"

// Timer is a periodic trigger driven by simulated step time.
// It fires at most once per Advance call; intervals that elapse within a
// single step are not queued.
type Timer struct {
	interval time.Duration
	elapsed  time.Duration
}

// NewTimer creates a timer that fires every interval.
func NewTimer(interval time.Duration) Timer {
	return Timer{interval: interval}
}

// Advance adds dt to the timer and reports whether it fired.
func (t *Timer) Advance(dt time.Duration) bool {
	if t.interval <= 0 {
		return false
	}
	t.elapsed += dt
	if t.elapsed < t.interval {
		return false
	}
	t.elapsed %= t.interval
	return true
}

// Reset restarts the current period.
func (t *Timer) Reset() {
	t.elapsed = 0
}
