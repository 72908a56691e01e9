package flappy

import "slices"

// Phase is the top-level game state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game over"
	}
	return "playing"
}

// State is the phase and score bookkeeping of a session.
type State struct {
	Phase           Phase
	Score           int
	HighHistory     []int // Append-only, seeded with 0
	GameOverHandled bool
}

// NewState returns the initial session state.
func NewState() State {
	return State{
		Phase:       PhasePlaying,
		HighHistory: []int{0},
	}
}

// AddScore credits n cleared pairs to the current round.
func (s *State) AddScore(n int) {
	if s.Phase != PhasePlaying {
		return
	}
	s.Score += n
}

// EnterGameOver ends the round. The score is appended to the history and
// reset only on the first call; later calls while still over return false.
func (s *State) EnterGameOver() bool {
	s.Phase = PhaseGameOver
	if s.GameOverHandled {
		return false
	}
	s.HighHistory = append(s.HighHistory, s.Score)
	s.Score = 0
	s.GameOverHandled = true
	return true
}

// Restart starts a new round. It is a no-op while playing.
func (s *State) Restart() bool {
	if s.Phase != PhaseGameOver {
		return false
	}
	s.Phase = PhasePlaying
	s.GameOverHandled = false
	return true
}

// High returns the best score of the session.
func (s State) High() int {
	if len(s.HighHistory) == 0 {
		return 0
	}
	return slices.Max(s.HighHistory)
}

// Clone returns a copy that shares no memory with s.
func (s State) Clone() State {
	s.HighHistory = slices.Clone(s.HighHistory)
	return s
}
