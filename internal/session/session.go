// Package session holds the mutable per-run flashcard state shared by
// the UI layer and the narration sequencer.
package session

import (
	"math"
	"sync"
)

// Reading-rate bounds. The rate is a multiplier on normal speaking speed.
const (
	RateMin     = 0.6
	RateMax     = 1.4
	RateStep    = 0.05
	DefaultRate = 1.0
)

// State is the current session: card index, selected voices, reading
// rate, and the auto-play flag. The UI mutates it on user actions; the
// sequencer mutates the index on each advance. Accessors are locked
// because the sequencer runs off the UI loop.
type State struct {
	mu sync.RWMutex

	index        int
	englishVoice string
	chineseVoice string
	rate         float64
	auto         bool
}

// New returns a State at index 0 with the default rate.
func New() *State {
	return &State{rate: DefaultRate}
}

// Index returns the current card index.
func (s *State) Index() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index
}

// SetIndex moves to the given card index.
func (s *State) SetIndex(i int) {
	s.mu.Lock()
	s.index = i
	s.mu.Unlock()
}

// Voices returns the selected English and Chinese voice IDs.
func (s *State) Voices() (english, chinese string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.englishVoice, s.chineseVoice
}

// SetVoices records the selected English and Chinese voice IDs.
func (s *State) SetVoices(english, chinese string) {
	s.mu.Lock()
	s.englishVoice = english
	s.chineseVoice = chinese
	s.mu.Unlock()
}

// Rate returns the reading-rate multiplier.
func (s *State) Rate() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rate
}

// SetRate sets the reading rate, clamped to [RateMin, RateMax] and
// snapped to the step grid.
func (s *State) SetRate(r float64) {
	s.mu.Lock()
	s.rate = clampRate(r)
	s.mu.Unlock()
}

// AdjustRate nudges the rate by delta, respecting the bounds.
func (s *State) AdjustRate(delta float64) {
	s.mu.Lock()
	s.rate = clampRate(s.rate + delta)
	s.mu.Unlock()
}

// Auto returns the auto-play flag.
func (s *State) Auto() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.auto
}

// SetAuto sets the auto-play flag.
func (s *State) SetAuto(on bool) {
	s.mu.Lock()
	s.auto = on
	s.mu.Unlock()
}

func clampRate(r float64) float64 {
	// Snap to the 0.05 grid first so repeated nudges don't drift.
	r = math.Round(r/RateStep) * RateStep
	if r < RateMin {
		return RateMin
	}
	if r > RateMax {
		return RateMax
	}
	return r
}
