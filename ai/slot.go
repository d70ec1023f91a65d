// ABOUTME: Last-write-wins result slot for overlapping assistant requests
// ABOUTME: Tracks in-flight count so surfaces can show a busy indicator
package ai

import "sync"

// ResultSlot holds the most recently resolved assistant answer. Overlapping
// requests are allowed; whichever resolves last owns the slot. There is no
// cancellation: earlier results are simply overwritten.
type ResultSlot struct {
	mu       sync.Mutex
	inFlight int
	latest   string
	has      bool
}

// Begin marks one request as started.
func (s *ResultSlot) Begin() {
	s.mu.Lock()
	s.inFlight++
	s.mu.Unlock()
}

// Resolve marks one request as finished and stores its result.
func (s *ResultSlot) Resolve(text string) {
	s.mu.Lock()
	if s.inFlight > 0 {
		s.inFlight--
	}
	s.latest = text
	s.has = true
	s.mu.Unlock()
}

// Latest returns the most recently resolved result, if any.
func (s *ResultSlot) Latest() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest, s.has
}

// Busy reports whether any request is still in flight.
func (s *ResultSlot) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight > 0
}

// Clear empties the slot without touching the in-flight count.
func (s *ResultSlot) Clear() {
	s.mu.Lock()
	s.latest = ""
	s.has = false
	s.mu.Unlock()
}
