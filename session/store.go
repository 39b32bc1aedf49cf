// Package session holds the in-memory state of a specdash session: the last
// good specification, the error slot, and the busy flag, plus the
// orchestrator that is the only writer of that state.
package session

import (
	"sync"

	"github.com/dylan/specdash/spec"
)

// Store is the single-slot container for session state. It is created empty
// at startup, mutated only by the Orchestrator, and discarded with the
// session. Readers may live on other goroutines (bubbletea commands run off
// the update loop), so access is guarded by a mutex.
type Store struct {
	mu      sync.Mutex
	spec    *spec.Specification
	traceID string
	errMsg  string
	busy    bool
}

func NewStore() *Store {
	return &Store{}
}

// Spec returns the last successfully retrieved specification, or nil.
func (s *Store) Spec() *spec.Specification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spec
}

// TraceID returns the trace identifier recorded with the current specification.
func (s *Store) TraceID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.traceID
}

// Current returns the specification and its trace id as one consistent pair.
func (s *Store) Current() (*spec.Specification, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spec, s.traceID
}

// Err returns the last error message, or "" when none is pending. An error
// can coexist with a still-valid prior specification.
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Busy reports whether a generate or refine call is outstanding.
func (s *Store) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// begin marks a request in flight and clears any prior error. The stored
// specification is left untouched.
func (s *Store) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = true
	s.errMsg = ""
}

// finish clears the busy flag regardless of outcome.
func (s *Store) finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
}

// setResult replaces the specification and trace id together and clears the
// error slot.
func (s *Store) setResult(sp *spec.Specification, traceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spec = sp
	s.traceID = traceID
	s.errMsg = ""
}

// fail records an error message, retaining whatever specification is stored.
func (s *Store) fail(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = msg
}
