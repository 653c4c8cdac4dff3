package configurator

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ITTVDU45/goetzrental/internal/domain"
)

// Session owns the wizard state for exactly one configurator run. All
// mutation goes through Dispatch, which applies the reducer atomically
// under a mutex; readers always observe a consistent state snapshot.
//
// A closed session drops further dispatches. That is the stale-response
// guard: results of in-flight loads or fetches that arrive after the
// consumer is gone are silently ignored instead of resurrecting state.
type Session struct {
	id        uuid.UUID
	createdAt time.Time

	mu         sync.Mutex
	state      domain.ConfiguratorState
	closed     bool
	lastActive time.Time
}

// NewSession creates a fresh session positioned on step 1.
func NewSession() *Session {
	now := time.Now()
	return &Session{
		id:         uuid.New(),
		createdAt:  now,
		lastActive: now,
		state:      domain.NewConfiguratorState(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Dispatch applies an action to the session state. Returns false when the
// session is already closed and the action was dropped.
func (s *Session) Dispatch(a Action) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	s.state = Reduce(s.state, a)
	s.lastActive = time.Now()
	return true
}

// State returns the current state snapshot. The snapshot shares its maps
// and slices with the session, which is safe because the reducer never
// mutates them in place.
func (s *Session) State() domain.ConfiguratorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Pricing derives the current price estimate.
func (s *Session) Pricing() Pricing {
	return ComputePricing(s.State())
}

// Close marks the session as finished. Further dispatches are no-ops.
// Closing twice is harmless.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// Closed reports whether the session has been closed.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// IdleSince returns the time of the last dispatch.
func (s *Session) IdleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}
