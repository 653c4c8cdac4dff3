package configurator

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ITTVDU45/goetzrental/internal/metrics"
)

// Manager is the in-memory registry of live wizard sessions. Sessions are
// short-lived by nature; a sweep goroutine closes and evicts sessions that
// have been idle longer than the TTL.
type Manager struct {
	ttl    time.Duration
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	sweepEvery time.Duration
	stopCh     chan struct{}
	stopOnce   sync.Once
}

// NewManager creates a session manager. Start must be called to begin the
// idle sweep, Stop to end it.
func NewManager(ttl, sweepEvery time.Duration, logger *slog.Logger) *Manager {
	return &Manager{
		ttl:        ttl,
		sweepEvery: sweepEvery,
		logger:     logger,
		sessions:   make(map[uuid.UUID]*Session),
		stopCh:     make(chan struct{}),
	}
}

// Create registers a fresh session and returns it.
func (m *Manager) Create() *Session {
	s := NewSession()

	m.mu.Lock()
	m.sessions[s.ID()] = s
	m.mu.Unlock()

	metrics.SessionsStarted.Inc()
	metrics.SessionsActive.Inc()
	return s
}

// Get returns the session with the given ID, or nil.
func (m *Manager) Get(id uuid.UUID) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[id]
}

// Remove closes and evicts a session. Removing an unknown ID is a no-op.
func (m *Manager) Remove(id uuid.UUID) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if ok {
		s.Close()
		metrics.SessionsActive.Dec()
	}
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Start launches the idle sweep goroutine.
func (m *Manager) Start() {
	go m.sweepLoop()
}

// Stop ends the sweep goroutine. Safe to call more than once.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopCh)
	})
}

func (m *Manager) sweepLoop() {
	ticker := time.NewTicker(m.sweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopCh:
			return
		case <-ticker.C:
			m.sweep()
		}
	}
}

// sweep evicts sessions idle past the TTL.
func (m *Manager) sweep() {
	cutoff := time.Now().Add(-m.ttl)

	m.mu.Lock()
	var expired []*Session
	for id, s := range m.sessions {
		if s.IdleSince().Before(cutoff) {
			expired = append(expired, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		s.Close()
		metrics.SessionsActive.Dec()
	}
	if len(expired) > 0 {
		m.logger.Debug("swept idle configurator sessions", "count", len(expired))
	}
}
