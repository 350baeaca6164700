package session

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/23prakashjha/Grocery-App/internal/address"
	"github.com/23prakashjha/Grocery-App/internal/checkout"
)

var activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "storefront_active_sessions",
	Help: "Number of live shopper sessions.",
})

type entry struct {
	session  *Session
	lastSeen time.Time
}

// Manager owns the live sessions, keyed by session ID. Sessions are created
// on first use and dropped after sitting idle past the configured TTL.
type Manager struct {
	fetcher address.Fetcher
	placer  checkout.OrderPlacer

	mu       sync.RWMutex
	sessions map[string]*entry

	now func() time.Time
}

// NewManager creates an empty session manager.
func NewManager(fetcher address.Fetcher, placer checkout.OrderPlacer) *Manager {
	return &Manager{
		fetcher:  fetcher,
		placer:   placer,
		sessions: make(map[string]*entry),
		now:      time.Now,
	}
}

// GetOrCreate returns the session for id, creating it if needed, and marks
// it as recently used.
func (m *Manager) GetOrCreate(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[id]
	if !ok {
		e = &entry{session: New(id, m.fetcher, m.placer)}
		m.sessions[id] = e
		activeSessions.Set(float64(len(m.sessions)))
	}
	e.lastSeen = m.now()
	return e.session
}

// Get returns the session for id without creating one.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	return e.session, true
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Purge drops sessions idle longer than maxIdle and returns how many were
// removed. A session mid-submission stays; the submitter marks it busy.
func (m *Manager) Purge(maxIdle time.Duration) int {
	cutoff := m.now().Add(-maxIdle)

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, e := range m.sessions {
		if e.lastSeen.After(cutoff) {
			continue
		}
		switch e.session.CheckoutState() {
		case checkout.StateValidating, checkout.StateSubmitting:
			continue
		}
		delete(m.sessions, id)
		removed++
	}
	activeSessions.Set(float64(len(m.sessions)))
	return removed
}
