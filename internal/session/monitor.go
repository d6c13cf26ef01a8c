package session

import (
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

// retention keeps an expired entry around long enough for the next request to
// observe the forced logout before the janitor removes it.
const retention = time.Hour

// NewSessionID mints the opaque id stored in the session_id cookie.
func NewSessionID() string {
	return uuid.NewString()
}

type entry struct {
	expiresAt time.Time
	expired   bool
	timer     *time.Timer
}

// Monitor is the one autonomous background task in the client: per-session
// timers that compare the stored expiration against wall-clock time and flip
// the session to logged-out when it elapses. Re-tracking a session clears the
// old timer first so a changed expiration never double-fires. A gocron job
// sweeps long-dead entries once a minute.
type Monitor struct {
	mu        sync.Mutex
	sessions  map[string]*entry
	scheduler gocron.Scheduler
}

func NewMonitor() (*Monitor, error) {
	m := &Monitor{sessions: map[string]*entry{}}

	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	if _, err := s.NewJob(
		gocron.DurationJob(time.Minute),
		gocron.NewTask(m.sweep),
	); err != nil {
		return nil, err
	}
	s.Start()
	m.scheduler = s
	return m, nil
}

// Track (re)schedules the expiry timer for a session. An already-past
// expiration marks the session expired immediately; a zero expiration means
// the timer is not armed at all.
func (m *Monitor) Track(sessionID string, expiresAt time.Time) {
	if sessionID == "" {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.sessions[sessionID]; ok && old.timer != nil {
		old.timer.Stop()
	}

	e := &entry{expiresAt: expiresAt}
	m.sessions[sessionID] = e

	if expiresAt.IsZero() {
		return
	}
	delay := time.Until(expiresAt)
	if delay <= 0 {
		e.expired = true
		return
	}
	e.timer = time.AfterFunc(delay, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if cur, ok := m.sessions[sessionID]; ok && cur == e {
			cur.expired = true
		}
	})
}

// Expired reports whether the session's timer has fired. Unknown sessions are
// not expired; their cookies alone decide.
func (m *Monitor) Expired(sessionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[sessionID]
	return ok && e.expired
}

// Drop forgets a session after an explicit logout or once the forced logout
// has been delivered.
func (m *Monitor) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.sessions[sessionID]; ok {
		if e.timer != nil {
			e.timer.Stop()
		}
		delete(m.sessions, sessionID)
	}
}

func (m *Monitor) sweep() {
	cutoff := time.Now().Add(-retention)
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, e := range m.sessions {
		if e.expired && !e.expiresAt.IsZero() && e.expiresAt.Before(cutoff) {
			delete(m.sessions, id)
		}
	}
}

// Close stops the janitor; armed timers are stopped as they are dropped.
func (m *Monitor) Close() {
	if m.scheduler != nil {
		_ = m.scheduler.Shutdown()
	}
}
