package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"linguabridge/backend/internal/model"
)

// Session is the per-user state for one browser session: the live
// transcript plus bookkeeping for idle eviction. The transcript is mutated
// only by append and clear (restore replaces it wholesale with a copy).
//
// Every user intent locks the session for its full duration, including the
// translation or capture call it triggers, so exactly one operation is in
// flight per session at a time.
type Session struct {
	id       string
	mu       sync.Mutex
	turns    []model.ChatTurn
	lastSeen time.Time
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// SessionManager owns all live sessions, keyed by the session cookie value.
// Sessions are created on first use and torn down by the janitor after the
// idle TTL; nothing survives the process.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	nowFunc  func() time.Time
}

// ManagerOption customizes a SessionManager.
type ManagerOption func(*SessionManager)

// WithClock replaces the wall clock, letting tests pin timestamps and
// provoke same-second conversation id collisions deterministically.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *SessionManager) {
		m.nowFunc = now
	}
}

func NewSessionManager(opts ...ManagerOption) *SessionManager {
	m := &SessionManager{
		sessions: make(map[string]*Session),
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewID generates a fresh session identifier for the cookie middleware.
func (m *SessionManager) NewID() string {
	return uuid.New().String()
}

// Now returns the manager's current wall-clock time.
func (m *SessionManager) Now() time.Time {
	return m.nowFunc()
}

// Ensure returns the session for id, creating it on first use.
func (m *SessionManager) Ensure(id string) *Session {
	m.mu.RLock()
	sess, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		m.touch(sess)
		return sess
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if sess, ok := m.sessions[id]; ok {
		sess.lastSeen = m.nowFunc()
		return sess
	}
	sess = &Session{id: id, lastSeen: m.nowFunc()}
	m.sessions[id] = sess
	return sess
}

// Lookup returns the session for id without creating it.
func (m *SessionManager) Lookup(id string) (*Session, bool) {
	m.mu.RLock()
	sess, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		m.touch(sess)
	}
	return sess, ok
}

// SweepIdle removes sessions idle for longer than ttl and returns their
// ids so callers can drop dependent state.
func (m *SessionManager) SweepIdle(ttl time.Duration) []string {
	cutoff := m.nowFunc().Add(-ttl)

	m.mu.Lock()
	defer m.mu.Unlock()

	var evicted []string
	for id, sess := range m.sessions {
		sess.mu.Lock()
		idle := sess.lastSeen.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			delete(m.sessions, id)
			evicted = append(evicted, id)
		}
	}
	return evicted
}

// Len returns the number of live sessions.
func (m *SessionManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *SessionManager) touch(sess *Session) {
	sess.mu.Lock()
	sess.lastSeen = m.nowFunc()
	sess.mu.Unlock()
}
