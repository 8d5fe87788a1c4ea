// Package store keeps the live game sessions of the server host. Each
// session wraps one engine state machine; the engine itself has no global
// state, so every game gets its own instance here.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ericogr/guessdex/internal/engine"
)

// LiveSession pairs an engine session with the bookkeeping the HTTP host
// needs: the access token, the outcome currently awaiting an answer and the
// last time the player interacted with it.
type LiveSession struct {
	Token    string
	Game     *engine.Session
	Current  engine.Outcome
	LastSeen time.Time
	// ResultReported blocks double counting of aggregate stats.
	ResultReported bool

	mu sync.Mutex
}

// Lock serializes access to the wrapped engine session; the engine itself
// is single-owner and not safe for concurrent callers.
func (ls *LiveSession) Lock() { ls.mu.Lock() }

// Unlock releases the session lock.
func (ls *LiveSession) Unlock() { ls.mu.Unlock() }

// SessionStore manages live sessions keyed by token.
type SessionStore struct {
	sessions map[string]*LiveSession
	mu       sync.RWMutex
	now      func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*LiveSession),
		now:      time.Now,
	}
}

// Create registers a new live session and returns it with a fresh token.
func (s *SessionStore) Create(gameSession *engine.Session) *LiveSession {
	ls := &LiveSession{
		Token:    uuid.NewString(),
		Game:     gameSession,
		LastSeen: s.now(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[ls.Token] = ls
	return ls
}

// Get retrieves a session by token and refreshes its activity timestamp.
func (s *SessionStore) Get(token string) (*LiveSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ls, exists := s.sessions[token]
	if exists {
		ls.LastSeen = s.now()
	}
	return ls, exists
}

// Delete removes a session.
func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// ExpireIdle removes sessions idle for longer than maxIdle and returns how
// many were dropped.
func (s *SessionStore) ExpireIdle(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)
	s.mu.Lock()
	defer s.mu.Unlock()
	dropped := 0
	for token, ls := range s.sessions {
		if ls.LastSeen.Before(cutoff) {
			delete(s.sessions, token)
			dropped++
		}
	}
	return dropped
}

// StartSweeper runs ExpireIdle on the given interval until stop is closed.
func (s *SessionStore) StartSweeper(interval, maxIdle time.Duration, stop <-chan struct{}, onExpire func(dropped int)) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if dropped := s.ExpireIdle(maxIdle); dropped > 0 && onExpire != nil {
					onExpire(dropped)
				}
			}
		}
	}()
}
