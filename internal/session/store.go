package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps sessions in memory and drops them after an idle TTL
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates a new Store
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create starts a new empty session
func (s *Store) Create() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		id := uuid.NewString()
		if _, ok := s.sessions[id]; ok {
			continue
		}
		sess := &Session{ID: id, lastSeen: s.now()}
		s.sessions[id] = sess
		return sess
	}
}

// Get returns a live session and marks it as seen
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if s.now().Sub(sess.lastSeen) > s.ttl {
		delete(s.sessions, id)
		return nil, false
	}
	sess.lastSeen = s.now()
	return sess, true
}

// Delete removes a session
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len returns the number of stored sessions
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Expire removes idle sessions and returns how many were removed
func (s *Store) Expire() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if s.now().Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Run calls Expire every interval until ctx is done
func (s *Store) Run(ctx context.Context, interval time.Duration, onExpire func(removed int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.Expire(); removed > 0 && onExpire != nil {
				onExpire(removed)
			}
		}
	}
}
