package session

import (
	"sync"
	"time"

	"github.com/aidar/player-manager/internal/domain"
)

// FlashKind is the severity of a flash message
type FlashKind string

// Flash kinds
const (
	FlashInfo  FlashKind = "info"
	FlashError FlashKind = "error"
)

// Flash is a one-shot message shown on the next page render
type Flash struct {
	Kind    FlashKind
	Message string
}

// Session holds the form state of one visitor.
// All access to State goes through Do so requests of one visitor never overlap.
type Session struct {
	ID string

	mu       sync.Mutex
	state    domain.FormState
	flash    *Flash
	lastSeen time.Time
}

// Do runs fn with exclusive access to the session state
func (s *Session) Do(fn func(state *domain.FormState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

// SetFlash replaces the pending flash message
func (s *Session) SetFlash(kind FlashKind, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flash = &Flash{Kind: kind, Message: message}
}

// PopFlash returns the pending flash message and clears it
func (s *Session) PopFlash() *Flash {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.flash
	s.flash = nil
	return f
}
