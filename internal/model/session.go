package model

import "sync"

// Session holds the identity acting in the current process or request.
// The zero value is an anonymous session.
type Session struct {
	mu      sync.RWMutex
	current *Identity
}

// NewSession returns a session authenticated as id, or anonymous if id is nil
func NewSession(id *Identity) *Session {
	s := &Session{}
	s.Set(id)
	return s
}

// Current returns a copy of the current identity, or nil when anonymous
func (s *Session) Current() *Identity {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	id := *s.current
	return &id
}

// IsAuthenticated returns true if an identity is signed in
func (s *Session) IsAuthenticated() bool {
	return s.Current() != nil
}

// Set replaces the current identity. A nil identity signs out.
func (s *Session) Set(id *Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == nil {
		s.current = nil
		return
	}
	cp := *id
	s.current = &cp
}

// Clear signs the session out
func (s *Session) Clear() {
	s.Set(nil)
}
