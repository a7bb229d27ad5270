package repository

import "sync"

// SessionStore holds the login flag for the lifetime of the process.
// It is deliberately non-durable: the flag gates UI navigation only, not
// data access, and resets whenever the program restarts. The mutex covers
// reads from background UI commands.
type SessionStore struct {
	mu       sync.Mutex
	loggedIn bool
}

// NewSessionStore creates a session store with the flag cleared
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// SetLoginFlag marks the session as logged in
func (s *SessionStore) SetLoginFlag() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = true
}

// ClearLoginFlag marks the session as logged out
func (s *SessionStore) ClearLoginFlag() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = false
}

// IsLoggedIn reports whether the session is logged in
func (s *SessionStore) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loggedIn
}
