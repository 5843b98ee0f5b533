package http

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultSessionTTL is how long a login session stays valid without the
// operator logging in again.
const DefaultSessionTTL = 12 * time.Hour

// Session identifies one logged-in operator.
type Session struct {
	UserID   int64
	Username string

	expiresAt time.Time
}

// SessionStore keeps active login sessions in memory, keyed by an opaque
// random token. Sessions do not survive a process restart; operators simply
// log in again.
type SessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]Session
}

// NewSessionStore creates a SessionStore.
// A non-positive ttl selects DefaultSessionTTL.
func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		ttl:      ttl,
		sessions: make(map[string]Session),
	}
}

// Issue creates a session for the given operator and returns its token.
func (s *SessionStore) Issue(userID int64, username string) string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[token] = Session{
		UserID:    userID,
		Username:  username,
		expiresAt: time.Now().Add(s.ttl),
	}
	return token
}

// Get returns the session for a token. An expired session is removed and
// reported as absent.
func (s *SessionStore) Get(token string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return Session{}, false
	}
	if time.Now().After(session.expiresAt) {
		delete(s.sessions, token)
		return Session{}, false
	}
	return session, true
}

// Revoke removes a session. Revoking an unknown token is a no-op.
func (s *SessionStore) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
}
