// Package auth binds requests to staff identities through an in-memory
// session table referenced by a signed cookie.
package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"foxy-admin/models"
)

// Session is the identity snapshot taken at login
type Session struct {
	UserID    string
	Username  string
	IsAdmin   bool
	ExpiresAt time.Time
}

// SessionTable maps session IDs to sessions. It is process-local and has no
// capacity bound; expired entries are removed when they are looked up.
type SessionTable struct {
	mu       sync.RWMutex
	sessions map[string]Session
	now      func() time.Time
}

// NewSessionTable creates an empty table
func NewSessionTable() *SessionTable {
	return &SessionTable{
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

// Create stores a session for user valid for ttl and returns its ID
func (t *SessionTable) Create(user models.User, ttl time.Duration) (string, Session) {
	id := uuid.NewString()
	session := Session{
		UserID:    user.ID.Hex(),
		Username:  user.Username,
		IsAdmin:   user.IsAdmin,
		ExpiresAt: t.now().Add(ttl),
	}

	t.mu.Lock()
	t.sessions[id] = session
	t.mu.Unlock()
	return id, session
}

// Lookup returns the live session for id
func (t *SessionTable) Lookup(id string) (Session, bool) {
	t.mu.RLock()
	session, ok := t.sessions[id]
	t.mu.RUnlock()
	if !ok {
		return Session{}, false
	}

	if !t.now().Before(session.ExpiresAt) {
		t.Delete(id)
		return Session{}, false
	}
	return session, true
}

// Delete removes id. Unknown IDs are ignored.
func (t *SessionTable) Delete(id string) {
	t.mu.Lock()
	delete(t.sessions, id)
	t.mu.Unlock()
}

// Len reports how many entries the table holds, expired ones included
func (t *SessionTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.sessions)
}
