package memory

import (
	"sync"

	"github.com/inclusive-jobs/server/internal/model"
)

var _ model.SessionStore = (*SessionRepository)(nil)

// SessionRepository holds the current user for the single-client demo mode.
// It is deliberately independent from the other repositories: clearing the
// session must not touch catalog, resume or application data.
type SessionRepository struct {
	mu   sync.RWMutex
	user *model.User
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{}
}

// Set replaces the current session atomically. A nil user clears the session.
func (r *SessionRepository) Set(user *model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user == nil {
		r.user = nil
		return
	}

	u := *user
	r.user = &u
}

// Get returns a copy of the current user, or nil when nobody is logged in.
func (r *SessionRepository) Get() *model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.user == nil {
		return nil
	}

	u := *r.user
	return &u
}
