package session

import (
	"sync"

	errs "gomud/internal/errors"
)

// Registry tracks every live session by id.  Sessions are added after
// a successful handshake and removed on termination; a connection that
// never completes its handshake never appears here.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Add registers a session, rejecting id reuse.
func (r *Registry) Add(s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[s.ID]; ok {
		return errs.ErrDuplicateSession
	}
	r.sessions[s.ID] = s
	return nil
}

// Remove drops a session by id.  Unknown ids are ignored.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Get returns the session for id, if registered.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Len returns the number of registered sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Each calls fn for every registered session.  fn must not call back
// into the registry.
func (r *Registry) Each(fn func(*Session)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sessions {
		fn(s)
	}
}
