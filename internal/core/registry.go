package core

import "strings"

// Registry tracks the set of live sessions. Lookup by name only considers
// logged-in sessions and is case-insensitive; iteration follows insertion
// order so duplicate-name lookups resolve deterministically.
//
// The registry is owned by the hub goroutine and is not safe for
// concurrent use.
type Registry struct {
	order []*Session
	byID  map[string]*Session
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*Session)}
}

// Add inserts a session. Adding an id twice is a bug; the second insert
// is ignored.
func (r *Registry) Add(s *Session) {
	if _, exists := r.byID[s.ID]; exists {
		return
	}
	r.byID[s.ID] = s
	r.order = append(r.order, s)
}

// Remove deletes a session by id and returns it, or nil if absent.
func (r *Registry) Remove(id string) *Session {
	s, exists := r.byID[id]
	if !exists {
		return nil
	}
	delete(r.byID, id)
	for i, other := range r.order {
		if other == s {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return s
}

// Get returns the session with the given id, or nil.
func (r *Registry) Get(id string) *Session {
	return r.byID[id]
}

// All returns every live session in insertion order.
func (r *Registry) All() []*Session {
	return r.order
}

// FindByName returns the first logged-in session holding the given display
// name, compared case-insensitively, or nil if none does.
func (r *Registry) FindByName(name string) *Session {
	lower := strings.ToLower(name)
	for _, s := range r.order {
		if s.LoggedIn && strings.ToLower(s.Name) == lower {
			return s
		}
	}
	return nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	return len(r.order)
}
