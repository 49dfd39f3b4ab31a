package usecase

import (
	"context"
	"sync"
)

// SessionFactory builds an unloaded session for a reviewer.
type SessionFactory func(reviewerID string) *Session

// Registry keeps one mounted session per reviewer.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	factory  SessionFactory
}

func NewRegistry(factory SessionFactory) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		factory:  factory,
	}
}

// Get returns the reviewer's session, mounting and loading it on first use.
func (r *Registry) Get(ctx context.Context, reviewerID string) (*Session, error) {
	r.mu.Lock()
	s, ok := r.sessions[reviewerID]
	if !ok {
		s = r.factory(reviewerID)
		r.sessions[reviewerID] = s
	}
	r.mu.Unlock()

	if err := s.EnsureLoaded(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Mount replaces any existing session with a fresh one and loads it.
func (r *Registry) Mount(ctx context.Context, reviewerID string) (*Session, error) {
	s := r.factory(reviewerID)

	r.mu.Lock()
	old := r.sessions[reviewerID]
	r.sessions[reviewerID] = s
	r.mu.Unlock()

	if old != nil {
		old.Close()
	}
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Unmount closes and forgets the reviewer's session.
func (r *Registry) Unmount(reviewerID string) bool {
	r.mu.Lock()
	s, ok := r.sessions[reviewerID]
	delete(r.sessions, reviewerID)
	r.mu.Unlock()

	if ok {
		s.Close()
	}
	return ok
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
