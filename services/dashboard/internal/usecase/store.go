package usecase

import (
	"shelter-dashboard/services/dashboard/internal/entity"
)

type Stats struct {
	Total    int `json:"total"`
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
}

// Posts returns a copy of the store in display order.
func (s *Session) Posts() []entity.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// Search applies the filter engine to the current store.
func (s *Session) Search(query string, filter entity.StatusFilter) []entity.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return FilterPosts(s.posts, query, filter)
}

func (s *Session) Post(id string) (entity.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.posts[i], nil
	}
	return entity.Post{}, ErrPostNotFound
}

func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Stats{Total: len(s.posts)}
	for _, p := range s.posts {
		if p.Status == entity.StatusApproved {
			st.Approved++
		} else {
			st.Pending++
		}
	}
	return st
}

func (s *Session) indexOf(id string) int {
	for i := range s.posts {
		if s.posts[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Session) markApproved(id string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.posts[i].Status = entity.StatusApproved
	return true
}

func (s *Session) remove(id string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.posts = append(s.posts[:i], s.posts[i+1:]...)
	return true
}

func (s *Session) prepend(p entity.Post) {
	s.posts = append([]entity.Post{p}, s.posts...)
}
