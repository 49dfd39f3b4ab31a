package usecase

import (
	"context"
	"fmt"
	"strings"

	"shelter-dashboard/services/dashboard/internal/entity"
	"shelter-dashboard/services/dashboard/internal/repo"
)

// EnsureCategories fetches the category list once and serves it from the cache afterwards.
// An empty cache is refetched.
func (s *Session) EnsureCategories(ctx context.Context) ([]entity.CategoryBlog, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrSessionClosed
	}
	if len(s.categories) > 0 {
		out := s.categoriesLocked()
		s.mu.Unlock()
		return out, nil
	}
	s.mu.Unlock()

	records, err := s.backend.ListCategories(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch categories: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch categories: %w", ErrBackend, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrSessionClosed
	}
	if len(s.categories) == 0 {
		s.categories = repo.ToCategoryEntities(records)
	}
	return s.categoriesLocked(), nil
}

// CreateCategory adds a category, appends it to the cache and selects it in the draft.
func (s *Session) CreateCategory(ctx context.Context, name string) (entity.CategoryBlog, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		verr := &ValidationError{}
		verr.add("name", "Category name is required")
		return entity.CategoryBlog{}, verr
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return entity.CategoryBlog{}, ErrSessionClosed
	}
	if s.phase == entity.PhaseInFlight {
		s.mu.Unlock()
		return entity.CategoryBlog{}, ErrActionInFlight
	}
	s.mu.Unlock()

	rec, err := s.backend.CreateCategory(context.WithoutCancel(ctx), name)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return entity.CategoryBlog{}, ErrSessionClosed
	}
	if err != nil {
		s.logger.Error("Failed to create category %q: %v", name, err)
		s.setNotice(entity.NoticeError, "Failed to create category", "", "")
		return entity.CategoryBlog{}, fmt.Errorf("%w: failed to create category: %w", ErrBackend, err)
	}

	category := repo.ToCategoryEntity(*rec)
	if category.Name == "" {
		category.Name = name
	}
	s.categories = append(s.categories, category)
	s.draft.Category = entity.ExistingCategory(category.ID)
	s.creatingCategory = false
	return category, nil
}

func (s *Session) categoriesLocked() []entity.CategoryBlog {
	out := make([]entity.CategoryBlog, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *Session) categoryLocked(id string) (entity.CategoryBlog, bool) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return entity.CategoryBlog{}, false
}
