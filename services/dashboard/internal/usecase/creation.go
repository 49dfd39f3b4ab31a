package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shelter-dashboard/services/dashboard/internal/entity"
)

// Draft is the creation form. It survives failed submissions.
type Draft struct {
	Topic         string
	HTMLContent   string
	DeltaContent  string
	Category      entity.CategorySelection
	ThumbnailURL  string
	ThumbnailFile *Upload
}

// DraftState is the form as the reviewer sees it.
type DraftState struct {
	Draft            Draft
	CreatingCategory bool
	Categories       []entity.CategoryBlog
}

// OpenCreation shows the creation surface and loads categories lazily.
func (s *Session) OpenCreation(ctx context.Context) (DraftState, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return DraftState{}, ErrSessionClosed
	}
	if s.phase == entity.PhaseInFlight {
		s.mu.Unlock()
		return DraftState{}, ErrActionInFlight
	}
	s.surface = entity.CreatingSurface()
	s.returnTo = entity.ClosedSurface()
	s.phase = entity.PhaseIdle
	s.mu.Unlock()

	if _, err := s.EnsureCategories(ctx); err != nil {
		return DraftState{}, err
	}
	return s.DraftState(), nil
}

func (s *Session) DraftState() DraftState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return DraftState{
		Draft:            s.draft,
		CreatingCategory: s.creatingCategory,
		Categories:       s.categoriesLocked(),
	}
}

// SelectCategory records the reviewer's choice. Choosing "create new" opens the
// inline category form and leaves the current selection untouched.
func (s *Session) SelectCategory(sel entity.CategorySelection) (DraftState, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return DraftState{}, ErrSessionClosed
	}
	if s.phase == entity.PhaseInFlight {
		s.mu.Unlock()
		return DraftState{}, ErrActionInFlight
	}
	if sel.IsCreateNew() {
		s.creatingCategory = true
	} else {
		s.draft.Category = sel
		s.creatingCategory = false
	}
	s.mu.Unlock()
	return s.DraftState(), nil
}

// SubmitPost validates the draft, sends it and prepends the new post to the store
// as pending. A draft without a category keeps the one already selected in the
// session. The draft is cleared only on success.
func (s *Session) SubmitPost(ctx context.Context, draft Draft) (entity.Post, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return entity.Post{}, ErrSessionClosed
	}
	if s.phase == entity.PhaseInFlight {
		s.mu.Unlock()
		return entity.Post{}, ErrActionInFlight
	}
	if draft.Category.IsNone() {
		draft.Category = s.draft.Category
	}
	s.draft = draft
	s.mu.Unlock()

	categoryID, err := s.validateDraft(draft)
	if err != nil {
		return entity.Post{}, err
	}

	ctx = context.WithoutCancel(ctx)
	thumbnail := strings.TrimSpace(draft.ThumbnailURL)
	if draft.ThumbnailFile != nil {
		thumbnail, err = s.thumbnails.Store(ctx, s.reviewerID, *draft.ThumbnailFile)
		if err != nil {
			return entity.Post{}, s.failCreate(err)
		}
	}

	req := entity.PostRequest{
		Topic:        strings.TrimSpace(draft.Topic),
		HTMLContent:  draft.HTMLContent,
		DeltaContent: draft.DeltaContent,
		CategoryID:   categoryID,
		Thumbnail:    thumbnail,
	}
	rec, err := s.backend.CreatePost(ctx, req)
	if err != nil {
		return entity.Post{}, s.failCreate(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return entity.Post{}, ErrSessionClosed
	}

	post := entity.Post{
		ID:           s.newID(),
		Topic:        req.Topic,
		HTMLContent:  req.HTMLContent,
		DeltaContent: req.DeltaContent,
		Stamp:        s.now().UTC().Format(time.RFC3339),
		Status:       entity.StatusPending,
		Thumbnail:    req.Thumbnail,
		Category:     entity.CategoryBlog{ID: categoryID},
	}
	if rec != nil {
		if id := string(rec.ID); id != "" {
			post.ID = id
		}
		if rec.AuthorID != nil {
			post.AuthorID = string(*rec.AuthorID)
		}
	}
	if c, ok := s.categoryLocked(categoryID); ok {
		post.Category = c
	}

	s.prepend(post)
	s.draft = Draft{}
	s.creatingCategory = false
	if s.surface.Kind == entity.SurfaceCreating {
		s.surface = entity.ClosedSurface()
	}
	s.setNotice(entity.NoticeSuccess, "Post created", post.ID, "")
	s.logger.Info("Created post %s in category %s", post.ID, categoryID)
	return post, nil
}

func (s *Session) validateDraft(d Draft) (string, error) {
	verr := &ValidationError{}
	if strings.TrimSpace(d.Topic) == "" {
		verr.add("topic", "Topic is required")
	}
	if strings.TrimSpace(d.HTMLContent) == "" {
		verr.add("htmlContent", "Content is required")
	}
	categoryID, ok := d.Category.ID()
	if !ok {
		verr.add("categoryId", "Category is required")
	}
	switch {
	case d.ThumbnailFile != nil:
		if msg := validateUpload(*d.ThumbnailFile, s.opts.MaxThumbnailBytes); msg != "" {
			verr.add("thumbnail", msg)
		}
	case strings.TrimSpace(d.ThumbnailURL) == "":
		verr.add("thumbnail", "Thumbnail is required")
	}
	return categoryID, verr.orNil()
}

func (s *Session) failCreate(err error) error {
	s.logger.Error("Failed to create post: %v", err)
	s.mu.Lock()
	if !s.closed {
		s.setNotice(entity.NoticeError, "Failed to create post", "", "")
	}
	s.mu.Unlock()
	return fmt.Errorf("%w: failed to create post: %w", ErrBackend, err)
}
