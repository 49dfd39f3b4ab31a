package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"shelter-dashboard/pkg/logger"
	"shelter-dashboard/services/dashboard/internal/entity"
	"shelter-dashboard/services/dashboard/internal/repo"

	"github.com/google/uuid"
)

type SessionOptions struct {
	Page     int
	PageSize int
	// MaxThumbnailBytes bounds uploaded thumbnail files. Zero disables the check.
	MaxThumbnailBytes int64
}

// Session is one reviewer's dashboard: the post store, the open surface, the
// category cache and the creation draft. All state sits behind one mutex;
// backend calls are made without holding it.
type Session struct {
	mu sync.Mutex

	reviewerID string
	backend    repo.Backend
	thumbnails ThumbnailStore
	logger     *logger.Logger
	opts       SessionOptions
	now        func() time.Time
	newID      func() string

	posts  []entity.Post
	loaded bool

	categories []entity.CategoryBlog

	surface  entity.Surface
	returnTo entity.Surface
	phase    entity.Phase
	notice   *entity.Notice

	draft            Draft
	creatingCategory bool

	closed bool
}

func NewSession(reviewerID string, backend repo.Backend, thumbnails ThumbnailStore, log *logger.Logger, opts SessionOptions) *Session {
	if log == nil {
		log = logger.NewNop()
	}
	if thumbnails == nil {
		thumbnails = DataURLThumbnails{}
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 100
	}
	if opts.Page < 0 {
		opts.Page = 0
	}
	return &Session{
		reviewerID: reviewerID,
		backend:    backend,
		thumbnails: thumbnails,
		logger:     log.With("reviewer_id", reviewerID),
		opts:       opts,
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
		posts:      []entity.Post{},
		surface:    entity.ClosedSurface(),
		returnTo:   entity.ClosedSurface(),
	}
}

func (s *Session) ReviewerID() string {
	return s.reviewerID
}

// Load replaces the store with the first page from the admin API. On failure the
// previous contents are kept.
func (s *Session) Load(ctx context.Context) error {
	if s.isClosed() {
		return ErrSessionClosed
	}

	env, err := s.backend.ListPosts(ctx, s.opts.Page, s.opts.PageSize)
	if err != nil {
		s.logger.Error("Failed to load posts: %v", err)
		return fmt.Errorf("%w: failed to load posts: %w", ErrBackend, err)
	}
	posts := repo.ToPostEntities(env)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.posts = posts
	s.loaded = true
	s.logger.Info("Loaded %d posts", len(posts))
	return nil
}

// EnsureLoaded loads the store once.
func (s *Session) EnsureLoaded(ctx context.Context) error {
	s.mu.Lock()
	loaded := s.loaded
	s.mu.Unlock()
	if loaded {
		return nil
	}
	return s.Load(ctx)
}

// Close discards the session. Results of calls still in flight are dropped.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.posts = nil
	s.categories = nil
	s.draft = Draft{}
	s.surface = entity.ClosedSurface()
	s.returnTo = entity.ClosedSurface()
	s.phase = entity.PhaseIdle
}

func (s *Session) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// View is a consistent snapshot of the surface state.
type View struct {
	Surface          entity.Surface
	Phase            entity.Phase
	Notice           *entity.Notice
	CreatingCategory bool
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() View {
	v := View{Surface: s.surface, Phase: s.phase, CreatingCategory: s.creatingCategory}
	if s.notice != nil {
		n := *s.notice
		v.Notice = &n
	}
	return v
}

// CloseSurface dismisses whatever modal is open. It is refused while an action is in flight.
func (s *Session) CloseSurface() (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return View{}, ErrSessionClosed
	}
	if s.phase == entity.PhaseInFlight {
		return View{}, ErrActionInFlight
	}
	s.surface = entity.ClosedSurface()
	s.returnTo = entity.ClosedSurface()
	s.phase = entity.PhaseIdle
	s.creatingCategory = false
	return s.viewLocked(), nil
}

func (s *Session) DismissNotice() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = nil
}

func (s *Session) setNotice(level entity.NoticeLevel, msg, postID string, action entity.Action) entity.Notice {
	n := entity.Notice{Level: level, Message: msg, PostID: postID, Action: action}
	s.notice = &n
	return n
}
