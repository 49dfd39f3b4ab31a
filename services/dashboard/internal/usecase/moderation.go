package usecase

import (
	"context"
	"fmt"
	"strings"

	"shelter-dashboard/services/dashboard/internal/entity"
)

// OpenPost shows the detail surface for a post.
func (s *Session) OpenPost(postID string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return View{}, ErrSessionClosed
	}
	if s.phase == entity.PhaseInFlight {
		return View{}, ErrActionInFlight
	}
	i := s.indexOf(postID)
	if i < 0 {
		return View{}, ErrPostNotFound
	}
	s.surface = entity.DetailSurface(s.posts[i])
	s.returnTo = entity.ClosedSurface()
	s.phase = entity.PhaseIdle
	return s.viewLocked(), nil
}

// ChooseAction opens the approval surface for a post. The surface it replaces is
// restored when the reviewer cancels.
func (s *Session) ChooseAction(postID string, action entity.Action) (View, error) {
	if _, ok := entity.ParseAction(string(action)); !ok {
		return View{}, ErrInvalidAction
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return View{}, ErrSessionClosed
	}
	if s.phase == entity.PhaseInFlight {
		return View{}, ErrActionInFlight
	}
	i := s.indexOf(postID)
	if i < 0 {
		return View{}, ErrPostNotFound
	}
	if s.surface.Kind != entity.SurfaceApproval {
		s.returnTo = s.surface
	}
	s.surface = entity.ApprovalSurface(s.posts[i], action)
	s.phase = entity.PhaseAwaitingConfirmation
	return s.viewLocked(), nil
}

// CancelAction leaves the approval surface without a network call.
func (s *Session) CancelAction() (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return View{}, ErrSessionClosed
	}
	if s.phase == entity.PhaseInFlight {
		return View{}, ErrActionInFlight
	}
	if s.surface.Kind != entity.SurfaceApproval {
		return View{}, ErrNoActionChosen
	}
	s.surface = s.returnTo
	s.returnTo = entity.ClosedSurface()
	s.phase = entity.PhaseIdle
	return s.viewLocked(), nil
}

// ConfirmAction sends the chosen action. A blank message is replaced by the
// action's default. The store changes only after the admin API accepts the call;
// on failure the approval surface stays open so the reviewer can retry.
// The call outlives the caller's context; the HTTP client timeout bounds it.
func (s *Session) ConfirmAction(ctx context.Context, message string) (entity.Notice, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return entity.Notice{}, ErrSessionClosed
	}
	if s.phase == entity.PhaseInFlight {
		s.mu.Unlock()
		return entity.Notice{}, ErrActionInFlight
	}
	if s.surface.Kind != entity.SurfaceApproval {
		s.mu.Unlock()
		return entity.Notice{}, ErrNoActionChosen
	}
	postID, action := s.surface.Post.ID, s.surface.Action
	s.phase = entity.PhaseInFlight
	s.mu.Unlock()

	if strings.TrimSpace(message) == "" {
		message = action.DefaultMessage()
	}

	ctx = context.WithoutCancel(ctx)
	var err error
	if action == entity.ActionApprove {
		_, err = s.backend.ApprovePost(ctx, postID, message)
	} else {
		_, err = s.backend.RejectPost(ctx, postID, message)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return entity.Notice{}, ErrSessionClosed
	}
	s.phase = entity.PhaseIdle

	if err != nil {
		s.logger.Error("Failed to %s post %s: %v", action, postID, err)
		n := s.setNotice(entity.NoticeError, "Failed to "+string(action)+" post", postID, action)
		return n, fmt.Errorf("%w: failed to %s post %s: %w", ErrBackend, action, postID, err)
	}

	var msg string
	if action == entity.ActionApprove {
		s.markApproved(postID)
		msg = "Post approved"
	} else {
		s.remove(postID)
		msg = "Post rejected"
	}
	s.surface = entity.ClosedSurface()
	s.returnTo = entity.ClosedSurface()
	s.logger.Info("%s: %s", msg, postID)
	return s.setNotice(entity.NoticeSuccess, msg, postID, action), nil
}
