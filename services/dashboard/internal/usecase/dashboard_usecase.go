package usecase

import (
	"context"

	"shelter-dashboard/services/dashboard/internal/entity"
)

type DashboardUseCase interface {
	StartSession(ctx context.Context, reviewerID string) (Stats, error)
	EndSession(reviewerID string) bool
	ListPosts(ctx context.Context, reviewerID, query string, filter entity.StatusFilter) ([]entity.Post, error)
	GetStats(ctx context.Context, reviewerID string) (Stats, error)
	OpenPost(ctx context.Context, reviewerID, postID string) (View, error)
	ChooseAction(ctx context.Context, reviewerID, postID string, action entity.Action) (View, error)
	ConfirmAction(ctx context.Context, reviewerID, message string) (entity.Notice, error)
	CancelAction(ctx context.Context, reviewerID string) (View, error)
	GetSurface(ctx context.Context, reviewerID string) (View, error)
	CloseSurface(ctx context.Context, reviewerID string) (View, error)
	ListCategories(ctx context.Context, reviewerID string) ([]entity.CategoryBlog, error)
	CreateCategory(ctx context.Context, reviewerID, name string) (entity.CategoryBlog, error)
	OpenCreation(ctx context.Context, reviewerID string) (DraftState, error)
	SelectCategory(ctx context.Context, reviewerID string, sel entity.CategorySelection) (DraftState, error)
	CreatePost(ctx context.Context, reviewerID string, draft Draft) (entity.Post, error)
}

type dashboardUseCase struct {
	registry *Registry
}

func NewDashboardUseCase(registry *Registry) DashboardUseCase {
	return &dashboardUseCase{registry: registry}
}

func (uc *dashboardUseCase) StartSession(ctx context.Context, reviewerID string) (Stats, error) {
	s, err := uc.registry.Mount(ctx, reviewerID)
	if err != nil {
		return Stats{}, err
	}
	return s.Stats(), nil
}

func (uc *dashboardUseCase) EndSession(reviewerID string) bool {
	return uc.registry.Unmount(reviewerID)
}

func (uc *dashboardUseCase) ListPosts(ctx context.Context, reviewerID, query string, filter entity.StatusFilter) ([]entity.Post, error) {
	s, err := uc.registry.Get(ctx, reviewerID)
	if err != nil {
		return nil, err
	}
	return s.Search(query, filter), nil
}

func (uc *dashboardUseCase) GetStats(ctx context.Context, reviewerID string) (Stats, error) {
	s, err := uc.registry.Get(ctx, reviewerID)
	if err != nil {
		return Stats{}, err
	}
	return s.Stats(), nil
}

func (uc *dashboardUseCase) OpenPost(ctx context.Context, reviewerID, postID string) (View, error) {
	s, err := uc.registry.Get(ctx, reviewerID)
	if err != nil {
		return View{}, err
	}
	return s.OpenPost(postID)
}

func (uc *dashboardUseCase) ChooseAction(ctx context.Context, reviewerID, postID string, action entity.Action) (View, error) {
	s, err := uc.registry.Get(ctx, reviewerID)
	if err != nil {
		return View{}, err
	}
	return s.ChooseAction(postID, action)
}

func (uc *dashboardUseCase) ConfirmAction(ctx context.Context, reviewerID, message string) (entity.Notice, error) {
	s, err := uc.registry.Get(ctx, reviewerID)
	if err != nil {
		return entity.Notice{}, err
	}
	return s.ConfirmAction(ctx, message)
}

func (uc *dashboardUseCase) CancelAction(ctx context.Context, reviewerID string) (View, error) {
	s, err := uc.registry.Get(ctx, reviewerID)
	if err != nil {
		return View{}, err
	}
	return s.CancelAction()
}

func (uc *dashboardUseCase) GetSurface(ctx context.Context, reviewerID string) (View, error) {
	s, err := uc.registry.Get(ctx, reviewerID)
	if err != nil {
		return View{}, err
	}
	return s.View(), nil
}

func (uc *dashboardUseCase) CloseSurface(ctx context.Context, reviewerID string) (View, error) {
	s, err := uc.registry.Get(ctx, reviewerID)
	if err != nil {
		return View{}, err
	}
	return s.CloseSurface()
}

func (uc *dashboardUseCase) ListCategories(ctx context.Context, reviewerID string) ([]entity.CategoryBlog, error) {
	s, err := uc.registry.Get(ctx, reviewerID)
	if err != nil {
		return nil, err
	}
	return s.EnsureCategories(ctx)
}

func (uc *dashboardUseCase) CreateCategory(ctx context.Context, reviewerID, name string) (entity.CategoryBlog, error) {
	s, err := uc.registry.Get(ctx, reviewerID)
	if err != nil {
		return entity.CategoryBlog{}, err
	}
	return s.CreateCategory(ctx, name)
}

func (uc *dashboardUseCase) OpenCreation(ctx context.Context, reviewerID string) (DraftState, error) {
	s, err := uc.registry.Get(ctx, reviewerID)
	if err != nil {
		return DraftState{}, err
	}
	return s.OpenCreation(ctx)
}

func (uc *dashboardUseCase) SelectCategory(ctx context.Context, reviewerID string, sel entity.CategorySelection) (DraftState, error) {
	s, err := uc.registry.Get(ctx, reviewerID)
	if err != nil {
		return DraftState{}, err
	}
	return s.SelectCategory(sel)
}

func (uc *dashboardUseCase) CreatePost(ctx context.Context, reviewerID string, draft Draft) (entity.Post, error) {
	s, err := uc.registry.Get(ctx, reviewerID)
	if err != nil {
		return entity.Post{}, err
	}
	return s.SubmitPost(ctx, draft)
}
