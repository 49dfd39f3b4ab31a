package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shelter-dashboard/pkg/logger"
	"shelter-dashboard/services/adminapi/internal/entity"
	"shelter-dashboard/services/adminapi/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	FanoutChannel = "fanout_queue"
)

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
	ErrInvalidInput     = errors.New("invalid input")
)

// Publisher announces approved posts to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

type AdminUseCase interface {
	ListPosts(page, size int) (*entity.Page, error)
	ApprovePost(postID, message string) (*entity.Post, error)
	RejectPost(postID, message string) (*entity.Post, error)
	CreatePost(authorID string, req entity.NewPost) (*entity.Post, error)
	ListCategories() ([]*entity.Category, error)
	CreateCategory(name string) (*entity.Category, error)
}

type adminUseCase struct {
	postRepo     persistent.PostRepository
	categoryRepo persistent.CategoryRepository
	publisher    Publisher
	logger       *logger.Logger
}

func NewAdminUseCase(
	postRepo persistent.PostRepository,
	categoryRepo persistent.CategoryRepository,
	publisher Publisher,
	logger *logger.Logger,
) AdminUseCase {
	return &adminUseCase{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

// ClampPage keeps page at or above zero and size within [1, MaxPageSize].
func ClampPage(page, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = 1
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, size
}

func (uc *adminUseCase) ListPosts(page, size int) (*entity.Page, error) {
	page, size = ClampPage(page, size)

	posts, total, err := uc.postRepo.List(size, page*size)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return &entity.Page{Posts: posts, Page: page, Size: size, Total: total}, nil
}

func (uc *adminUseCase) ApprovePost(postID, message string) (*entity.Post, error) {
	if _, err := uc.getPost(postID); err != nil {
		return nil, err
	}

	if err := uc.postRepo.UpdateStatus(postID, entity.StatusApproved, message); err != nil {
		return nil, fmt.Errorf("failed to approve post: %w", err)
	}

	post, err := uc.getPost(postID)
	if err != nil {
		return nil, err
	}

	if uc.publisher != nil {
		fanoutKey := fmt.Sprintf("fanout:post:%s", postID)
		if err := uc.publisher.Publish(context.Background(), FanoutChannel, fanoutKey).Err(); err != nil {
			uc.logger.Warn("Failed to publish fanout for post %s: %v", postID, err)
		}
	}

	uc.logger.Info("Post %s approved", postID)
	return post, nil
}

// RejectPost records the decision and soft-deletes the post so it leaves the moderation list.
func (uc *adminUseCase) RejectPost(postID, message string) (*entity.Post, error) {
	post, err := uc.getPost(postID)
	if err != nil {
		return nil, err
	}

	if err := uc.postRepo.Reject(postID, message); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to reject post: %w", err)
	}
	post.Status = entity.StatusRejected

	uc.logger.Info("Post %s rejected", postID)
	return post, nil
}

func (uc *adminUseCase) CreatePost(authorID string, req entity.NewPost) (*entity.Post, error) {
	topic := strings.TrimSpace(req.Topic)
	if topic == "" || strings.TrimSpace(req.HTMLContent) == "" || strings.TrimSpace(req.CategoryID) == "" {
		return nil, fmt.Errorf("%w: topic, htmlContent and categoryId are required", ErrInvalidInput)
	}

	if _, err := uc.categoryRepo.GetByID(req.CategoryID); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to load category: %w", err)
	}

	post := &entity.Post{
		AuthorID:     authorID,
		Topic:        topic,
		HTMLContent:  req.HTMLContent,
		DeltaContent: req.DeltaContent,
		Thumbnail:    req.Thumbnail,
		CategoryID:   req.CategoryID,
		Status:       entity.StatusPending,
	}
	if err := uc.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	uc.logger.Info("Post %s created by %s", post.ID, authorID)
	return post, nil
}

func (uc *adminUseCase) ListCategories() ([]*entity.Category, error) {
	categories, err := uc.categoryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (uc *adminUseCase) CreateCategory(name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	_, err := uc.categoryRepo.GetByName(name)
	switch {
	case err == nil:
		return nil, ErrCategoryExists
	case !errors.Is(err, persistent.ErrNotFound):
		return nil, fmt.Errorf("failed to check category: %w", err)
	}

	category := &entity.Category{Name: name}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (uc *adminUseCase) getPost(postID string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to load post: %w", err)
	}
	return post, nil
}
