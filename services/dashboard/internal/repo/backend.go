package repo

import (
	"context"

	"shelter-dashboard/services/dashboard/internal/entity"
	"shelter-dashboard/services/dashboard/internal/model"
)

// Backend is the admin API as seen by a dashboard session. remote.Client talks to
// the live service; stub.Backend keeps everything in memory.
type Backend interface {
	ListPosts(ctx context.Context, page, size int) (*model.PageEnvelope, error)
	ApprovePost(ctx context.Context, postID, message string) (*model.PostRecord, error)
	RejectPost(ctx context.Context, postID, message string) (*model.PostRecord, error)
	CreatePost(ctx context.Context, req entity.PostRequest) (*model.PostRecord, error)
	ListCategories(ctx context.Context) ([]model.CategoryRecord, error)
	CreateCategory(ctx context.Context, name string) (*model.CategoryRecord, error)
}
