package persistent

import (
	"shelter-dashboard/pkg/models"
	"shelter-dashboard/services/adminapi/internal/entity"
)

func ToPostEntity(m *models.Post) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:                m.ID,
		AuthorID:          m.AuthorID,
		Topic:             m.Topic,
		HTMLContent:       m.HTMLContent,
		DeltaContent:      m.DeltaContent,
		Thumbnail:         m.Thumbnail,
		Status:            entity.PostStatus(m.Status),
		Views:             m.Views,
		ModerationMessage: m.ModerationMessage,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	if m.CategoryID != nil {
		post.CategoryID = *m.CategoryID
	}
	if m.Category != nil {
		post.Category = ToCategoryEntity(m.Category)
	}
	return post
}

func ToPostModel(e *entity.Post) *models.Post {
	if e == nil {
		return nil
	}

	post := &models.Post{
		ID:                e.ID,
		AuthorID:          e.AuthorID,
		Topic:             e.Topic,
		HTMLContent:       e.HTMLContent,
		DeltaContent:      e.DeltaContent,
		Thumbnail:         e.Thumbnail,
		Status:            models.PostStatus(e.Status),
		Views:             e.Views,
		ModerationMessage: e.ModerationMessage,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
	if e.CategoryID != "" {
		id := e.CategoryID
		post.CategoryID = &id
	}
	return post
}

func ToCategoryEntity(m *models.CategoryBlog) *entity.Category {
	if m == nil {
		return nil
	}
	return &entity.Category{ID: m.ID, Name: m.Name}
}
