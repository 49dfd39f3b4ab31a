package persistent

import (
	"errors"

	"shelter-dashboard/pkg/models"
	"shelter-dashboard/services/adminapi/internal/entity"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type PostRepository interface {
	Create(post *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	List(limit, offset int) ([]*entity.Post, int64, error)
	UpdateStatus(id string, status entity.PostStatus, message string) error
	Reject(id, message string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *entity.Post) error {
	postModel := ToPostModel(post)
	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}
	if err := r.db.Preload("Category").Where("id = ?", postModel.ID).First(postModel).Error; err != nil {
		return err
	}
	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(id string) (*entity.Post, error) {
	var postModel models.Post
	if err := r.db.Preload("Category").Where("id = ?", id).First(&postModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

// List returns live posts newest first. Soft-deleted (rejected) posts are excluded.
func (r *postRepository) List(limit, offset int) ([]*entity.Post, int64, error) {
	var total int64
	if err := r.db.Model(&models.Post{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var postModels []models.Post
	if err := r.db.Preload("Category").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&postModels).Error; err != nil {
		return nil, 0, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, total, nil
}

func (r *postRepository) UpdateStatus(id string, status entity.PostStatus, message string) error {
	return updateStatus(r.db, id, status, message)
}

// Reject stores the rejected status and soft-deletes the post in one transaction.
func (r *postRepository) Reject(id, message string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := updateStatus(tx, id, entity.StatusRejected, message); err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Post{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func updateStatus(db *gorm.DB, id string, status entity.PostStatus, message string) error {
	res := db.Model(&models.Post{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":             models.PostStatus(status),
		"moderation_message": message,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
