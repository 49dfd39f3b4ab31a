package persistent

import (
	"errors"

	"shelter-dashboard/pkg/models"
	"shelter-dashboard/services/adminapi/internal/entity"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	List() ([]*entity.Category, error)
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	Create(category *entity.Category) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List() ([]*entity.Category, error) {
	var categoryModels []models.CategoryBlog
	if err := r.db.Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, err
	}
	categories := make([]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = ToCategoryEntity(&categoryModels[i])
	}
	return categories, nil
}

func (r *categoryRepository) GetByID(id string) (*entity.Category, error) {
	return r.first("id = ?", id)
}

// GetByName matches case-insensitively.
func (r *categoryRepository) GetByName(name string) (*entity.Category, error) {
	return r.first("LOWER(name) = LOWER(?)", name)
}

func (r *categoryRepository) first(query string, arg interface{}) (*entity.Category, error) {
	var categoryModel models.CategoryBlog
	if err := r.db.Where(query, arg).First(&categoryModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToCategoryEntity(&categoryModel), nil
}

func (r *categoryRepository) Create(category *entity.Category) error {
	categoryModel := &models.CategoryBlog{ID: category.ID, Name: category.Name}
	if err := r.db.Create(categoryModel).Error; err != nil {
		return err
	}
	*category = *ToCategoryEntity(categoryModel)
	return nil
}
