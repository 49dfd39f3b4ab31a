package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostStatus string

const (
	StatusPending  PostStatus = "pending"
	StatusApproved PostStatus = "approved"
	StatusRejected PostStatus = "rejected"
)

// Post is a shelter submission as stored by the admin API.
type Post struct {
	ID                string         `gorm:"type:uuid;primary_key" json:"id"`
	AuthorID          string         `gorm:"type:varchar(64);index" json:"author_id"`
	Topic             string         `gorm:"type:varchar(255);not null" json:"topic"`
	HTMLContent       string         `gorm:"type:text" json:"htmlContent"`
	DeltaContent      string         `gorm:"type:text" json:"deltaContent"`
	Thumbnail         string         `gorm:"type:varchar(1000)" json:"thumbnail"`
	CategoryID        *string        `gorm:"type:uuid;index" json:"category_id"`
	Category          *CategoryBlog  `gorm:"foreignKey:CategoryID" json:"categoryBlog,omitempty"`
	Status            PostStatus     `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	Views             int            `gorm:"default:0" json:"views"`
	ModerationMessage string         `gorm:"type:text" json:"moderation_message"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
