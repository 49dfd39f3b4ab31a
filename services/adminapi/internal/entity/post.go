package entity

import "time"

type PostStatus string

const (
	StatusPending  PostStatus = "pending"
	StatusApproved PostStatus = "approved"
	StatusRejected PostStatus = "rejected"
)

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Post struct {
	ID                string
	AuthorID          string
	Topic             string
	HTMLContent       string
	DeltaContent      string
	Thumbnail         string
	CategoryID        string
	Category          *Category
	Status            PostStatus
	Views             int
	ModerationMessage string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// View is the legacy counter clients read status from: 0 while pending, at least 1 once approved.
func (p *Post) View() int {
	if p.Status != StatusApproved {
		return 0
	}
	if p.Views < 1 {
		return 1
	}
	return p.Views
}

// NewPost is the creation payload.
type NewPost struct {
	Topic        string `json:"topic"`
	HTMLContent  string `json:"htmlContent"`
	DeltaContent string `json:"deltaContent"`
	CategoryID   string `json:"categoryId"`
	Thumbnail    string `json:"thumbnail"`
}

type Page struct {
	Posts []*Post
	Page  int
	Size  int
	Total int64
}
