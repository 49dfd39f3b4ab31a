package repo

import (
	"bytes"
	"encoding/json"

	"shelter-dashboard/services/dashboard/internal/entity"
	"shelter-dashboard/services/dashboard/internal/model"
)

// ToPostEntity normalizes one raw record. Missing fields are defaulted, never rejected.
func ToPostEntity(r model.PostRecord) entity.Post {
	status, views := entity.StatusFromWireView(wireView(r.View))

	post := entity.Post{
		ID:           string(r.ID),
		Topic:        r.Topic,
		HTMLContent:  r.HTMLContent,
		DeltaContent: deltaText(r.DeltaContent),
		Stamp:        r.Stamp,
		Status:       status,
		Views:        views,
		Thumbnail:    r.Thumbnail,
		Category:     categoryOf(r),
	}
	if r.AuthorID != nil {
		post.AuthorID = string(*r.AuthorID)
	}
	return post
}

// RecordsFromEnvelope prefers content over listData. A present content array wins
// even when empty.
func RecordsFromEnvelope(env *model.PageEnvelope) []model.PostRecord {
	if env == nil {
		return []model.PostRecord{}
	}
	if env.Content != nil {
		return *env.Content
	}
	if env.ListData != nil {
		return *env.ListData
	}
	return []model.PostRecord{}
}

func ToPostEntities(env *model.PageEnvelope) []entity.Post {
	records := RecordsFromEnvelope(env)
	posts := make([]entity.Post, len(records))
	for i, r := range records {
		posts[i] = ToPostEntity(r)
	}
	return posts
}

func ToCategoryEntity(r model.CategoryRecord) entity.CategoryBlog {
	return entity.CategoryBlog{ID: string(r.ID), Name: r.Name}
}

func ToCategoryEntities(records []model.CategoryRecord) []entity.CategoryBlog {
	categories := make([]entity.CategoryBlog, len(records))
	for i, r := range records {
		categories[i] = ToCategoryEntity(r)
	}
	return categories
}

func categoryOf(r model.PostRecord) entity.CategoryBlog {
	if r.CategoryBlog != nil {
		return ToCategoryEntity(*r.CategoryBlog)
	}
	var c entity.CategoryBlog
	if r.CategoryID != nil {
		c.ID = string(*r.CategoryID)
	}
	if r.CategoryName != nil {
		c.Name = *r.CategoryName
	}
	return c
}

func wireView(n *json.Number) int {
	if n == nil {
		return 0
	}
	if i, err := n.Int64(); err == nil {
		return int(i)
	}
	if f, err := n.Float64(); err == nil {
		if f > 0 && f < 1 {
			return 1
		}
		return int(f)
	}
	return 0
}

// deltaText unquotes a JSON string and keeps any other JSON value as raw text.
func deltaText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}
