package usecase

import (
	"strings"

	"shelter-dashboard/services/dashboard/internal/entity"
)

// FilterPosts keeps the posts matching both the text query and the status filter,
// in their original order.
func FilterPosts(posts []entity.Post, query string, filter entity.StatusFilter) []entity.Post {
	needle := strings.ToLower(strings.TrimSpace(query))
	out := make([]entity.Post, 0, len(posts))
	for _, p := range posts {
		if matchesNeedle(p, needle) && MatchesStatus(p, filter) {
			out = append(out, p)
		}
	}
	return out
}

// MatchesQuery is a case-insensitive substring match on topic, category name and author id.
func MatchesQuery(p entity.Post, query string) bool {
	return matchesNeedle(p, strings.ToLower(strings.TrimSpace(query)))
}

func matchesNeedle(p entity.Post, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Topic), needle) ||
		strings.Contains(strings.ToLower(p.Category.Name), needle) ||
		strings.Contains(strings.ToLower(p.AuthorID), needle)
}

func MatchesStatus(p entity.Post, filter entity.StatusFilter) bool {
	switch filter {
	case entity.FilterApproved:
		return p.Status == entity.StatusApproved
	case entity.FilterPending:
		return p.Status == entity.StatusPending
	}
	return true
}
