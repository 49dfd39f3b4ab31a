package entity

import "strings"

type Status int

const (
	StatusPending Status = iota
	StatusApproved
)

func (s Status) String() string {
	if s == StatusApproved {
		return "approved"
	}
	return "pending"
}

type CategoryBlog struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Post is the canonical dashboard representation of a shelter submission.
// Status is explicit; Views is a genuine counter and never encodes approval.
type Post struct {
	ID           string
	Topic        string
	HTMLContent  string
	DeltaContent string
	Stamp        string
	Status       Status
	Views        int
	Thumbnail    string
	AuthorID     string
	Category     CategoryBlog
}

func (p Post) Approved() bool {
	return p.Status == StatusApproved
}

// WireView encodes status the way the admin API expects it: 0 for pending,
// at least 1 for approved.
func (p Post) WireView() int {
	if p.Status != StatusApproved {
		return 0
	}
	if p.Views < 1 {
		return 1
	}
	return p.Views
}

// StatusFromWireView decodes the legacy view counter.
func StatusFromWireView(view int) (Status, int) {
	if view > 0 {
		return StatusApproved, view
	}
	return StatusPending, 0
}

type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

func ParseAction(s string) (Action, bool) {
	switch Action(strings.ToLower(strings.TrimSpace(s))) {
	case ActionApprove:
		return ActionApprove, true
	case ActionReject:
		return ActionReject, true
	}
	return "", false
}

// DefaultMessage is sent when a reviewer confirms without writing a message.
func (a Action) DefaultMessage() string {
	if a == ActionApprove {
		return "Post has been approved and is now visible to users."
	}
	return "Post has been rejected and will not be published."
}

type StatusFilter string

const (
	FilterAll      StatusFilter = "all"
	FilterApproved StatusFilter = "approved"
	FilterPending  StatusFilter = "pending"
)

// ParseStatusFilter treats an empty value as FilterAll.
func ParseStatusFilter(s string) (StatusFilter, bool) {
	switch StatusFilter(strings.ToLower(strings.TrimSpace(s))) {
	case "", FilterAll:
		return FilterAll, true
	case FilterApproved:
		return FilterApproved, true
	case FilterPending:
		return FilterPending, true
	}
	return "", false
}

// PostRequest is the creation payload sent to the admin API.
type PostRequest struct {
	Topic        string `json:"topic"`
	HTMLContent  string `json:"htmlContent"`
	DeltaContent string `json:"deltaContent"`
	CategoryID   string `json:"categoryId"`
	Thumbnail    string `json:"thumbnail"`
}
