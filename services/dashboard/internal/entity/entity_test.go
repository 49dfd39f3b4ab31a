package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWireView(t *testing.T) {
	assert.Equal(t, 0, Post{Status: StatusPending, Views: 7}.WireView())
	assert.Equal(t, 1, Post{Status: StatusApproved}.WireView())
	assert.Equal(t, 12, Post{Status: StatusApproved, Views: 12}.WireView())
}

func TestStatusFromWireView(t *testing.T) {
	status, views := StatusFromWireView(0)
	assert.Equal(t, StatusPending, status)
	assert.Equal(t, 0, views)

	status, views = StatusFromWireView(-3)
	assert.Equal(t, StatusPending, status)
	assert.Equal(t, 0, views)

	status, views = StatusFromWireView(4)
	assert.Equal(t, StatusApproved, status)
	assert.Equal(t, 4, views)
}

func TestParseAction(t *testing.T) {
	a, ok := ParseAction(" Approve ")
	assert.True(t, ok)
	assert.Equal(t, ActionApprove, a)

	_, ok = ParseAction("archive")
	assert.False(t, ok)
}

func TestDefaultMessage(t *testing.T) {
	assert.Equal(t, "Post has been approved and is now visible to users.", ActionApprove.DefaultMessage())
	assert.Equal(t, "Post has been rejected and will not be published.", ActionReject.DefaultMessage())
}

func TestParseStatusFilter(t *testing.T) {
	for in, want := range map[string]StatusFilter{"": FilterAll, "ALL": FilterAll, "approved": FilterApproved, "pending": FilterPending} {
		got, ok := ParseStatusFilter(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseStatusFilter("rejected")
	assert.False(t, ok)
}

func TestParseCategorySelection(t *testing.T) {
	sel := ParseCategorySelection(CreateNewCategoryValue)
	assert.True(t, sel.IsCreateNew())
	_, ok := sel.ID()
	assert.False(t, ok)

	sel = ParseCategorySelection("cat-1")
	assert.False(t, sel.IsCreateNew())
	id, ok := sel.ID()
	assert.True(t, ok)
	assert.Equal(t, "cat-1", id)

	_, ok = ParseCategorySelection("  ").ID()
	assert.False(t, ok)
}
