package stub

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"shelter-dashboard/services/dashboard/internal/entity"
	"shelter-dashboard/services/dashboard/internal/model"
	"shelter-dashboard/services/dashboard/internal/repo"
)

// Operation names accepted by FailOn and counted by Calls.
const (
	OpListPosts      = "ListPosts"
	OpApprovePost    = "ApprovePost"
	OpRejectPost     = "RejectPost"
	OpCreatePost     = "CreatePost"
	OpListCategories = "ListCategories"
	OpCreateCategory = "CreateCategory"
)

// Backend is an in-memory admin API. It serves tests and the offline mode of the
// dashboard service.
type Backend struct {
	mu         sync.Mutex
	posts      []model.PostRecord
	categories []model.CategoryRecord
	failures   map[string]error
	calls      map[string]int
	gate       chan struct{}
	nextID     int
	useListKey bool
	author     string
}

var _ repo.Backend = (*Backend)(nil)

func New(posts []model.PostRecord, categories []model.CategoryRecord) *Backend {
	return &Backend{
		posts:      append([]model.PostRecord(nil), posts...),
		categories: append([]model.CategoryRecord(nil), categories...),
		failures:   map[string]error{},
		calls:      map[string]int{},
		author:     "stub-shelter",
	}
}

// NewSeeded returns a backend with a few demo posts and categories.
func NewSeeded() *Backend {
	categories := []model.CategoryRecord{
		{ID: "cat-adoption", Name: "Adoption"},
		{ID: "cat-events", Name: "Events"},
	}
	view := json.Number("0")
	seen := json.Number("14")
	adoption := categories[0]
	posts := []model.PostRecord{
		{ID: "post-1", Topic: "Meet Biscuit, our senior beagle", HTMLContent: "<p>Biscuit loves naps.</p>", Stamp: "2024-05-01T09:30:00Z", View: &view, Thumbnail: "https://placekitten.com/200/200", CategoryBlog: &adoption},
		{ID: "post-2", Topic: "Saturday adoption fair", HTMLContent: "<p>Join us downtown.</p>", Stamp: "2024-05-02T12:00:00Z", View: &seen, Thumbnail: "https://placekitten.com/201/201", CategoryID: flex("cat-events"), CategoryName: strPtr("Events")},
	}
	return New(posts, categories)
}

// UseListDataEnvelope makes ListPosts answer with listData instead of content.
func (b *Backend) UseListDataEnvelope() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.useListKey = true
}

// FailOn makes every subsequent call of op return err; a nil err clears it.
func (b *Backend) FailOn(op string, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err == nil {
		delete(b.failures, op)
		return
	}
	b.failures[op] = err
}

// HoldModeration blocks approve/reject calls until the returned release is called.
func (b *Backend) HoldModeration() (release func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	gate := make(chan struct{})
	b.gate = gate
	var once sync.Once
	return func() { once.Do(func() { close(gate) }) }
}

func (b *Backend) Calls(op string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[op]
}

func (b *Backend) begin(op string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls[op]++
	return b.failures[op]
}

func (b *Backend) ListPosts(ctx context.Context, page, size int) (*model.PageEnvelope, error) {
	if err := b.begin(OpListPosts); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	start := page * size
	if start > len(b.posts) || start < 0 {
		start = len(b.posts)
	}
	end := start + size
	if end > len(b.posts) || size <= 0 {
		end = len(b.posts)
	}
	records := append([]model.PostRecord{}, b.posts[start:end]...)

	if b.useListKey {
		return &model.PageEnvelope{ListData: &records}, nil
	}
	return &model.PageEnvelope{Content: &records}, nil
}

func (b *Backend) ApprovePost(ctx context.Context, postID, message string) (*model.PostRecord, error) {
	return b.moderate(ctx, OpApprovePost, postID, func(i int) model.PostRecord {
		one := json.Number("1")
		if b.posts[i].View == nil || b.posts[i].View.String() == "0" {
			b.posts[i].View = &one
		}
		return b.posts[i]
	})
}

func (b *Backend) RejectPost(ctx context.Context, postID, message string) (*model.PostRecord, error) {
	return b.moderate(ctx, OpRejectPost, postID, func(i int) model.PostRecord {
		rec := b.posts[i]
		b.posts = append(b.posts[:i], b.posts[i+1:]...)
		return rec
	})
}

func (b *Backend) moderate(ctx context.Context, op, postID string, apply func(i int) model.PostRecord) (*model.PostRecord, error) {
	if err := b.begin(op); err != nil {
		return nil, err
	}

	b.mu.Lock()
	gate := b.gate
	b.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.posts {
		if string(b.posts[i].ID) == postID {
			rec := apply(i)
			return &rec, nil
		}
	}
	return nil, fmt.Errorf("stub: post %s not found", postID)
}

func (b *Backend) CreatePost(ctx context.Context, req entity.PostRequest) (*model.PostRecord, error) {
	if err := b.begin(OpCreatePost); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	zero := json.Number("0")
	author := model.FlexString(b.author)
	rec := model.PostRecord{
		ID:          model.FlexString("stub-post-" + strconv.Itoa(b.nextID)),
		Topic:       req.Topic,
		HTMLContent: req.HTMLContent,
		Stamp:       time.Now().UTC().Format(time.RFC3339),
		View:        &zero,
		Thumbnail:   req.Thumbnail,
		AuthorID:    &author,
		CategoryID:  flex(req.CategoryID),
	}
	if req.DeltaContent != "" {
		delta, _ := json.Marshal(req.DeltaContent)
		rec.DeltaContent = delta
	}
	b.posts = append([]model.PostRecord{rec}, b.posts...)
	return &rec, nil
}

func (b *Backend) ListCategories(ctx context.Context) ([]model.CategoryRecord, error) {
	if err := b.begin(OpListCategories); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]model.CategoryRecord{}, b.categories...), nil
}

func (b *Backend) CreateCategory(ctx context.Context, name string) (*model.CategoryRecord, error) {
	if err := b.begin(OpCreateCategory); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	rec := model.CategoryRecord{ID: model.FlexString("stub-cat-" + strconv.Itoa(b.nextID)), Name: name}
	b.categories = append(b.categories, rec)
	return &rec, nil
}

func flex(s string) *model.FlexString {
	v := model.FlexString(s)
	return &v
}

func strPtr(s string) *string { return &s }
