package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"shelter-dashboard/pkg/httpclient"
	"shelter-dashboard/pkg/logger"
	"shelter-dashboard/services/dashboard/internal/entity"
	"shelter-dashboard/services/dashboard/internal/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL, httpclient.Config{}, logger.NewNop())
}

func TestListPosts_SendsPageAndDecodesListData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/admin/posts", r.URL.Path)
		assert.Equal(t, "0", r.URL.Query().Get("page"))
		assert.Equal(t, "50", r.URL.Query().Get("size"))
		w.Write([]byte(`{"listData":[{"id":"p1","topic":"Meet Biscuit","view":0}]}`))
	})

	env, err := client.ListPosts(context.Background(), 0, 50)
	require.NoError(t, err)

	posts := repo.ToPostEntities(env)
	require.Len(t, posts, 1)
	assert.Equal(t, "Meet Biscuit", posts[0].Topic)
}

func TestApprovePost_SendsMessageAndToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/admin/posts/p1/approve", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Looks great", body["message"])

		w.Write([]byte(`{"id":"p1","view":1}`))
	})

	rec, err := client.ApprovePost(WithToken(context.Background(), "tok"), "p1", "Looks great")
	require.NoError(t, err)
	assert.Equal(t, "p1", string(rec.ID))
}

func TestRejectPost_Non2xxIsStatusError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/posts/p1/reject", r.URL.Path)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"boom"}`))
	})

	_, err := client.RejectPost(context.Background(), "p1", "no")
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.Status)
	assert.Contains(t, statusErr.Body, "boom")
}

func TestCreatePost_PostsRequest(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/post/create", r.URL.Path)

		var req entity.PostRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "c1", req.CategoryID)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"new-1","topic":"` + req.Topic + `","author_id":"shelter-1"}`))
	})

	rec, err := client.CreatePost(context.Background(), entity.PostRequest{Topic: "Hello", CategoryID: "c1"})
	require.NoError(t, err)
	assert.Equal(t, "new-1", string(rec.ID))
}

func TestCategories(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/category-blog", r.URL.Path)
		if r.Method == http.MethodPost {
			w.Write([]byte(`{"id":9,"name":"Events"}`))
			return
		}
		w.Write([]byte(`[{"id":"c1","name":"Adoption"}]`))
	})

	list, err := client.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)

	created, err := client.CreateCategory(context.Background(), "Events")
	require.NoError(t, err)
	assert.Equal(t, "9", string(created.ID))
}
