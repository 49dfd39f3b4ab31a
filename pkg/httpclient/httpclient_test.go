package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"shelter-dashboard/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest_JoinsPathAndQuery(t *testing.T) {
	c := NewBaseClient("http://admin:8010/api", Config{}, logger.NewNop())

	req, err := c.NewRequest(context.Background(), http.MethodGet, "/admin/posts", url.Values{"page": {"0"}, "size": {"20"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "http://admin:8010/api/admin/posts?page=0&size=20", req.URL.String())
}

func TestNewRequest_RejectsInlineQuery(t *testing.T) {
	c := NewBaseClient("http://admin:8010", Config{}, logger.NewNop())

	_, err := c.NewRequest(context.Background(), http.MethodGet, "/admin/posts?page=1", nil, nil)
	assert.Error(t, err)
}

func TestRoundTrip_PropagatesRequestID(t *testing.T) {
	var seen string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewBaseClient(srv.URL, Config{}, logger.NewNop())
	ctx := WithRequestID(context.Background(), "req-42")
	req, err := c.NewRequest(ctx, http.MethodPost, "/post/create", nil, strings.NewReader(`{"topic":"x"}`))
	require.NoError(t, err)

	resp, err := c.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "req-42", seen)
}
