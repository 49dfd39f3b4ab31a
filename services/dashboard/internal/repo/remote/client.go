package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"shelter-dashboard/pkg/httpclient"
	"shelter-dashboard/pkg/logger"
	"shelter-dashboard/services/dashboard/internal/entity"
	"shelter-dashboard/services/dashboard/internal/model"
	"shelter-dashboard/services/dashboard/internal/repo"
)

const categoryPath = "/category-blog"

// StatusError is returned for any non-2xx admin API response.
type StatusError struct {
	Op     string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("admin-api %s: status=%d body=%s", e.Op, e.Status, e.Body)
}

type tokenKey struct{}

// WithToken makes outbound calls carry the reviewer's bearer token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// Client is a thin JSON client for the admin API.
type Client struct {
	base *httpclient.BaseClient
}

var _ repo.Backend = (*Client)(nil)

func New(baseURL string, cfg httpclient.Config, log *logger.Logger) *Client {
	return &Client{base: httpclient.NewBaseClient(baseURL, cfg, log)}
}

func (c *Client) ListPosts(ctx context.Context, page, size int) (*model.PageEnvelope, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var out model.PageEnvelope
	if err := c.doJSON(ctx, "ListPosts", http.MethodGet, "/admin/posts", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ApprovePost(ctx context.Context, postID, message string) (*model.PostRecord, error) {
	return c.moderate(ctx, "ApprovePost", postID, "approve", message)
}

func (c *Client) RejectPost(ctx context.Context, postID, message string) (*model.PostRecord, error) {
	return c.moderate(ctx, "RejectPost", postID, "reject", message)
}

func (c *Client) moderate(ctx context.Context, op, postID, verb, message string) (*model.PostRecord, error) {
	var out model.PostRecord
	path := "/admin/posts/" + url.PathEscape(postID) + "/" + verb
	if err := c.doJSON(ctx, op, http.MethodPut, path, nil, model.ModerationRequest{Message: message}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreatePost(ctx context.Context, req entity.PostRequest) (*model.PostRecord, error) {
	var out model.PostRecord
	if err := c.doJSON(ctx, "CreatePost", http.MethodPost, "/post/create", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]model.CategoryRecord, error) {
	var out []model.CategoryRecord
	if err := c.doJSON(ctx, "ListCategories", http.MethodGet, categoryPath, nil, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.CategoryRecord{}
	}
	return out, nil
}

func (c *Client) CreateCategory(ctx context.Context, name string) (*model.CategoryRecord, error) {
	var out model.CategoryRecord
	if err := c.doJSON(ctx, "CreateCategory", http.MethodPost, categoryPath, nil, model.CategoryRequest{Name: name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) doJSON(ctx context.Context, op, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("admin-api %s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := c.base.NewRequest(ctx, method, path, query, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := ctx.Value(tokenKey{}).(string); ok && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return fmt.Errorf("admin-api %s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &StatusError{Op: op, Status: resp.StatusCode, Body: string(b)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf("admin-api %s: decode response: %w", op, err)
	}
	return nil
}
