package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"shelter-dashboard/pkg/logger"

	"github.com/google/uuid"
)

const maxBodyLog = 1024

type ctxKey int

const requestIDKey ctxKey = iota

// WithRequestID attaches the inbound request id so outbound calls carry the same X-Request-Id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

type Config struct {
	Timeout time.Duration
}

// loggingRoundTripper logs every outbound call and propagates X-Request-Id.
type loggingRoundTripper struct {
	inner http.RoundTripper
	log   *logger.Logger
}

func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	requestID := requestIDFrom(req.Context())
	if requestID == "" {
		requestID = req.Header.Get("X-Request-Id")
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}
	req.Header.Set("X-Request-Id", requestID)

	var bodySnippet string
	if req.Body != nil {
		if bodyBytes, err := io.ReadAll(req.Body); err == nil {
			if len(bodyBytes) > maxBodyLog {
				bodySnippet = string(bodyBytes[:maxBodyLog])
			} else {
				bodySnippet = string(bodyBytes)
			}
			req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}
	}

	resp, err := l.inner.RoundTrip(req)
	duration := time.Since(start)
	if err != nil {
		l.log.Error("httpclient %s %s failed after %s (request_id=%s): %v body=%q", req.Method, req.URL, duration, requestID, err, bodySnippet)
		return nil, err
	}

	l.log.Debug("httpclient %s %s -> %d in %s (request_id=%s)", req.Method, req.URL, resp.StatusCode, duration, requestID)
	return resp, nil
}

// BaseClient binds an http.Client to a base URL.
type BaseClient struct {
	HTTPClient *http.Client
	BaseURL    string
}

func NewBaseClient(baseURL string, cfg Config, log *logger.Logger) *BaseClient {
	return &BaseClient{
		HTTPClient: New(cfg, log),
		BaseURL:    baseURL,
	}
}

// NewRequest joins relPath onto the base URL. Query parameters must be passed via query.
func (c *BaseClient) NewRequest(ctx context.Context, method, relPath string, query url.Values, body io.Reader) (*http.Request, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.Contains(relPath, "?") {
		return nil, fmt.Errorf("httpclient: relPath must not contain a query string: %s", relPath)
	}
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, err
	}
	if relPath != "" {
		base.Path = path.Join(base.Path, relPath)
	}
	if query != nil {
		base.RawQuery = query.Encode()
	}
	return http.NewRequestWithContext(ctx, method, base.String(), body)
}

func (c *BaseClient) Do(req *http.Request) (*http.Response, error) {
	return c.HTTPClient.Do(req)
}

// New builds an http.Client with request logging. A zero Timeout means 10s.
func New(cfg Config, log *logger.Logger) *http.Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	if log == nil {
		log = logger.NewNop()
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: &loggingRoundTripper{inner: http.DefaultTransport, log: log},
	}
}
