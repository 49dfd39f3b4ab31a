package usecase

import (
	"context"
	"testing"
	"time"

	"shelter-dashboard/pkg/logger"
	"shelter-dashboard/services/dashboard/internal/repo/stub"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func newTestSession(t *testing.T, backend *stub.Backend) *Session {
	t.Helper()
	s := NewSession("reviewer-1", backend, nil, logger.NewNop(), SessionOptions{MaxThumbnailBytes: 1 << 10})
	s.now = func() time.Time { return fixedNow }
	s.newID = func() string { return "generated-id" }
	require.NoError(t, s.Load(context.Background()))
	return s
}

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
