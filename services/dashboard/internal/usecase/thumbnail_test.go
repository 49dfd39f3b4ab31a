package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	key         string
	contentType string
	body        []byte
	err         error
}

func (f *fakeUploader) Upload(_ context.Context, key string, body io.ReadSeeker, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.key = key
	f.contentType = contentType
	f.body, _ = io.ReadAll(body)
	return "https://bucket.example.org/" + key, nil
}

func TestS3Thumbnails_Store(t *testing.T) {
	up := &fakeUploader{}
	store := NewS3Thumbnails(up)

	url, err := store.Store(context.Background(), "reviewer-1", Upload{Filename: "x", Data: pngBytes})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(up.key, "thumbnails/reviewer-1/"))
	assert.True(t, strings.HasSuffix(up.key, ".png"))
	assert.Equal(t, "image/png", up.contentType)
	assert.Equal(t, pngBytes, up.body)
	assert.Equal(t, "https://bucket.example.org/"+up.key, url)
}

func TestS3Thumbnails_StoreError(t *testing.T) {
	store := NewS3Thumbnails(&fakeUploader{err: errors.New("denied")})
	_, err := store.Store(context.Background(), "r", Upload{Data: pngBytes})
	assert.Error(t, err)
}

func TestDataURLThumbnails_Store(t *testing.T) {
	url, err := DataURLThumbnails{}.Store(context.Background(), "r", Upload{Data: pngBytes})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,iVBORw0KGgo"))
}

func TestValidateUpload(t *testing.T) {
	assert.Empty(t, validateUpload(Upload{Data: pngBytes}, 0))
	assert.NotEmpty(t, validateUpload(Upload{}, 0))
	assert.NotEmpty(t, validateUpload(Upload{Data: pngBytes}, 4))
	assert.NotEmpty(t, validateUpload(Upload{Data: []byte("hello")}, 0))
}
