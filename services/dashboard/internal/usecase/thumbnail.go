package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// Upload is a thumbnail file attached to the creation form.
type Upload struct {
	Filename string
	Data     []byte
}

// ThumbnailStore turns an uploaded file into the URL sent as the post thumbnail.
type ThumbnailStore interface {
	Store(ctx context.Context, ownerID string, upload Upload) (string, error)
}

type objectUploader interface {
	Upload(ctx context.Context, key string, body io.ReadSeeker, contentType string) (string, error)
}

// S3Thumbnails stores thumbnails in the object bucket.
type S3Thumbnails struct {
	uploader objectUploader
}

func NewS3Thumbnails(uploader objectUploader) *S3Thumbnails {
	return &S3Thumbnails{uploader: uploader}
}

func (t *S3Thumbnails) Store(ctx context.Context, ownerID string, upload Upload) (string, error) {
	mt := mimetype.Detect(upload.Data)
	key := fmt.Sprintf("thumbnails/%s/%s%s", ownerID, uuid.New().String(), mt.Extension())

	url, err := t.uploader.Upload(ctx, key, bytes.NewReader(upload.Data), mt.String())
	if err != nil {
		return "", fmt.Errorf("failed to upload thumbnail: %w", err)
	}
	return url, nil
}

// DataURLThumbnails inlines the file as a base64 data URL when no bucket is configured.
type DataURLThumbnails struct{}

func (DataURLThumbnails) Store(_ context.Context, _ string, upload Upload) (string, error) {
	mt := mimetype.Detect(upload.Data)
	return "data:" + baseMIME(mt.String()) + ";base64," + base64.StdEncoding.EncodeToString(upload.Data), nil
}

// validateUpload accepts non-empty image files within maxBytes (zero means no limit).
func validateUpload(upload Upload, maxBytes int64) string {
	if len(upload.Data) == 0 {
		return "Thumbnail file is empty"
	}
	if maxBytes > 0 && int64(len(upload.Data)) > maxBytes {
		return fmt.Sprintf("Thumbnail must be at most %d bytes", maxBytes)
	}
	if !strings.HasPrefix(mimetype.Detect(upload.Data).String(), "image/") {
		return "Thumbnail must be an image"
	}
	return ""
}

func baseMIME(s string) string {
	if i := strings.IndexByte(s, ';'); i >= 0 {
		return s[:i]
	}
	return s
}
