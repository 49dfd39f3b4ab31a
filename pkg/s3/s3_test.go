package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectURL_AWS(t *testing.T) {
	url := ObjectURL("", false, "eu-west-1", "thumbs", "thumbnails/a.png")
	assert.Equal(t, "https://thumbs.s3.eu-west-1.amazonaws.com/thumbnails/a.png", url)
}

func TestObjectURL_DefaultRegion(t *testing.T) {
	url := ObjectURL("", false, "", "thumbs", "a.png")
	assert.Equal(t, "https://thumbs.s3.us-east-1.amazonaws.com/a.png", url)
}

func TestObjectURL_MinIO(t *testing.T) {
	assert.Equal(t, "http://minio:9000/thumbs/a.png", ObjectURL("http://minio:9000", true, "us-east-1", "thumbs", "a.png"))
	assert.Equal(t, "https://files.local/thumbs/a.png", ObjectURL("files.local", false, "us-east-1", "thumbs", "a.png"))
}
