package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/ikkim/fyyur/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(baseURL string) *S3Storage {
	return NewS3Storage(context.Background(), &config.S3Config{
		Region:          "us-east-1",
		Bucket:          "fyyur-images",
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "secret",
		BaseURL:         baseURL,
	})
}

func TestPresignImageUpload(t *testing.T) {
	s := newTestStorage("")

	resp, err := s.PresignImageUpload(context.Background(), "hop.PNG", "image/png", FolderVenues)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.Key, "venues/"))
	assert.True(t, strings.HasSuffix(resp.Key, ".png"))
	assert.Contains(t, resp.UploadURL, "fyyur-images")
	assert.Contains(t, resp.UploadURL, "X-Amz-Signature")
	assert.Equal(t, "https://fyyur-images.s3.us-east-1.amazonaws.com/"+resp.Key, resp.FileURL)
}

func TestPresignImageUpload_BaseURL(t *testing.T) {
	s := newTestStorage("https://cdn.example.com/")

	resp, err := s.PresignImageUpload(context.Background(), "band.jpg", "image/jpeg", FolderArtists)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/"+resp.Key, resp.FileURL)
}

func TestPresignImageUpload_Rejects(t *testing.T) {
	s := newTestStorage("")

	tests := []struct {
		name        string
		contentType string
		folder      string
	}{
		{"Non image", "application/pdf", FolderVenues},
		{"Unknown folder", "image/png", "community"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.PresignImageUpload(context.Background(), "file.png", tt.contentType, tt.folder)
			assert.Error(t, err)
		})
	}
}
