package controller

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/fyyur/internal/storage"
	"github.com/stretchr/testify/assert"
)

type fakePresigner struct {
	err    error
	folder string
}

func (f *fakePresigner) PresignImageUpload(_ context.Context, filename, contentType, folder string) (*storage.PresignedURLResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.folder = folder
	key := folder + "/" + filename
	return &storage.PresignedURLResponse{
		UploadURL: "https://upload.example.com/" + key,
		FileURL:   "https://cdn.example.com/" + key,
		Key:       key,
	}, nil
}

func TestUploadController_GeneratePresignedURL(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		presignErr error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "Venue image",
			body:       `{"filename": "hop.png", "content_type": "image/png", "folder": "venues"}`,
			wantStatus: http.StatusOK,
			wantBody:   "https://cdn.example.com/venues/hop.png",
		},
		{
			name:       "Non image",
			body:       `{"filename": "hop.pdf", "content_type": "application/pdf", "folder": "venues"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "UPLOAD_INVALID_FILE_TYPE",
		},
		{
			name:       "Unknown folder",
			body:       `{"filename": "hop.png", "content_type": "image/png", "folder": "stores"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "VALIDATION_INVALID_INPUT",
		},
		{
			name:       "Missing filename",
			body:       `{"content_type": "image/png", "folder": "artists"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "VALIDATION_INVALID_INPUT",
		},
		{
			name:       "Presign failure",
			body:       `{"filename": "band.jpg", "content_type": "image/jpeg", "folder": "artists"}`,
			presignErr: errors.New("signing failed"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "UPLOAD_FAILED",
		},
	}

	gin.SetMode(gin.TestMode)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			presigner := &fakePresigner{err: tt.presignErr}
			router := gin.New()
			router.POST("/uploads/presigned-url", NewUploadController(presigner).GeneratePresignedURL)

			req := httptest.NewRequest(http.MethodPost, "/uploads/presigned-url", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}
