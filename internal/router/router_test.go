package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/fyyur/config"
	"github.com/ikkim/fyyur/internal/app/controller"
	"github.com/ikkim/fyyur/internal/app/repository"
	"github.com/ikkim/fyyur/internal/app/service"
	"github.com/ikkim/fyyur/internal/db"
	"github.com/ikkim/fyyur/internal/flash"
	"github.com/ikkim/fyyur/internal/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	venueRepo := repository.NewVenueRepository(testDB)
	artistRepo := repository.NewArtistRepository(testDB)
	showRepo := repository.NewShowRepository(testDB)

	venueService := service.NewVenueService(testDB, venueRepo, showRepo, time.Now)
	artistService := service.NewArtistService(testDB, artistRepo, showRepo, time.Now)
	showService := service.NewShowService(testDB, showRepo, venueRepo, artistRepo, time.Now)
	flasher := flash.New(flash.NewMemoryStore(time.Minute), "fyyur_session")

	templates, err := web.Templates()
	require.NoError(t, err)

	cfg := &config.Config{
		Server: config.ServerConfig{
			GinMode:        gin.TestMode,
			RequestTimeout: 5 * time.Second,
		},
	}

	r := NewRouter(
		controller.NewHomeController(venueService, artistService, flasher),
		controller.NewVenueController(venueService, flasher),
		controller.NewArtistController(artistService, flasher),
		controller.NewShowController(showService, flasher),
		nil,
		templates,
		cfg,
	)
	return r.Setup()
}

func TestRouter_Routes(t *testing.T) {
	engine := setupRouter(t)

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
	}{
		{"Health", http.MethodGet, "/health", http.StatusOK},
		{"Home", http.MethodGet, "/", http.StatusOK},
		{"Venues", http.MethodGet, "/venues", http.StatusOK},
		{"Venue form", http.MethodGet, "/venues/create", http.StatusOK},
		{"Artists", http.MethodGet, "/artists", http.StatusOK},
		{"Artist form", http.MethodGet, "/artists/create", http.StatusOK},
		{"Shows", http.MethodGet, "/shows", http.StatusOK},
		{"Show form", http.MethodGet, "/shows/create", http.StatusOK},
		{"Missing venue", http.MethodGet, "/venues/7", http.StatusNotFound},
		{"Missing artist", http.MethodGet, "/artists/7", http.StatusNotFound},
		{"Unknown route", http.MethodGet, "/nowhere", http.StatusNotFound},
		{"Uploads disabled", http.MethodPost, "/uploads/presigned-url", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, nil))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRouter_RequestIDHeader(t *testing.T) {
	engine := setupRouter(t)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_NotFoundPage(t *testing.T) {
	engine := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	req.Header.Set("Accept", "text/html")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
}
