package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ikkim/fyyur/config"
	"github.com/ikkim/fyyur/internal/app/controller"
	"github.com/ikkim/fyyur/internal/app/repository"
	"github.com/ikkim/fyyur/internal/app/service"
	"github.com/ikkim/fyyur/internal/db"
	"github.com/ikkim/fyyur/internal/flash"
	"github.com/ikkim/fyyur/internal/router"
	"github.com/ikkim/fyyur/internal/seed"
	"github.com/ikkim/fyyur/internal/storage"
	"github.com/ikkim/fyyur/internal/web"
	"github.com/ikkim/fyyur/pkg/logger"
	"github.com/ikkim/fyyur/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	logFormat := "json"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
		logFormat = "console"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      logFormat,
		EnableColor: true,
	})

	logger.Info("Starting Fyyur", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	conn := db.GetDB()

	// Initialize repositories and services
	venueRepo := repository.NewVenueRepository(conn)
	artistRepo := repository.NewArtistRepository(conn)
	showRepo := repository.NewShowRepository(conn)

	venueService := service.NewVenueService(conn, venueRepo, showRepo, time.Now)
	artistService := service.NewArtistService(conn, artistRepo, showRepo, time.Now)
	showService := service.NewShowService(conn, showRepo, venueRepo, artistRepo, time.Now)

	if cfg.Seed.OnStart {
		loader := seed.NewLoader(venueService, artistService, showService)
		if err := loader.LoadIfEmpty(context.Background()); err != nil {
			logger.Warn("Failed to seed database", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	flasher := flash.New(newFlashStore(cfg), cfg.Flash.CookieName)
	defer func() {
		if err := redis.Close(); err != nil {
			logger.Error("Failed to close Redis connection", err)
		}
	}()

	// Initialize controllers
	homeController := controller.NewHomeController(venueService, artistService, flasher)
	venueController := controller.NewVenueController(venueService, flasher)
	artistController := controller.NewArtistController(artistService, flasher)
	showController := controller.NewShowController(showService, flasher)

	var uploadController *controller.UploadController
	if cfg.S3.Bucket != "" {
		uploadController = controller.NewUploadController(storage.NewS3Storage(context.Background(), &cfg.S3))
		logger.Info("Image uploads enabled", map[string]interface{}{
			"bucket": cfg.S3.Bucket,
		})
	}

	templates, err := web.Templates()
	if err != nil {
		logger.Fatal("Failed to parse templates", err)
	}

	r := router.NewRouter(
		homeController,
		venueController,
		artistController,
		showController,
		uploadController,
		templates,
		cfg,
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r.Setup(),
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started successfully", map[string]interface{}{
			"address": srv.Addr,
			"pid":     os.Getpid(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", err)
	}
	logger.Info("Server stopped successfully")
}

// newFlashStore picks the flash message store. Redis is used when configured
// and reachable; otherwise messages live in process memory.
func newFlashStore(cfg *config.Config) flash.Store {
	if cfg.Flash.Store == "redis" {
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Warn("Redis unavailable, keeping flash messages in memory", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			return flash.NewRedisStore(redis.GetClient(), cfg.Flash.TTL)
		}
	}
	return flash.NewMemoryStore(cfg.Flash.TTL)
}
