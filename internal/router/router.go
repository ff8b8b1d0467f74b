package router

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/fyyur/config"
	"github.com/ikkim/fyyur/internal/app/controller"
	apperrors "github.com/ikkim/fyyur/internal/errors"
	"github.com/ikkim/fyyur/internal/middleware"
	"github.com/ikkim/fyyur/pkg/logger"
)

type Router struct {
	homeController   *controller.HomeController
	venueController  *controller.VenueController
	artistController *controller.ArtistController
	showController   *controller.ShowController
	uploadController *controller.UploadController
	templates        *template.Template
	config           *config.Config
}

// NewRouter wires the controllers. uploadController may be nil when no S3
// bucket is configured.
func NewRouter(
	homeController *controller.HomeController,
	venueController *controller.VenueController,
	artistController *controller.ArtistController,
	showController *controller.ShowController,
	uploadController *controller.UploadController,
	templates *template.Template,
	cfg *config.Config,
) *Router {
	return &Router{
		homeController:   homeController,
		venueController:  venueController,
		artistController: artistController,
		showController:   showController,
		uploadController: uploadController,
		templates:        templates,
		config:           cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()
	router.SetHTMLTemplate(r.templates)

	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.CustomRecovery(recoverPage))
	router.Use(middleware.RequestTimeout(r.config.Server.RequestTimeout))

	router.NoRoute(apperrors.NotFoundPage)
	router.NoMethod(apperrors.NotFoundPage)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Fyyur is running",
		})
	})

	router.GET("/", r.homeController.Index)

	venues := router.Group("/venues")
	{
		venues.GET("", r.venueController.ListVenues)
		venues.POST("/search", r.venueController.SearchVenues)
		venues.GET("/create", r.venueController.NewVenueForm)
		venues.POST("/create", r.venueController.CreateVenue)
		venues.GET("/:id", r.venueController.ShowVenue)
		venues.DELETE("/:id", r.venueController.DeleteVenue)
		venues.GET("/:id/edit", r.venueController.EditVenueForm)
		venues.POST("/:id/edit", r.venueController.UpdateVenue)
	}

	artists := router.Group("/artists")
	{
		artists.GET("", r.artistController.ListArtists)
		artists.POST("/search", r.artistController.SearchArtists)
		artists.GET("/create", r.artistController.NewArtistForm)
		artists.POST("/create", r.artistController.CreateArtist)
		artists.GET("/:id", r.artistController.ShowArtist)
		artists.DELETE("/:id", r.artistController.DeleteArtist)
		artists.GET("/:id/edit", r.artistController.EditArtistForm)
		artists.POST("/:id/edit", r.artistController.UpdateArtist)
	}

	shows := router.Group("/shows")
	{
		shows.GET("", r.showController.ListShows)
		shows.POST("/search", r.showController.SearchShows)
		shows.GET("/create", r.showController.NewShowForm)
		shows.POST("/create", r.showController.CreateShow)
	}

	if r.uploadController != nil {
		uploads := router.Group("/uploads")
		{
			uploads.POST("/presigned-url", r.uploadController.GeneratePresignedURL)
		}
	}

	return router
}

func recoverPage(c *gin.Context, recovered interface{}) {
	logger.Error("Recovered from panic", fmt.Errorf("%v", recovered), map[string]interface{}{
		"request_id": middleware.GetRequestID(c),
		"path":       c.Request.URL.Path,
	})
	apperrors.ServerErrorPage(c)
}
