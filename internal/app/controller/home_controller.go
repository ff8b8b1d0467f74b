package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/fyyur/internal/app/service"
	"github.com/ikkim/fyyur/internal/flash"
)

const recentListings = 10

type HomeController struct {
	page
	venueService  service.VenueService
	artistService service.ArtistService
}

func NewHomeController(venueService service.VenueService, artistService service.ArtistService, flasher *flash.Flasher) *HomeController {
	return &HomeController{
		page:          page{flasher: flasher},
		venueService:  venueService,
		artistService: artistService,
	}
}

// Index shows the landing page with the latest listings.
// GET /
func (ctrl *HomeController) Index(c *gin.Context) {
	ctx := c.Request.Context()

	venues, err := ctrl.venueService.RecentVenues(ctx, recentListings)
	if err != nil {
		ctrl.failure(c, err)
		return
	}
	artists, err := ctrl.artistService.RecentArtists(ctx, recentListings)
	if err != nil {
		ctrl.failure(c, err)
		return
	}

	ctrl.render(c, http.StatusOK, "pages/home.html", gin.H{
		"recent_venues":  venues,
		"recent_artists": artists,
	}, gin.H{
		"recent_venues":  venues,
		"recent_artists": artists,
	})
}
