package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/fyyur/internal/app/form"
	"github.com/ikkim/fyyur/internal/app/service"
	apperrors "github.com/ikkim/fyyur/internal/errors"
	"github.com/ikkim/fyyur/internal/flash"
	"github.com/ikkim/fyyur/internal/middleware"
)

type ShowController struct {
	page
	showService service.ShowService
}

func NewShowController(showService service.ShowService, flasher *flash.Flasher) *ShowController {
	return &ShowController{
		page:        page{flasher: flasher},
		showService: showService,
	}
}

// ListShows shows every booking.
// GET /shows
func (ctrl *ShowController) ListShows(c *gin.Context) {
	shows, err := ctrl.showService.ListShows(c.Request.Context())
	if err != nil {
		ctrl.failure(c, err)
		return
	}

	ctrl.render(c, http.StatusOK, "pages/shows.html", gin.H{
		"title": "Shows",
		"shows": shows,
	}, gin.H{"shows": shows})
}

// SearchShows matches shows by venue or artist name.
// POST /shows/search
func (ctrl *ShowController) SearchShows(c *gin.Context) {
	result, err := ctrl.showService.Search(c.Request.Context(), c.PostForm("search_term"))
	if err != nil {
		ctrl.failure(c, err)
		return
	}

	ctrl.render(c, http.StatusOK, "pages/search_shows.html", gin.H{
		"title":   "Show search",
		"results": result,
	}, result)
}

// NewShowForm renders the show form with the start time preset to now.
// GET /shows/create
func (ctrl *ShowController) NewShowForm(c *gin.Context) {
	input := form.NewShowForm(ctrl.showService.Now())
	ctrl.render(c, http.StatusOK, "forms/show_form.html", showFormData(input), input)
}

// CreateShow books an artist at a venue.
// POST /shows/create
func (ctrl *ShowController) CreateShow(c *gin.Context) {
	var input form.ShowForm
	if err := bindForm(c, &input); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Malformed form body")
		return
	}

	show, err := ctrl.showService.CreateShow(c.Request.Context(), input)
	if err != nil {
		middleware.GetLoggerFromContext(c).Warn("Show was not listed", map[string]interface{}{
			"artist_id": input.ArtistID,
			"venue_id":  input.VenueID,
			"error":     err.Error(),
		})
		ctrl.formFailure(c, "forms/show_form.html", showFormData(input), err)
		return
	}

	ctrl.redirect(c, "/shows", "Show was successfully listed!", http.StatusCreated, show)
}

func showFormData(input form.ShowForm) gin.H {
	return gin.H{
		"title":  "New Show",
		"form":   input,
		"errors": map[string][]string{},
	}
}
