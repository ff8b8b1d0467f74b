package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/fyyur/internal/app/form"
	"github.com/ikkim/fyyur/internal/app/service"
	apperrors "github.com/ikkim/fyyur/internal/errors"
	"github.com/ikkim/fyyur/internal/flash"
	"github.com/ikkim/fyyur/internal/middleware"
)

type VenueController struct {
	page
	venueService service.VenueService
}

func NewVenueController(venueService service.VenueService, flasher *flash.Flasher) *VenueController {
	return &VenueController{
		page:         page{flasher: flasher},
		venueService: venueService,
	}
}

// ListVenues shows venues grouped by city.
// GET /venues
func (ctrl *VenueController) ListVenues(c *gin.Context) {
	areas, err := ctrl.venueService.ListAreas(c.Request.Context())
	if err != nil {
		ctrl.failure(c, err)
		return
	}

	ctrl.render(c, http.StatusOK, "pages/venues.html", gin.H{
		"title": "Venues",
		"areas": areas,
	}, gin.H{"areas": areas})
}

// SearchVenues matches venue names against search_term.
// POST /venues/search
func (ctrl *VenueController) SearchVenues(c *gin.Context) {
	term := c.PostForm("search_term")
	result, err := ctrl.venueService.Search(c.Request.Context(), term)
	if err != nil {
		ctrl.failure(c, err)
		return
	}

	ctrl.render(c, http.StatusOK, "pages/search_venues.html", gin.H{
		"title":   "Venue search",
		"results": result,
	}, result)
}

// ShowVenue shows one venue with its past and upcoming shows.
// GET /venues/:id
func (ctrl *VenueController) ShowVenue(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		apperrors.NotFoundPage(c)
		return
	}

	venue, err := ctrl.venueService.GetVenue(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			apperrors.NotFoundPage(c)
			return
		}
		ctrl.failure(c, err)
		return
	}

	ctrl.render(c, http.StatusOK, "pages/show_venue.html", gin.H{
		"title": venue.Name,
		"venue": venue,
	}, venue)
}

// NewVenueForm renders the empty venue form.
// GET /venues/create
func (ctrl *VenueController) NewVenueForm(c *gin.Context) {
	ctrl.render(c, http.StatusOK, "forms/venue_form.html", newVenueFormData(form.VenueForm{}), form.VenueForm{})
}

// CreateVenue lists a new venue.
// POST /venues/create
func (ctrl *VenueController) CreateVenue(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var input form.VenueForm
	if err := bindForm(c, &input); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Malformed form body")
		return
	}

	venue, err := ctrl.venueService.CreateVenue(c.Request.Context(), input)
	if err != nil {
		log.Warn("Venue was not listed", map[string]interface{}{
			"name":  input.Name,
			"error": err.Error(),
		})
		ctrl.formFailure(c, "forms/venue_form.html", newVenueFormData(input), err)
		return
	}

	ctrl.redirect(c,
		fmt.Sprintf("/venues/%d", venue.ID),
		fmt.Sprintf("Venue %s was successfully listed!", venue.Name),
		http.StatusCreated, venue)
}

// EditVenueForm renders the venue form filled with the stored values.
// GET /venues/:id/edit
func (ctrl *VenueController) EditVenueForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		apperrors.NotFoundPage(c)
		return
	}

	venue, err := ctrl.venueService.GetVenueRecord(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			apperrors.NotFoundPage(c)
			return
		}
		ctrl.failure(c, err)
		return
	}

	input := form.VenueFormFrom(venue)
	ctrl.render(c, http.StatusOK, "forms/venue_form.html", editVenueFormData(id, input), input)
}

// UpdateVenue replaces every editable field of a venue.
// POST /venues/:id/edit
func (ctrl *VenueController) UpdateVenue(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		apperrors.NotFoundPage(c)
		return
	}

	var input form.VenueForm
	if err := bindForm(c, &input); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Malformed form body")
		return
	}

	venue, err := ctrl.venueService.UpdateVenue(c.Request.Context(), id, input)
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			apperrors.NotFoundPage(c)
			return
		}
		ctrl.formFailure(c, "forms/venue_form.html", editVenueFormData(id, input), err)
		return
	}

	ctrl.redirect(c,
		fmt.Sprintf("/venues/%d", venue.ID),
		fmt.Sprintf("Venue %s was successfully updated!", venue.Name),
		http.StatusOK, venue)
}

// DeleteVenue removes a venue and its shows. Always answers JSON.
// DELETE /venues/:id
func (ctrl *VenueController) DeleteVenue(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	if err := ctrl.venueService.DeleteVenue(c.Request.Context(), id); err != nil {
		middleware.GetLoggerFromContext(c).Error("Failed to delete venue", err, map[string]interface{}{
			"venue_id": id,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	ctrl.flasher.Add(c, flash.CategorySuccess, "Venue was successfully deleted.")
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func newVenueFormData(input form.VenueForm) gin.H {
	return gin.H{
		"title":   "New Venue",
		"heading": "List a new venue",
		"action":  "/venues/create",
		"submit":  "Create Venue",
		"form":    input,
		"errors":  map[string][]string{},
	}
}

func editVenueFormData(id uint, input form.VenueForm) gin.H {
	return gin.H{
		"title":   "Edit Venue",
		"heading": fmt.Sprintf("Edit venue %s", input.Name),
		"action":  fmt.Sprintf("/venues/%d/edit", id),
		"submit":  "Edit Venue",
		"form":    input,
		"errors":  map[string][]string{},
	}
}
