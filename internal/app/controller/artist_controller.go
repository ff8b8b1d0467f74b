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

type ArtistController struct {
	page
	artistService service.ArtistService
}

func NewArtistController(artistService service.ArtistService, flasher *flash.Flasher) *ArtistController {
	return &ArtistController{
		page:          page{flasher: flasher},
		artistService: artistService,
	}
}

// ListArtists shows every artist by id.
// GET /artists
func (ctrl *ArtistController) ListArtists(c *gin.Context) {
	artists, err := ctrl.artistService.ListArtists(c.Request.Context())
	if err != nil {
		ctrl.failure(c, err)
		return
	}

	ctrl.render(c, http.StatusOK, "pages/artists.html", gin.H{
		"title":   "Artists",
		"artists": artists,
	}, gin.H{"artists": artists})
}

// SearchArtists matches artist names against search_term.
// POST /artists/search
func (ctrl *ArtistController) SearchArtists(c *gin.Context) {
	term := c.PostForm("search_term")
	result, err := ctrl.artistService.Search(c.Request.Context(), term)
	if err != nil {
		ctrl.failure(c, err)
		return
	}

	ctrl.render(c, http.StatusOK, "pages/search_artists.html", gin.H{
		"title":   "Artist search",
		"results": result,
	}, result)
}

// ShowArtist shows one artist with their past and upcoming shows.
// GET /artists/:id
func (ctrl *ArtistController) ShowArtist(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		apperrors.NotFoundPage(c)
		return
	}

	artist, err := ctrl.artistService.GetArtist(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrArtistNotFound) {
			apperrors.NotFoundPage(c)
			return
		}
		ctrl.failure(c, err)
		return
	}

	ctrl.render(c, http.StatusOK, "pages/show_artist.html", gin.H{
		"title":  artist.Name,
		"artist": artist,
	}, artist)
}

// NewArtistForm renders the empty artist form.
// GET /artists/create
func (ctrl *ArtistController) NewArtistForm(c *gin.Context) {
	ctrl.render(c, http.StatusOK, "forms/artist_form.html", newArtistFormData(form.ArtistForm{}), form.ArtistForm{})
}

// CreateArtist lists a new artist.
// POST /artists/create
func (ctrl *ArtistController) CreateArtist(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var input form.ArtistForm
	if err := bindForm(c, &input); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Malformed form body")
		return
	}

	artist, err := ctrl.artistService.CreateArtist(c.Request.Context(), input)
	if err != nil {
		log.Warn("Artist was not listed", map[string]interface{}{
			"name":  input.Name,
			"error": err.Error(),
		})
		ctrl.formFailure(c, "forms/artist_form.html", newArtistFormData(input), err)
		return
	}

	ctrl.redirect(c,
		fmt.Sprintf("/artists/%d", artist.ID),
		fmt.Sprintf("Artist %s was successfully listed!", artist.Name),
		http.StatusCreated, artist)
}

// EditArtistForm renders the artist form filled with the stored values.
// GET /artists/:id/edit
func (ctrl *ArtistController) EditArtistForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		apperrors.NotFoundPage(c)
		return
	}

	artist, err := ctrl.artistService.GetArtistRecord(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrArtistNotFound) {
			apperrors.NotFoundPage(c)
			return
		}
		ctrl.failure(c, err)
		return
	}

	input := form.ArtistFormFrom(artist)
	ctrl.render(c, http.StatusOK, "forms/artist_form.html", editArtistFormData(id, input), input)
}

// UpdateArtist replaces every editable field of an artist.
// POST /artists/:id/edit
func (ctrl *ArtistController) UpdateArtist(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		apperrors.NotFoundPage(c)
		return
	}

	var input form.ArtistForm
	if err := bindForm(c, &input); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Malformed form body")
		return
	}

	artist, err := ctrl.artistService.UpdateArtist(c.Request.Context(), id, input)
	if err != nil {
		if errors.Is(err, service.ErrArtistNotFound) {
			apperrors.NotFoundPage(c)
			return
		}
		ctrl.formFailure(c, "forms/artist_form.html", editArtistFormData(id, input), err)
		return
	}

	ctrl.redirect(c,
		fmt.Sprintf("/artists/%d", artist.ID),
		fmt.Sprintf("Artist %s was successfully updated!", artist.Name),
		http.StatusOK, artist)
}

// DeleteArtist removes an artist and their shows. Always answers JSON.
// DELETE /artists/:id
func (ctrl *ArtistController) DeleteArtist(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	if err := ctrl.artistService.DeleteArtist(c.Request.Context(), id); err != nil {
		middleware.GetLoggerFromContext(c).Error("Failed to delete artist", err, map[string]interface{}{
			"artist_id": id,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	ctrl.flasher.Add(c, flash.CategorySuccess, "Artist was successfully deleted.")
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func newArtistFormData(input form.ArtistForm) gin.H {
	return gin.H{
		"title":   "New Artist",
		"heading": "List a new artist",
		"action":  "/artists/create",
		"submit":  "Create Artist",
		"form":    input,
		"errors":  map[string][]string{},
	}
}

func editArtistFormData(id uint, input form.ArtistForm) gin.H {
	return gin.H{
		"title":   "Edit Artist",
		"heading": fmt.Sprintf("Edit artist %s", input.Name),
		"action":  fmt.Sprintf("/artists/%d/edit", id),
		"submit":  "Edit Artist",
		"form":    input,
		"errors":  map[string][]string{},
	}
}
