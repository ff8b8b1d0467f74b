package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/ikkim/fyyur/internal/app/form"
	"github.com/ikkim/fyyur/internal/app/service"
	apperrors "github.com/ikkim/fyyur/internal/errors"
	"github.com/ikkim/fyyur/internal/flash"
	"github.com/ikkim/fyyur/internal/middleware"
)

// page renders an HTML template with the pending flash messages, or jsonBody
// when the client asked for JSON.
type page struct {
	flasher *flash.Flasher
}

func (p page) render(c *gin.Context, status int, name string, data gin.H, jsonBody interface{}) {
	if wantsJSON(c) {
		c.JSON(status, jsonBody)
		return
	}
	if data == nil {
		data = gin.H{}
	}
	data["flashes"] = p.flasher.Pop(c)
	c.HTML(status, name, data)
}

func wantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}

// redirect sends HTML clients to location with a success flash. JSON clients
// get status and body instead.
func (p page) redirect(c *gin.Context, location, message string, status int, jsonBody interface{}) {
	if wantsJSON(c) {
		c.JSON(status, jsonBody)
		return
	}
	p.flasher.Add(c, flash.CategorySuccess, message)
	c.Redirect(http.StatusSeeOther, location)
}

// formFailure re-renders a rejected form with its field errors and flashes
// the messages describing err.
func (p page) formFailure(c *gin.Context, name string, data gin.H, err error) {
	status := mutationStatus(err)
	if wantsJSON(c) {
		c.JSON(status, formErrorBody(err))
		return
	}
	p.flasher.AddAll(c, flash.CategoryError, mutationMessages(err)...)
	data["errors"] = fieldErrors(err)
	p.render(c, status, name, data, nil)
}

// failure renders the 500 page, or the JSON error body.
func (p page) failure(c *gin.Context, err error) {
	middleware.GetLoggerFromContext(c).Error("Request failed", err)
	_ = c.Error(err)
	apperrors.ServerErrorPage(c)
}

// parseID reads the :id path parameter. Anything that is not a positive
// integer cannot name a record.
func parseID(c *gin.Context) (uint, bool) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// bindForm decodes a urlencoded or multipart body into dst. Decoding only
// fails on malformed bodies; field rules are applied by the form itself.
func bindForm(c *gin.Context, dst interface{}) error {
	return c.ShouldBindWith(dst, binding.Form)
}

// mutationStatus picks the status for a rejected create or update.
func mutationStatus(err error) int {
	if _, ok := form.AsValidationErrors(err); ok {
		return http.StatusBadRequest
	}
	if errors.Is(err, service.ErrNameAlreadyListed) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// mutationMessages returns the user-facing lines describing err.
func mutationMessages(err error) []string {
	if verrs, ok := form.AsValidationErrors(err); ok {
		return verrs.Flashes()
	}
	var mutErr *service.MutationError
	if errors.As(err, &mutErr) {
		return []string{mutErr.Message}
	}
	return []string{"An unexpected error occurred, please try again."}
}

func fieldErrors(err error) map[string][]string {
	if verrs, ok := form.AsValidationErrors(err); ok {
		return verrs.Fields()
	}
	return map[string][]string{}
}

// formErrorBody is the JSON answer to a rejected form.
func formErrorBody(err error) apperrors.ValidationErrorResponse {
	code := apperrors.InternalServerError
	switch mutationStatus(err) {
	case http.StatusBadRequest:
		code = apperrors.ValidationInvalidInput
	case http.StatusConflict:
		code = apperrors.ResourceAlreadyExists
	}
	messages := mutationMessages(err)
	body := apperrors.ValidationErrorResponse{
		Error:   code,
		Message: messages[0],
	}
	if verrs, ok := form.AsValidationErrors(err); ok {
		body.Message = "Invalid form input"
		body.Fields = verrs.Fields()
	}
	return body
}
