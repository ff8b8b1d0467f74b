package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RespondWithError writes a JSON error body.
func RespondWithError(c *gin.Context, statusCode int, errorCode string, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   errorCode,
		Message: message,
	})
}

func BadRequest(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusBadRequest, errorCode, message)
}

// NotFoundPage renders the 404 page, or a JSON body for JSON clients.
func NotFoundPage(c *gin.Context) {
	renderErrorPage(c, http.StatusNotFound, "errors/404.html", ResourceNotFound, "Not found")
}

// ServerErrorPage renders the 500 page, or a JSON body for JSON clients.
func ServerErrorPage(c *gin.Context) {
	renderErrorPage(c, http.StatusInternalServerError, "errors/500.html", InternalServerError, "Internal server error")
}

func renderErrorPage(c *gin.Context, status int, page, code, message string) {
	body := ErrorResponse{Error: code, Message: message}
	c.Negotiate(status, gin.Negotiate{
		Offered:  []string{gin.MIMEHTML, gin.MIMEJSON},
		HTMLName: page,
		HTMLData: gin.H{"title": message},
		JSONData: body,
	})
	c.Abort()
}

// ValidationErrorResponse is the JSON body for form validation failures.
type ValidationErrorResponse struct {
	Error   string              `json:"error"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
}
