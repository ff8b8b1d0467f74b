package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo is a classified error ready to show to a user.
type ErrorInfo struct {
	Code    string
	Message string
}

// IsDuplicateKey reports whether err is a unique constraint violation.
// gorm's translated sentinel is checked first; the message checks cover
// PostgreSQL ("duplicate key value violates unique constraint", SQLSTATE
// 23505) and SQLite ("UNIQUE constraint failed") when translation is off.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "sqlstate 23505")
}

// IsForeignKeyViolation reports whether err is a foreign key violation.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key constraint") ||
		strings.Contains(msg, "sqlstate 23503")
}

// ParseError classifies a persistence error. context names the operation,
// e.g. "create venue", and only shapes the fallback message.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "An unexpected error occurred",
		}
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrorInfo{Code: ResourceNotFound, Message: notFoundMessage(context)}
	case IsDuplicateKey(err):
		return ErrorInfo{Code: ResourceAlreadyExists, Message: "The record is already listed"}
	case IsForeignKeyViolation(err):
		return ErrorInfo{Code: ResourceConflict, Message: "The record is referenced by other data"}
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "deadline exceeded") ||
		strings.Contains(msg, "timeout") {
		return ErrorInfo{
			Code:    InternalDatabaseError,
			Message: "The database is unavailable, please try again later",
		}
	}

	return ErrorInfo{
		Code:    InternalServerError,
		Message: defaultErrorMessage(context),
	}
}

func notFoundMessage(context string) string {
	c := strings.ToLower(context)
	switch {
	case strings.Contains(c, "venue"):
		return "Venue not found"
	case strings.Contains(c, "artist"):
		return "Artist not found"
	case strings.Contains(c, "show"):
		return "Show not found"
	}
	return "The requested record was not found"
}

func defaultErrorMessage(context string) string {
	c := strings.ToLower(context)
	switch {
	case strings.Contains(c, "create"):
		return "Creating the record failed, please try again"
	case strings.Contains(c, "update"):
		return "Updating the record failed, please try again"
	case strings.Contains(c, "delete"):
		return "Deleting the record failed, please try again"
	}
	return "An unexpected error occurred, please try again"
}
