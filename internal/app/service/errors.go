package service

import (
	"errors"

	apperrors "github.com/ikkim/fyyur/internal/errors"
)

var (
	ErrVenueNotFound     = errors.New("venue not found")
	ErrArtistNotFound    = errors.New("artist not found")
	ErrNameAlreadyListed = errors.New("name already listed")
)

// MutationError reports a create, update or delete that was rolled back.
// Message is meant for the user; Err is the cause.
type MutationError struct {
	Message string
	Err     error
}

func (e *MutationError) Error() string {
	return e.Message
}

func (e *MutationError) Unwrap() error {
	return e.Err
}

func isDuplicate(err error, operation string) bool {
	return apperrors.ParseError(err, operation).Code == apperrors.ResourceAlreadyExists
}

// unexpectedMessage returns the user message for a failed mutation. An
// unreachable store or a conflicting reference gets the classified message;
// anything else gets fallback.
func unexpectedMessage(err error, operation, fallback string) string {
	info := apperrors.ParseError(err, operation)
	switch info.Code {
	case apperrors.InternalDatabaseError, apperrors.ResourceConflict:
		return info.Message
	}
	return fallback
}
