package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestParseError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		context  string
		wantCode string
		wantMsg  string
	}{
		{
			name:     "Nil error",
			err:      nil,
			wantCode: InternalServerError,
		},
		{
			name:     "Record not found",
			err:      gorm.ErrRecordNotFound,
			context:  "get venue",
			wantCode: ResourceNotFound,
			wantMsg:  "Venue not found",
		},
		{
			name:     "Translated duplicate key",
			err:      fmt.Errorf("create: %w", gorm.ErrDuplicatedKey),
			context:  "create artist",
			wantCode: ResourceAlreadyExists,
		},
		{
			name:     "Postgres duplicate key message",
			err:      errors.New(`ERROR: duplicate key value violates unique constraint "idx_venues_name" (SQLSTATE 23505)`),
			context:  "create venue",
			wantCode: ResourceAlreadyExists,
		},
		{
			name:     "SQLite unique constraint message",
			err:      errors.New("UNIQUE constraint failed: venues.name"),
			context:  "create venue",
			wantCode: ResourceAlreadyExists,
		},
		{
			name:     "Foreign key violation",
			err:      errors.New("FOREIGN KEY constraint failed"),
			context:  "delete venue",
			wantCode: ResourceConflict,
		},
		{
			name:     "Connection refused",
			err:      errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"),
			context:  "list venues",
			wantCode: InternalDatabaseError,
		},
		{
			name:     "Unknown error on update",
			err:      errors.New("boom"),
			context:  "update artist",
			wantCode: InternalServerError,
			wantMsg:  "Updating the record failed, please try again",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ParseError(tt.err, tt.context)
			assert.Equal(t, tt.wantCode, info.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, info.Message)
			}
		})
	}
}

func TestIsDuplicateKey(t *testing.T) {
	assert.False(t, IsDuplicateKey(nil))
	assert.False(t, IsDuplicateKey(errors.New("boom")))
	assert.True(t, IsDuplicateKey(gorm.ErrDuplicatedKey))
}
