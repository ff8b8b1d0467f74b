package form

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ikkim/fyyur/internal/app/model"
)

// StartTimeLayout is how the show form displays a start time.
const StartTimeLayout = "2006-01-02 15:04:05"

// startTimeLayouts are tried in order. Layouts without a zone are read in
// local time.
var startTimeLayouts = []string{
	StartTimeLayout,
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ShowReferences resolves the ids a show points at.
type ShowReferences interface {
	ArtistExists(ctx context.Context, id uint) (bool, error)
	VenueExists(ctx context.Context, id uint) (bool, error)
}

// ShowForm is the show listing submission.
type ShowForm struct {
	ArtistID  string `form:"artist_id" json:"artist_id" validate:"required"`
	VenueID   string `form:"venue_id" json:"venue_id" validate:"required"`
	StartTime string `form:"start_time" json:"start_time" validate:"required"`
}

// NewShowForm returns an empty form with the start time preset to now.
func NewShowForm(now time.Time) ShowForm {
	return ShowForm{StartTime: now.Format(StartTimeLayout)}
}

// Validate checks f, including that the artist and venue exist. A lookup
// failure is returned as is, not as ValidationErrors.
func (f *ShowForm) Validate(ctx context.Context, refs ShowReferences) (*model.Show, error) {
	trimAll(f)

	var errs ValidationErrors
	check(f, &errs)

	show := &model.Show{}

	if !errs.Has("artist_id") {
		id, msg, err := resolveID(ctx, f.ArtistID, "Artist", refs.ArtistExists)
		if err != nil {
			return nil, err
		}
		if msg != "" {
			errs.add("artist_id", msg)
		}
		show.ArtistID = id
	}

	if !errs.Has("venue_id") {
		id, msg, err := resolveID(ctx, f.VenueID, "Venue", refs.VenueExists)
		if err != nil {
			return nil, err
		}
		if msg != "" {
			errs.add("venue_id", msg)
		}
		show.VenueID = id
	}

	if !errs.Has("start_time") {
		t, ok := ParseStartTime(f.StartTime)
		if !ok {
			errs.add("start_time", MsgInvalidTime)
		}
		show.StartTime = t
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return show, nil
}

func resolveID(
	ctx context.Context,
	raw, entity string,
	exists func(context.Context, uint) (bool, error),
) (uint, string, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Sprintf("%s Id must be an Integer", entity), nil
	}
	notFound := fmt.Sprintf("No %s Found with Id: %s", entity, raw)
	if n <= 0 {
		return 0, notFound, nil
	}
	id := uint(n)
	ok, err := exists(ctx, id)
	if err != nil {
		return 0, "", err
	}
	if !ok {
		return 0, notFound, nil
	}
	return id, "", nil
}

// ParseStartTime accepts RFC 3339 or "YYYY-MM-DD HH:MM[:SS]" with a space or
// "T" separator.
func ParseStartTime(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
