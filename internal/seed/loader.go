package seed

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/ikkim/fyyur/internal/app/form"
	"github.com/ikkim/fyyur/internal/app/service"
	"github.com/ikkim/fyyur/pkg/logger"
)

// Loader stores datasets through the services, so seeded rows pass the same
// validation as submitted forms.
type Loader struct {
	venues  service.VenueService
	artists service.ArtistService
	shows   service.ShowService
}

func NewLoader(venues service.VenueService, artists service.ArtistService, shows service.ShowService) *Loader {
	return &Loader{
		venues:  venues,
		artists: artists,
		shows:   shows,
	}
}

// Result counts what an import stored and skipped.
type Result struct {
	Venues  int
	Artists int
	Shows   int
	Skipped int
}

// LoadIfEmpty inserts the fixture rows of every table that has none.
func (l *Loader) LoadIfEmpty(ctx context.Context) error {
	fixtures := Fixtures()

	venueCount, err := l.venues.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count venues: %w", err)
	}
	if venueCount == 0 {
		logger.Info("Database contains no venues, loading seed data")
		for _, v := range fixtures.Venues {
			if _, err := l.venues.CreateVenue(ctx, v); err != nil {
				return fmt.Errorf("failed to seed venue %s: %w", v.Name, err)
			}
		}
	}

	artistCount, err := l.artists.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count artists: %w", err)
	}
	if artistCount == 0 {
		logger.Info("Database contains no artists, loading seed data")
		for _, a := range fixtures.Artists {
			if _, err := l.artists.CreateArtist(ctx, a); err != nil {
				return fmt.Errorf("failed to seed artist %s: %w", a.Name, err)
			}
		}
	}

	showCount, err := l.shows.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count shows: %w", err)
	}
	if showCount == 0 {
		logger.Info("Database contains no shows, loading seed data")
		for _, s := range fixtures.Shows {
			if err := l.createShow(ctx, s); err != nil {
				return fmt.Errorf("failed to seed show at %s: %w", s.VenueName, err)
			}
		}
	}

	return nil
}

// Import stores every row of data. Venues and artists whose name is already
// listed, and shows naming a listing that does not exist, are skipped.
func (l *Loader) Import(ctx context.Context, data *Dataset) (*Result, error) {
	result := &Result{}

	for _, v := range data.Venues {
		if _, err := l.venues.CreateVenue(ctx, v); err != nil {
			if errors.Is(err, service.ErrNameAlreadyListed) {
				logger.Warn("Skipping listed venue", map[string]interface{}{"name": v.Name})
				result.Skipped++
				continue
			}
			return result, fmt.Errorf("venue %s: %w", v.Name, err)
		}
		result.Venues++
	}

	for _, a := range data.Artists {
		if _, err := l.artists.CreateArtist(ctx, a); err != nil {
			if errors.Is(err, service.ErrNameAlreadyListed) {
				logger.Warn("Skipping listed artist", map[string]interface{}{"name": a.Name})
				result.Skipped++
				continue
			}
			return result, fmt.Errorf("artist %s: %w", a.Name, err)
		}
		result.Artists++
	}

	for _, s := range data.Shows {
		if err := l.createShow(ctx, s); err != nil {
			if errors.Is(err, errUnknownListing) {
				logger.Warn("Skipping show", map[string]interface{}{
					"venue":  s.VenueName,
					"artist": s.ArtistName,
					"error":  err.Error(),
				})
				result.Skipped++
				continue
			}
			return result, fmt.Errorf("show %s at %s: %w", s.ArtistName, s.VenueName, err)
		}
		result.Shows++
	}

	return result, nil
}

var errUnknownListing = errors.New("no listing with that name")

func (l *Loader) createShow(ctx context.Context, s ShowFixture) error {
	venueID, err := l.findID(ctx, l.venues.Search, s.VenueName)
	if err != nil {
		return err
	}
	artistID, err := l.findID(ctx, l.artists.Search, s.ArtistName)
	if err != nil {
		return err
	}

	_, err = l.shows.CreateShow(ctx, form.ShowForm{
		ArtistID:  strconv.FormatUint(uint64(artistID), 10),
		VenueID:   strconv.FormatUint(uint64(venueID), 10),
		StartTime: s.StartTime,
	})
	return err
}

// findID resolves an exact name through a name search.
func (l *Loader) findID(ctx context.Context, search func(context.Context, string) (*service.SearchResult, error), name string) (uint, error) {
	result, err := search(ctx, name)
	if err != nil {
		return 0, err
	}
	for _, ref := range result.Data {
		if ref.Name == name {
			return ref.ID, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", errUnknownListing, name)
}
