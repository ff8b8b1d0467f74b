package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ikkim/fyyur/internal/app/form"
	"github.com/ikkim/fyyur/internal/app/model"
	"github.com/ikkim/fyyur/internal/app/repository"
	"github.com/ikkim/fyyur/internal/db"
	"github.com/ikkim/fyyur/pkg/logger"
	"gorm.io/gorm"
)

type ShowService interface {
	ListShows(ctx context.Context) ([]ShowListing, error)
	Search(ctx context.Context, term string) (*ShowSearchResult, error)
	CreateShow(ctx context.Context, input form.ShowForm) (*model.Show, error)
	Count(ctx context.Context) (int64, error)
	// Now is the service clock, used to preset the show form.
	Now() time.Time
}

type showService struct {
	db         *gorm.DB
	showRepo   repository.ShowRepository
	venueRepo  repository.VenueRepository
	artistRepo repository.ArtistRepository
	now        func() time.Time
}

func NewShowService(
	conn *gorm.DB,
	showRepo repository.ShowRepository,
	venueRepo repository.VenueRepository,
	artistRepo repository.ArtistRepository,
	now func() time.Time,
) ShowService {
	return &showService{
		db:         conn,
		showRepo:   showRepo,
		venueRepo:  venueRepo,
		artistRepo: artistRepo,
		now:        clockOrNow(now),
	}
}

// showReferences answers the show form's existence checks.
type showReferences struct {
	venues  repository.VenueRepository
	artists repository.ArtistRepository
}

func (r showReferences) ArtistExists(ctx context.Context, id uint) (bool, error) {
	return r.artists.Exists(ctx, id)
}

func (r showReferences) VenueExists(ctx context.Context, id uint) (bool, error) {
	return r.venues.Exists(ctx, id)
}

func (s *showService) Now() time.Time {
	return s.now()
}

func (s *showService) ListShows(ctx context.Context) ([]ShowListing, error) {
	shows, err := s.showRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return showListings(shows), nil
}

func (s *showService) Search(ctx context.Context, term string) (*ShowSearchResult, error) {
	shows, err := s.showRepo.Search(ctx, term)
	if err != nil {
		return nil, err
	}

	past, upcoming := splitShows(shows, s.now())
	result := &ShowSearchResult{
		SearchTerm:    term,
		Count:         len(shows),
		PastShows:     showListings(past),
		UpcomingShows: showListings(upcoming),
	}
	result.PastShowsCount = len(result.PastShows)
	result.UpcomingShowsCount = len(result.UpcomingShows)
	return result, nil
}

func (s *showService) CreateShow(ctx context.Context, input form.ShowForm) (*model.Show, error) {
	refs := showReferences{venues: s.venueRepo, artists: s.artistRepo}
	show, err := input.Validate(ctx, refs)
	if err != nil {
		if _, ok := form.AsValidationErrors(err); ok {
			return nil, err
		}
		return nil, &MutationError{
			Message: unexpectedMessage(err, "create show", fmt.Sprintf("unexpected problem when attempting to list Show: %v", err)),
			Err:     err,
		}
	}

	err = db.Transaction(ctx, s.db, func(tx *gorm.DB) error {
		return s.showRepo.WithTx(tx).Create(ctx, show)
	})
	if err != nil {
		return nil, &MutationError{
			Message: unexpectedMessage(err, "create show", fmt.Sprintf("unexpected problem when attempting to list Show: %v", err)),
			Err:     err,
		}
	}

	logger.Info("Show listed", map[string]interface{}{
		"show_id":    show.ID,
		"artist_id":  show.ArtistID,
		"venue_id":   show.VenueID,
		"start_time": show.StartTime,
	})
	return show, nil
}

func (s *showService) Count(ctx context.Context) (int64, error) {
	return s.showRepo.Count(ctx)
}
