package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ikkim/fyyur/internal/app/form"
	"github.com/ikkim/fyyur/internal/app/model"
	"github.com/ikkim/fyyur/internal/app/repository"
	"github.com/ikkim/fyyur/internal/db"
	"github.com/ikkim/fyyur/pkg/logger"
	"gorm.io/gorm"
)

type VenueService interface {
	ListAreas(ctx context.Context) ([]VenueArea, error)
	Search(ctx context.Context, term string) (*SearchResult, error)
	GetVenue(ctx context.Context, id uint) (*VenueDetail, error)
	// GetVenueRecord returns the stored venue, for prefilling the edit form.
	GetVenueRecord(ctx context.Context, id uint) (*model.Venue, error)
	RecentVenues(ctx context.Context, limit int) ([]model.Venue, error)
	CreateVenue(ctx context.Context, input form.VenueForm) (*model.Venue, error)
	UpdateVenue(ctx context.Context, id uint, input form.VenueForm) (*model.Venue, error)
	DeleteVenue(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type venueService struct {
	db        *gorm.DB
	venueRepo repository.VenueRepository
	showRepo  repository.ShowRepository
	now       func() time.Time
}

// NewVenueService builds the venue service. now decides which shows are past
// or upcoming; nil means time.Now.
func NewVenueService(
	conn *gorm.DB,
	venueRepo repository.VenueRepository,
	showRepo repository.ShowRepository,
	now func() time.Time,
) VenueService {
	return &venueService{
		db:        conn,
		venueRepo: venueRepo,
		showRepo:  showRepo,
		now:       clockOrNow(now),
	}
}

func (s *venueService) ListAreas(ctx context.Context) ([]VenueArea, error) {
	venues, err := s.venueRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return groupByArea(venues), nil
}

func (s *venueService) Search(ctx context.Context, term string) (*SearchResult, error) {
	venues, err := s.venueRepo.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}
	logger.Debug("Venue search finished", map[string]interface{}{
		"term":  term,
		"count": len(venues),
	})
	return newSearchResult(term, venueRefs(venues)), nil
}

func (s *venueService) GetVenue(ctx context.Context, id uint) (*VenueDetail, error) {
	venue, err := s.GetVenueRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	shows, err := s.showRepo.FindByVenue(ctx, id)
	if err != nil {
		return nil, err
	}
	return newVenueDetail(venue, shows, s.now()), nil
}

func (s *venueService) GetVenueRecord(ctx context.Context, id uint) (*model.Venue, error) {
	venue, err := s.venueRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Venue not found", map[string]interface{}{
				"venue_id": id,
			})
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return venue, nil
}

func (s *venueService) RecentVenues(ctx context.Context, limit int) ([]model.Venue, error) {
	return s.venueRepo.Recent(ctx, limit)
}

func (s *venueService) CreateVenue(ctx context.Context, input form.VenueForm) (*model.Venue, error) {
	venue, err := input.Validate()
	if err != nil {
		return nil, err
	}

	err = db.Transaction(ctx, s.db, func(tx *gorm.DB) error {
		return s.venueRepo.WithTx(tx).Create(ctx, venue)
	})
	if err != nil {
		if isDuplicate(err, "create venue") {
			logger.Warn("Venue name already listed", map[string]interface{}{
				"name": venue.Name,
			})
			return nil, &MutationError{
				Message: fmt.Sprintf("A venue with name %s is already listed.", venue.Name),
				Err:     ErrNameAlreadyListed,
			}
		}
		return nil, &MutationError{
			Message: unexpectedMessage(err, "create venue", fmt.Sprintf("unexpected problem when attempting to create Venue %s: %v", venue.Name, err)),
			Err:     err,
		}
	}

	logger.Info("Venue listed", map[string]interface{}{
		"venue_id": venue.ID,
		"name":     venue.Name,
	})
	return venue, nil
}

func (s *venueService) UpdateVenue(ctx context.Context, id uint, input form.VenueForm) (*model.Venue, error) {
	edits, err := input.Validate()
	if err != nil {
		return nil, err
	}

	var updated *model.Venue
	err = db.Transaction(ctx, s.db, func(tx *gorm.DB) error {
		repo := s.venueRepo.WithTx(tx)
		venue, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVenueNotFound
			}
			return err
		}

		venue.ApplyEdits(edits)
		if err := repo.Update(ctx, venue); err != nil {
			return err
		}
		updated = venue
		return nil
	})
	switch {
	case err == nil:
	case errors.Is(err, ErrVenueNotFound):
		logger.Warn("Venue not found for update", map[string]interface{}{
			"venue_id": id,
		})
		return nil, err
	case isDuplicate(err, "update venue"):
		return nil, &MutationError{
			Message: fmt.Sprintf("A venue with name %s is already listed.", edits.Name),
			Err:     ErrNameAlreadyListed,
		}
	default:
		logger.Error("Failed to update venue", err, map[string]interface{}{
			"venue_id": id,
		})
		return nil, &MutationError{
			Message: unexpectedMessage(err, "update venue", fmt.Sprintf("unexpected problem when attempting to modify Venue %s", edits.Name)),
			Err:     err,
		}
	}

	logger.Info("Venue updated", map[string]interface{}{
		"venue_id": updated.ID,
		"name":     updated.Name,
	})
	return updated, nil
}

// DeleteVenue removes the venue and its shows. Deleting a venue that does not
// exist succeeds.
func (s *venueService) DeleteVenue(ctx context.Context, id uint) error {
	var removed int64
	err := db.Transaction(ctx, s.db, func(tx *gorm.DB) error {
		if _, err := s.showRepo.WithTx(tx).DeleteByVenue(ctx, id); err != nil {
			return err
		}
		n, err := s.venueRepo.WithTx(tx).Delete(ctx, id)
		removed = n
		return err
	})
	if err != nil {
		return &MutationError{
			Message: unexpectedMessage(err, "delete venue", fmt.Sprintf("unexpected problem when attempting to delete Venue %d: %v", id, err)),
			Err:     err,
		}
	}

	logger.Info("Venue deleted", map[string]interface{}{
		"venue_id": id,
		"removed":  removed,
	})
	return nil
}

func (s *venueService) Count(ctx context.Context) (int64, error) {
	return s.venueRepo.Count(ctx)
}
