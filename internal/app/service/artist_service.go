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

type ArtistService interface {
	ListArtists(ctx context.Context) ([]NamedRef, error)
	Search(ctx context.Context, term string) (*SearchResult, error)
	GetArtist(ctx context.Context, id uint) (*ArtistDetail, error)
	GetArtistRecord(ctx context.Context, id uint) (*model.Artist, error)
	RecentArtists(ctx context.Context, limit int) ([]model.Artist, error)
	CreateArtist(ctx context.Context, input form.ArtistForm) (*model.Artist, error)
	UpdateArtist(ctx context.Context, id uint, input form.ArtistForm) (*model.Artist, error)
	DeleteArtist(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type artistService struct {
	db         *gorm.DB
	artistRepo repository.ArtistRepository
	showRepo   repository.ShowRepository
	now        func() time.Time
}

func NewArtistService(
	conn *gorm.DB,
	artistRepo repository.ArtistRepository,
	showRepo repository.ShowRepository,
	now func() time.Time,
) ArtistService {
	return &artistService{
		db:         conn,
		artistRepo: artistRepo,
		showRepo:   showRepo,
		now:        clockOrNow(now),
	}
}

func (s *artistService) ListArtists(ctx context.Context) ([]NamedRef, error) {
	artists, err := s.artistRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return artistRefs(artists), nil
}

func (s *artistService) Search(ctx context.Context, term string) (*SearchResult, error) {
	artists, err := s.artistRepo.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}
	return newSearchResult(term, artistRefs(artists)), nil
}

func (s *artistService) GetArtist(ctx context.Context, id uint) (*ArtistDetail, error) {
	artist, err := s.GetArtistRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	shows, err := s.showRepo.FindByArtist(ctx, id)
	if err != nil {
		return nil, err
	}
	return newArtistDetail(artist, shows, s.now()), nil
}

func (s *artistService) GetArtistRecord(ctx context.Context, id uint) (*model.Artist, error) {
	artist, err := s.artistRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Artist not found", map[string]interface{}{
				"artist_id": id,
			})
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return artist, nil
}

func (s *artistService) RecentArtists(ctx context.Context, limit int) ([]model.Artist, error) {
	return s.artistRepo.Recent(ctx, limit)
}

func (s *artistService) CreateArtist(ctx context.Context, input form.ArtistForm) (*model.Artist, error) {
	artist, err := input.Validate()
	if err != nil {
		return nil, err
	}

	err = db.Transaction(ctx, s.db, func(tx *gorm.DB) error {
		return s.artistRepo.WithTx(tx).Create(ctx, artist)
	})
	if err != nil {
		if isDuplicate(err, "create artist") {
			return nil, &MutationError{
				Message: fmt.Sprintf("An artist with name %s is already listed.", artist.Name),
				Err:     ErrNameAlreadyListed,
			}
		}
		return nil, &MutationError{
			Message: unexpectedMessage(err, "create artist", fmt.Sprintf("unexpected problem when attempting to create Artist %s: %v", artist.Name, err)),
			Err:     err,
		}
	}

	logger.Info("Artist listed", map[string]interface{}{
		"artist_id": artist.ID,
		"name":      artist.Name,
	})
	return artist, nil
}

func (s *artistService) UpdateArtist(ctx context.Context, id uint, input form.ArtistForm) (*model.Artist, error) {
	edits, err := input.Validate()
	if err != nil {
		return nil, err
	}

	var updated *model.Artist
	err = db.Transaction(ctx, s.db, func(tx *gorm.DB) error {
		repo := s.artistRepo.WithTx(tx)
		artist, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArtistNotFound
			}
			return err
		}

		artist.ApplyEdits(edits)
		if err := repo.Update(ctx, artist); err != nil {
			return err
		}
		updated = artist
		return nil
	})
	switch {
	case err == nil:
	case errors.Is(err, ErrArtistNotFound):
		return nil, err
	case isDuplicate(err, "update artist"):
		return nil, &MutationError{
			Message: fmt.Sprintf("An artist with name %s is already listed.", edits.Name),
			Err:     ErrNameAlreadyListed,
		}
	default:
		logger.Error("Failed to update artist", err, map[string]interface{}{
			"artist_id": id,
		})
		return nil, &MutationError{
			Message: unexpectedMessage(err, "update artist", fmt.Sprintf("unexpected problem when attempting to modify Artist %s", edits.Name)),
			Err:     err,
		}
	}

	logger.Info("Artist updated", map[string]interface{}{
		"artist_id": updated.ID,
		"name":      updated.Name,
	})
	return updated, nil
}

// DeleteArtist removes the artist and every show they are booked for.
func (s *artistService) DeleteArtist(ctx context.Context, id uint) error {
	err := db.Transaction(ctx, s.db, func(tx *gorm.DB) error {
		if _, err := s.showRepo.WithTx(tx).DeleteByArtist(ctx, id); err != nil {
			return err
		}
		_, err := s.artistRepo.WithTx(tx).Delete(ctx, id)
		return err
	})
	if err != nil {
		return &MutationError{
			Message: unexpectedMessage(err, "delete artist", fmt.Sprintf("unexpected problem when attempting to delete Artist %d: %v", id, err)),
			Err:     err,
		}
	}

	logger.Info("Artist deleted", map[string]interface{}{
		"artist_id": id,
	})
	return nil
}

func (s *artistService) Count(ctx context.Context) (int64, error) {
	return s.artistRepo.Count(ctx)
}
