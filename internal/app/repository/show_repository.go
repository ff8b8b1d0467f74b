package repository

import (
	"context"

	"github.com/ikkim/fyyur/internal/app/model"
	"github.com/ikkim/fyyur/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShowRepository interface {
	WithTx(tx *gorm.DB) ShowRepository
	Create(ctx context.Context, show *model.Show) error
	// FindAll returns every show with its artist and venue, ordered by id.
	FindAll(ctx context.Context) ([]model.Show, error)
	// FindByVenue returns the venue's shows with their artists, ordered by
	// start time then id.
	FindByVenue(ctx context.Context, venueID uint) ([]model.Show, error)
	// FindByArtist returns the artist's shows with their venues, ordered by
	// start time then id.
	FindByArtist(ctx context.Context, artistID uint) ([]model.Show, error)
	// Search matches shows whose venue name or artist name contains term.
	Search(ctx context.Context, term string) ([]model.Show, error)
	DeleteByVenue(ctx context.Context, venueID uint) (int64, error)
	DeleteByArtist(ctx context.Context, artistID uint) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type showRepository struct {
	db *gorm.DB
}

func NewShowRepository(db *gorm.DB) ShowRepository {
	return &showRepository{db: db}
}

func (r *showRepository) WithTx(tx *gorm.DB) ShowRepository {
	return &showRepository{db: tx}
}

func (r *showRepository) Create(ctx context.Context, show *model.Show) error {
	logger.Debug("Creating show in database", map[string]interface{}{
		"artist_id":  show.ArtistID,
		"venue_id":   show.VenueID,
		"start_time": show.StartTime,
	})

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(show).Error; err != nil {
		logger.Error("Failed to create show in database", err, map[string]interface{}{
			"artist_id": show.ArtistID,
			"venue_id":  show.VenueID,
		})
		return err
	}

	logger.Debug("Show created in database", map[string]interface{}{
		"show_id": show.ID,
	})
	return nil
}

func (r *showRepository) FindAll(ctx context.Context) ([]model.Show, error) {
	var shows []model.Show
	if err := r.db.WithContext(ctx).
		Preload("Artist").
		Preload("Venue").
		Order("id ASC").
		Find(&shows).Error; err != nil {
		logger.Error("Failed to list shows", err)
		return nil, err
	}
	return shows, nil
}

func (r *showRepository) FindByVenue(ctx context.Context, venueID uint) ([]model.Show, error) {
	var shows []model.Show
	if err := r.db.WithContext(ctx).
		Preload("Artist").
		Where("venue_id = ?", venueID).
		Order("start_time ASC").
		Order("id ASC").
		Find(&shows).Error; err != nil {
		logger.Error("Failed to find shows by venue", err, map[string]interface{}{
			"venue_id": venueID,
		})
		return nil, err
	}
	return shows, nil
}

func (r *showRepository) FindByArtist(ctx context.Context, artistID uint) ([]model.Show, error) {
	var shows []model.Show
	if err := r.db.WithContext(ctx).
		Preload("Venue").
		Where("artist_id = ?", artistID).
		Order("start_time ASC").
		Order("id ASC").
		Find(&shows).Error; err != nil {
		logger.Error("Failed to find shows by artist", err, map[string]interface{}{
			"artist_id": artistID,
		})
		return nil, err
	}
	return shows, nil
}

func (r *showRepository) Search(ctx context.Context, term string) ([]model.Show, error) {
	logger.Debug("Searching shows", map[string]interface{}{
		"term": term,
	})

	pattern := likeArg(term)
	dialect := r.db.Dialector.Name()
	var shows []model.Show
	if err := r.db.WithContext(ctx).
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Where(nameLike(dialect, "venues.name")+" OR "+nameLike(dialect, "artists.name"), pattern, pattern).
		Preload("Artist").
		Preload("Venue").
		Order("shows.start_time ASC").
		Order("shows.id ASC").
		Find(&shows).Error; err != nil {
		logger.Error("Failed to search shows", err, map[string]interface{}{
			"term": term,
		})
		return nil, err
	}
	return shows, nil
}

func (r *showRepository) DeleteByVenue(ctx context.Context, venueID uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("venue_id = ?", venueID).Delete(&model.Show{})
	if result.Error != nil {
		logger.Error("Failed to delete shows by venue", result.Error, map[string]interface{}{
			"venue_id": venueID,
		})
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *showRepository) DeleteByArtist(ctx context.Context, artistID uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("artist_id = ?", artistID).Delete(&model.Show{})
	if result.Error != nil {
		logger.Error("Failed to delete shows by artist", result.Error, map[string]interface{}{
			"artist_id": artistID,
		})
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *showRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Show{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
