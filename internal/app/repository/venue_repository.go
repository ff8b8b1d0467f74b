package repository

import (
	"context"
	"errors"

	"github.com/ikkim/fyyur/internal/app/model"
	"github.com/ikkim/fyyur/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VenueRepository interface {
	// WithTx returns a repository bound to tx.
	WithTx(tx *gorm.DB) VenueRepository
	Create(ctx context.Context, venue *model.Venue) error
	Update(ctx context.Context, venue *model.Venue) error
	Delete(ctx context.Context, id uint) (int64, error)
	FindByID(ctx context.Context, id uint) (*model.Venue, error)
	FindAll(ctx context.Context) ([]model.Venue, error)
	SearchByName(ctx context.Context, term string) ([]model.Venue, error)
	Recent(ctx context.Context, limit int) ([]model.Venue, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) WithTx(tx *gorm.DB) VenueRepository {
	return &venueRepository{db: tx}
}

func (r *venueRepository) Create(ctx context.Context, venue *model.Venue) error {
	logger.Debug("Creating venue in database", map[string]interface{}{
		"name": venue.Name,
		"city": venue.City,
	})

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(venue).Error; err != nil {
		logger.Error("Failed to create venue in database", err, map[string]interface{}{
			"name": venue.Name,
		})
		return err
	}

	logger.Debug("Venue created in database", map[string]interface{}{
		"venue_id": venue.ID,
		"name":     venue.Name,
	})
	return nil
}

// Update overwrites every column of the venue row, zero values included.
func (r *venueRepository) Update(ctx context.Context, venue *model.Venue) error {
	logger.Debug("Updating venue in database", map[string]interface{}{
		"venue_id": venue.ID,
		"name":     venue.Name,
	})

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(venue).Error; err != nil {
		logger.Error("Failed to update venue in database", err, map[string]interface{}{
			"venue_id": venue.ID,
		})
		return err
	}
	return nil
}

// Delete removes the venue row and reports how many rows went away. Shows
// must be removed first when foreign keys are enforced.
func (r *venueRepository) Delete(ctx context.Context, id uint) (int64, error) {
	logger.Debug("Deleting venue from database", map[string]interface{}{
		"venue_id": id,
	})

	result := r.db.WithContext(ctx).Delete(&model.Venue{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete venue from database", result.Error, map[string]interface{}{
			"venue_id": id,
		})
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *venueRepository) FindByID(ctx context.Context, id uint) (*model.Venue, error) {
	var venue model.Venue
	if err := r.db.WithContext(ctx).First(&venue, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("Failed to find venue by ID", err, map[string]interface{}{
				"venue_id": id,
			})
		}
		return nil, err
	}
	return &venue, nil
}

// FindAll lists venues ordered for area grouping: state, city, then name.
func (r *venueRepository) FindAll(ctx context.Context) ([]model.Venue, error) {
	var venues []model.Venue
	if err := r.db.WithContext(ctx).
		Order("state ASC").
		Order("city ASC").
		Order("name ASC").
		Find(&venues).Error; err != nil {
		logger.Error("Failed to list venues", err)
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) SearchByName(ctx context.Context, term string) ([]model.Venue, error) {
	logger.Debug("Searching venues", map[string]interface{}{
		"term": term,
	})

	var venues []model.Venue
	if err := r.db.WithContext(ctx).
		Where(nameLike(r.db.Dialector.Name(), "name"), likeArg(term)).
		Order("id ASC").
		Find(&venues).Error; err != nil {
		logger.Error("Failed to search venues", err, map[string]interface{}{
			"term": term,
		})
		return nil, err
	}
	return venues, nil
}

// Recent returns the most recently listed venues first.
func (r *venueRepository) Recent(ctx context.Context, limit int) ([]model.Venue, error) {
	var venues []model.Venue
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&venues).Error; err != nil {
		logger.Error("Failed to list recent venues", err)
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Venue{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *venueRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Venue{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
