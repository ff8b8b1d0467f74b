package repository

import (
	"context"
	"errors"

	"github.com/ikkim/fyyur/internal/app/model"
	"github.com/ikkim/fyyur/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArtistRepository interface {
	WithTx(tx *gorm.DB) ArtistRepository
	Create(ctx context.Context, artist *model.Artist) error
	Update(ctx context.Context, artist *model.Artist) error
	Delete(ctx context.Context, id uint) (int64, error)
	FindByID(ctx context.Context, id uint) (*model.Artist, error)
	FindAll(ctx context.Context) ([]model.Artist, error)
	SearchByName(ctx context.Context, term string) ([]model.Artist, error)
	Recent(ctx context.Context, limit int) ([]model.Artist, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type artistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) ArtistRepository {
	return &artistRepository{db: db}
}

func (r *artistRepository) WithTx(tx *gorm.DB) ArtistRepository {
	return &artistRepository{db: tx}
}

func (r *artistRepository) Create(ctx context.Context, artist *model.Artist) error {
	logger.Debug("Creating artist in database", map[string]interface{}{
		"name": artist.Name,
	})

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(artist).Error; err != nil {
		logger.Error("Failed to create artist in database", err, map[string]interface{}{
			"name": artist.Name,
		})
		return err
	}

	logger.Debug("Artist created in database", map[string]interface{}{
		"artist_id": artist.ID,
		"name":      artist.Name,
	})
	return nil
}

func (r *artistRepository) Update(ctx context.Context, artist *model.Artist) error {
	logger.Debug("Updating artist in database", map[string]interface{}{
		"artist_id": artist.ID,
		"name":      artist.Name,
	})

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(artist).Error; err != nil {
		logger.Error("Failed to update artist in database", err, map[string]interface{}{
			"artist_id": artist.ID,
		})
		return err
	}
	return nil
}

func (r *artistRepository) Delete(ctx context.Context, id uint) (int64, error) {
	logger.Debug("Deleting artist from database", map[string]interface{}{
		"artist_id": id,
	})

	result := r.db.WithContext(ctx).Delete(&model.Artist{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete artist from database", result.Error, map[string]interface{}{
			"artist_id": id,
		})
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *artistRepository) FindByID(ctx context.Context, id uint) (*model.Artist, error) {
	var artist model.Artist
	if err := r.db.WithContext(ctx).First(&artist, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("Failed to find artist by ID", err, map[string]interface{}{
				"artist_id": id,
			})
		}
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) FindAll(ctx context.Context) ([]model.Artist, error) {
	var artists []model.Artist
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&artists).Error; err != nil {
		logger.Error("Failed to list artists", err)
		return nil, err
	}
	return artists, nil
}

func (r *artistRepository) SearchByName(ctx context.Context, term string) ([]model.Artist, error) {
	logger.Debug("Searching artists", map[string]interface{}{
		"term": term,
	})

	var artists []model.Artist
	if err := r.db.WithContext(ctx).
		Where(nameLike(r.db.Dialector.Name(), "name"), likeArg(term)).
		Order("id ASC").
		Find(&artists).Error; err != nil {
		logger.Error("Failed to search artists", err, map[string]interface{}{
			"term": term,
		})
		return nil, err
	}
	return artists, nil
}

func (r *artistRepository) Recent(ctx context.Context, limit int) ([]model.Artist, error) {
	var artists []model.Artist
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&artists).Error; err != nil {
		logger.Error("Failed to list recent artists", err)
		return nil, err
	}
	return artists, nil
}

func (r *artistRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Artist{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *artistRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Artist{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
