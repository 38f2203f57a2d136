package store

import (
	"context"
	"errors"
	"time"

	apperrors "country-catalog/core/errors"
	"country-catalog/feature/countries/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MetadataStore persists the singleton refresh metadata row.
type MetadataStore struct {
	db *gorm.DB
}

// NewMetadataStore creates a metadata store on top of db.
func NewMetadataStore(db *gorm.DB) *MetadataStore {
	return &MetadataStore{db: db}
}

// GetMetadata returns the metadata row. A missing row reads as zero countries, never refreshed.
func (s *MetadataStore) GetMetadata(ctx context.Context) (*models.Metadata, error) {
	var meta models.Metadata
	err := s.db.WithContext(ctx).First(&meta, models.MetadataID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.Metadata{ID: models.MetadataID}, nil
		}
		return nil, apperrors.NewInternalError("read metadata", err)
	}
	return &meta, nil
}

// UpdateMetadata records the outcome of a refresh pass.
// It upserts row 1 so the singleton is recreated if it was lost.
func (s *MetadataStore) UpdateMetadata(ctx context.Context, total int, at time.Time) error {
	at = at.UTC()
	meta := models.Metadata{
		ID:              models.MetadataID,
		TotalCountries:  total,
		LastRefreshedAt: &at,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"total_countries", "last_refreshed_at"}),
	}).Create(&meta).Error
	if err != nil {
		return apperrors.NewInternalError("update metadata", err)
	}
	return nil
}
