package store

import (
	"context"
	"errors"
	"time"

	apperrors "country-catalog/core/errors"
	"country-catalog/feature/countries/models"

	"gorm.io/gorm"
)

// nameMatch compares names case-insensitively on every supported driver.
const nameMatch = "LOWER(name) = LOWER(?)"

// Catalog is the gorm-backed country catalog.
type Catalog struct {
	db  *gorm.DB
	now func() time.Time
}

// NewCatalog creates a catalog store on top of db.
func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db, now: utcNow}
}

// WithClock returns a copy of the store that stamps writes with now.
func (s *Catalog) WithClock(now func() time.Time) *Catalog {
	return &Catalog{db: s.db, now: now}
}

// FindByName returns the country whose name matches case-insensitively.
func (s *Catalog) FindByName(ctx context.Context, name string) (*models.Country, error) {
	var country models.Country
	err := s.db.WithContext(ctx).Where(nameMatch, name).First(&country).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("country", name)
		}
		return nil, apperrors.NewInternalError("find country", err)
	}
	return &country, nil
}

// FindAll lists countries matching filter, ordered by sort.
func (s *Catalog) FindAll(ctx context.Context, filter models.Filter, sort models.Sort) ([]models.Country, error) {
	query := s.db.WithContext(ctx).Model(&models.Country{})
	if filter.Region != "" {
		query = query.Where("region = ?", filter.Region)
	}
	if filter.Currency != "" {
		query = query.Where("currency_code = ?", filter.Currency)
	}
	if order := sort.OrderClause(); order != "" {
		query = query.Order(order)
	}

	countries := make([]models.Country, 0)
	if err := query.Find(&countries).Error; err != nil {
		return nil, apperrors.NewInternalError("list countries", err)
	}
	return countries, nil
}

// Create inserts a new country and returns its id.
func (s *Catalog) Create(ctx context.Context, country *models.Country) (uint, error) {
	country.ID = 0
	country.LastRefreshedAt = s.now()
	if err := s.db.WithContext(ctx).Create(country).Error; err != nil {
		return 0, apperrors.NewInternalError("create country", err)
	}
	return country.ID, nil
}

// Update overwrites every column except name on the country matching name.
func (s *Catalog) Update(ctx context.Context, name string, country *models.Country) error {
	now := s.now()
	err := s.db.WithContext(ctx).
		Model(&models.Country{}).
		Where(nameMatch, name).
		Updates(map[string]any{
			"capital":           country.Capital,
			"region":            country.Region,
			"population":        country.Population,
			"currency_code":     country.CurrencyCode,
			"exchange_rate":     country.ExchangeRate,
			"estimated_gdp":     country.EstimatedGDP,
			"flag_url":          country.FlagURL,
			"last_refreshed_at": now,
		}).Error
	if err != nil {
		return apperrors.NewInternalError("update country", err)
	}
	country.LastRefreshedAt = now
	return nil
}

// Delete removes the country matching name. It reports whether a row was removed.
func (s *Catalog) Delete(ctx context.Context, name string) (bool, error) {
	result := s.db.WithContext(ctx).Where(nameMatch, name).Delete(&models.Country{})
	if result.Error != nil {
		return false, apperrors.NewInternalError("delete country", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// TopByGDP returns up to limit countries with a known GDP, highest first.
func (s *Catalog) TopByGDP(ctx context.Context, limit int) ([]models.Country, error) {
	countries := make([]models.Country, 0, max(limit, 0))
	if limit <= 0 {
		return countries, nil
	}

	err := s.db.WithContext(ctx).
		Where("estimated_gdp IS NOT NULL").
		Order("estimated_gdp DESC").
		Limit(limit).
		Find(&countries).Error
	if err != nil {
		return nil, apperrors.NewInternalError("top countries by gdp", err)
	}
	return countries, nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
