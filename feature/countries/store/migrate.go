package store

import (
	"context"
	"fmt"

	"country-catalog/core/database"
	"country-catalog/feature/countries/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const caseInsensitiveNameIndex = "CREATE UNIQUE INDEX IF NOT EXISTS idx_countries_name_lower ON countries (LOWER(name))"

// Migrate creates the catalog tables and seeds the metadata row.
// Running it again is harmless: existing rows are left untouched.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)
	if err := db.AutoMigrate(&models.Country{}, &models.Metadata{}); err != nil {
		return fmt.Errorf("failed to migrate catalog tables: %w", err)
	}

	// MySQL's default collation already makes idx_countries_name case-insensitive.
	switch db.Dialector.Name() {
	case database.DriverSQLite, database.DriverPostgres:
		if err := db.Exec(caseInsensitiveNameIndex).Error; err != nil {
			return fmt.Errorf("failed to create case-insensitive name index: %w", err)
		}
	}

	seed := models.Metadata{ID: models.MetadataID, TotalCountries: 0}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return fmt.Errorf("failed to seed metadata: %w", err)
	}
	return nil
}
