package reconcile

import (
	"context"
	"errors"
	"strings"

	apperrors "country-catalog/core/errors"
	"country-catalog/core/reconcile"
	"country-catalog/feature/countries/models"
)

// CountryAdapter implements the reconcile.Adapter interface for catalog countries.
type CountryAdapter struct {
	catalog CatalogStore
}

var _ reconcile.Adapter[models.Country] = (*CountryAdapter)(nil)

// NewAdapter creates a new country adapter.
func NewAdapter(catalog CatalogStore) *CountryAdapter {
	return &CountryAdapter{catalog: catalog}
}

// Name returns the adapter name.
func (a *CountryAdapter) Name() string {
	return "country"
}

// Key lowercases the name: catalog names are case-insensitive.
func (a *CountryAdapter) Key(country models.Country) string {
	return strings.ToLower(country.Name)
}

// Exists reports whether a country with this name is already cataloged.
func (a *CountryAdapter) Exists(ctx context.Context, key string) (bool, error) {
	_, err := a.catalog.FindByName(ctx, key)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return false, nil
	}
	return false, err
}

// Insert creates the country.
func (a *CountryAdapter) Insert(ctx context.Context, country models.Country) error {
	_, err := a.catalog.Create(ctx, &country)
	return err
}

// Update overwrites the cataloged country matching key.
func (a *CountryAdapter) Update(ctx context.Context, key string, country models.Country) error {
	return a.catalog.Update(ctx, key, &country)
}
