package countries

import (
	"context"

	apperrors "country-catalog/core/errors"
	"country-catalog/feature/countries/models"
	"country-catalog/feature/countries/reconcile"
	"country-catalog/feature/countries/store"
	"country-catalog/feature/countries/summary"

	"go.uber.org/zap"
)

// Service handles catalog operations.
type Service struct {
	engine   *reconcile.Engine
	catalog  *store.Catalog
	metadata *store.MetadataStore
	sink     summary.Sink
	logger   *zap.Logger
}

// NewService creates a new countries service.
func NewService(engine *reconcile.Engine, catalog *store.Catalog, metadata *store.MetadataStore, sink summary.Sink, logger *zap.Logger) *Service {
	return &Service{
		engine:   engine,
		catalog:  catalog,
		metadata: metadata,
		sink:     sink,
		logger:   logger,
	}
}

// Refresh runs a refresh pass and, unless it is a dry run, regenerates the summary image.
func (s *Service) Refresh(ctx context.Context, opts reconcile.Options) (*reconcile.Result, error) {
	result, err := s.engine.Refresh(ctx, opts)
	if err != nil {
		return nil, err
	}
	if opts.DryRun {
		return result, nil
	}

	top, err := s.catalog.TopByGDP(ctx, summary.TopN)
	if err != nil {
		return nil, err
	}

	rec := summary.Build(result.Processed, top, result.RefreshedAt)
	if err := s.sink.Store(ctx, rec); err != nil {
		s.logger.Error("Failed to store summary image", zap.Error(err))
		return nil, apperrors.NewInternalError("store summary image", err)
	}

	return result, nil
}

// List returns the countries matching filter in the requested order.
func (s *Service) List(ctx context.Context, filter models.Filter, sort models.Sort) ([]models.Country, error) {
	return s.catalog.FindAll(ctx, filter, sort)
}

// Get returns one country by case-insensitive name.
func (s *Service) Get(ctx context.Context, name string) (*models.Country, error) {
	return s.catalog.FindByName(ctx, name)
}

// Delete removes one country. Metadata is not affected.
func (s *Service) Delete(ctx context.Context, name string) error {
	removed, err := s.catalog.Delete(ctx, name)
	if err != nil {
		return err
	}
	if !removed {
		return apperrors.NewNotFoundError("country", name)
	}
	return nil
}

// Status returns the metadata of the last refresh.
func (s *Service) Status(ctx context.Context) (*models.Metadata, error) {
	return s.metadata.GetMetadata(ctx)
}

// SummaryImage returns the last rendered summary image.
func (s *Service) SummaryImage(ctx context.Context) (*summary.Artifact, error) {
	return s.sink.Open(ctx)
}
