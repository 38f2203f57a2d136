package integrity

import (
	"context"

	"country-catalog/core/storage"
	"country-catalog/feature/countries/store"
	"country-catalog/feature/countries/summary"
	"country-catalog/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	region string
	sink   summary.Sink
	logger *zap.Logger
	db     *gorm.DB
}

// NewService creates a new integrity service. client is nil when the local artifact driver is used.
func NewService(client storage.Client, cfg storage.Config, sink summary.Sink, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		client: client,
		bucket: cfg.Bucket,
		region: cfg.Region,
		sink:   sink,
		logger: logger,
		db:     db,
	}
}

// CheckSchema compares the catalog tables with the models.
func (s *Service) CheckSchema(ctx context.Context) (*checks.SchemaReport, error) {
	return checks.CheckSchema(ctx, s.db)
}

// FixSchema migrates the catalog tables and seeds the metadata row.
func (s *Service) FixSchema(ctx context.Context) error {
	return store.Migrate(ctx, s.db)
}

// CheckStorage inspects the summary image backend.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	return checks.CheckStorage(ctx, s.client, s.bucket, s.sink)
}

// FixStorage creates the missing bucket.
func (s *Service) FixStorage(ctx context.Context) error {
	return checks.FixStorage(ctx, s.client, s.bucket, s.region, s.logger)
}
