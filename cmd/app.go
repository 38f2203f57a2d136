package cmd

import (
	"context"
	"fmt"
	"time"

	"country-catalog/core/config"
	"country-catalog/core/database"
	"country-catalog/core/logger"
	"country-catalog/core/storage"
	"country-catalog/feature/countries"
	"country-catalog/feature/countries/reconcile"
	"country-catalog/feature/countries/sources"
	"country-catalog/feature/countries/store"
	"country-catalog/feature/countries/summary"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app bundles everything a command needs after bootstrap.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	db       *gorm.DB
	client   storage.Client
	sink     summary.Sink
	catalog  *store.Catalog
	metadata *store.MetadataStore
	engine   *reconcile.Engine

	bucket *summary.StorageSink
}

// bootstrap loads configuration, connects to the catalog database and builds the
// summary sink. The storage client stays nil for the local driver.
func bootstrap() (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	a := &app{cfg: cfg, logger: l, db: db}

	var sink summary.Sink
	if cfg.Storage.IsS3() {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		a.client = client
		a.bucket = summary.NewStorageSink(client, cfg.Storage.Bucket)
		sink = a.bucket
	} else {
		sink = summary.NewLocalSink(afero.NewOsFs(), cfg.Storage.LocalDir)
	}
	a.sink = summary.NewArtifactCache(sink, cfg.Storage.CacheTTL())

	a.catalog = store.NewCatalog(db)
	a.metadata = store.NewMetadataStore(db)
	a.engine = reconcile.NewEngine(sources.NewClient(cfg.Sources, l), a.catalog, a.metadata, l)
	return a, nil
}

// prepare migrates the schema and creates the summary bucket when the S3 driver is selected.
func (a *app) prepare(ctx context.Context) error {
	if err := a.migrate(ctx); err != nil {
		return err
	}
	if a.bucket != nil {
		if err := a.bucket.EnsureBucket(ctx, a.cfg.Storage.Region); err != nil {
			return fmt.Errorf("failed to prepare storage: %w", err)
		}
	}
	return nil
}

// migrate creates the catalog tables and seeds the metadata row.
func (a *app) migrate(ctx context.Context) error {
	started := time.Now()
	if err := store.Migrate(ctx, a.db); err != nil {
		return err
	}
	a.logger.Debug("Schema ready", zap.Duration("took", time.Since(started)))
	return nil
}

// countries builds the countries feature on top of the shared dependencies.
func (a *app) countries() *countries.Feature {
	return countries.NewFeature(a.engine, a.catalog, a.metadata, a.sink, a.logger)
}
