package reconcile

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	apperrors "country-catalog/core/errors"
	"country-catalog/core/reconcile"
	"country-catalog/feature/countries/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Fetcher reads the two upstream datasets.
type Fetcher interface {
	FetchCountries(ctx context.Context) ([]models.RawCountry, error)
	FetchRates(ctx context.Context) (models.ExchangeRates, error)
}

// CatalogStore is the subset of the catalog used by a refresh.
type CatalogStore interface {
	FindByName(ctx context.Context, name string) (*models.Country, error)
	Create(ctx context.Context, country *models.Country) (uint, error)
	Update(ctx context.Context, name string, country *models.Country) error
}

// MetadataWriter records the outcome of a refresh.
type MetadataWriter interface {
	UpdateMetadata(ctx context.Context, total int, at time.Time) error
}

// Options controls a refresh pass.
type Options struct {
	// DryRun fetches, derives and looks up, but writes nothing.
	DryRun bool
}

// Result summarizes a refresh pass.
type Result struct {
	reconcile.Result `yaml:",inline"`

	// RefreshedAt is the timestamp written to the metadata row.
	RefreshedAt time.Time `json:"refreshed_at" yaml:"refreshed_at"`
}

// Engine runs refresh passes.
type Engine struct {
	fetcher  Fetcher
	catalog  CatalogStore
	metadata MetadataWriter
	logger   *zap.Logger
	random   func() float64
	now      func() time.Time
}

// NewEngine creates a refresh engine.
func NewEngine(fetcher Fetcher, catalog CatalogStore, metadata MetadataWriter, logger *zap.Logger) *Engine {
	return &Engine{
		fetcher:  fetcher,
		catalog:  catalog,
		metadata: metadata,
		logger:   logger,
		random:   rand.Float64,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithRandom replaces the source of GDP multiplier samples. random must return values in [0, 1).
func (e *Engine) WithRandom(random func() float64) *Engine {
	c := *e
	c.random = random
	return &c
}

// WithClock replaces the clock used for the metadata timestamp.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	c := *e
	c.now = now
	return &c
}

// Refresh fetches both sources, upserts every country and records metadata.
//
// A source failure aborts before any write and is returned as a
// SourceUnavailableError. A storage fault stops the pass with an InternalError;
// upserts committed before it are kept and metadata is not touched.
func (e *Engine) Refresh(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	e.logger.Info("Starting refresh", zap.Bool("dry_run", opts.DryRun))

	raw, rates, err := e.fetch(ctx)
	if err != nil {
		e.logger.Error("Refresh aborted, source unavailable", zap.Error(err))
		return nil, err
	}

	countries := make([]models.Country, 0, len(raw))
	for _, rc := range raw {
		country := Derive(rc, rates, e.random())
		e.logger.Debug("Derived country",
			zap.String("name", country.Name),
			zap.Stringp("currency_code", country.CurrencyCode),
			zap.Float64p("estimated_gdp", country.EstimatedGDP),
		)
		countries = append(countries, country)
	}

	synced, err := reconcile.Sync(ctx, NewAdapter(e.catalog), countries, reconcile.Options{DryRun: opts.DryRun})
	if err != nil {
		if !errors.Is(err, apperrors.ErrInternal) {
			err = apperrors.NewInternalError("refresh catalog", err)
		}
		e.logger.Error("Refresh failed", zap.Int("processed", synced.Processed), zap.Error(err))
		return nil, err
	}

	result := &Result{Result: *synced, RefreshedAt: e.now()}

	if !opts.DryRun {
		if err := e.metadata.UpdateMetadata(ctx, result.Processed, result.RefreshedAt); err != nil {
			e.logger.Error("Failed to update metadata", zap.Error(err))
			return nil, err
		}
	}

	e.logger.Info("Refresh completed",
		zap.Int("processed", result.Processed),
		zap.Int("inserted", result.Inserted),
		zap.Int("updated", result.Updated),
		zap.Bool("dry_run", opts.DryRun),
		zap.Duration("duration", time.Since(start)),
	)
	return result, nil
}

// fetch runs both upstream requests concurrently; both must succeed.
func (e *Engine) fetch(ctx context.Context) ([]models.RawCountry, models.ExchangeRates, error) {
	var (
		raw   []models.RawCountry
		rates models.ExchangeRates
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		raw, err = e.fetcher.FetchCountries(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		rates, err = e.fetcher.FetchRates(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return raw, rates, nil
}
