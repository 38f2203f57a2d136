package countries

import (
	"country-catalog/feature/countries/reconcile"
	"country-catalog/feature/countries/store"
	"country-catalog/feature/countries/summary"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Countries feature.
func NewFeature(engine *reconcile.Engine, catalog *store.Catalog, metadata *store.MetadataStore, sink summary.Sink, logger *zap.Logger) *Feature {
	svc := NewService(engine, catalog, metadata, sink, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "countries"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the feature service to the scheduler and CLI.
func (f *Feature) Service() *Service {
	return f.service
}
