package countries

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	apperrors "country-catalog/core/errors"
	"country-catalog/core/logger"
	"country-catalog/feature/countries/models"
	"country-catalog/feature/countries/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RefreshResponse is returned by a successful refresh.
type RefreshResponse struct {
	Message        string `json:"message"`
	TotalProcessed int    `json:"total_processed"`
}

// StatusResponse is returned by the status endpoint.
type StatusResponse struct {
	TotalCountries  int        `json:"total_countries"`
	LastRefreshedAt *time.Time `json:"last_refreshed_at"`
}

// Handler handles HTTP requests for countries.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the country routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/countries")
	group.Post("/refresh", h.HandleRefresh)
	// Registered before /:name so "image" is not taken for a country name.
	group.Get("/image", h.HandleImage)
	group.Get("/", h.HandleList)
	group.Get("/:name", h.HandleGet)
	group.Delete("/:name", h.HandleDelete)

	app.Get("/status", h.HandleStatus)
}

// HandleRefresh fetches upstream data and refreshes the catalog.
// @Summary Refresh Countries
// @Description Fetches countries and exchange rates, upserts every country, updates metadata and regenerates the summary image.
// @Tags countries
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} RefreshResponse "Refresh Result"
// @Failure 503 {object} map[string]string "External data source unavailable"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /countries/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Refresh requested")

	result, err := h.service.Refresh(c.Context(), reconcile.Options{})
	if err != nil {
		l.Error("Refresh failed", zap.Error(err))
		return h.writeError(c, err)
	}

	return c.JSON(RefreshResponse{
		Message:        "Countries refreshed successfully",
		TotalProcessed: result.Processed,
	})
}

// HandleList lists countries.
// @Summary List Countries
// @Description Lists cataloged countries with optional exact-match filters and sorting.
// @Tags countries
// @Security ApiKeyAuth
// @Produce json
// @Param region query string false "Region filter (e.g. 'Africa')"
// @Param currency query string false "Currency code filter (e.g. 'NGN')"
// @Param sort query string false "Sort order" Enums(gdp_desc, gdp_asc, name_asc, name_desc)
// @Success 200 {array} models.Country "Countries"
// @Failure 400 {object} map[string]string "Invalid sort"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /countries [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	sort, err := models.ParseSort(c.Query("sort"))
	if err != nil {
		return h.writeError(c, err)
	}

	filter := models.Filter{
		Region:   c.Query("region"),
		Currency: c.Query("currency"),
	}

	countries, err := h.service.List(c.Context(), filter, sort)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("List countries failed", zap.Error(err))
		return h.writeError(c, err)
	}

	return c.JSON(countries)
}

// HandleGet returns one country.
// @Summary Get Country
// @Description Returns a country by case-insensitive name.
// @Tags countries
// @Security ApiKeyAuth
// @Produce json
// @Param name path string true "Country name (e.g. 'Nigeria')"
// @Success 200 {object} models.Country "Country"
// @Failure 404 {object} map[string]string "Country not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /countries/{name} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	country, err := h.service.Get(c.Context(), nameParam(c))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(country)
}

// HandleDelete removes one country.
// @Summary Delete Country
// @Description Deletes a country by case-insensitive name. Refresh metadata is not changed.
// @Tags countries
// @Security ApiKeyAuth
// @Produce json
// @Param name path string true "Country name"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 404 {object} map[string]string "Country not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /countries/{name} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	name := nameParam(c)
	if err := h.service.Delete(c.Context(), name); err != nil {
		return h.writeError(c, err)
	}

	logger.WithRayID(h.service.logger, c).Info("Country deleted", zap.String("name", name))
	return c.JSON(fiber.Map{"message": "Country deleted successfully"})
}

// HandleImage serves the summary image.
// @Summary Get Summary Image
// @Description Returns the PNG summary generated by the last successful refresh.
// @Tags countries
// @Security ApiKeyAuth
// @Produce png
// @Success 200 {file} file "Summary image"
// @Failure 404 {object} map[string]string "Summary image not found"
// @Router /countries/image [get]
func (h *Handler) HandleImage(c *fiber.Ctx) error {
	artifact, err := h.service.SummaryImage(c.Context())
	if err != nil {
		return h.writeError(c, err)
	}

	c.Set(fiber.HeaderContentType, artifact.ContentType)
	if !artifact.ModTime.IsZero() {
		c.Set(fiber.HeaderLastModified, artifact.ModTime.UTC().Format(http.TimeFormat))
	}
	return c.Send(artifact.Data)
}

// HandleStatus returns refresh metadata.
// @Summary Get Status
// @Description Returns the number of countries processed by the last refresh and its timestamp.
// @Tags countries
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} StatusResponse "Status"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	meta, err := h.service.Status(c.Context())
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(StatusResponse{
		TotalCountries:  meta.TotalCountries,
		LastRefreshedAt: meta.LastRefreshedAt,
	})
}

// nameParam returns the decoded :name segment ("United%20States" -> "United States").
func nameParam(c *fiber.Ctx) string {
	raw := c.Params("name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}

// writeError maps classified errors to status codes and bodies.
func (h *Handler) writeError(c *fiber.Ctx, err error) error {
	var sourceErr *apperrors.SourceUnavailableError
	var validationErr *apperrors.ValidationError

	switch {
	case errors.As(err, &sourceErr):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error":   "External data source unavailable",
			"details": sourceErr.Message,
		})
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": validationErr.Error(),
		})
	case errors.Is(err, apperrors.ErrNotFound):
		var notFound *apperrors.NotFoundError
		if errors.As(err, &notFound) && notFound.Resource == "summary image" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Summary image not found"})
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Country not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}
