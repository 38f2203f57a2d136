package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	apperrors "country-catalog/core/errors"
	"country-catalog/feature/countries/models"

	"go.uber.org/zap"
)

const (
	// SourceCountries identifies the countries upstream in errors and logs.
	SourceCountries = "countries"
	// SourceExchangeRates identifies the exchange rates upstream in errors and logs.
	SourceExchangeRates = "exchange_rates"

	countriesMessage = "Could not fetch data from REST Countries API"
	ratesMessage     = "Could not fetch data from Exchange Rate API"
)

// ratesResponse is the envelope returned by the exchange rates upstream.
type ratesResponse struct {
	Result string             `json:"result"`
	Rates  map[string]float64 `json:"rates"`
}

// Client fetches raw countries and exchange rates over HTTP.
// Every failure is reported as a SourceUnavailableError. There is no retry.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new source client.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		logger:     logger,
	}
}

// FetchCountries downloads the raw country list.
func (c *Client) FetchCountries(ctx context.Context) ([]models.RawCountry, error) {
	var countries []models.RawCountry
	if err := c.getJSON(ctx, c.cfg.CountriesURL, &countries); err != nil {
		c.logger.Warn("Countries fetch failed", zap.String("url", c.cfg.CountriesURL), zap.Error(err))
		return nil, apperrors.NewSourceUnavailableError(SourceCountries, countriesMessage, err)
	}

	c.logger.Debug("Fetched countries", zap.Int("count", len(countries)))
	return countries, nil
}

// FetchRates downloads the exchange rate table. Non-positive rates are dropped.
func (c *Client) FetchRates(ctx context.Context) (models.ExchangeRates, error) {
	var payload ratesResponse
	err := c.getJSON(ctx, c.cfg.ExchangeURL, &payload)
	if err == nil && payload.Result != "" && payload.Result != "success" {
		err = fmt.Errorf("upstream reported result %q", payload.Result)
	}
	if err == nil && payload.Rates == nil {
		err = errors.New("response has no rates")
	}
	if err != nil {
		c.logger.Warn("Exchange rates fetch failed", zap.String("url", c.cfg.ExchangeURL), zap.Error(err))
		return nil, apperrors.NewSourceUnavailableError(SourceExchangeRates, ratesMessage, err)
	}

	rates := make(models.ExchangeRates, len(payload.Rates))
	for code, rate := range payload.Rates {
		if rate > 0 {
			rates[code] = rate
		}
	}

	c.logger.Debug("Fetched exchange rates", zap.Int("count", len(rates)))
	return rates, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
