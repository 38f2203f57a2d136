package sources

import "time"

// Config holds the upstream endpoints used by a refresh.
type Config struct {
	// CountriesURL returns a JSON array of countries with their currencies.
	CountriesURL string `mapstructure:"countries_url" default:"https://restcountries.com/v2/all?fields=name,capital,region,population,flag,currencies"`
	// ExchangeURL returns a JSON object whose "rates" map is keyed by currency code.
	ExchangeURL string `mapstructure:"exchange_url" default:"https://open.er-api.com/v6/latest/USD"`
	// TimeoutSeconds bounds each fetch, connection and body read included.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}

// Timeout returns the per-fetch timeout, 10 seconds when unset.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
