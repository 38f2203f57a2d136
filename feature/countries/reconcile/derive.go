package reconcile

import (
	"math"

	"country-catalog/core/utils"
	"country-catalog/feature/countries/models"
)

// Multiplier bounds for the GDP estimate: m is drawn uniformly from [MinMultiplier, MaxMultiplier).
const (
	MinMultiplier = 1000.0
	MaxMultiplier = 2000.0
)

// Derive builds the catalog record for one raw country.
// r is a uniform sample in [0, 1) used to pick the GDP multiplier.
//
//   - no currency code: exchange_rate NULL, estimated_gdp exactly 0
//   - code without a known rate: exchange_rate NULL, estimated_gdp NULL
//   - code and rate: estimated_gdp = population * m / rate
func Derive(raw models.RawCountry, rates models.ExchangeRates, r float64) models.Country {
	country := models.Country{
		Name:       raw.Name,
		Capital:    utils.NilIfBlank(raw.Capital),
		Region:     utils.NilIfBlank(raw.Region),
		Population: raw.Population,
		FlagURL:    utils.NilIfBlank(raw.Flag),
	}

	code, ok := raw.CurrencyCode()
	if !ok {
		country.EstimatedGDP = utils.Ptr(0.0)
		return country
	}
	country.CurrencyCode = &code

	rate, ok := rates.Rate(code)
	if !ok {
		return country
	}
	country.ExchangeRate = &rate

	multiplier := MinMultiplier + r*(MaxMultiplier-MinMultiplier)
	upper := float64(raw.Population) * MaxMultiplier / rate
	gdp := centsBelow(float64(raw.Population)*multiplier/rate, upper)
	country.EstimatedGDP = &gdp
	return country
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// centsBelow rounds v to cents, truncating instead when rounding would reach the exclusive bound upper.
func centsBelow(v, upper float64) float64 {
	rounded := roundCents(v)
	if rounded < upper {
		return rounded
	}
	return math.Floor(v*100) / 100
}
