package models

// Currency is a currency descriptor as published by the countries source.
type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// RawCountry is a country record as fetched from the countries source.
// Empty strings mean the upstream omitted the value.
type RawCountry struct {
	Name       string     `json:"name"`
	Capital    string     `json:"capital"`
	Region     string     `json:"region"`
	Population int64      `json:"population"`
	Flag       string     `json:"flag"`
	Currencies []Currency `json:"currencies"`
}

// CurrencyCode returns the code of the first currency descriptor.
// Only the first descriptor is considered; an empty code counts as none.
func (r RawCountry) CurrencyCode() (string, bool) {
	if len(r.Currencies) == 0 || r.Currencies[0].Code == "" {
		return "", false
	}
	return r.Currencies[0].Code, true
}

// ExchangeRates maps a currency code to its rate against the base currency.
type ExchangeRates map[string]float64

// Rate returns the rate for code. Missing and non-positive rates are absent.
func (r ExchangeRates) Rate(code string) (float64, bool) {
	rate, ok := r[code]
	if !ok || rate <= 0 {
		return 0, false
	}
	return rate, true
}
