package sources

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "country-catalog/core/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const countriesJSON = `[
  {"name":"Nigeria","capital":"Abuja","region":"Africa","population":206139589,"flag":"https://flagcdn.com/ng.svg","currencies":[{"code":"NGN","name":"Nigerian naira","symbol":"₦"}]},
  {"name":"Antarctica","region":"Polar","population":1000,"flag":"https://flagcdn.com/aq.svg"}
]`

const ratesJSON = `{"result":"success","base_code":"USD","rates":{"USD":1,"NGN":1600.25,"ZZZ":0,"NEG":-2}}`

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchCountries(t *testing.T) {
	srv := newServer(t, http.StatusOK, countriesJSON)
	client := NewClient(Config{CountriesURL: srv.URL}, zap.NewNop())

	countries, err := client.FetchCountries(context.Background())
	require.NoError(t, err)
	require.Len(t, countries, 2)

	assert.Equal(t, "Nigeria", countries[0].Name)
	assert.Equal(t, "Abuja", countries[0].Capital)
	assert.Equal(t, int64(206139589), countries[0].Population)
	code, ok := countries[0].CurrencyCode()
	assert.True(t, ok)
	assert.Equal(t, "NGN", code)

	assert.Empty(t, countries[1].Capital)
	_, ok = countries[1].CurrencyCode()
	assert.False(t, ok)
}

func TestFetchRates(t *testing.T) {
	srv := newServer(t, http.StatusOK, ratesJSON)
	client := NewClient(Config{ExchangeURL: srv.URL}, zap.NewNop())

	rates, err := client.FetchRates(context.Background())
	require.NoError(t, err)
	assert.Len(t, rates, 2)
	assert.Equal(t, 1600.25, rates["NGN"])
	assert.NotContains(t, rates, "ZZZ")
	assert.NotContains(t, rates, "NEG")
}

func TestFetch_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`},
		{"not found", http.StatusNotFound, ``},
		{"invalid json", http.StatusOK, `<html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, tt.status, tt.body)
			client := NewClient(Config{CountriesURL: srv.URL, ExchangeURL: srv.URL}, zap.NewNop())

			_, err := client.FetchCountries(context.Background())
			require.Error(t, err)
			var sourceErr *apperrors.SourceUnavailableError
			require.True(t, errors.As(err, &sourceErr))
			assert.Equal(t, SourceCountries, sourceErr.Source)
			assert.Equal(t, "Could not fetch data from REST Countries API", sourceErr.Message)

			_, err = client.FetchRates(context.Background())
			require.Error(t, err)
			require.True(t, errors.As(err, &sourceErr))
			assert.Equal(t, SourceExchangeRates, sourceErr.Source)
			assert.Equal(t, "Could not fetch data from Exchange Rate API", sourceErr.Message)
			assert.True(t, errors.Is(err, apperrors.ErrSourceUnavailable))
		})
	}
}

func TestFetchRates_UpstreamError(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{"result":"error","error-type":"unsupported-code"}`)
	client := NewClient(Config{ExchangeURL: srv.URL}, zap.NewNop())

	_, err := client.FetchRates(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrSourceUnavailable))
	assert.Contains(t, err.Error(), "unsupported-code")
}

func TestFetchRates_MissingRates(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{"result":"success"}`)
	client := NewClient(Config{ExchangeURL: srv.URL}, zap.NewNop())

	_, err := client.FetchRates(context.Background())
	assert.True(t, errors.Is(err, apperrors.ErrSourceUnavailable))
}

func TestFetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	client := NewClient(Config{CountriesURL: srv.URL, TimeoutSeconds: 1}, zap.NewNop())

	start := time.Now()
	_, err := client.FetchCountries(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrSourceUnavailable))
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestFetch_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(Config{CountriesURL: url}, zap.NewNop())
	_, err := client.FetchCountries(context.Background())
	assert.True(t, errors.Is(err, apperrors.ErrSourceUnavailable))
}

func TestConfig_Timeout(t *testing.T) {
	assert.Equal(t, 10*time.Second, Config{}.Timeout())
	assert.Equal(t, 3*time.Second, Config{TimeoutSeconds: 3}.Timeout())
}
