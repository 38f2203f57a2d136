package errors_test

import (
	"errors"
	"fmt"
	"testing"

	apperrors "country-catalog/core/errors"

	"github.com/stretchr/testify/assert"
)

func TestSourceUnavailableError(t *testing.T) {
	cause := fmt.Errorf("dial tcp: timeout")
	err := apperrors.NewSourceUnavailableError("exchange_rates", "Could not fetch data from Exchange Rate API", cause)

	wrapped := fmt.Errorf("refresh: %w", err)
	assert.True(t, errors.Is(wrapped, apperrors.ErrSourceUnavailable))
	assert.False(t, errors.Is(wrapped, apperrors.ErrInternal))
	assert.ErrorIs(t, wrapped, cause)

	var sue *apperrors.SourceUnavailableError
	assert.True(t, errors.As(wrapped, &sue))
	assert.Equal(t, "exchange_rates", sue.Source)
	assert.Equal(t, "Could not fetch data from Exchange Rate API: dial tcp: timeout", err.Error())
}

func TestNotFoundError(t *testing.T) {
	err := apperrors.NewNotFoundError("country", "Atlantis")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, `country "Atlantis" not found`, err.Error())

	assert.Equal(t, "summary image not found", apperrors.NewNotFoundError("summary image", "").Error())
}

func TestInternalError(t *testing.T) {
	assert.Nil(t, apperrors.NewInternalError("update country", nil))

	cause := errors.New("connection reset")
	err := apperrors.NewInternalError("update country", cause)
	assert.ErrorIs(t, err, apperrors.ErrInternal)
	assert.ErrorIs(t, err, cause)
	assert.False(t, errors.Is(err, apperrors.ErrSourceUnavailable))
	assert.Equal(t, "update country: connection reset", err.Error())
}

func TestValidationError(t *testing.T) {
	err := apperrors.NewValidationError("sort", "gdp", "must be one of gdp_desc, gdp_asc, name_asc, name_desc")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Contains(t, err.Error(), "invalid sort gdp")
}
