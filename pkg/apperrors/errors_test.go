package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	appErr := InternalError(cause)

	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode)
	assert.ErrorIs(t, appErr, cause)

	var extracted *AppError
	require.True(t, As(fmt.Errorf("handler: %w", appErr), &extracted))
	assert.Equal(t, CodeInternalError, extracted.Code)
}

func TestDomainErrorStatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusConflict, ErrEmailAlreadyExists.HTTPCode)
	assert.Equal(t, http.StatusUnauthorized, ErrInvalidCredentials.HTTPCode)
	assert.Equal(t, http.StatusForbidden, ErrGalleryLocked.HTTPCode)
	assert.Equal(t, http.StatusNotFound, ErrJobNotFound.HTTPCode)
	assert.Equal(t, http.StatusBadRequest, ErrUnknownIdentity.HTTPCode)
	assert.Equal(t, http.StatusForbidden, ErrNotJobOwner.HTTPCode)
}

func TestAppErrorJSONHidesInternals(t *testing.T) {
	appErr := Wrap(errors.New("pq: secret dsn detail"), CodeInternalError, "database", "Internal server error", http.StatusInternalServerError)

	raw, err := json.Marshal(appErr)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret dsn detail", "wrapped causes never reach the response body")
	assert.Contains(t, string(raw), "Internal server error")
}

func TestValidationErrorCarriesDetails(t *testing.T) {
	appErr := ValidationError(map[string]string{"email": "must be a valid email"})

	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)

	raw, err := json.Marshal(appErr)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "must be a valid email")
}
