package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorError(t *testing.T) {
	err := NewAppError(CodeBadRequest, "Bad input", "")
	assert.Equal(t, "BAD_REQUEST: Bad input", err.Error())

	withDetails := NewAppError(CodeBadRequest, "Bad input", "field missing")
	assert.Equal(t, "BAD_REQUEST: Bad input (field missing)", withDetails.Error())
}

func TestStatusCodes(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{CodeBadRequest, http.StatusBadRequest},
		{CodeValidationFailed, http.StatusBadRequest},
		{CodeNotFound, http.StatusNotFound},
		{CodeRecipeNotFound, http.StatusNotFound},
		{CodeTooManyRequests, http.StatusTooManyRequests},
		{CodeQuotaExceeded, http.StatusTooManyRequests},
		{CodeServiceUnavailable, http.StatusServiceUnavailable},
		{CodeInternal, http.StatusInternalServerError},
		{CodeExternalServiceError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, NewAppError(tt.code, "x", "").StatusCode())
		})
	}
}

func TestQuotaExceededError(t *testing.T) {
	err := NewQuotaExceededError("gemini")

	assert.True(t, Is(err, CodeQuotaExceeded))
	assert.Equal(t, "gemini", err.Metadata["service"])
	assert.Contains(t, err.Error(), "gemini")
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "no-op"))

	cause := errors.New("disk full")
	wrapped := Wrap(cause, "failed to persist")
	require.NotNil(t, wrapped)
	assert.Equal(t, CodeInternal, wrapped.Code)
	assert.ErrorIs(t, wrapped, cause)

	// an AppError passes through untouched
	original := NewRecipeNotFoundError("sate-ayam")
	assert.Same(t, original, Wrap(original, "ignored"))
}

func TestIsAndGetCode(t *testing.T) {
	err := NewExternalServiceError("gemini", errors.New("timeout"))

	assert.True(t, Is(err, CodeExternalServiceError))
	assert.False(t, Is(err, CodeQuotaExceeded))
	assert.False(t, Is(errors.New("plain"), CodeInternal))

	assert.Equal(t, CodeExternalServiceError, GetCode(err))
	assert.Equal(t, CodeInternal, GetCode(errors.New("plain")))
}
