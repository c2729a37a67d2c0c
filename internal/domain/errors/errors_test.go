package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrSelectedAddressNotFound.WithDetails("id=42")

	assert.True(t, stderrors.Is(err, ErrSelectedAddressNotFound))
	assert.False(t, stderrors.Is(err, ErrNoAddressSelected))
	assert.Equal(t, "id=42", err.Details())
	assert.Equal(t, http.StatusNotFound, err.HTTPCode())
}

func TestLookupError(t *testing.T) {
	t.Run("keeps upstream message", func(t *testing.T) {
		err := NewLookupError("Postcode not found", http.StatusNotFound, nil)

		assert.Equal(t, "Postcode not found", err.Message())
		assert.Equal(t, "Postcode not found", err.Error())
		assert.Equal(t, http.StatusBadGateway, err.HTTPCode())
		assert.Equal(t, "Not Found", err.Details())
	})

	t.Run("falls back to default message", func(t *testing.T) {
		err := NewLookupError("", http.StatusInternalServerError, nil)

		assert.Equal(t, DefaultLookupMessage, err.Message())
	})

	t.Run("unwraps transport cause", func(t *testing.T) {
		cause := stderrors.New("connection refused")
		err := NewLookupError(cause.Error(), 0, cause)

		assert.ErrorIs(t, err, cause)
		assert.Empty(t, err.Details())
		assert.Equal(t, 0, err.StatusCode())
	})
}

func TestIsUserFacing(t *testing.T) {
	assert.True(t, IsUserFacing(ErrPostcodeTooShort))
	assert.True(t, IsUserFacing(NewLookupError("boom", http.StatusBadGateway, nil)))
	assert.False(t, IsUserFacing(ErrInternalError))
	assert.False(t, IsUserFacing(stderrors.New("plain")))
}
