package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatchesSentinel(t *testing.T) {
	derived := ErrInsufficientStock.WithDetails("Only 2 left in stock")

	assert.ErrorIs(t, derived, ErrInsufficientStock)
	assert.Equal(t, http.StatusBadRequest, derived.HTTPCode())
	assert.Equal(t, "Only 2 left in stock", derived.Details())
	// The sentinel itself is untouched.
	assert.Empty(t, ErrInsufficientStock.Details())
}

func TestBaseError_WrappedStillMatchesSentinel(t *testing.T) {
	wrapped := errors.Wrap(ErrProductNotFound.WithDetails("Product not found: abc"), "failed to place order")

	assert.ErrorIs(t, wrapped, ErrProductNotFound)

	var appErr AppError
	assert.ErrorAs(t, wrapped, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

func TestBaseError_DistinctCodesDoNotMatch(t *testing.T) {
	assert.NotErrorIs(t, ErrUserNotFound, ErrProductNotFound)
	assert.NotErrorIs(t, ErrInvalidInput.WithDetails("x"), ErrValidationFailed)
}
