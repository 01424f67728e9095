package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorMatchesSentinel(t *testing.T) {
	assert.ErrorIs(t, NewNotFoundError("worker w1 not found"), ErrNotFound)
	assert.ErrorIs(t, NewValidationError("bad piece"), ErrValidation)
	assert.ErrorIs(t, NewInvalidStateError("record is paid"), ErrInvalidState)

	cause := errors.New("connection reset")
	storageErr := NewStorageError("failed to save work record", cause)
	assert.ErrorIs(t, storageErr, ErrStorage)
	assert.ErrorIs(t, storageErr, cause)
	assert.Equal(t, "failed to save work record: connection reset", storageErr.Error())

	assert.NotErrorIs(t, NewNotFoundError("x"), ErrValidation)
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{fmt.Errorf("%w: piece must not be negative", ErrValidation), http.StatusBadRequest},
		{NewNotFoundError("missing"), http.StatusNotFound},
		{fmt.Errorf("wrap: %w", NewInvalidStateError("paid")), http.StatusConflict},
		{ErrDuplicate, http.StatusConflict},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{NewStorageError("db down", errors.New("eof")), http.StatusInternalServerError},
		{errors.New("unexpected"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusCode(tt.err), fmt.Sprint(tt.err))
	}
}
