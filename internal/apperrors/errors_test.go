package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("service layer: %w", NewConflictError("employee already exists"))

	assert.True(t, errors.Is(err, ErrConflict))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, http.StatusConflict, StatusCode(err))
	assert.Equal(t, "employee already exists", PublicMessage(err))
}

func TestStatusCodeForEveryKind(t *testing.T) {
	cases := map[int]error{
		http.StatusBadRequest:          NewValidationFailedError("bad"),
		http.StatusUnauthorized:        NewUnauthorizedError("who"),
		http.StatusForbidden:           NewForbiddenError("no"),
		http.StatusNotFound:            NewNotFoundError("gone"),
		http.StatusConflict:            NewConflictError("dup"),
		http.StatusInternalServerError: NewInternalError("boom", errors.New("db down")),
	}
	for want, err := range cases {
		assert.Equal(t, want, StatusCode(err), err.Error())
	}
}

func TestBareSentinelsResolveStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusCode(fmt.Errorf("lookup: %w", ErrNotFound)))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("plain")))
}

func TestPublicMessageHidesInternalDiagnostics(t *testing.T) {
	err := NewInternalError("failed to save company", errors.New("pq: connection refused"))

	assert.Equal(t, "internal server error", PublicMessage(err))
	assert.Contains(t, err.Error(), "connection refused")
	assert.True(t, errors.Is(err, ErrInternal))
}
