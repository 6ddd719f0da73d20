package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "client"}
		assert.Equal(t, "client not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "client"}
		err2 := &NotFoundError{Entity: "client"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrClientNotFound, ErrPlatformNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("lookup: %w", ErrStepNotFound)
		assert.True(t, errors.Is(wrapped, ErrStepNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrChecklistItemNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("x: %w", ErrClientNotFound)))
		assert.False(t, IsNotFound(ErrPlatformExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "platform already exists for this client", ErrPlatformExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "note"}
		assert.Equal(t, "note already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrPlatformExists))
		assert.False(t, IsAlreadyExists(ErrClientNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := NewValidationError("clientId", "is required")
		assert.Equal(t, "validation error: clientId - is required", err.Error())
		assert.True(t, IsValidation(err))
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "bad input"}
		assert.Equal(t, "validation error: bad input", err.Error())
	})
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("connection refused")

	t.Run("wraps and unwraps", func(t *testing.T) {
		err := NewPersistenceError("upsert step progress", cause)
		assert.Equal(t, "persistence error: upsert step progress: connection refused", err.Error())
		assert.True(t, errors.Is(err, cause))
		assert.True(t, IsPersistence(err))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, NewPersistenceError("noop", nil))
	})

	t.Run("does not double wrap", func(t *testing.T) {
		inner := NewPersistenceError("read clients", cause)
		outer := NewPersistenceError("list clients", inner)
		assert.Same(t, inner, outer)
	})
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", NewValidationError("f", "m"), http.StatusBadRequest},
		{"authentication", ErrMissingAuthorization, http.StatusUnauthorized},
		{"not found", ErrClientNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("get: %w", ErrStepProgressNotFound), http.StatusNotFound},
		{"already exists", ErrPlatformExists, http.StatusConflict},
		{"persistence", NewPersistenceError("read", errors.New("boom")), http.StatusInternalServerError},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, HTTPStatus(tc.err))
		})
	}
}
