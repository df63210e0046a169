package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", New(ErrValidation, "Post content cannot be empty."), http.StatusBadRequest},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", New(ErrForbidden, "Invalid or expired token."), http.StatusForbidden},
		{"not found", New(ErrNotFound, "Post not found."), http.StatusNotFound},
		{"wrapped conflict", fmt.Errorf("save user: %w", New(ErrConflict, "taken")), http.StatusConflict},
		{"unknown", errors.New("connection refused"), http.StatusInternalServerError},
		{"nil kind chain", fmt.Errorf("plain %s", "text"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestError(t *testing.T) {
	err := New(ErrNotFound, "User not found.")

	assert.Equal(t, "not found: User not found.", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrConflict)
	assert.Equal(t, "User not found.", Message(fmt.Errorf("get profile: %w", err)))
	assert.Empty(t, Message(errors.New("boom")))
}
