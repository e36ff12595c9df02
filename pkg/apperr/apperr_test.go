package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindMatching(t *testing.T) {
	err := fmt.Errorf("lookup: %w", NotFound("Plant not found"))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrForbidden))

	e := From(err)
	require.NotNil(t, e)
	assert.Equal(t, http.StatusNotFound, e.Status())
	assert.Equal(t, "Plant not found", e.Message)
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{Unauthorized("x"), http.StatusUnauthorized},
		{Forbidden("x"), http.StatusForbidden},
		{BadRequest("x"), http.StatusBadRequest},
		{Conflict("x"), http.StatusConflict},
		{Internal("x", errors.New("boom")), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, From(tt.err).Status(), tt.err.Error())
	}
}

func TestFromPlainError(t *testing.T) {
	assert.Nil(t, From(errors.New("plain")))
}
