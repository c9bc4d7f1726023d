package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsIsByKind(t *testing.T) {
	err := fmt.Errorf("handler: %w", Conflict("Recipe already in favorites"))

	assert.True(t, errors.Is(err, ErrConflict))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestUnwrapReachesCause(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := UpstreamModel(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindUpstreamModel, KindOf(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("bad"), http.StatusBadRequest},
		{"conflict", Conflict("dup"), http.StatusBadRequest},
		{"auth", Auth("no token"), http.StatusUnauthorized},
		{"not found", NotFound("missing"), http.StatusNotFound},
		{"rate limited", New(KindRateLimited, "slow down"), http.StatusTooManyRequests},
		{"upstream model", UpstreamModel(errors.New("x")), http.StatusInternalServerError},
		{"upstream recipe", UpstreamRecipeAPI(errors.New("x")), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestPublicMessageHidesUpstreamDetail(t *testing.T) {
	err := UpstreamRecipeAPI(errors.New("GET https://api.example.com/?apiKey=secret: 402"))

	msg := PublicMessage(err)
	assert.Equal(t, "An error occurred", msg)
	assert.NotContains(t, msg, "secret")

	assert.Equal(t, "Recipe already in favorites", PublicMessage(Conflict("Recipe already in favorites")))
	assert.Equal(t, "Server error", PublicMessage(errors.New("raw")))
}

func TestWithContext(t *testing.T) {
	err := UpstreamRecipeAPI(errors.New("x")).WithContext("status", 500)
	assert.Equal(t, 500, err.Context["status"])
}
