package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeRefUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		body string
		want RecipeRef
	}{
		{"number", `{"recipeId":716429}`, "716429"},
		{"string", `{"recipeId":"716429"}`, "716429"},
		{"null", `{"recipeId":null}`, ""},
		{"missing", `{}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req AddFavoriteRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, req.RecipeID)
		})
	}

	var req AddFavoriteRequest
	assert.Error(t, json.Unmarshal([]byte(`{"recipeId":true}`), &req))
}
