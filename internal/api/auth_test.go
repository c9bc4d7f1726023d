package api_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUpAndSignIn(t *testing.T) {
	env := setupTestEnv(t)

	token, userID := env.signUp(t, "ann@example.com")
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, userID)

	w := env.do(t, http.MethodPost, "/api/auth/signin", "", map[string]string{
		"email": "ann@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, userID, resp["userId"])
	assert.NotEmpty(t, resp["token"])
}

func TestSignUpErrors(t *testing.T) {
	env := setupTestEnv(t)
	env.signUp(t, "ann@example.com")

	w := env.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name": "Again", "email": "ann@example.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"User already exists"}`, w.Body.String())

	w = env.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name": "Short", "email": "short@example.com", "password": "123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignInWrongPassword(t *testing.T) {
	env := setupTestEnv(t)
	env.signUp(t, "ann@example.com")

	w := env.do(t, http.MethodPost, "/api/auth/signin", "", map[string]string{
		"email": "ann@example.com", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Invalid credentials"}`, w.Body.String())
}

func TestUpdateProfile(t *testing.T) {
	env := setupTestEnv(t)
	token, userID := env.signUp(t, "ann@example.com")
	_, otherID := env.signUp(t, "bob@example.com")

	w := env.do(t, http.MethodPut, "/api/auth/update-profile/"+userID, token, map[string]interface{}{
		"fastFoodFrequency": "Never",
		"isDiabetic":        true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.do(t, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profile map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "Never", profile["fastFoodFrequency"])
	assert.Equal(t, true, profile["isDiabetic"])
	assert.NotContains(t, w.Body.String(), "password")

	w = env.do(t, http.MethodPut, "/api/auth/update-profile/"+otherID, token, map[string]interface{}{"lifestyle": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodPut, "/api/auth/update-profile/"+userID, token, map[string]interface{}{"fastFoodFrequency": "Daily"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := setupTestEnv(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/profile"},
		{http.MethodPost, "/api/recipe-by-image"},
		{http.MethodGet, "/api/search-by-name?query=soup"},
		{http.MethodGet, "/api/featured-recipes"},
		{http.MethodGet, "/api/favorites"},
		{http.MethodPost, "/api/add-to-favorites"},
		{http.MethodPost, "/api/recipes/1/addRating"},
		{http.MethodGet, "/api/notifications"},
	} {
		w := env.do(t, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, route.path)
		assert.JSONEq(t, `{"message":"No token provided"}`, w.Body.String(), route.path)
	}
}

func TestSignUpRejectsOverlongPassword(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name": "Long", "email": "long@example.com", "password": strings.Repeat("p", 80),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotContains(t, w.Body.String(), "An error occurred")
}
