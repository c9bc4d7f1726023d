package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/coolpotato/backend/internal/api"
	"github.com/coolpotato/backend/internal/middleware"
	"github.com/coolpotato/backend/internal/platform/spoonacular"
	"github.com/coolpotato/backend/internal/service"
	"github.com/coolpotato/backend/internal/testhelpers"
)

// stubRecipeAPI answers every query with the information body of its path.
type stubRecipeAPI struct {
	err error
}

func (s *stubRecipeAPI) Do(ctx context.Context, q spoonacular.Query) (json.RawMessage, error) {
	if s.err != nil {
		return nil, s.err
	}
	if strings.HasSuffix(q.Path, "/information") {
		id := strings.TrimSuffix(strings.TrimPrefix(q.Path, "/recipes/"), "/information")
		return json.RawMessage(`{"id":` + id + `}`), nil
	}
	return json.RawMessage(`{"path":"` + q.Path + `"}`), nil
}

type stubIdentifier struct {
	text string
	err  error
}

func (s *stubIdentifier) IdentifyIngredients(ctx context.Context, base64Image string) (string, error) {
	return s.text, s.err
}

type testEnv struct {
	router  *gin.Engine
	db      *gorm.DB
	auth    *service.AuthService
	recipes *stubRecipeAPI
	vision  *stubIdentifier
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		db:      testhelpers.SetupTestDB(t),
		recipes: &stubRecipeAPI{},
		vision:  &stubIdentifier{text: "tomato, onion"},
	}
	env.auth = service.NewAuthService(env.db, "test-secret", time.Hour)
	profiles := service.NewProfileService(env.db)

	requireAuth := middleware.AuthMiddleware(env.auth)
	router := gin.New()
	router.Use(middleware.Recovery())
	group := router.Group("/api")

	api.NewAuthHandler(env.auth, profiles).RegisterRoutes(group, requireAuth)
	api.NewProfileHandler(profiles).RegisterRoutes(group, requireAuth)
	api.NewRecipeHandler(service.NewRecipeService(env.vision, env.recipes, profiles, 0), nil).RegisterRoutes(group, requireAuth)
	api.NewFavoriteHandler(service.NewFavoriteService(env.db, env.recipes, 2)).RegisterRoutes(group, requireAuth)
	api.NewRatingHandler(service.NewRatingService(env.db)).RegisterRoutes(group, requireAuth)
	api.NewNotificationHandler(service.NewNotificationService(env.db)).RegisterRoutes(group, requireAuth)

	env.router = router
	return env
}

// signUp registers a user and returns its token and id.
func (e *testEnv) signUp(t *testing.T, email string) (string, string) {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name": "Test", "email": email, "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		Token  string `json:"token"`
		UserID string `json:"userId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token, resp.UserID
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
