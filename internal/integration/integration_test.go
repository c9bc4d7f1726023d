package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coolpotato/backend/internal/api"
	"github.com/coolpotato/backend/internal/apperrors"
	"github.com/coolpotato/backend/internal/middleware"
	"github.com/coolpotato/backend/internal/platform/spoonacular"
	"github.com/coolpotato/backend/internal/router"
	"github.com/coolpotato/backend/internal/service"
	"github.com/coolpotato/backend/internal/testhelpers"
)

type staticRecipes struct{}

func (staticRecipes) Do(ctx context.Context, q spoonacular.Query) (json.RawMessage, error) {
	return json.RawMessage(`[{"id":1}]`), nil
}

type staticVision struct{}

func (staticVision) IdentifyIngredients(ctx context.Context, base64Image string) (string, error) {
	return "egg, milk", nil
}

func TestConcurrentFavoriteAddsOnPostgres(t *testing.T) {
	db := testhelpers.SetupPostgres(t)
	user := testhelpers.CreateTestUser(t, db, "fav@example.com", "secret1", nil)
	favorites := service.NewFavoriteService(db, staticRecipes{}, 4)

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = favorites.Add(context.Background(), user.ID, "42")
		}(i)
	}
	wg.Wait()

	var ok, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case apperrors.KindOf(err) == apperrors.KindConflict:
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, workers-1, conflicts)

	count, err := favorites.Count(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRatingUpsertOnPostgres(t *testing.T) {
	db := testhelpers.SetupPostgres(t)
	ann := testhelpers.CreateTestUser(t, db, "ann@example.com", "secret1", nil)
	bob := testhelpers.CreateTestUser(t, db, "bob@example.com", "secret1", nil)
	ratings := service.NewRatingService(db)
	ctx := context.Background()

	require.NoError(t, ratings.Rate(ctx, ann.ID, "9", 1))
	require.NoError(t, ratings.Rate(ctx, ann.ID, "9", 3))
	require.NoError(t, ratings.Rate(ctx, bob.ID, "9", 4))

	summary, err := ratings.Average(ctx, "9")
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.Count)
	assert.InDelta(t, 3.5, summary.Average, 0.0001)
}

func TestImageRouteRateLimitedByRedis(t *testing.T) {
	db := testhelpers.SetupPostgres(t)
	rdb := testhelpers.SetupRedis(t)
	gin.SetMode(gin.TestMode)

	auth := service.NewAuthService(db, "integration-secret", time.Hour)
	profiles := service.NewProfileService(db)
	recipes := service.NewRecipeService(staticVision{}, staticRecipes{}, profiles, 0)
	limiter := middleware.NewImageRateLimiter(rdb, 2, time.Hour)

	health := api.NewHealthHandler(func(context.Context) error { return nil })
	engine := router.SetupRouter(health, auth, nil,
		api.NewAuthHandler(auth, profiles),
		api.NewRecipeHandler(recipes, limiter.RateLimitMiddleware()),
	)

	user, token, err := auth.Register(context.Background(), "Ann", "ann@example.com", "secret1")
	require.NoError(t, err)
	require.NotNil(t, user)

	post := func() int {
		body, _ := json.Marshal(map[string]string{"image": "aGVsbG8="})
		req := httptest.NewRequest(http.MethodPost, "/api/recipe-by-image", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, post())
	assert.Equal(t, http.StatusOK, post())
	assert.Equal(t, http.StatusTooManyRequests, post())
}
