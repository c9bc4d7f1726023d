package main

import (
	"context"
	"net"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/coolpotato/backend/config"
	"github.com/coolpotato/backend/internal/api"
	"github.com/coolpotato/backend/internal/database"
	"github.com/coolpotato/backend/internal/logger"
	"github.com/coolpotato/backend/internal/middleware"
	"github.com/coolpotato/backend/internal/platform/gemini"
	"github.com/coolpotato/backend/internal/platform/openai"
	"github.com/coolpotato/backend/internal/platform/spoonacular"
	"github.com/coolpotato/backend/internal/router"
	"github.com/coolpotato/backend/internal/server"
	"github.com/coolpotato/backend/internal/service"
)

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.New(cfg)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}

	identifier, closeIdentifier, err := newIdentifier(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeIdentifier()

	recipes := spoonacular.NewClient(spoonacular.Config{
		BaseURL:           cfg.SpoonacularBaseURL,
		APIKey:            cfg.SpoonacularAPIKey,
		Timeout:           cfg.RecipeAPITimeout,
		RequestsPerSecond: cfg.RecipeAPIRPS,
	})

	authService := service.NewAuthService(db, cfg.JWTSecret, cfg.JWTExpiry)
	profileService := service.NewProfileService(db)
	recipeService := service.NewRecipeService(identifier, recipes, profileService, cfg.ImageMaxDim)
	favoriteService := service.NewFavoriteService(db, recipes, cfg.FavoritesConcurrency)
	ratingService := service.NewRatingService(db)
	notificationService := service.NewNotificationService(db)

	imageLimiter, closeRedis := newImageLimiter(ctx, cfg)
	defer closeRedis()

	health := api.NewHealthHandler(func(ctx context.Context) error {
		return database.HealthCheck(ctx, db)
	})
	engine := router.SetupRouter(health, authService, cfg.CORSOrigins,
		api.NewAuthHandler(authService, profileService),
		api.NewProfileHandler(profileService),
		api.NewRecipeHandler(recipeService, imageLimiter),
		api.NewFavoriteHandler(favoriteService),
		api.NewRatingHandler(ratingService),
		api.NewNotificationHandler(notificationService),
	)

	srv := server.New(net.JoinHostPort(cfg.ServerHost, cfg.ServerPort), engine)
	err = srv.Start(ctx)
	closeDB(db)
	return err
}

// newIdentifier builds the configured vision provider.
func newIdentifier(ctx context.Context, cfg *config.Config) (service.IngredientIdentifier, func(), error) {
	switch cfg.VisionProvider {
	case config.VisionOpenAI:
		logger.Info("Using OpenAI compatible vision model",
			zap.String("base_url", cfg.OpenAIBaseURL),
			zap.String("model", cfg.OpenAIModel),
		)
		client := openai.NewClient(openai.Config{
			BaseURL: cfg.OpenAIBaseURL,
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			Timeout: cfg.VisionTimeout,
		})
		return client, func() {}, nil
	default:
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.VisionTimeout)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Using Gemini vision model", zap.String("model", cfg.GeminiModel))
		return client, func() {
			if err := client.Close(); err != nil {
				logger.Warn("failed to close gemini client", zap.Error(err))
			}
		}, nil
	}
}

// newImageLimiter returns nil when Redis is not configured or unreachable;
// the image route then runs without a limit.
func newImageLimiter(ctx context.Context, cfg *config.Config) (gin.HandlerFunc, func()) {
	if !cfg.RedisEnabled() {
		logger.Warn("Redis not configured, recipe-by-image is not rate limited")
		return nil, func() {}
	}
	client, err := database.NewRedisClient(ctx, cfg)
	if err != nil {
		logger.Warn("Redis unavailable, recipe-by-image is not rate limited", zap.Error(err))
		return nil, func() {}
	}
	limiter := middleware.NewImageRateLimiter(client, cfg.ImageRateLimit, cfg.ImageRateWindow)
	return limiter.RateLimitMiddleware(), func() {
		if err := client.Close(); err != nil {
			logger.Warn("failed to close redis client", zap.Error(err))
		}
	}
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Warn("failed to close database", zap.Error(err))
	}
}
