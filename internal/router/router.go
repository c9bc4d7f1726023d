package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/coolpotato/backend/internal/api"
	"github.com/coolpotato/backend/internal/middleware"
)

// RouteRegistrar is implemented by every api handler.
type RouteRegistrar interface {
	RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc)
}

// SetupRouter configures the application routes. Handlers are mounted
// under /api; health and metrics stay at the root.
func SetupRouter(
	health *api.HealthHandler,
	validator middleware.TokenValidator,
	corsOrigins []string,
	handlers ...RouteRegistrar,
) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(corsOrigins))

	router.GET("/health", health.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	requireAuth := middleware.AuthMiddleware(validator)
	apiGroup := router.Group("/api")
	for _, h := range handlers {
		h.RegisterRoutes(apiGroup, requireAuth)
	}

	return router
}
