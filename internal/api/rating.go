package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coolpotato/backend/internal/middleware"
	"github.com/coolpotato/backend/internal/service"
	"github.com/coolpotato/backend/internal/types"
)

type RatingHandler struct {
	ratingService service.IRatingService
}

func NewRatingHandler(ratingService service.IRatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

func (h *RatingHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	router.POST("/recipes/:recipeId/addRating", requireAuth, h.AddRating)
	router.GET("/recipes/:recipeId/ratings", h.Ratings)
}

func (h *RatingHandler) AddRating(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req types.AddRatingRequest
	if !bindJSON(c, &req, "Rating must be between 1 and 5") {
		return
	}
	if err := h.ratingService.Rate(c.Request.Context(), userID, c.Param("recipeId"), req.Rating); err != nil {
		middleware.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Rating added successfully"})
}

func (h *RatingHandler) Ratings(c *gin.Context) {
	summary, err := h.ratingService.Average(c.Request.Context(), c.Param("recipeId"))
	if err != nil {
		middleware.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
