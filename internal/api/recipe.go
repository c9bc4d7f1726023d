package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coolpotato/backend/internal/apperrors"
	"github.com/coolpotato/backend/internal/middleware"
	"github.com/coolpotato/backend/internal/service"
	"github.com/coolpotato/backend/internal/types"
)

// ImageResponse is the body of POST /api/recipe-by-image.
type ImageResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Recipes json.RawMessage `json:"recipes,omitempty"`
	Error   string          `json:"error,omitempty"`
}

type RecipeHandler struct {
	recipeService service.IRecipeService
	imageLimiter  gin.HandlerFunc
}

// NewRecipeHandler creates the discovery handler. imageLimiter may be nil.
func NewRecipeHandler(recipeService service.IRecipeService, imageLimiter gin.HandlerFunc) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		imageLimiter:  imageLimiter,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	image := []gin.HandlerFunc{requireAuth}
	if h.imageLimiter != nil {
		image = append(image, h.imageLimiter)
	}
	router.POST("/recipe-by-image", append(image, h.RecipeByImage)...)

	protected := router.Group("", requireAuth)
	{
		protected.GET("/search-by-ingredients", h.SearchByIngredients)
		protected.GET("/search-by-name", h.SearchByName)
		protected.GET("/featured-recipes", h.Featured)
		protected.GET("/popular-recipes", h.Popular)
		protected.GET("/recipe/:recipeId", h.RecipeByID)
	}
}

func (h *RecipeHandler) RecipeByImage(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req types.RecipeByImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.imageError(c, apperrors.Validation("Image is required"))
		return
	}

	recipes, err := h.recipeService.ProcessImage(c.Request.Context(), userID, req.Image)
	if err != nil {
		h.imageError(c, err)
		return
	}
	c.JSON(http.StatusOK, ImageResponse{
		Success: true,
		Message: "Recipes fetched successfully",
		Recipes: recipes,
	})
}

// imageError never exposes upstream detail; the error field is the kind code.
func (h *RecipeHandler) imageError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		middleware.LogError(c, err)
	}
	c.JSON(status, ImageResponse{
		Success: false,
		Message: apperrors.PublicMessage(err),
		Error:   string(apperrors.KindOf(err)),
	})
}

func (h *RecipeHandler) SearchByIngredients(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	h.respond(c)(h.recipeService.SearchByIngredients(c.Request.Context(), userID, c.Query("ingredients")))
}

func (h *RecipeHandler) SearchByName(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	h.respond(c)(h.recipeService.SearchByName(c.Request.Context(), userID, c.Query("query")))
}

func (h *RecipeHandler) Featured(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	h.respond(c)(h.recipeService.Featured(c.Request.Context(), userID))
}

func (h *RecipeHandler) Popular(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	h.respond(c)(h.recipeService.Popular(c.Request.Context(), userID))
}

func (h *RecipeHandler) RecipeByID(c *gin.Context) {
	h.respond(c)(h.recipeService.RecipeByID(c.Request.Context(), c.Param("recipeId")))
}

// respond writes the upstream body verbatim or the mapped error.
func (h *RecipeHandler) respond(c *gin.Context) func(json.RawMessage, error) {
	return func(body json.RawMessage, err error) {
		if err != nil {
			middleware.WriteError(c, err)
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
	}
}
