package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coolpotato/backend/internal/middleware"
	"github.com/coolpotato/backend/internal/service"
	"github.com/coolpotato/backend/internal/types"
)

type FavoriteHandler struct {
	favoriteService service.IFavoriteService
}

func NewFavoriteHandler(favoriteService service.IFavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

func (h *FavoriteHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	router.GET("/recipes/:recipeId/favoritesCount", h.Count)

	protected := router.Group("", requireAuth)
	{
		protected.POST("/add-to-favorites", h.Add)
		protected.GET("/favorites", h.List)
		protected.DELETE("/remove-from-favorites/:recipeId", h.Remove)
	}
}

func (h *FavoriteHandler) Add(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req types.AddFavoriteRequest
	if !bindJSON(c, &req, "recipeId is required") {
		return
	}
	if err := h.favoriteService.Add(c.Request.Context(), userID, string(req.RecipeID)); err != nil {
		middleware.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Recipe added to favorites"})
}

func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	details, err := h.favoriteService.List(c.Request.Context(), userID)
	if err != nil {
		middleware.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.favoriteService.Remove(c.Request.Context(), userID, c.Param("recipeId")); err != nil {
		middleware.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe removed from favorites"})
}

func (h *FavoriteHandler) Count(c *gin.Context) {
	count, err := h.favoriteService.Count(c.Request.Context(), c.Param("recipeId"))
	if err != nil {
		middleware.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favoritesCount": count})
}
