package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coolpotato/backend/internal/middleware"
	"github.com/coolpotato/backend/internal/service"
	"github.com/coolpotato/backend/internal/types"
)

type NotificationHandler struct {
	notificationService service.INotificationService
}

func NewNotificationHandler(notificationService service.INotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	notifications := router.Group("/notifications", requireAuth)
	{
		notifications.GET("", h.List)
		notifications.POST("", h.Create)
	}
}

func (h *NotificationHandler) List(c *gin.Context) {
	list, err := h.notificationService.List(c.Request.Context())
	if err != nil {
		middleware.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *NotificationHandler) Create(c *gin.Context) {
	var req types.CreateNotificationRequest
	if !bindJSON(c, &req, "Title and message are required") {
		return
	}
	n, err := h.notificationService.Create(c.Request.Context(), req.Title, req.Message)
	if err != nil {
		middleware.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, n)
}
