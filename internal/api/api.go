// Package api holds the gin handlers of the HTTP surface.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/coolpotato/backend/internal/apperrors"
	"github.com/coolpotato/backend/internal/middleware"
)

// currentUser returns the caller id, writing a 401 when it is missing.
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		middleware.WriteError(c, apperrors.Auth("No token provided"))
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the body into req, writing a 400 on failure.
func bindJSON(c *gin.Context, req interface{}, message string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.WriteError(c, apperrors.Validation(message))
		return false
	}
	return true
}
