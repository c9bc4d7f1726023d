package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/coolpotato/backend/internal/apperrors"
	"github.com/coolpotato/backend/internal/logger"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

// WriteError renders err as {"message": ...}. Server side failures are logged
// with their cause and shown to the client as a generic message.
func WriteError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		LogError(c, err)
	}
	c.JSON(status, ErrorResponse{Message: apperrors.PublicMessage(err)})
}

// LogError logs err with the request context and any diagnostic context.
func LogError(c *gin.Context, err error) {
	fields := []zap.Field{
		zap.Error(err),
		zap.String("kind", string(apperrors.KindOf(err))),
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.String("request_id", c.GetString(RequestIDKey)),
	}
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		for k, v := range appErr.Context {
			fields = append(fields, zap.Any(k, v))
		}
	}
	logger.Error("request failed", fields...)
}

// Recovery turns panics into a 500 with a generic body.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				panicRecoveries.Inc()
				logger.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", c.GetString(RequestIDKey)),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Message: "Server error"})
			}
		}()
		c.Next()
	}
}
