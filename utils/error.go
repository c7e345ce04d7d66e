package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Success: false,
					Message: "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// JSONError aborts the request with a standardized JSON error response.
func JSONError(c *gin.Context, status int, message string) {
	logger := GetLogger()
	if l, ok := c.Get(LoggerContextKey); ok {
		if reqLogger, ok := l.(*zap.Logger); ok {
			logger = reqLogger
		}
	}
	logger.Warn(message, zap.Int("status", status))
	c.AbortWithStatusJSON(status, ErrorResponse{Success: false, Message: message})
}
