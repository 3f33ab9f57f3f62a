package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "requestID"
	LoggerKey       = "logger"
)

// RequestContextMiddleware tags every request with an ID and stores a request-scoped logger in the context.
func RequestContextMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Set(LoggerKey, logger.With(
			zap.String("requestId", requestID),
			zap.String("path", c.FullPath()),
		))
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// RequestLogger retrieves a Zap logger from the Gin context or falls back to the global one.
func RequestLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get(LoggerKey); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return zap.L()
}
