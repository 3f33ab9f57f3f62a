package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Callable error statuses, as understood by Firebase client SDKs.
const (
	StatusInvalidArgument   = "INVALID_ARGUMENT"
	StatusUnauthenticated   = "UNAUTHENTICATED"
	StatusResourceExhausted = "RESOURCE_EXHAUSTED"
	StatusInternal          = "INTERNAL"
)

// CallableError is the error body of a callable response.
type CallableError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Error CallableError `json:"error"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err), zap.String("path", c.Request.URL.Path))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Error: CallableError{Status: StatusInternal, Message: "INTERNAL"},
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized callable error response
func JSONError(c *gin.Context, httpStatus int, status, message string) {
	c.AbortWithStatusJSON(httpStatus, ErrorResponse{
		Error: CallableError{Status: status, Message: message},
	})
}
