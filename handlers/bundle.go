// File: handlers/bundle.go
package handlers

import (
	"bookingbridge/services/identity"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the endpoint handlers and what routes need to guard them.
type HandlerBundle struct {
	Verifier          identity.Verifier
	MaxRequestsPerMin int

	ForwardBookingHandler gin.HandlerFunc
	HealthHandler         gin.HandlerFunc
}
