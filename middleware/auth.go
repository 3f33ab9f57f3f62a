// middleware/auth.go
package middleware

import (
	"strings"

	"bookingbridge/models"
	"bookingbridge/services/identity"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IdentityKey is the gin context key holding the verified *models.Identity.
const IdentityKey = "identity"

// CallerAuthMiddleware resolves the bearer token into a caller identity.
// It never rejects a request: a missing or unverifiable token leaves the
// request anonymous and the handler decides what an anonymous caller may do.
func CallerAuthMiddleware(verifier identity.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			c.Next()
			return
		}

		id, err := verifier.Verify(c.Request.Context(), tokenString)
		if err != nil {
			RequestLogger(c).Warn("Rejected caller token", zap.Error(err))
			c.Next()
			return
		}

		c.Set(IdentityKey, id)
		c.Next()
	}
}

// CallerIdentity returns the identity set by CallerAuthMiddleware, or nil for anonymous callers.
func CallerIdentity(c *gin.Context) *models.Identity {
	v, exists := c.Get(IdentityKey)
	if !exists {
		return nil
	}
	id, _ := v.(*models.Identity)
	return id
}
