package routes

import (
	"net/http"
	"time"

	"bookingbridge/handlers"
	"bookingbridge/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCallableRoutes registers the callable functions exposed to the client app.
func RegisterCallableRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	callable := r.Group("")
	{
		callable.Use(middleware.RateLimitMiddleware(hb.MaxRequestsPerMin))
		callable.Use(middleware.CallerAuthMiddleware(hb.Verifier))
		callable.POST("/forwardBookingToTherapist", hb.ForwardBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	if hb.HealthHandler != nil {
		r.GET("/health", hb.HealthHandler)
		return
	}
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	RegisterCallableRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
