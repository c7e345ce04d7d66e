package routes

import (
	"slices"
	"time"

	"slotbook/config"
	"slotbook/handlers"
	"slotbook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers registration, login and token check endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle, cfg config.Config) {
	public := r.Group("")
	{
		limited := public.Group("")
		limited.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))
		limited.POST("/register", hb.RegisterHandler)
		limited.POST("/login", hb.LoginHandler)

		public.POST("/verify-token", hb.VerifyTokenHandler)
	}
}

// RegisterBookingRoutes sets up the slot endpoints. All of them require a bearer token.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("")
	{
		bookingGroup.Use(hb.AuthMiddleware)
		bookingGroup.GET("/slots", hb.GetSlotsHandler)
		bookingGroup.POST("/book", hb.BookSlotHandler)
		bookingGroup.POST("/cancel", hb.CancelSlotHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, cfg config.Config) {
	r.Use(cors.New(corsConfig(cfg.CORSAllowOrigins)))

	RegisterUserRoutes(r, hb, cfg)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
