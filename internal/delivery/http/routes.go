package http

import (
	"github.com/gin-gonic/gin"

	"github.com/shoproute/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(NewIPRateLimiter(cfg.RateLimit.PerIP)))
	{
		lists := v1.Group("/lists")
		{
			lists.POST("", handler.SaveList)
			lists.GET("/current", handler.CurrentList)
		}

		v1.POST("/locations", handler.Locate)

		routes := v1.Group("/routes")
		{
			routes.POST("", handler.PlanRoute)
			routes.GET("/:id", handler.GetRoute)
		}
	}

	return router
}
