package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"tripcarbon/internal/handler"
	"tripcarbon/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	EmissionHandler *handler.EmissionHandler
	CreditHandler   *handler.CreditHandler
	RouteHandler    *handler.RouteHandler
	EstimateHandler *handler.EstimateHandler
	RedisClient     *redis.Client
	NewRelicApp     *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Route directory.
		v1.GET("/cities", deps.RouteHandler.GetCities)
		v1.GET("/routes/distance", deps.RouteHandler.GetDistance)

		// Emission calculations.
		emissions := v1.Group("/emissions")
		{
			emissions.POST("/calculate", deps.EmissionHandler.Calculate)
			emissions.GET("/compare", deps.EmissionHandler.Compare)
			emissions.POST("/savings", deps.EmissionHandler.Savings)
		}

		// Carbon credits.
		v1.POST("/credits/estimate", deps.CreditHandler.Estimate)

		// Full trip estimates.
		estimates := v1.Group("/estimates")
		{
			estimates.POST("", deps.EstimateHandler.Create)
			estimates.GET("/:id", deps.EstimateHandler.Get)
		}
	}

	return router
}
