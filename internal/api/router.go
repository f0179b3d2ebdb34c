package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kgyujin/ksnu-portfolio/internal/config"
	"github.com/kgyujin/ksnu-portfolio/internal/service"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware(cfg.Server.CORSOrigin))

	// Handlers
	commentHandler := NewCommentHandler(services, log)
	projectHandler := NewProjectHandler(services, log)
	skillHandler := NewSkillHandler(services, log)
	statsHandler := NewStatsHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)

	// API routes
	api := router.Group("/api")
	{
		comments := api.Group("/comments")
		{
			comments.GET("", commentHandler.List)
			comments.POST("", commentHandler.Create)
			comments.GET("/count", commentHandler.Count)
			comments.PUT("/:id", commentHandler.Update)
			comments.DELETE("/:id", commentHandler.Delete)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.List)
			projects.POST("", projectHandler.Create)
			projects.GET("/featured/list", projectHandler.ListFeatured)
			projects.GET("/:id", projectHandler.Get)
		}

		skills := api.Group("/skills")
		{
			skills.GET("", skillHandler.List)
			skills.GET("/grouped", skillHandler.ListGrouped)
		}

		stats := api.Group("/stats")
		{
			stats.GET("", statsHandler.GetStats)
			stats.POST("/visit", statsHandler.RecordVisit)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "ksnu-portfolio-api",
	})
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
