package api

import (
	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/job-normalizer/internal/telemetry"
)

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler, tp *telemetry.Provider) {
	// Health and readiness checks
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)

	// Prometheus metrics
	if tp != nil {
		router.GET("/metrics", gin.WrapH(tp.Handler()))
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Batch normalization
		v1.POST("/process", handler.ProcessBatch)

		// Individually callable enrichment operations
		v1.POST("/extract/skills", handler.ExtractSkills)
		v1.POST("/normalize/location", handler.NormalizeLocation)
		v1.POST("/parse/salary", handler.ParseSalary)
		v1.POST("/normalize/date", handler.NormalizeDate)

		// Vocabulary inspection
		v1.GET("/vocabulary", handler.GetVocabulary)
	}
}
