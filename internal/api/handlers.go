// Package api exposes the normalization pipeline over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/job-normalizer/internal/domain"
	"github.com/jonesrussell/job-normalizer/internal/enrich"
	"github.com/jonesrussell/job-normalizer/internal/logger"
	"github.com/jonesrussell/job-normalizer/internal/processor"
	"github.com/jonesrussell/job-normalizer/internal/vocabulary"
)

// Handler handles HTTP requests for the normalizer API.
type Handler struct {
	processor    *processor.BatchProcessor
	skills       *enrich.SkillExtractor
	dates        *enrich.DateNormalizer
	vocab        *vocabulary.Vocabulary
	maxBatchSize int
	version      string
	startedAt    time.Time
	logger       logger.Logger
}

// NewHandler creates a new API handler.
func NewHandler(
	batchProcessor *processor.BatchProcessor,
	skills *enrich.SkillExtractor,
	dates *enrich.DateNormalizer,
	vocab *vocabulary.Vocabulary,
	maxBatchSize int,
	version string,
	log logger.Logger,
) *Handler {
	return &Handler{
		processor:    batchProcessor,
		skills:       skills,
		dates:        dates,
		vocab:        vocab,
		maxBatchSize: maxBatchSize,
		version:      version,
		startedAt:    time.Now(),
		logger:       log,
	}
}

// ProcessBatch handles POST /api/v1/process.
func (h *Handler) ProcessBatch(c *gin.Context) {
	var req ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if len(req.Records) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: domain.ErrNoRawRecords.Error()})
		return
	}
	if h.maxBatchSize > 0 && len(req.Records) > h.maxBatchSize {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
			Error: "batch exceeds maximum size",
		})
		return
	}

	records, err := h.processor.Process(c.Request.Context(), req.Records)
	if err != nil {
		h.logger.Error("batch processing failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ProcessResponse{
		Records: records,
		In:      len(req.Records),
		Out:     len(records),
	})
}

// ExtractSkills handles POST /api/v1/extract/skills.
func (h *Handler) ExtractSkills(c *gin.Context) {
	var req TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	skills := h.skills.Extract(c.Request.Context(), enrich.CleanText(req.Text))
	c.JSON(http.StatusOK, SkillsResponse{Skills: skills})
}

// NormalizeLocation handles POST /api/v1/normalize/location.
func (h *Handler) NormalizeLocation(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, enrich.NormalizeLocation(enrich.CleanText(req.Location)))
}

// ParseSalary handles POST /api/v1/parse/salary.
func (h *Handler) ParseSalary(c *gin.Context) {
	var req SalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, enrich.ParseSalary(req.Salary))
}

// NormalizeDate handles POST /api/v1/normalize/date.
func (h *Handler) NormalizeDate(c *gin.Context) {
	var req DateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, DateResponse{PostedDate: h.dates.Normalize(req.Date)})
}

// GetVocabulary handles GET /api/v1/vocabulary.
func (h *Handler) GetVocabulary(c *gin.Context) {
	categories := make(map[string][]string)
	for _, category := range h.vocab.Categories() {
		categories[category] = h.vocab.TokensInCategory(category)
	}

	c.JSON(http.StatusOK, VocabularyResponse{
		Categories: categories,
		Total:      h.vocab.Len(),
	})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"service":        "job-normalizer",
		"version":        h.version,
		"uptime_seconds": int(time.Since(h.startedAt).Seconds()),
	})
}

// ReadyCheck handles GET /ready.
func (h *Handler) ReadyCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
