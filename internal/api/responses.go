package api

import "github.com/jonesrussell/job-normalizer/internal/domain"

// ProcessRequest is a batch normalization request.
type ProcessRequest struct {
	Records []domain.RawRecord `json:"records" binding:"required"`
}

// ProcessResponse is a batch normalization response.
type ProcessResponse struct {
	Records []domain.CanonicalRecord `json:"records"`
	In      int                      `json:"in"`
	Out     int                      `json:"out"`
}

// TextRequest carries free text for a single enrichment operation.
type TextRequest struct {
	Text string `json:"text"`
}

// SkillsResponse is the extract-skills response.
type SkillsResponse struct {
	Skills []string `json:"skills"`
}

// LocationRequest carries a raw location string.
type LocationRequest struct {
	Location string `json:"location"`
}

// SalaryRequest carries a raw salary string.
type SalaryRequest struct {
	Salary string `json:"salary"`
}

// DateRequest carries a raw posted-date string.
type DateRequest struct {
	Date string `json:"date"`
}

// DateResponse is the normalize-date response. PostedDate is "" when the
// input matched no known format.
type DateResponse struct {
	PostedDate string `json:"posted_date"`
}

// VocabularyResponse lists the active skill vocabulary by category.
type VocabularyResponse struct {
	Categories map[string][]string `json:"categories"`
	Total      int                 `json:"total"`
}

// ErrorResponse is the common error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
