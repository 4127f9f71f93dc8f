package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/job-normalizer/internal/api"
	"github.com/jonesrussell/job-normalizer/internal/enrich"
	"github.com/jonesrussell/job-normalizer/internal/logger"
	"github.com/jonesrussell/job-normalizer/internal/processor"
	"github.com/jonesrussell/job-normalizer/internal/vocabulary"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNop()
	vocab := vocabulary.Builtin()
	skills := enrich.NewSkillExtractor(vocab, nil, log)
	reference := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	dates := enrich.NewDateNormalizerWithClock(func() time.Time { return reference })
	batch := processor.NewBatchProcessor(skills, dates, 2, log, nil)

	handler := api.NewHandler(batch, skills, dates, vocab, 100, "test", log)

	router := gin.New()
	api.SetupRoutes(router, handler, nil)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestProcessBatch(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/process", gin.H{
		"records": []gin.H{
			{
				"position":     "Engineer",
				"company_name": "Acme",
				"description":  "Python and Docker",
				"location":     "Austin, TX",
				"source":       "remoteok",
			},
		},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp api.ProcessResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.In != 1 || resp.Out != 1 {
		t.Errorf("in/out = %d/%d", resp.In, resp.Out)
	}
	if resp.Records[0].Title != "Engineer" {
		t.Errorf("title = %q", resp.Records[0].Title)
	}
	if resp.Records[0].NormalizedLocation.City != "Austin" {
		t.Errorf("city = %q", resp.Records[0].NormalizedLocation.City)
	}
}

func TestProcessBatch_EmptyBatchRejected(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/process", gin.H{"records": []gin.H{}})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestProcessBatch_OversizeBatchRejected(t *testing.T) {
	router := newTestRouter(t)

	records := make([]gin.H, 101)
	for i := range records {
		records[i] = gin.H{"title": "Role", "source": "feed"}
	}

	w := postJSON(t, router, "/api/v1/process", gin.H{"records": records})
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", w.Code)
	}
}

func TestExtractSkills(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/extract/skills", gin.H{
		"text": "<p>We use Python and Kubernetes.</p>",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp api.SkillsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	want := []string{"kubernetes", "python"}
	if len(resp.Skills) != len(want) || resp.Skills[0] != want[0] || resp.Skills[1] != want[1] {
		t.Errorf("skills = %v, want %v", resp.Skills, want)
	}
}

func TestNormalizeLocation(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/normalize/location", gin.H{"location": "Toronto, Canada"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		City    string `json:"city"`
		Country string `json:"country"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.City != "Toronto" || resp.Country != "Canada" {
		t.Errorf("location = %+v", resp)
	}
}

func TestParseSalary(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/parse/salary", gin.H{"salary": "$90k - $120k per year"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Min      *float64 `json:"min"`
		Max      *float64 `json:"max"`
		Currency string   `json:"currency"`
		Period   string   `json:"period"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Min == nil || *resp.Min != 90000 || resp.Max == nil || *resp.Max != 120000 {
		t.Errorf("bounds = %v/%v", resp.Min, resp.Max)
	}
	if resp.Currency != "USD" || resp.Period != "year" {
		t.Errorf("currency/period = %q/%q", resp.Currency, resp.Period)
	}
}

func TestNormalizeDate(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/normalize/date", gin.H{"date": "3 days ago"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp api.DateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.PostedDate != "2025-01-07" {
		t.Errorf("posted_date = %q, want 2025-01-07", resp.PostedDate)
	}
}

func TestGetVocabulary(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vocabulary", http.NoBody)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp api.VocabularyResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total == 0 {
		t.Error("expected non-empty vocabulary")
	}
	if len(resp.Categories["languages"]) == 0 {
		t.Error("expected languages category")
	}
}

func TestHealthAndReady(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/health", "/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("%s status = %d", path, w.Code)
		}
	}
}
