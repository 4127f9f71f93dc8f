package processor_test

import (
	"context"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/jonesrussell/job-normalizer/internal/domain"
	"github.com/jonesrussell/job-normalizer/internal/enrich"
	"github.com/jonesrussell/job-normalizer/internal/logger"
	"github.com/jonesrussell/job-normalizer/internal/processor"
	"github.com/jonesrussell/job-normalizer/internal/vocabulary"
)

func newTestProcessor(concurrency int) *processor.BatchProcessor {
	log := logger.NewNop()
	skills := enrich.NewSkillExtractor(vocabulary.Builtin(), nil, log)
	reference := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	dates := enrich.NewDateNormalizerWithClock(func() time.Time { return reference })
	return processor.NewBatchProcessor(skills, dates, concurrency, log, nil)
}

func TestBatchProcessor_ProcessEmptyBatch(t *testing.T) {
	got, err := newTestProcessor(4).Process(context.Background(), nil)
	if err != nil {
		t.Fatalf("Process returned unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty output, got %d records", len(got))
	}
}

func TestBatchProcessor_ProcessNormalizesRecord(t *testing.T) {
	raw := []domain.RawRecord{
		{
			"position":            "Senior   Backend Engineer",
			"company_name":        "<b>Acme</b> Corp",
			"description_snippet": "<p>We use Python and PostgreSQL.</p>",
			"location":            "Austin, TX",
			"salary":              "$90k - $120k per year",
			"date":                "3 days ago",
			"url":                 "https://jobs.example.com/42",
			"source":              "remoteok",
		},
	}

	got, err := newTestProcessor(1).Process(context.Background(), raw)
	if err != nil {
		t.Fatalf("Process returned unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}

	record := got[0]
	if record.Title != "Senior Backend Engineer" {
		t.Errorf("title = %q", record.Title)
	}
	if record.Company != "Acme Corp" {
		t.Errorf("company = %q", record.Company)
	}
	if record.Description != "We use Python and PostgreSQL." {
		t.Errorf("description = %q", record.Description)
	}

	wantLocation := domain.Location{City: "Austin", State: "TX", Country: "United States"}
	if record.NormalizedLocation != wantLocation {
		t.Errorf("normalized location = %+v, want %+v", record.NormalizedLocation, wantLocation)
	}

	if record.SalaryMin == nil || record.SalaryMax == nil {
		t.Fatalf("salary bounds missing: %+v", record)
	}
	if *record.SalaryMin != 90000 || *record.SalaryMax != 120000 {
		t.Errorf("salary = %v-%v, want 90000-120000", *record.SalaryMin, *record.SalaryMax)
	}
	if record.SalaryCurrency != "USD" || record.SalaryPeriod != "year" {
		t.Errorf("salary currency/period = %q/%q", record.SalaryCurrency, record.SalaryPeriod)
	}

	if record.PostedDate != "2025-01-07" {
		t.Errorf("posted date = %q, want 2025-01-07", record.PostedDate)
	}

	wantSkills := []string{"postgresql", "python"}
	if !reflect.DeepEqual(record.ExtractedSkills, wantSkills) {
		t.Errorf("skills = %v, want %v", record.ExtractedSkills, wantSkills)
	}

	if record.Source != "remoteok" {
		t.Errorf("source = %q", record.Source)
	}
	if record.URL != "https://jobs.example.com/42" {
		t.Errorf("url = %q", record.URL)
	}
}

func TestBatchProcessor_DeduplicationKeepsFirst(t *testing.T) {
	raw := []domain.RawRecord{
		{"title": "Engineer", "company": "Acme", "description": "first copy", "source": "a"},
		{"title": "Engineer", "company": "Acme", "description": "second copy", "source": "b"},
		{"title": "Engineer", "company": "Other", "description": "different company", "source": "a"},
	}

	got, err := newTestProcessor(2).Process(context.Background(), raw)
	if err != nil {
		t.Fatalf("Process returned unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records after dedup, got %d", len(got))
	}
	if got[0].Description != "first copy" {
		t.Errorf("kept record description = %q, want first occurrence", got[0].Description)
	}
	if got[1].Company != "Other" {
		t.Errorf("second record company = %q", got[1].Company)
	}
}

func TestBatchProcessor_OutputPreservesInputOrder(t *testing.T) {
	const n = 60
	raw := make([]domain.RawRecord, 0, n)
	for i := 0; i < n; i++ {
		raw = append(raw, domain.RawRecord{
			"title":   fmt.Sprintf("Role %03d", i),
			"company": "Acme",
			"source":  "feed",
		})
	}

	got, err := newTestProcessor(8).Process(context.Background(), raw)
	if err != nil {
		t.Fatalf("Process returned unexpected error: %v", err)
	}
	if len(got) != n {
		t.Fatalf("expected %d records, got %d", n, len(got))
	}
	for i, record := range got {
		want := fmt.Sprintf("Role %03d", i)
		if record.Title != want {
			t.Fatalf("record %d title = %q, want %q", i, record.Title, want)
		}
	}
}

func TestBatchProcessor_MissingFieldsLeftEmpty(t *testing.T) {
	raw := []domain.RawRecord{
		{"title": "Mystery Role", "source": "feed"},
	}

	got, err := newTestProcessor(1).Process(context.Background(), raw)
	if err != nil {
		t.Fatalf("Process returned unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}

	record := got[0]
	if record.Company != "" || record.Description != "" || record.PostedDate != "" {
		t.Errorf("expected empty derived fields, got %+v", record)
	}
	if record.SalaryMin != nil || record.SalaryMax != nil {
		t.Errorf("expected nil salary bounds, got %+v", record)
	}
	// A blank location string reads as fully remote.
	if !record.NormalizedLocation.IsRemote {
		t.Errorf("expected remote location for blank input, got %+v", record.NormalizedLocation)
	}
	if len(record.ExtractedSkills) != 0 {
		t.Errorf("expected no skills, got %v", record.ExtractedSkills)
	}
}
