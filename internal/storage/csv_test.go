package storage_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/jonesrussell/job-normalizer/internal/domain"
	"github.com/jonesrussell/job-normalizer/internal/logger"
	"github.com/jonesrussell/job-normalizer/internal/storage"
)

func floatPtr(v float64) *float64 { return &v }

func TestCSVWriter_Write(t *testing.T) {
	records := []domain.CanonicalRecord{
		{
			Title:    "Backend Engineer",
			Company:  "Acme",
			Location: "Austin, TX",
			NormalizedLocation: domain.Location{
				City: "Austin", State: "TX", Country: "United States",
			},
			Description:     "Go services, comma, and \"quotes\"",
			URL:             "https://jobs.example.com/1",
			Salary:          "$90k - $120k per year",
			SalaryMin:       floatPtr(90000),
			SalaryMax:       floatPtr(120000),
			SalaryCurrency:  "USD",
			SalaryPeriod:    "year",
			PostedDate:      "2025-01-07",
			ExtractedSkills: []string{"go", "postgresql"},
			Source:          "remoteok",
		},
		{
			Title:              "Mystery Role",
			NormalizedLocation: domain.Location{IsRemote: true},
			ExtractedSkills:    []string{},
			Source:             "feed",
		},
	}

	var buf bytes.Buffer
	writer := storage.NewCSVWriter("", logger.NewNop())
	if err := writer.Write(&buf, records); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-read csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}

	header := rows[0]
	if header[0] != "title" || header[len(header)-1] != "source" {
		t.Errorf("unexpected header %v", header)
	}

	first := rows[1]
	if first[0] != "Backend Engineer" {
		t.Errorf("title column = %q", first[0])
	}
	if first[6] != "false" {
		t.Errorf("is_remote column = %q", first[6])
	}
	if first[10] != "90000" || first[11] != "120000" {
		t.Errorf("salary columns = %q/%q", first[10], first[11])
	}
	if first[15] != "go,postgresql" {
		t.Errorf("extracted_skills column = %q", first[15])
	}

	second := rows[2]
	if second[6] != "true" {
		t.Errorf("is_remote column = %q", second[6])
	}
	// Null salary bounds serialize as empty cells.
	if second[10] != "" || second[11] != "" {
		t.Errorf("salary columns = %q/%q, want empty", second[10], second[11])
	}
}

func TestCSVWriter_CustomSkillDelimiter(t *testing.T) {
	records := []domain.CanonicalRecord{
		{Title: "Role", ExtractedSkills: []string{"python", "sql"}, Source: "feed"},
	}

	var buf bytes.Buffer
	writer := storage.NewCSVWriter(";", logger.NewNop())
	if err := writer.Write(&buf, records); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-read csv: %v", err)
	}
	if rows[1][15] != "python;sql" {
		t.Errorf("extracted_skills column = %q", rows[1][15])
	}
}
