package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jonesrussell/job-normalizer/internal/domain"
	"github.com/jonesrussell/job-normalizer/internal/logger"
)

// DefaultSkillDelimiter joins extracted skills inside the single
// extracted_skills column.
const DefaultSkillDelimiter = ","

// csvHeader is the flat column contract consumed by the downstream SQL
// loader. Column order is part of the contract.
var csvHeader = []string{
	"title",
	"company",
	"location",
	"city",
	"state",
	"country",
	"is_remote",
	"description",
	"url",
	"salary",
	"salary_min",
	"salary_max",
	"salary_currency",
	"salary_period",
	"posted_date",
	"extracted_skills",
	"source",
}

// CSVWriter encodes canonical records as flat CSV rows.
type CSVWriter struct {
	skillDelimiter string
	logger         logger.Logger
}

// NewCSVWriter creates a CSV writer. An empty delimiter falls back to the
// default.
func NewCSVWriter(skillDelimiter string, log logger.Logger) *CSVWriter {
	if skillDelimiter == "" {
		skillDelimiter = DefaultSkillDelimiter
	}
	return &CSVWriter{skillDelimiter: skillDelimiter, logger: log}
}

// Write encodes the records with a header row.
func (w *CSVWriter) Write(out io.Writer, records []domain.CanonicalRecord) error {
	cw := csv.NewWriter(out)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := range records {
		if err := cw.Write(w.row(&records[i])); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	return nil
}

// WriteFile encodes the records to path, creating or truncating it.
func (w *CSVWriter) WriteFile(path string, records []domain.CanonicalRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if writeErr := w.Write(f, records); writeErr != nil {
		_ = f.Close()
		return writeErr
	}

	if closeErr := f.Close(); closeErr != nil {
		return fmt.Errorf("close %s: %w", path, closeErr)
	}

	if w.logger != nil {
		w.logger.Info("wrote output file",
			logger.String("path", path),
			logger.Int("records", len(records)))
	}

	return nil
}

func (w *CSVWriter) row(r *domain.CanonicalRecord) []string {
	return []string{
		r.Title,
		r.Company,
		r.Location,
		r.NormalizedLocation.City,
		r.NormalizedLocation.State,
		r.NormalizedLocation.Country,
		strconv.FormatBool(r.NormalizedLocation.IsRemote),
		r.Description,
		r.URL,
		r.Salary,
		formatBound(r.SalaryMin),
		formatBound(r.SalaryMax),
		r.SalaryCurrency,
		r.SalaryPeriod,
		r.PostedDate,
		strings.Join(r.ExtractedSkills, w.skillDelimiter),
		r.Source,
	}
}

// formatBound renders a salary bound, or "" when it is null.
func formatBound(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
