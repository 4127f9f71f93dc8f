// Package processor runs raw record batches through the normalization
// pipeline: schema unification, text cleaning, deduplication, and parallel
// per-record enrichment.
package processor

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonesrussell/job-normalizer/internal/domain"
	"github.com/jonesrussell/job-normalizer/internal/enrich"
	"github.com/jonesrussell/job-normalizer/internal/logger"
	"github.com/jonesrussell/job-normalizer/internal/telemetry"
)

const defaultConcurrency = 10

// Raw record fields cleaned before deduplication and enrichment.
const (
	fieldTitle       = "title"
	fieldCompany     = "company"
	fieldDescription = "description"
	fieldLocation    = "location"
	fieldSalary      = "salary"
	fieldURL         = "url"
	fieldPostedDate  = "posted_date"
)

// BatchProcessor normalizes raw record batches using a worker pool.
// Unification, cleaning, and deduplication run sequentially so the keep-first
// duplicate rule is deterministic; enrichment fans out across workers.
type BatchProcessor struct {
	skills      *enrich.SkillExtractor
	dates       *enrich.DateNormalizer
	concurrency int
	logger      logger.Logger
	telemetry   *telemetry.Provider
}

// NewBatchProcessor creates a batch processor. Concurrency values below one
// fall back to the default pool size.
func NewBatchProcessor(
	skills *enrich.SkillExtractor,
	dates *enrich.DateNormalizer,
	concurrency int,
	log logger.Logger,
	tp *telemetry.Provider,
) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	return &BatchProcessor{
		skills:      skills,
		dates:       dates,
		concurrency: concurrency,
		logger:      log,
		telemetry:   tp,
	}
}

// Process normalizes a batch of raw records. Output order matches input
// order minus dropped duplicates. An empty batch yields an empty batch and
// no error; per-record problems never fail the batch.
func (b *BatchProcessor) Process(ctx context.Context, rawRecords []domain.RawRecord) ([]domain.CanonicalRecord, error) {
	if len(rawRecords) == 0 {
		return []domain.CanonicalRecord{}, nil
	}

	batchID := uuid.NewString()
	start := time.Now()

	b.logger.Info("starting batch",
		logger.String("batch_id", batchID),
		logger.Int("batch_size", len(rawRecords)),
		logger.Int("concurrency", b.concurrency))

	prepared := b.prepare(rawRecords)
	kept := b.deduplicate(batchID, prepared)

	results := make([]domain.CanonicalRecord, len(kept))

	jobs := make(chan int, len(kept))
	var wg sync.WaitGroup
	for w := 0; w < b.concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}
				results[i] = b.enrichRecord(ctx, kept[i])
			}
		}()
	}

	for i := range kept {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	duration := time.Since(start)
	if b.telemetry != nil {
		b.telemetry.RecordBatch(len(rawRecords), duration)
	}

	b.logger.Info("batch complete",
		logger.String("batch_id", batchID),
		logger.Int("in", len(rawRecords)),
		logger.Int("out", len(results)),
		logger.Int("duplicates", len(rawRecords)-len(kept)),
		logger.Duration("duration", duration))

	return results, nil
}

// prepare unifies each record's schema and cleans its text fields. The input
// batch is never mutated.
func (b *BatchProcessor) prepare(rawRecords []domain.RawRecord) []domain.RawRecord {
	prepared := make([]domain.RawRecord, len(rawRecords))
	for i, raw := range rawRecords {
		record := enrich.UnifySchema(raw)
		for _, field := range []string{fieldTitle, fieldCompany, fieldDescription, fieldLocation} {
			if _, ok := record[field]; ok {
				record[field] = enrich.CleanText(record.String(field))
			}
		}
		prepared[i] = record
	}
	return prepared
}

// deduplicate drops records whose cleaned (title, company) pair was already
// seen earlier in the batch. The first occurrence wins.
func (b *BatchProcessor) deduplicate(batchID string, records []domain.RawRecord) []domain.RawRecord {
	seen := make(map[domain.DedupKey]struct{}, len(records))
	kept := make([]domain.RawRecord, 0, len(records))

	for _, record := range records {
		key := domain.DedupKey{
			Title:   record.String(fieldTitle),
			Company: record.String(fieldCompany),
		}
		if _, dup := seen[key]; dup {
			if b.telemetry != nil {
				b.telemetry.RecordDuplicate()
			}
			b.logger.Debug("duplicate dropped",
				logger.String("batch_id", batchID),
				logger.String("title", key.Title),
				logger.String("company", key.Company))
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, record)
	}

	return kept
}

// enrichRecord derives the canonical record for one prepared raw record.
// Each derived field is computed in isolation: a panic in one parser leaves
// that field zero-valued and the rest of the record intact.
func (b *BatchProcessor) enrichRecord(ctx context.Context, record domain.RawRecord) domain.CanonicalRecord {
	start := time.Now()
	source := record.Source()

	result := domain.CanonicalRecord{
		Title:           record.String(fieldTitle),
		Company:         record.String(fieldCompany),
		Location:        record.String(fieldLocation),
		Description:     record.String(fieldDescription),
		URL:             record.String(fieldURL),
		Salary:          record.String(fieldSalary),
		ExtractedSkills: []string{},
		Source:          source,
	}

	b.safeField(ctx, source, result.Title, "location", func() {
		result.NormalizedLocation = enrich.NormalizeLocation(result.Location)
	})

	b.safeField(ctx, source, result.Title, "salary", func() {
		parsed := enrich.ParseSalary(result.Salary)
		result.SalaryMin = parsed.Min
		result.SalaryMax = parsed.Max
		result.SalaryCurrency = parsed.Currency
		result.SalaryPeriod = parsed.Period
	})

	b.safeField(ctx, source, result.Title, "posted_date", func() {
		result.PostedDate = b.dates.Normalize(record.String(fieldPostedDate))
	})

	b.safeField(ctx, source, result.Title, "skills", func() {
		result.ExtractedSkills = b.skills.Extract(ctx, result.Description)
	})

	if b.telemetry != nil {
		b.telemetry.RecordRecord(ctx, source, time.Since(start))
		b.telemetry.RecordSkillCount(len(result.ExtractedSkills))
	}

	return result
}

// safeField runs one field derivation, recovering panics so a malformed
// value can never take down the batch.
func (b *BatchProcessor) safeField(ctx context.Context, source, title, field string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if b.telemetry != nil {
				b.telemetry.RecordEnrichmentFailure(field)
				b.telemetry.RecordFailure(ctx, source, "FieldEnrichmentFailure")
			}
			b.logger.Error("field enrichment failed",
				logger.String("field", field),
				logger.String("source", source),
				logger.String("title", title),
				logger.Any("panic", r))
		}
	}()
	fn()
}
