package bootstrap

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/job-normalizer/internal/api"
	"github.com/jonesrussell/job-normalizer/internal/config"
	"github.com/jonesrussell/job-normalizer/internal/enrich"
	"github.com/jonesrussell/job-normalizer/internal/logger"
	"github.com/jonesrussell/job-normalizer/internal/processor"
	"github.com/jonesrussell/job-normalizer/internal/telemetry"
	"github.com/jonesrussell/job-normalizer/internal/vocabulary"
)

// PipelineComponents holds the normalization pipeline and its dependencies.
type PipelineComponents struct {
	Vocabulary *vocabulary.Vocabulary
	Skills     *enrich.SkillExtractor
	Dates      *enrich.DateNormalizer
	Processor  *processor.BatchProcessor
	Telemetry  *telemetry.Provider
	DB         *sqlx.DB
}

// Close releases pipeline resources.
func (p *PipelineComponents) Close() {
	if p.DB != nil {
		_ = p.DB.Close()
	}
}

// NewPipelineComponents builds the enrichment pipeline from configuration.
func NewPipelineComponents(ctx context.Context, cfg *config.Config, log logger.Logger) *PipelineComponents {
	tp := telemetry.NewProvider()

	vocab, db := SetupVocabulary(cfg, log)
	tp.SetVocabularySize(vocab.Len())

	scanner := SetupScanner(ctx, cfg, log)

	skills := enrich.NewSkillExtractor(vocab, scanner, log)
	skills.SetScanMaxChars(cfg.Scanner.MaxChars)
	skills.SetScanErrorHook(tp.RecordScanError)
	dates := enrich.NewDateNormalizer()

	batch := processor.NewBatchProcessor(skills, dates, cfg.Service.Concurrency, log, tp)

	return &PipelineComponents{
		Vocabulary: vocab,
		Skills:     skills,
		Dates:      dates,
		Processor:  batch,
		Telemetry:  tp,
		DB:         db,
	}
}

// HTTPComponents holds everything needed to run the HTTP server.
type HTTPComponents struct {
	Pipeline *PipelineComponents
	Handler  *api.Handler
	Server   *api.Server
}

// NewHTTPComponents creates all components for the HTTP server.
func NewHTTPComponents(ctx context.Context, cfg *config.Config, log logger.Logger) *HTTPComponents {
	pipeline := NewPipelineComponents(ctx, cfg, log)

	handler := api.NewHandler(
		pipeline.Processor,
		pipeline.Skills,
		pipeline.Dates,
		pipeline.Vocabulary,
		cfg.Service.MaxBatchSize,
		cfg.Service.Version,
		log,
	)

	server := api.NewServer(handler, api.ServerConfig{
		Port:  cfg.Service.Port,
		Debug: cfg.Service.Debug,
	}, pipeline.Telemetry)

	return &HTTPComponents{
		Pipeline: pipeline,
		Handler:  handler,
		Server:   server,
	}
}
