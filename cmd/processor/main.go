// Command processor runs the pipeline once: it reads raw scraper output
// from JSON files, normalizes and enriches the records, and writes one flat
// CSV for the downstream loader.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonesrussell/job-normalizer/internal/bootstrap"
	"github.com/jonesrussell/job-normalizer/internal/domain"
	"github.com/jonesrussell/job-normalizer/internal/logger"
	"github.com/jonesrussell/job-normalizer/internal/storage"
)

func main() {
	inputDir := flag.String("input", "data/raw", "directory of raw JSON files")
	outputPath := flag.String("output", "", "output CSV path (overrides config)")
	flag.Parse()

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := bootstrap.CreateLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	out := *outputPath
	if out == "" {
		out = cfg.Output.Path
	}
	if out == "" {
		out = "data/processed/jobs.csv"
	}

	ctx := context.Background()

	rawRecords, err := loadRawRecords(*inputDir, log)
	if err != nil {
		log.Fatal("loading raw records failed", logger.Error(err))
	}
	if len(rawRecords) == 0 {
		log.Fatal("no input", logger.Error(domain.ErrNoRawRecords))
	}

	pipeline := bootstrap.NewPipelineComponents(ctx, cfg, log)
	defer pipeline.Close()

	records, err := pipeline.Processor.Process(ctx, rawRecords)
	if err != nil {
		log.Fatal("processing failed", logger.Error(err))
	}

	writer := storage.NewCSVWriter(cfg.Output.SkillsDelimiter, log)
	if err := writer.WriteFile(out, records); err != nil {
		log.Fatal("writing output failed", logger.Error(err))
	}

	log.Info("pipeline complete",
		logger.Int("in", len(rawRecords)),
		logger.Int("out", len(records)),
		logger.String("output", out))
}

// loadRawRecords reads every JSON file in dir. Each file holds an array of
// raw records; records without a source tag inherit the file's base name.
// Unreadable files are logged and skipped so one bad scraper cannot block
// the rest.
func loadRawRecords(dir string, log logger.Logger) ([]domain.RawRecord, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	var all []domain.RawRecord
	for _, path := range paths {
		records, readErr := readRecordFile(path)
		if readErr != nil {
			log.Warn("skipping input file",
				logger.String("path", path),
				logger.Error(readErr))
			continue
		}

		source := strings.TrimSuffix(filepath.Base(path), ".json")
		for _, record := range records {
			if record.Source() == "" {
				record[domain.SourceKey] = source
			}
			all = append(all, record)
		}

		log.Info("loaded input file",
			logger.String("path", path),
			logger.Int("records", len(records)))
	}

	return all, nil
}

func readRecordFile(path string) ([]domain.RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var records []domain.RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	return records, nil
}
