// Package telemetry provides OpenTelemetry instrumentation for the
// normalizer service. It exports Prometheus metrics and provides tracing
// capabilities.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "job-normalizer"

// Metrics holds all normalizer Prometheus metrics.
type Metrics struct {
	// Processing metrics
	RecordsProcessed   *prometheus.CounterVec
	RecordsFailed      *prometheus.CounterVec
	DuplicatesDropped  prometheus.Counter
	ProcessingDuration *prometheus.HistogramVec
	BatchSize          prometheus.Histogram
	BatchDuration      prometheus.Histogram

	// Enrichment metrics
	EnrichmentFailures *prometheus.CounterVec
	SkillsPerRecord    prometheus.Histogram
	ScanErrors         prometheus.Counter

	// Vocabulary metrics
	VocabularyTokens prometheus.Gauge
}

// Provider wraps telemetry providers.
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics.
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	m := &Metrics{}
	initProcessingMetrics(m)
	initEnrichmentMetrics(m)
	initVocabularyMetrics(m)
	return m
}

func initProcessingMetrics(m *Metrics) {
	m.RecordsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "normalizer_records_processed_total",
		Help: "Total records successfully normalized",
	}, []string{"source"})

	m.RecordsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "normalizer_records_failed_total",
		Help: "Total records that failed normalization",
	}, []string{"source", "error_code"})

	m.DuplicatesDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "normalizer_duplicates_dropped_total",
		Help: "Total records dropped as title and company duplicates",
	})

	m.ProcessingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "normalizer_processing_duration_seconds",
		Help:    "Time to normalize a single record",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
	}, []string{"source"})

	m.BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "normalizer_batch_size",
		Help:    "Number of records per batch",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 200, 500},
	})

	m.BatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "normalizer_batch_duration_seconds",
		Help:    "Time to process a whole batch",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
	})
}

func initEnrichmentMetrics(m *Metrics) {
	m.EnrichmentFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "normalizer_enrichment_failures_total",
		Help: "Total per-field enrichment failures",
	}, []string{"field"})

	m.SkillsPerRecord = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "normalizer_skills_per_record",
		Help:    "Number of skills extracted per record",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
	})

	m.ScanErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "normalizer_entity_scan_errors_total",
		Help: "Total failed entity scanner calls",
	})
}

func initVocabularyMetrics(m *Metrics) {
	m.VocabularyTokens = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "normalizer_vocabulary_tokens",
		Help: "Distinct skill tokens in the active vocabulary",
	})
}

// RecordRecord records metrics for a single normalized record.
func (p *Provider) RecordRecord(_ context.Context, source string, duration time.Duration) {
	p.Metrics.RecordsProcessed.WithLabelValues(source).Inc()
	p.Metrics.ProcessingDuration.WithLabelValues(source).Observe(duration.Seconds())
}

// RecordFailure records a failed record with its error code.
func (p *Provider) RecordFailure(_ context.Context, source, errorCode string) {
	p.Metrics.RecordsFailed.WithLabelValues(source, errorCode).Inc()
}

// RecordEnrichmentFailure counts a recovered per-field enrichment failure.
func (p *Provider) RecordEnrichmentFailure(field string) {
	p.Metrics.EnrichmentFailures.WithLabelValues(field).Inc()
}

// RecordDuplicate counts a record dropped by deduplication.
func (p *Provider) RecordDuplicate() {
	p.Metrics.DuplicatesDropped.Inc()
}

// RecordBatch records the size and duration of a completed batch.
func (p *Provider) RecordBatch(size int, duration time.Duration) {
	p.Metrics.BatchSize.Observe(float64(size))
	p.Metrics.BatchDuration.Observe(duration.Seconds())
}

// RecordSkillCount observes the number of skills found in one record.
func (p *Provider) RecordSkillCount(count int) {
	p.Metrics.SkillsPerRecord.Observe(float64(count))
}

// RecordScanError counts a failed entity scanner call.
func (p *Provider) RecordScanError() {
	p.Metrics.ScanErrors.Inc()
}

// SetVocabularySize publishes the active vocabulary size.
func (p *Provider) SetVocabularySize(tokens int) {
	p.Metrics.VocabularyTokens.Set(float64(tokens))
}
