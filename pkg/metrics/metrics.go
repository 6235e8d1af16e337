// Package metrics defines the Prometheus metric collectors used across the
// pipeline and renders a text-format snapshot at the end of a run.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus collectors for the pipeline.
type Metrics struct {
	DocsLoadedTotal      prometheus.Counter
	CodesRemappedTotal   *prometheus.CounterVec
	SplitRows            *prometheus.GaugeVec
	StageDuration        *prometheus.HistogramVec
	VocabularySize       prometheus.Gauge
	TermsDroppedTotal    *prometheus.CounterVec
	FeaturesSelected     prometheus.Gauge
	ReportMatchesTotal   *prometheus.CounterVec
	registry             *prometheus.Registry
}

// New creates a Metrics instance backed by its own registry so repeated
// pipeline runs inside one process never collide on registration.
func New() *Metrics {
	m := &Metrics{
		DocsLoadedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "documents_loaded_total",
				Help: "Total documents read from the input CSV.",
			},
		),
		CodesRemappedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "category_codes_remapped_total",
				Help: "Category codes remapped to full labels, by label.",
			},
			[]string{"label"},
		),
		SplitRows: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "split_rows",
				Help: "Rows per subset after the train/validation split.",
			},
			[]string{"subset"},
		),
		StageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stage_duration_seconds",
				Help:    "Wall-clock duration of each pipeline stage.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
			},
			[]string{"stage"},
		),
		VocabularySize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "vocabulary_size",
				Help: "Terms retained after stopword and document-frequency pruning.",
			},
		),
		TermsDroppedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "terms_dropped_total",
				Help: "Candidate terms dropped during vocabulary pruning, by reason.",
			},
			[]string{"reason"},
		),
		FeaturesSelected: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "features_selected",
				Help: "Features retained by the chi-squared selector.",
			},
		),
		ReportMatchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_matches_total",
				Help: "Documents matched per selected term in the report stage.",
			},
			[]string{"term"},
		),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.DocsLoadedTotal,
		m.CodesRemappedTotal,
		m.SplitRows,
		m.StageDuration,
		m.VocabularySize,
		m.TermsDroppedTotal,
		m.FeaturesSelected,
		m.ReportMatchesTotal,
	)

	return m
}
