// Package pipeline wires the stages together: load, split, vectorize,
// weight, select, report. Execution is strictly sequential; each stage
// blocks until complete and any error aborts the run.
package pipeline

import (
	"log/slog"
	"time"

	"github.com/Adithya-Monish-Kumar-K/Headline-Feature-Analytics/internal/dataset"
	"github.com/Adithya-Monish-Kumar-K/Headline-Feature-Analytics/internal/report"
	"github.com/Adithya-Monish-Kumar-K/Headline-Feature-Analytics/internal/selection"
	"github.com/Adithya-Monish-Kumar-K/Headline-Feature-Analytics/internal/vectorize"
	"github.com/Adithya-Monish-Kumar-K/Headline-Feature-Analytics/pkg/config"
	"github.com/Adithya-Monish-Kumar-K/Headline-Feature-Analytics/pkg/logger"
	"github.com/Adithya-Monish-Kumar-K/Headline-Feature-Analytics/pkg/metrics"
)

// Outcome collects everything a run produced, for printing and inspection.
type Outcome struct {
	RunID        string
	Train        dataset.Table
	Validation   dataset.Table
	Vocabulary   *vectorize.Vocabulary
	Selection    *selection.Result
	Selected     []string
	Summary      []report.SummaryRow
	Reports      []report.TermReport
	CategoryDist []dataset.CategoryCount
}

// Pipeline runs the full feature-selection sequence over one dataset.
type Pipeline struct {
	cfg     *config.Config
	metrics *metrics.Metrics
	log     *slog.Logger
	runID   string
}

// New builds a Pipeline. Passing a nil Metrics allocates a private instance.
func New(cfg *config.Config, m *metrics.Metrics) *Pipeline {
	if m == nil {
		m = metrics.New()
	}
	runID := logger.NewRunID()
	return &Pipeline{
		cfg:     cfg,
		metrics: m,
		log:     logger.ForRun(runID).With("component", "pipeline"),
		runID:   runID,
	}
}

// Run executes every stage in order and returns the collected outcome.
func (p *Pipeline) Run() (*Outcome, error) {
	outcome := &Outcome{RunID: p.runID}

	// Load + remap.
	start := time.Now()
	raw, err := dataset.Load(p.cfg.Dataset.Path, p.cfg.Dataset.TitleColumn, p.cfg.Dataset.CategoryColumn)
	if err != nil {
		return nil, err
	}
	full := dataset.RemapCategories(raw, func(label string) {
		p.metrics.CodesRemappedTotal.WithLabelValues(label).Inc()
	})
	p.metrics.DocsLoadedTotal.Add(float64(len(full)))
	p.observeStage("load", start)
	outcome.CategoryDist = dataset.ValueCounts(full)
	p.log.Info("dataset loaded",
		"path", p.cfg.Dataset.Path,
		"rows", len(full),
		"categories", len(outcome.CategoryDist),
	)

	// Split.
	start = time.Now()
	train, validation, err := dataset.Split(full, p.cfg.Split.ValidationFraction, p.cfg.Split.Seed)
	if err != nil {
		return nil, err
	}
	p.metrics.SplitRows.WithLabelValues("train").Set(float64(len(train)))
	p.metrics.SplitRows.WithLabelValues("validation").Set(float64(len(validation)))
	p.observeStage("split", start)
	outcome.Train = train
	outcome.Validation = validation
	p.log.Info("dataset split",
		"seed", p.cfg.Split.Seed,
		"fraction", p.cfg.Split.ValidationFraction,
		"train_rows", len(train),
		"validation_rows", len(validation),
	)

	// Vectorize + weight. The vocabulary is built from the validation
	// subset's titles only.
	start = time.Now()
	docs := vectorize.TokenizeAll(validation.Titles())
	vocab, err := vectorize.BuildVocabulary(docs, p.cfg.Vectorizer.MinDocFreq, p.cfg.Vectorizer.MaxDocFreqRatio,
		func(reason string) {
			p.metrics.TermsDroppedTotal.WithLabelValues(reason).Inc()
		})
	if err != nil {
		return nil, err
	}
	counts := vectorize.CountMatrix(docs, vocab)
	weighted := vectorize.TFIDF(counts, vocab)
	p.metrics.VocabularySize.Set(float64(vocab.Size()))
	p.observeStage("vectorize", start)
	outcome.Vocabulary = vocab
	p.log.Info("titles vectorized",
		"documents", weighted.Rows,
		"vocabulary_size", vocab.Size(),
		"nonzero_weights", weighted.NNZ(),
	)

	// Select.
	start = time.Now()
	result, err := selection.SelectKBest(weighted, validation.Categories(), p.cfg.Selection.TopK)
	if err != nil {
		return nil, err
	}
	p.metrics.FeaturesSelected.Set(float64(len(result.Indices)))
	p.observeStage("select", start)
	outcome.Selection = result
	outcome.Selected = make([]string, len(result.Indices))
	outcome.Summary = make([]report.SummaryRow, len(result.Indices))
	for i, col := range result.Indices {
		term := vocab.Terms[col]
		outcome.Selected[i] = term
		outcome.Summary[i] = report.SummaryRow{
			Term:    term,
			Score:   result.Scores[i],
			PValue:  result.PValues[i],
			DocFreq: vocab.DocFreq[col],
		}
	}
	p.log.Info("features selected", "k", p.cfg.Selection.TopK, "terms", outcome.Selected)

	// Report.
	if p.cfg.Report.Enabled {
		start = time.Now()
		outcome.Reports = report.Build(outcome.Selected, validation, func(term string, matched int) {
			p.metrics.ReportMatchesTotal.WithLabelValues(term).Add(float64(matched))
		})
		p.observeStage("report", start)
	}

	return outcome, nil
}

func (p *Pipeline) observeStage(stage string, start time.Time) {
	p.metrics.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}
