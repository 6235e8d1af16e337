package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Adithya-Monish-Kumar-K/Headline-Feature-Analytics/internal/pipeline"
	"github.com/Adithya-Monish-Kumar-K/Headline-Feature-Analytics/internal/report"
	"github.com/Adithya-Monish-Kumar-K/Headline-Feature-Analytics/pkg/config"
	apperrors "github.com/Adithya-Monish-Kumar-K/Headline-Feature-Analytics/pkg/errors"
	"github.com/Adithya-Monish-Kumar-K/Headline-Feature-Analytics/pkg/logger"
	"github.com/Adithya-Monish-Kumar-K/Headline-Feature-Analytics/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(apperrors.ExitCode(err))
	}
	if flag.NArg() > 0 {
		cfg.Dataset.Path = flag.Arg(0)
	}

	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Info("starting feature selection",
		"dataset", cfg.Dataset.Path,
		"seed", cfg.Split.Seed,
		"top_k", cfg.Selection.TopK,
	)

	m := metrics.New()
	outcome, err := pipeline.New(cfg, m).Run()
	if err != nil {
		slog.Error("pipeline failed", "error", err)
		os.Exit(apperrors.ExitCode(err))
	}

	fmt.Println(report.RenderSummary(outcome.Summary))
	for _, termReport := range outcome.Reports {
		fmt.Println(report.RenderTerm(termReport))
	}

	if cfg.Metrics.Enabled {
		if err := m.Dump(os.Stderr); err != nil {
			slog.Warn("metrics dump failed", "error", err)
		}
	}
}
