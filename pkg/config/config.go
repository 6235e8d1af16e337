// Package config loads and validates application configuration from YAML files
// with environment-variable overrides. It provides typed structs for every
// pipeline stage (Dataset, Split, Vectorizer, Selection, Report).
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	apperrors "github.com/Adithya-Monish-Kumar-K/Headline-Feature-Analytics/pkg/errors"
)

// Config is the top-level application configuration.
type Config struct {
	Dataset    DatasetConfig    `yaml:"dataset"`
	Split      SplitConfig      `yaml:"split"`
	Vectorizer VectorizerConfig `yaml:"vectorizer"`
	Selection  SelectionConfig  `yaml:"selection"`
	Report     ReportConfig     `yaml:"report"`
	Logging    LoggingConfig    `yaml:"logging"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// DatasetConfig locates the input CSV and names the columns to project.
type DatasetConfig struct {
	Path           string `yaml:"path"`
	TitleColumn    string `yaml:"titleColumn"`
	CategoryColumn string `yaml:"categoryColumn"`
}

// SplitConfig controls the train/validation partition.
type SplitConfig struct {
	Seed               int64   `yaml:"seed"`
	ValidationFraction float64 `yaml:"validationFraction"`
}

// VectorizerConfig holds the vocabulary pruning thresholds.
type VectorizerConfig struct {
	MinDocFreq      int     `yaml:"minDocFreq"`
	MaxDocFreqRatio float64 `yaml:"maxDocFreqRatio"`
}

// SelectionConfig controls how many features the chi-squared selector keeps.
type SelectionConfig struct {
	TopK int `yaml:"topK"`
}

// ReportConfig controls the per-term category report.
type ReportConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls the end-of-run Prometheus text dump.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Load reads a YAML config file (if provided) and applies environment-variable
// overrides. It returns a Config populated with sensible defaults for any
// missing values.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every threshold is inside its legal range.
func (c *Config) Validate() error {
	if c.Split.ValidationFraction <= 0 || c.Split.ValidationFraction >= 1 {
		return apperrors.Newf(apperrors.ErrInvalidInput, apperrors.ExitConfig,
			"validationFraction must be in (0, 1), got %g", c.Split.ValidationFraction)
	}
	if c.Vectorizer.MinDocFreq < 1 {
		return apperrors.Newf(apperrors.ErrInvalidInput, apperrors.ExitConfig,
			"minDocFreq must be at least 1, got %d", c.Vectorizer.MinDocFreq)
	}
	if c.Vectorizer.MaxDocFreqRatio <= 0 || c.Vectorizer.MaxDocFreqRatio > 1 {
		return apperrors.Newf(apperrors.ErrInvalidInput, apperrors.ExitConfig,
			"maxDocFreqRatio must be in (0, 1], got %g", c.Vectorizer.MaxDocFreqRatio)
	}
	if c.Selection.TopK < 1 {
		return apperrors.Newf(apperrors.ErrInvalidInput, apperrors.ExitConfig,
			"topK must be at least 1, got %d", c.Selection.TopK)
	}
	if c.Dataset.TitleColumn == "" || c.Dataset.CategoryColumn == "" {
		return apperrors.Newf(apperrors.ErrInvalidInput, apperrors.ExitConfig,
			"dataset column names must not be empty")
	}
	return nil
}

// defaultConfig returns a Config with the default analysis settings.
func defaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Path:           "data/headlines.csv",
			TitleColumn:    "TITLE",
			CategoryColumn: "CATEGORY",
		},
		Split: SplitConfig{
			Seed:               42,
			ValidationFraction: 0.2,
		},
		Vectorizer: VectorizerConfig{
			MinDocFreq:      2,
			MaxDocFreqRatio: 0.5,
		},
		Selection: SelectionConfig{
			TopK: 10,
		},
		Report: ReportConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: false,
		},
	}
}

// applyEnvOverrides reads HFA_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HFA_DATASET_PATH"); v != "" {
		cfg.Dataset.Path = v
	}
	if v := os.Getenv("HFA_DATASET_TITLE_COLUMN"); v != "" {
		cfg.Dataset.TitleColumn = v
	}
	if v := os.Getenv("HFA_DATASET_CATEGORY_COLUMN"); v != "" {
		cfg.Dataset.CategoryColumn = v
	}
	if v := os.Getenv("HFA_SPLIT_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Split.Seed = seed
		}
	}
	if v := os.Getenv("HFA_SPLIT_VALIDATION_FRACTION"); v != "" {
		if frac, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Split.ValidationFraction = frac
		}
	}
	if v := os.Getenv("HFA_VECTORIZER_MIN_DOC_FREQ"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Vectorizer.MinDocFreq = n
		}
	}
	if v := os.Getenv("HFA_VECTORIZER_MAX_DOC_FREQ_RATIO"); v != "" {
		if ratio, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Vectorizer.MaxDocFreqRatio = ratio
		}
	}
	if v := os.Getenv("HFA_SELECTION_TOP_K"); v != "" {
		if k, err := strconv.Atoi(v); err == nil {
			cfg.Selection.TopK = k
		}
	}
	if v := os.Getenv("HFA_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("HFA_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("HFA_METRICS_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Metrics.Enabled = enabled
		}
	}
}
