// Package config defines the configuration surface of the opposition engine.
// No I/O or parsing logic lives here; only plain data types and validation.
package config

import (
	"fmt"

	"github.com/Conor-Code-Logistic-Tech/brandability/internal/domain/goods"
	"github.com/Conor-Code-Logistic-Tech/brandability/internal/domain/opposition"
	"github.com/Conor-Code-Logistic-Tech/brandability/internal/infrastructure/monitoring/logging"
	"github.com/Conor-Code-Logistic-Tech/brandability/internal/intelligence/semantic"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level        string `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format       string `mapstructure:"format"` // "json" | "console"
	Output       string `mapstructure:"output"`
	EnableCaller bool   `mapstructure:"enable_caller"`
}

// ToLogging converts to the logger package's config type.
func (c LogConfig) ToLogging() logging.LogConfig {
	return logging.LogConfig{
		Level:       c.Level,
		Format:      c.Format,
		OutputPaths: []string{c.Output},
	}
}

// WorkerConfig holds the per-pair classification fan-out parameters.
type WorkerConfig struct {
	// Concurrency is the number of goroutines classifying pairs in parallel.
	Concurrency int `mapstructure:"concurrency"`
}

// MetricsConfig holds Prometheus exposition parameters.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

// EngineConfig groups the calibrated decision tunables.
type EngineConfig struct {
	Classifier goods.ClassifierTunables      `mapstructure:"classifier"`
	Aggregator opposition.AggregatorTunables `mapstructure:"aggregator"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Root Config
// ─────────────────────────────────────────────────────────────────────────────

// Config is the root configuration of the engine.
type Config struct {
	Log     LogConfig             `mapstructure:"log"`
	Worker  WorkerConfig          `mapstructure:"worker"`
	Metrics MetricsConfig         `mapstructure:"metrics"`
	Engine  EngineConfig          `mapstructure:"engine"`
	Oracle  semantic.OracleConfig `mapstructure:"oracle"`
}

// Validate performs semantic validation of the fully-populated Config.  It
// returns the first error encountered; callers should treat any error as
// fatal and refuse to start.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	if c.Worker.Concurrency < 1 {
		return fmt.Errorf("config: worker.concurrency must be >= 1, got %d", c.Worker.Concurrency)
	}

	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return fmt.Errorf("config: metrics.namespace is required when metrics are enabled")
	}

	if err := c.Engine.Classifier.Validate(); err != nil {
		return fmt.Errorf("config: engine.classifier: %w", err)
	}
	if err := c.Engine.Aggregator.Validate(); err != nil {
		return fmt.Errorf("config: engine.aggregator: %w", err)
	}
	if err := c.Oracle.Validate(); err != nil {
		return fmt.Errorf("config: oracle: %w", err)
	}
	return nil
}
