package config

import (
	"github.com/Conor-Code-Logistic-Tech/brandability/internal/domain/goods"
	"github.com/Conor-Code-Logistic-Tech/brandability/internal/domain/opposition"
	"github.com/Conor-Code-Logistic-Tech/brandability/internal/intelligence/semantic"
)

const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
	DefaultLogOutput = "stdout"

	DefaultWorkerConcurrency = 4

	DefaultMetricsNamespace = "brandability"
)

// ApplyDefaults fills every zero-value field in cfg with the engine default.
// Fields already set by the caller are left unchanged so that explicit
// configuration always wins.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = DefaultLogOutput
	}

	if cfg.Worker.Concurrency == 0 {
		cfg.Worker.Concurrency = DefaultWorkerConcurrency
	}

	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}

	if cfg.Engine.Classifier == (goods.ClassifierTunables{}) {
		cfg.Engine.Classifier = goods.DefaultClassifierTunables()
	}
	if cfg.Engine.Aggregator.FailMarkWeights == nil {
		cfg.Engine.Aggregator.FailMarkWeights = opposition.DefaultAggregatorTunables().FailMarkWeights
	}
	if cfg.Engine.Aggregator.SucceedConfidence == nil {
		cfg.Engine.Aggregator.SucceedConfidence = opposition.DefaultAggregatorTunables().SucceedConfidence
	}
	if cfg.Engine.Aggregator.PartialConfidenceLow == 0 && cfg.Engine.Aggregator.PartialConfidenceHigh == 0 {
		def := opposition.DefaultAggregatorTunables()
		cfg.Engine.Aggregator.PartialConfidenceLow = def.PartialConfidenceLow
		cfg.Engine.Aggregator.PartialConfidenceHigh = def.PartialConfidenceHigh
	}

	if cfg.Oracle == (semantic.OracleConfig{}) {
		cfg.Oracle = semantic.NewOracleConfig()
	}
}
