package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conor-Code-Logistic-Tech/brandability/pkg/types/trademark"
)

func TestConfig_Validate_Defaults(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad_log_level", func(c *Config) { c.Log.Level = "verbose" }},
		{"bad_log_format", func(c *Config) { c.Log.Format = "xml" }},
		{"zero_concurrency", func(c *Config) { c.Worker.Concurrency = 0 }},
		{"metrics_without_namespace", func(c *Config) {
			c.Metrics.Enabled = true
			c.Metrics.Namespace = ""
		}},
		{"inverted_classifier_thresholds", func(c *Config) {
			c.Engine.Classifier.ThresholdLow = 0.1
		}},
		{"aggregator_missing_category", func(c *Config) {
			delete(c.Engine.Aggregator.SucceedConfidence, trademark.CategoryHigh)
		}},
		{"oracle_bad_temperature", func(c *Config) { c.Oracle.Temperature = 5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLogConfig_ToLogging(t *testing.T) {
	lc := LogConfig{Level: "debug", Format: "console", Output: "stderr"}
	got := lc.ToLogging()
	assert.Equal(t, "debug", got.Level)
	assert.Equal(t, "console", got.Format)
	require.Len(t, got.OutputPaths, 1)
	assert.Equal(t, "stderr", got.OutputPaths[0])
}
