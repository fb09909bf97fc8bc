package prometheus

import (
	"time"

	"github.com/Conor-Code-Logistic-Tech/brandability/pkg/types/trademark"
)

// EngineMetrics holds the opposition engine's metric families.
type EngineMetrics struct {
	// Case pipeline
	CasesTotal   CounterVec   // labels: outcome
	CaseDuration HistogramVec // labels: outcome

	// Mark comparison
	ComparisonsTotal CounterVec   // no labels
	SimilarityScores HistogramVec // labels: dimension ("visual" | "aural")

	// Pair classification
	PairsClassified CounterVec // labels: confusion ("true" | "false"), type

	// Assessor calls
	AssessorErrorsTotal CounterVec // labels: code

	// Fan-out
	ActiveWorkers GaugeVec // no labels
}

// Score histograms bucket the unit interval evenly.
var DefaultScoreBuckets = []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}

// DefaultCaseDurationBuckets cover the expected in-process latency range.
var DefaultCaseDurationBuckets = []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1}

// NewEngineMetrics registers every metric family against the collector.
func NewEngineMetrics(collector MetricsCollector) *EngineMetrics {
	return &EngineMetrics{
		CasesTotal: collector.RegisterCounter(
			"cases_total", "Opposition cases assessed", "outcome"),
		CaseDuration: collector.RegisterHistogram(
			"case_duration_seconds", "End-to-end case assessment duration",
			DefaultCaseDurationBuckets, "outcome"),
		ComparisonsTotal: collector.RegisterCounter(
			"mark_comparisons_total", "Mark-versus-mark comparisons performed"),
		SimilarityScores: collector.RegisterHistogram(
			"similarity_score", "Distribution of computed similarity scores",
			DefaultScoreBuckets, "dimension"),
		PairsClassified: collector.RegisterCounter(
			"pairs_classified_total", "Goods/services pairs classified",
			"confusion", "type"),
		AssessorErrorsTotal: collector.RegisterCounter(
			"assessor_errors_total", "Semantic assessor failures", "code"),
		ActiveWorkers: collector.RegisterGauge(
			"active_workers", "Classification workers currently running"),
	}
}

// ObserveCase records a finished case.
func (m *EngineMetrics) ObserveCase(outcome trademark.Outcome, elapsed time.Duration) {
	m.CasesTotal.WithLabelValues(outcome.String()).Inc()
	m.CaseDuration.WithLabelValues(outcome.String()).Observe(elapsed.Seconds())
}

// ObserveComparison records a mark comparison and its dimension scores.
func (m *EngineMetrics) ObserveComparison(visualScore, auralScore float64) {
	m.ComparisonsTotal.WithLabelValues().Inc()
	m.SimilarityScores.WithLabelValues("visual").Observe(visualScore)
	m.SimilarityScores.WithLabelValues("aural").Observe(auralScore)
}

// ObservePair records one classification determination.
func (m *EngineMetrics) ObservePair(confusion bool, typ trademark.ConfusionType) {
	label := "false"
	if confusion {
		label = "true"
	}
	m.PairsClassified.WithLabelValues(label, typ.String()).Inc()
}

// ObserveAssessorError records a failed assessor call by error code.
func (m *EngineMetrics) ObserveAssessorError(code string) {
	m.AssessorErrorsTotal.WithLabelValues(code).Inc()
}
