// Package opposition aggregates per-pair confusion determinations into the
// three-way case outcome with a calibrated confidence and structured
// reasoning facts.
package opposition

import (
	"github.com/Conor-Code-Logistic-Tech/brandability/pkg/types/trademark"
)

// Facts are the countable inputs behind an outcome, carried alongside the
// prose reasoning so downstream consumers never have to parse text.
type Facts struct {
	TotalPairs    int                `json:"total_pairs" yaml:"total_pairs"`
	ConfusedPairs int                `json:"confused_pairs" yaml:"confused_pairs"`
	DirectCount   int                `json:"direct_count" yaml:"direct_count"`
	IndirectCount int                `json:"indirect_count" yaml:"indirect_count"`
	MarkOverall   trademark.Category `json:"mark_overall" yaml:"mark_overall"`
}

// CaseOutcome is the aggregated verdict of an opposition case.
type CaseOutcome struct {
	Result     trademark.Outcome `json:"result" yaml:"result"`
	Confidence float64           `json:"confidence" yaml:"confidence"`
	Reasoning  string            `json:"reasoning" yaml:"reasoning"`
	Facts      Facts             `json:"facts" yaml:"facts"`
}

// Verdict returns the long-form phrase for the outcome, e.g. "Opposition
// likely to succeed".
func (o CaseOutcome) Verdict() string {
	return o.Result.Verdict()
}
