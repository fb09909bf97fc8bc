package opposition

import (
	"fmt"
	"math"

	"github.com/Conor-Code-Logistic-Tech/brandability/internal/domain/goods"
	"github.com/Conor-Code-Logistic-Tech/brandability/pkg/errors"
	"github.com/Conor-Code-Logistic-Tech/brandability/pkg/types/trademark"
)

// AggregatorTunables calibrate the confidence attached to each outcome
// branch.
type AggregatorTunables struct {
	// FailMarkWeights discount the confidence of a total failure by how
	// similar the marks were: failing despite identical marks is a less
	// certain call than failing over dissimilar ones.
	FailMarkWeights map[trademark.Category]float64 `json:"fail_mark_weights" yaml:"fail_mark_weights" mapstructure:"fail_mark_weights"`

	// SucceedConfidence is the confidence of a full success per overall mark
	// category.
	SucceedConfidence map[trademark.Category]float64 `json:"succeed_confidence" yaml:"succeed_confidence" mapstructure:"succeed_confidence"`

	// PartialConfidenceLow and PartialConfidenceHigh bound the confidence of
	// a partial outcome.  Confidence is lowest when the confused fraction
	// sits near one half and rises toward either extreme.
	PartialConfidenceLow  float64 `json:"partial_confidence_low" yaml:"partial_confidence_low" mapstructure:"partial_confidence_low"`
	PartialConfidenceHigh float64 `json:"partial_confidence_high" yaml:"partial_confidence_high" mapstructure:"partial_confidence_high"`
}

// DefaultAggregatorTunables returns the calibrated production values.
func DefaultAggregatorTunables() AggregatorTunables {
	return AggregatorTunables{
		FailMarkWeights: map[trademark.Category]float64{
			trademark.CategoryDissimilar: 0.05,
			trademark.CategoryLow:        0.10,
			trademark.CategoryModerate:   0.20,
			trademark.CategoryHigh:       0.30,
			trademark.CategoryIdentical:  0.35,
		},
		SucceedConfidence: map[trademark.Category]float64{
			trademark.CategoryDissimilar: 0.55,
			trademark.CategoryLow:        0.60,
			trademark.CategoryModerate:   0.75,
			trademark.CategoryHigh:       0.85,
			trademark.CategoryIdentical:  0.90,
		},
		PartialConfidenceLow:  0.4,
		PartialConfidenceHigh: 0.6,
	}
}

// Validate checks that both per-category tables are complete, every value
// lies in [0, 1], and the partial bounds are ordered.
func (t AggregatorTunables) Validate() error {
	for _, cat := range trademark.Categories() {
		w, ok := t.FailMarkWeights[cat]
		if !ok {
			return errors.New(errors.ErrCodeCaseConfigInvalid,
				fmt.Sprintf("fail mark weight missing for category %q", cat))
		}
		if w < 0 || w > 1 {
			return errors.New(errors.ErrCodeCaseConfigInvalid,
				fmt.Sprintf("fail mark weight %v outside [0, 1]", w))
		}
		c, ok := t.SucceedConfidence[cat]
		if !ok {
			return errors.New(errors.ErrCodeCaseConfigInvalid,
				fmt.Sprintf("succeed confidence missing for category %q", cat))
		}
		if c < 0 || c > 1 {
			return errors.New(errors.ErrCodeCaseConfigInvalid,
				fmt.Sprintf("succeed confidence %v outside [0, 1]", c))
		}
	}
	if t.PartialConfidenceLow < 0 || t.PartialConfidenceHigh > 1 ||
		t.PartialConfidenceLow > t.PartialConfidenceHigh {
		return errors.New(errors.ErrCodeCaseConfigInvalid,
			fmt.Sprintf("partial confidence bounds [%v, %v] invalid",
				t.PartialConfidenceLow, t.PartialConfidenceHigh))
	}
	return nil
}

// Aggregate folds per-pair determinations into the case outcome.  The rule is
// total: every pair confused means the opposition succeeds, none confused
// means it fails, and any mix yields a partial outcome whose confidence stays
// within the configured bounds.  An empty determination list is rejected.
func (t AggregatorTunables) Aggregate(determinations []goods.Determination, markOverall trademark.Category) (CaseOutcome, error) {
	if len(determinations) == 0 {
		return CaseOutcome{}, errors.New(errors.ErrCodeCaseNoPairs,
			"opposition case requires at least one goods/services pair")
	}
	if !markOverall.IsValid() {
		return CaseOutcome{}, errors.New(errors.ErrCodeMarkCategoryInvalid,
			fmt.Sprintf("unknown overall mark category %q", markOverall))
	}

	facts := Facts{TotalPairs: len(determinations), MarkOverall: markOverall}
	for _, d := range determinations {
		if !d.Confusion {
			continue
		}
		facts.ConfusedPairs++
		switch d.Type {
		case trademark.ConfusionDirect:
			facts.DirectCount++
		case trademark.ConfusionIndirect:
			facts.IndirectCount++
		}
	}

	out := CaseOutcome{Facts: facts}
	switch {
	case facts.ConfusedPairs == 0:
		out.Result = trademark.OutcomeFail
		out.Confidence = 1.0 - t.FailMarkWeights[markOverall]
		out.Reasoning = fmt.Sprintf(
			"no likelihood of confusion across %d goods/services pair(s) under %s marks",
			facts.TotalPairs, markOverall)
	case facts.ConfusedPairs == facts.TotalPairs:
		out.Result = trademark.OutcomeSucceed
		out.Confidence = t.SucceedConfidence[markOverall]
		out.Reasoning = fmt.Sprintf(
			"likelihood of confusion for all %d goods/services pair(s) under %s marks (%d direct, %d indirect)",
			facts.TotalPairs, markOverall, facts.DirectCount, facts.IndirectCount)
	default:
		out.Result = trademark.OutcomePartial
		fraction := float64(facts.ConfusedPairs) / float64(facts.TotalPairs)
		spread := t.PartialConfidenceHigh - t.PartialConfidenceLow
		out.Confidence = t.PartialConfidenceLow + spread*2*math.Abs(fraction-0.5)
		out.Reasoning = fmt.Sprintf(
			"likelihood of confusion for %d of %d goods/services pair(s) under %s marks (%d direct, %d indirect)",
			facts.ConfusedPairs, facts.TotalPairs, markOverall, facts.DirectCount, facts.IndirectCount)
	}
	return out, nil
}
