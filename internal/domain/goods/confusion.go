package goods

import (
	"fmt"

	"github.com/Conor-Code-Logistic-Tech/brandability/pkg/errors"
	"github.com/Conor-Code-Logistic-Tech/brandability/pkg/types/trademark"
)

// ClassifierTunables hold the interdependence thresholds of the confusion
// classifier.  Weaker mark similarity demands a stronger goods/services
// showing, so the threshold rises as the overall mark category falls.
type ClassifierTunables struct {
	// ThresholdIdenticalHigh applies when the marks are identical or highly
	// similar overall.
	ThresholdIdenticalHigh float64 `json:"threshold_identical_high" yaml:"threshold_identical_high" mapstructure:"threshold_identical_high"`
	// ThresholdModerate applies to moderately similar marks.
	ThresholdModerate float64 `json:"threshold_moderate" yaml:"threshold_moderate" mapstructure:"threshold_moderate"`
	// ThresholdLow applies to marks of low similarity.
	ThresholdLow float64 `json:"threshold_low" yaml:"threshold_low" mapstructure:"threshold_low"`
	// ThresholdDissimilar applies to dissimilar marks; confusion then
	// requires near-identical goods.
	ThresholdDissimilar float64 `json:"threshold_dissimilar" yaml:"threshold_dissimilar" mapstructure:"threshold_dissimilar"`

	// DirectScoreFloor is the goods similarity at or above which confusion is
	// classified as direct regardless of the competitive flag.
	DirectScoreFloor float64 `json:"direct_score_floor" yaml:"direct_score_floor" mapstructure:"direct_score_floor"`
}

// DefaultClassifierTunables returns the calibrated production thresholds.
func DefaultClassifierTunables() ClassifierTunables {
	return ClassifierTunables{
		ThresholdIdenticalHigh: 0.5,
		ThresholdModerate:      0.65,
		ThresholdLow:           0.8,
		ThresholdDissimilar:    0.95,
		DirectScoreFloor:       0.9,
	}
}

// Validate checks every threshold lies in [0, 1] and that thresholds are
// non-decreasing as mark similarity weakens.
func (t ClassifierTunables) Validate() error {
	for _, v := range []float64{
		t.ThresholdIdenticalHigh, t.ThresholdModerate,
		t.ThresholdLow, t.ThresholdDissimilar, t.DirectScoreFloor,
	} {
		if v < 0 || v > 1 {
			return errors.New(errors.ErrCodeCaseConfigInvalid,
				fmt.Sprintf("classifier threshold %v outside [0, 1]", v))
		}
	}
	if t.ThresholdIdenticalHigh > t.ThresholdModerate ||
		t.ThresholdModerate > t.ThresholdLow ||
		t.ThresholdLow > t.ThresholdDissimilar {
		return errors.New(errors.ErrCodeCaseConfigInvalid,
			"classifier thresholds must not decrease as mark similarity weakens")
	}
	return nil
}

// ThresholdFor returns the goods similarity threshold demanded under the
// given overall mark category.
func (t ClassifierTunables) ThresholdFor(markOverall trademark.Category) (float64, error) {
	switch markOverall {
	case trademark.CategoryIdentical, trademark.CategoryHigh:
		return t.ThresholdIdenticalHigh, nil
	case trademark.CategoryModerate:
		return t.ThresholdModerate, nil
	case trademark.CategoryLow:
		return t.ThresholdLow, nil
	case trademark.CategoryDissimilar:
		return t.ThresholdDissimilar, nil
	default:
		return 0, errors.New(errors.ErrCodeMarkCategoryInvalid,
			fmt.Sprintf("unknown overall mark category %q", markOverall))
	}
}

// Determination is the classifier's verdict for a single goods/services pair.
type Determination struct {
	Confusion bool
	Type      trademark.ConfusionType

	// Threshold is the interdependence threshold that was applied, recorded
	// for the reasoning output.
	Threshold float64
}

// Classify decides likelihood of confusion for one pair under the given
// overall mark similarity.  When confusion is found, the type is direct for
// competitive or near-identical goods and indirect for complementary ones;
// absent both flags the finding defaults to direct.
func (t ClassifierTunables) Classify(p Pair, markOverall trademark.Category) (Determination, error) {
	if err := p.Validate(); err != nil {
		return Determination{}, err
	}
	threshold, err := t.ThresholdFor(markOverall)
	if err != nil {
		return Determination{}, err
	}

	d := Determination{Threshold: threshold}
	if p.SimilarityScore < threshold {
		return d, nil
	}

	d.Confusion = true
	switch {
	case p.Competitive || p.SimilarityScore >= t.DirectScoreFloor:
		d.Type = trademark.ConfusionDirect
	case p.Complementary:
		d.Type = trademark.ConfusionIndirect
	default:
		d.Type = trademark.ConfusionDirect
	}
	return d, nil
}
