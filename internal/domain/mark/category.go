package mark

import (
	"fmt"

	"github.com/Conor-Code-Logistic-Tech/brandability/pkg/errors"
	"github.com/Conor-Code-Logistic-Tech/brandability/pkg/types/trademark"
)

// Category band boundaries.  Lower bounds are inclusive; upper bounds
// exclusive except the top band, which includes 1.0.  These are a stable
// contract of the legal workflow, not tunables.
const (
	ThresholdLow       = 0.2
	ThresholdModerate  = 0.4
	ThresholdHigh      = 0.6
	ThresholdIdentical = 0.8
)

// identityFloorScore is the score above which a single dimension counts as an
// identity-level match for the overall floor rule.
const identityFloorScore = 0.8

// CategoryForScore maps a similarity score in [0, 1] onto the five-step
// ordinal scale.  Scores outside the unit interval are rejected, never
// clamped: a malformed score must not silently degrade legal output.
func CategoryForScore(score float64) (trademark.Category, error) {
	if score < 0 || score > 1 {
		return "", errors.New(errors.ErrCodeMarkScoreInvalid,
			fmt.Sprintf("similarity score %v outside [0, 1]", score))
	}
	switch {
	case score < ThresholdLow:
		return trademark.CategoryDissimilar, nil
	case score < ThresholdModerate:
		return trademark.CategoryLow, nil
	case score < ThresholdHigh:
		return trademark.CategoryModerate, nil
	case score < ThresholdIdentical:
		return trademark.CategoryHigh, nil
	default:
		return trademark.CategoryIdentical, nil
	}
}

// ApplyOverallFloor bounds a holistic overall judgment from below.  Near-total
// form identity dominates conceptual divergence under EU/UK opposition
// doctrine, so:
//
//   - if both the visual and aural scores exceed the identity band boundary,
//     overall may not rank below the higher of their mapped categories;
//   - if exactly one of them exceeds it, overall may not rank below high.
//
// The proposed category is returned unchanged when no floor applies or when
// it already satisfies the floor.
func ApplyOverallFloor(visualScore, auralScore float64, proposed trademark.Category) (trademark.Category, error) {
	visual, err := CategoryForScore(visualScore)
	if err != nil {
		return "", err
	}
	aural, err := CategoryForScore(auralScore)
	if err != nil {
		return "", err
	}
	if !proposed.IsValid() {
		return "", errors.New(errors.ErrCodeMarkCategoryInvalid,
			fmt.Sprintf("unknown overall category %q", proposed))
	}

	var floor trademark.Category
	switch {
	case visualScore > identityFloorScore && auralScore > identityFloorScore:
		floor = trademark.MaxCategory(visual, aural)
	case visualScore > identityFloorScore || auralScore > identityFloorScore:
		floor = trademark.CategoryHigh
	default:
		return proposed, nil
	}

	return trademark.MaxCategory(proposed, floor), nil
}
