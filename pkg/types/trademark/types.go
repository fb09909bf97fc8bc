// Package trademark defines the stable enumerations and transport shapes of
// the trademark comparison engine.  The string values of every enumeration in
// this file are a compatibility contract with downstream consumers and must
// not change.
package trademark

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Category — the five-step ordinal similarity scale
// ─────────────────────────────────────────────────────────────────────────────

// Category is the ordinal similarity scale used throughout the opposition
// workflow, strictly ordered dissimilar < low < moderate < high < identical.
type Category string

const (
	CategoryDissimilar Category = "dissimilar"
	CategoryLow        Category = "low"
	CategoryModerate   Category = "moderate"
	CategoryHigh       Category = "high"
	CategoryIdentical  Category = "identical"
)

// categoryRanks fixes the total order of the scale.  Rank values are internal;
// only their relative order is meaningful.
var categoryRanks = map[Category]int{
	CategoryDissimilar: 0,
	CategoryLow:        1,
	CategoryModerate:   2,
	CategoryHigh:       3,
	CategoryIdentical:  4,
}

// IsValid checks if the category is one of the five scale values.
func (c Category) IsValid() bool {
	_, ok := categoryRanks[c]
	return ok
}

// String returns the serialized form of the category.
func (c Category) String() string {
	return string(c)
}

// Rank returns the ordinal position of the category on the scale, with
// dissimilar lowest.  Invalid categories rank below dissimilar.
func (c Category) Rank() int {
	if r, ok := categoryRanks[c]; ok {
		return r
	}
	return -1
}

// AtLeast reports whether c ranks at or above other on the ordinal scale.
func (c Category) AtLeast(other Category) bool {
	return c.Rank() >= other.Rank()
}

// MaxCategory returns the higher-ranked of the two categories.
func MaxCategory(a, b Category) Category {
	if a.Rank() >= b.Rank() {
		return a
	}
	return b
}

// MinCategory returns the lower-ranked of the two categories.
func MinCategory(a, b Category) Category {
	if a.Rank() <= b.Rank() {
		return a
	}
	return b
}

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if c.IsValid() {
		return c, nil
	}
	return "", fmt.Errorf("unknown similarity category: %q", s)
}

// Categories returns the five scale values in ascending rank order.
func Categories() []Category {
	return []Category{CategoryDissimilar, CategoryLow, CategoryModerate, CategoryHigh, CategoryIdentical}
}

// ─────────────────────────────────────────────────────────────────────────────
// ConfusionType — direct vs indirect confusion
// ─────────────────────────────────────────────────────────────────────────────

// ConfusionType distinguishes direct confusion (consumer believes the goods
// originate from the same source) from indirect confusion (consumer perceives
// distinct marks but assumes an economic link).  The empty value means no
// confusion type applies.
type ConfusionType string

const (
	ConfusionNone     ConfusionType = ""
	ConfusionDirect   ConfusionType = "direct"
	ConfusionIndirect ConfusionType = "indirect"
)

// IsValid checks if the confusion type is direct, indirect, or absent.
func (t ConfusionType) IsValid() bool {
	switch t {
	case ConfusionNone, ConfusionDirect, ConfusionIndirect:
		return true
	default:
		return false
	}
}

// String returns the serialized form of the confusion type.
func (t ConfusionType) String() string {
	return string(t)
}

// ─────────────────────────────────────────────────────────────────────────────
// Outcome — the three-way case result
// ─────────────────────────────────────────────────────────────────────────────

// Outcome is the three-way aggregated result of an opposition case.
type Outcome string

const (
	OutcomeSucceed Outcome = "succeed"
	OutcomePartial Outcome = "partial"
	OutcomeFail    Outcome = "fail"
)

// IsValid checks if the outcome is one of the three case results.
func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeSucceed, OutcomePartial, OutcomeFail:
		return true
	default:
		return false
	}
}

// String returns the short serialized form of the outcome.
func (o Outcome) String() string {
	return string(o)
}

// Verdict returns the long-form verdict phrase used in reports and serialized
// case files.  These phrases are a compatibility contract with existing
// consumers of the opposition workflow.
func (o Outcome) Verdict() string {
	switch o {
	case OutcomeSucceed:
		return "Opposition likely to succeed"
	case OutcomePartial:
		return "Opposition may partially succeed"
	case OutcomeFail:
		return "Opposition likely to fail"
	default:
		return "Unknown outcome"
	}
}

// ParseOutcome parses a short outcome label or a verdict phrase.
func ParseOutcome(s string) (Outcome, error) {
	switch s {
	case string(OutcomeSucceed), OutcomeSucceed.Verdict():
		return OutcomeSucceed, nil
	case string(OutcomePartial), OutcomePartial.Verdict():
		return OutcomePartial, nil
	case string(OutcomeFail), OutcomeFail.Verdict():
		return OutcomeFail, nil
	default:
		return "", fmt.Errorf("unknown opposition outcome: %q", s)
	}
}
