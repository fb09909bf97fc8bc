// Package semantic defines the conceptual-assessment capability of the
// engine.  Conceptual similarity and the holistic overall judgment cannot be
// computed from surface form alone, so they flow through the Assessor
// interface supplied by the caller.  The engine itself stays deterministic:
// given the same assessor answers, identical inputs always produce identical
// outputs.
package semantic

import (
	"context"
	"fmt"

	"github.com/Conor-Code-Logistic-Tech/brandability/internal/domain/mark"
	"github.com/Conor-Code-Logistic-Tech/brandability/pkg/errors"
	"github.com/Conor-Code-Logistic-Tech/brandability/pkg/types/trademark"
)

// MarkAssessment is an assessor's answer for one pair of marks.  Overall may
// be left empty, in which case the engine derives it from the measured visual
// and aural scores blended with the conceptual category.
type MarkAssessment struct {
	Conceptual trademark.Category `json:"conceptual" yaml:"conceptual"`
	Overall    trademark.Category `json:"overall,omitempty" yaml:"overall,omitempty"`
	Reasoning  string             `json:"reasoning,omitempty" yaml:"reasoning,omitempty"`
}

// Validate rejects assessments carrying unknown categories.
func (a MarkAssessment) Validate() error {
	if !a.Conceptual.IsValid() {
		return errors.New(errors.ErrCodeSemanticInvalidResult,
			fmt.Sprintf("assessor returned unknown conceptual category %q", a.Conceptual))
	}
	if a.Overall != "" && !a.Overall.IsValid() {
		return errors.New(errors.ErrCodeSemanticInvalidResult,
			fmt.Sprintf("assessor returned unknown overall category %q", a.Overall))
	}
	return nil
}

// Assessor judges the conceptual relationship between two marks.
//
// Implementations must be safe for concurrent use; the assessment service
// calls AssessMarks once per case but callers may share one assessor across
// cases.
type Assessor interface {
	AssessMarks(ctx context.Context, applicant, opponent mark.Mark) (MarkAssessment, error)
}

// Dimension weights for the derived overall judgment.  Visual impression
// carries the most weight in opposition practice, aural slightly less, and
// conceptual content the remainder.
const (
	WeightVisual     = 0.40
	WeightAural      = 0.35
	WeightConceptual = 0.25
)

// categoryMidpoints map an ordinal category back onto a representative score
// at the center of its band.
var categoryMidpoints = map[trademark.Category]float64{
	trademark.CategoryDissimilar: 0.1,
	trademark.CategoryLow:        0.3,
	trademark.CategoryModerate:   0.5,
	trademark.CategoryHigh:       0.7,
	trademark.CategoryIdentical:  0.9,
}

// DeriveOverall blends the measured visual and aural scores with the
// conceptual category into an overall category.  Used when an assessor does
// not volunteer its own holistic judgment.  The identity floor is NOT applied
// here; the caller layers it on top.
func DeriveOverall(visualScore, auralScore float64, conceptual trademark.Category) (trademark.Category, error) {
	mid, ok := categoryMidpoints[conceptual]
	if !ok {
		return "", errors.New(errors.ErrCodeSemanticInvalidResult,
			fmt.Sprintf("unknown conceptual category %q", conceptual))
	}
	if visualScore < 0 || visualScore > 1 || auralScore < 0 || auralScore > 1 {
		return "", errors.New(errors.ErrCodeMarkScoreInvalid,
			fmt.Sprintf("dimension scores (%v, %v) outside [0, 1]", visualScore, auralScore))
	}
	blended := WeightVisual*visualScore + WeightAural*auralScore + WeightConceptual*mid
	return mark.CategoryForScore(blended)
}

// OracleConfig carries the knobs of an LLM-backed assessor.  The engine
// treats it opaquely: it is parsed, validated, and handed to whichever
// assessor implementation the deployment wires in.
type OracleConfig struct {
	ModelID         string  `json:"model_id" yaml:"model_id" mapstructure:"model_id"`
	Temperature     float64 `json:"temperature" yaml:"temperature" mapstructure:"temperature"`
	MaxOutputTokens int     `json:"max_output_tokens" yaml:"max_output_tokens" mapstructure:"max_output_tokens"`
	TimeoutMs       int     `json:"timeout_ms" yaml:"timeout_ms" mapstructure:"timeout_ms"`
	MaxRetries      int     `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// NewOracleConfig returns the default oracle knobs.
func NewOracleConfig() OracleConfig {
	return OracleConfig{
		ModelID:         "gemini-2.5-pro",
		Temperature:     0.2,
		MaxOutputTokens: 2048,
		TimeoutMs:       30000,
		MaxRetries:      3,
	}
}

// Validate checks the oracle knobs are sane.
func (c OracleConfig) Validate() error {
	if c.Temperature < 0 || c.Temperature > 2.0 {
		return errors.New(errors.ErrCodeCaseConfigInvalid,
			fmt.Sprintf("oracle temperature %v outside [0, 2]", c.Temperature))
	}
	if c.MaxOutputTokens <= 0 {
		return errors.New(errors.ErrCodeCaseConfigInvalid, "oracle max output tokens must be positive")
	}
	if c.TimeoutMs <= 0 {
		return errors.New(errors.ErrCodeCaseConfigInvalid, "oracle timeout must be positive")
	}
	if c.MaxRetries < 0 {
		return errors.New(errors.ErrCodeCaseConfigInvalid, "oracle max retries must not be negative")
	}
	return nil
}
