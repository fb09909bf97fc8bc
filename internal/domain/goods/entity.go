// Package goods provides the domain layer for goods/services comparison: the
// classified term value object, scored applicant/opponent pairs, and the
// likelihood-of-confusion classifier with its interdependence thresholds.
package goods

import (
	"fmt"
	"strings"

	"github.com/Conor-Code-Logistic-Tech/brandability/pkg/errors"
)

// Nice Classification bounds (WIPO, 12th edition): classes 1-34 are goods,
// 35-45 are services.
const (
	NiceClassMin = 1
	NiceClassMax = 45
)

// GoodService is a single goods or services term under its Nice class.
type GoodService struct {
	Term      string `json:"term" yaml:"term"`
	NiceClass int    `json:"nice_class" yaml:"nice_class"`
}

// NewGoodService constructs a GoodService, validating the term and class.
func NewGoodService(term string, niceClass int) (GoodService, error) {
	gs := GoodService{Term: term, NiceClass: niceClass}
	if err := gs.Validate(); err != nil {
		return GoodService{}, err
	}
	return gs, nil
}

// Validate checks the term is non-empty and the Nice class is in range.
func (g GoodService) Validate() error {
	if strings.TrimSpace(g.Term) == "" {
		return errors.New(errors.ErrCodeGSEmptyTerm, "goods/services term cannot be empty")
	}
	if g.NiceClass < NiceClassMin || g.NiceClass > NiceClassMax {
		return errors.New(errors.ErrCodeGSNiceClassInvalid,
			fmt.Sprintf("nice class %d outside [%d, %d]", g.NiceClass, NiceClassMin, NiceClassMax))
	}
	return nil
}

// IsService reports whether the term falls in the services classes (35-45).
func (g GoodService) IsService() bool {
	return g.NiceClass >= 35
}

// Pair is one applicant term scored against one opponent term, together with
// the market-relationship flags the confusion classifier consumes.
type Pair struct {
	Applicant GoodService `json:"applicant" yaml:"applicant"`
	Opponent  GoodService `json:"opponent" yaml:"opponent"`

	// SimilarityScore is the goods/services similarity in [0, 1].
	SimilarityScore float64 `json:"similarity_score" yaml:"similarity_score"`

	// Competitive marks the terms as substitutes in the same market.
	Competitive bool `json:"are_competitive" yaml:"are_competitive"`

	// Complementary marks the terms as used together or distributed through
	// the same channels.
	Complementary bool `json:"are_complementary" yaml:"are_complementary"`
}

// Validate rejects pairs whose similarity score falls outside [0, 1].  Scores
// are never clamped; a malformed score is a caller bug that must surface.
func (p Pair) Validate() error {
	if err := p.Applicant.Validate(); err != nil {
		return err
	}
	if err := p.Opponent.Validate(); err != nil {
		return err
	}
	if p.SimilarityScore < 0 || p.SimilarityScore > 1 {
		return errors.New(errors.ErrCodeGSScoreInvalid,
			fmt.Sprintf("goods/services similarity score %v outside [0, 1]", p.SimilarityScore))
	}
	return nil
}
