package mark

import (
	"github.com/Conor-Code-Logistic-Tech/brandability/pkg/types/trademark"
)

// Comparison is the deterministic half of a mark-versus-mark assessment: the
// visual and aural scores with their mapped categories, plus the phonetic
// codes that produced the aural score.  Conceptual similarity and the overall
// judgement are layered on by the assessment service.
type Comparison struct {
	Applicant Mark
	Opponent  Mark

	VisualScore float64
	AuralScore  float64

	Visual trademark.Category
	Aural  trademark.Category

	ApplicantCodes PhoneticCodes
	OpponentCodes  PhoneticCodes
}

// Compare scores two marks on the visual and aural dimensions.  Scoring is
// symmetric: Compare(a, b) and Compare(b, a) yield identical scores.
func Compare(applicant, opponent Mark) (Comparison, error) {
	c := Comparison{
		Applicant:      applicant,
		Opponent:       opponent,
		VisualScore:    LexicalSimilarity(applicant.Wordmark, opponent.Wordmark),
		AuralScore:     AuralSimilarity(applicant.Wordmark, opponent.Wordmark),
		ApplicantCodes: EncodePhonetic(applicant.Wordmark),
		OpponentCodes:  EncodePhonetic(opponent.Wordmark),
	}

	var err error
	if c.Visual, err = CategoryForScore(c.VisualScore); err != nil {
		return Comparison{}, err
	}
	if c.Aural, err = CategoryForScore(c.AuralScore); err != nil {
		return Comparison{}, err
	}
	return c, nil
}

// FloorOverall raises a proposed overall category when the measured visual or
// aural scores demand it, per the identity-floor rule.
func (c Comparison) FloorOverall(proposed trademark.Category) (trademark.Category, error) {
	return ApplyOverallFloor(c.VisualScore, c.AuralScore, proposed)
}
