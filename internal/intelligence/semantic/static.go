package semantic

import (
	"context"
	"strings"

	"github.com/Conor-Code-Logistic-Tech/brandability/internal/domain/mark"
	"github.com/Conor-Code-Logistic-Tech/brandability/pkg/types/trademark"
)

// StaticAssessor answers conceptual assessments from a fixed table.  It backs
// the CLI (where case files carry the conceptual category inline) and tests;
// deployments with an LLM oracle swap in their own Assessor.
//
// The zero value is not usable; construct with NewStaticAssessor.
type StaticAssessor struct {
	fallback trademark.Category
	byPair   map[string]MarkAssessment
}

// NewStaticAssessor returns an assessor answering the given category for any
// pair of marks.
func NewStaticAssessor(fallback trademark.Category) *StaticAssessor {
	return &StaticAssessor{
		fallback: fallback,
		byPair:   make(map[string]MarkAssessment),
	}
}

// WithPair pins the assessment for one specific pair of wordmarks.  Lookup is
// order-insensitive and goes through the same normalization as scoring.
// Returns the receiver for chaining.
func (s *StaticAssessor) WithPair(a, b string, assessment MarkAssessment) *StaticAssessor {
	s.byPair[pairKey(a, b)] = assessment
	return s
}

// AssessMarks implements Assessor.
func (s *StaticAssessor) AssessMarks(ctx context.Context, applicant, opponent mark.Mark) (MarkAssessment, error) {
	if err := ctx.Err(); err != nil {
		return MarkAssessment{}, err
	}
	if a, ok := s.byPair[pairKey(applicant.Wordmark, opponent.Wordmark)]; ok {
		return a, nil
	}
	return MarkAssessment{
		Conceptual: s.fallback,
		Reasoning:  "static conceptual assessment",
	}, nil
}

func pairKey(a, b string) string {
	na, nb := mark.Normalize(a), mark.Normalize(b)
	if strings.Compare(na, nb) > 0 {
		na, nb = nb, na
	}
	return na + "\x00" + nb
}
