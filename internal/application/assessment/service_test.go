package assessment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conor-Code-Logistic-Tech/brandability/internal/config"
	"github.com/Conor-Code-Logistic-Tech/brandability/internal/domain/mark"
	"github.com/Conor-Code-Logistic-Tech/brandability/internal/infrastructure/monitoring/logging"
	"github.com/Conor-Code-Logistic-Tech/brandability/internal/intelligence/semantic"
	apperrors "github.com/Conor-Code-Logistic-Tech/brandability/pkg/errors"
	"github.com/Conor-Code-Logistic-Tech/brandability/pkg/types/common"
	"github.com/Conor-Code-Logistic-Tech/brandability/pkg/types/trademark"
)

type failingAssessor struct{}

func (failingAssessor) AssessMarks(context.Context, mark.Mark, mark.Mark) (semantic.MarkAssessment, error) {
	return semantic.MarkAssessment{}, apperrors.New(apperrors.ErrCodeSemanticUnavailable, "oracle down")
}

func newTestService(t *testing.T, assessor semantic.Assessor) *Service {
	t.Helper()
	if assessor == nil {
		assessor = semantic.NewStaticAssessor(trademark.CategoryDissimilar)
	}
	svc, err := NewService(config.Default(), assessor, logging.NewNopLogger(), nil)
	require.NoError(t, err)
	return svc
}

func clothingPair(score float64, competitive bool) trademark.GoodsPairDTO {
	return trademark.GoodsPairDTO{
		ApplicantGood:   trademark.GoodServiceDTO{Term: "clothing", NiceClass: 25},
		OpponentGood:    trademark.GoodServiceDTO{Term: "clothing", NiceClass: 25},
		SimilarityScore: score,
		AreCompetitive:  competitive,
	}
}

func TestNewService_Validation(t *testing.T) {
	_, err := NewService(config.Default(), nil, logging.NewNopLogger(), nil)
	assert.Error(t, err)

	cfg := config.Default()
	cfg.Worker.Concurrency = 0
	_, err = NewService(cfg, semantic.NewStaticAssessor(trademark.CategoryDissimilar), nil, nil)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeCaseConfigInvalid))

	cfg = config.Default()
	cfg.Engine.Classifier.ThresholdLow = 0.1
	_, err = NewService(cfg, semantic.NewStaticAssessor(trademark.CategoryDissimilar), nil, nil)
	assert.Error(t, err)
}

func TestAssessCase_ZareusVsZara(t *testing.T) {
	svc := newTestService(t, nil)

	req := trademark.CaseRequest{
		Applicant: trademark.MarkDTO{Wordmark: "ZAREUS"},
		Opponent:  trademark.MarkDTO{Wordmark: "ZARA", IsRegistered: true, RegistrationNumber: "UK00000123456"},
		Pairs:     []trademark.GoodsPairDTO{clothingPair(1.0, true)},
	}

	res, err := svc.AssessCase(context.Background(), req)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, res.VisualScore, 1e-9)
	assert.InDelta(t, 2.0/3.0, res.AuralScore, 1e-9)
	assert.Equal(t, trademark.CategoryModerate, res.MarkSimilarity.Visual)
	assert.Equal(t, trademark.CategoryHigh, res.MarkSimilarity.Aural)
	assert.Equal(t, trademark.CategoryDissimilar, res.MarkSimilarity.Conceptual)
	assert.Equal(t, trademark.CategoryModerate, res.MarkSimilarity.Overall)

	require.Len(t, res.Determinations, 1)
	assert.True(t, res.Determinations[0].LikelihoodOfConfusion)
	assert.Equal(t, trademark.ConfusionDirect, res.Determinations[0].ConfusionType)

	assert.Equal(t, trademark.OutcomeSucceed, res.Outcome.Outcome)
	assert.Equal(t, "Opposition likely to succeed", res.Outcome.Result)
	assert.InDelta(t, 0.75, res.Outcome.Confidence, 1e-9)
	assert.Equal(t, 1, res.Outcome.Facts.ConfusedPairs)
	assert.NoError(t, res.CaseID.Validate())
	assert.False(t, time.Time(res.AssessedAt).IsZero())
}

func TestAssessCase_EmptyPairList(t *testing.T) {
	svc := newTestService(t, nil)
	_, err := svc.AssessCase(context.Background(), trademark.CaseRequest{
		Applicant: trademark.MarkDTO{Wordmark: "A"},
		Opponent:  trademark.MarkDTO{Wordmark: "B"},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeCaseNoPairs))
}

func TestAssessCase_InvalidPairScore(t *testing.T) {
	svc := newTestService(t, nil)
	_, err := svc.AssessCase(context.Background(), trademark.CaseRequest{
		Applicant: trademark.MarkDTO{Wordmark: "A"},
		Opponent:  trademark.MarkDTO{Wordmark: "B"},
		Pairs:     []trademark.GoodsPairDTO{clothingPair(1.4, false)},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeGSScoreInvalid))
}

func TestAssessCase_EmptyWordmark(t *testing.T) {
	svc := newTestService(t, nil)
	_, err := svc.AssessCase(context.Background(), trademark.CaseRequest{
		Applicant: trademark.MarkDTO{Wordmark: "  "},
		Opponent:  trademark.MarkDTO{Wordmark: "ZARA"},
		Pairs:     []trademark.GoodsPairDTO{clothingPair(1.0, true)},
	})
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeMarkEmptyWordmark))
}

func TestAssessCase_Deterministic(t *testing.T) {
	svc := newTestService(t, nil)
	req := trademark.CaseRequest{
		CaseID:    common.NewID(),
		Applicant: trademark.MarkDTO{Wordmark: "ZAREUS"},
		Opponent:  trademark.MarkDTO{Wordmark: "ZARA"},
		Pairs: []trademark.GoodsPairDTO{
			clothingPair(1.0, true),
			clothingPair(0.3, false),
			clothingPair(0.7, true),
		},
	}

	first, err := svc.AssessCase(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.AssessCase(context.Background(), req)
	require.NoError(t, err)

	// Everything except the assessment timestamp must be identical.
	first.AssessedAt = common.Timestamp{}
	second.AssessedAt = common.Timestamp{}
	assert.Equal(t, first, second)
}

func TestAssessCase_PreservesPairOrder(t *testing.T) {
	cfg := config.Default()
	cfg.Worker.Concurrency = 8
	svc, err := NewService(cfg, semantic.NewStaticAssessor(trademark.CategoryDissimilar), logging.NewNopLogger(), nil)
	require.NoError(t, err)

	scores := []float64{0.95, 0.1, 0.7, 0.66, 0.2, 0.9, 0.05, 0.8, 0.65, 0.3}
	pairs := make([]trademark.GoodsPairDTO, len(scores))
	for i, s := range scores {
		pairs[i] = clothingPair(s, false)
	}

	res, err := svc.AssessCase(context.Background(), trademark.CaseRequest{
		Applicant:  trademark.MarkDTO{Wordmark: "ZAREUS"},
		Opponent:   trademark.MarkDTO{Wordmark: "ZARA"},
		Conceptual: trademark.CategoryModerate,
		Pairs:      pairs,
	})
	require.NoError(t, err)

	require.Len(t, res.Determinations, len(scores))
	for i, d := range res.Determinations {
		assert.Equal(t, scores[i], d.SimilarityScore, "determination %d out of order", i)
	}
}

func TestAssessCase_HonorsProvidedConceptual(t *testing.T) {
	// The assessor would say dissimilar; the case file says identical and
	// must win, lifting the derived overall.
	svc := newTestService(t, nil)

	res, err := svc.AssessCase(context.Background(), trademark.CaseRequest{
		Applicant:  trademark.MarkDTO{Wordmark: "ZAREUS"},
		Opponent:   trademark.MarkDTO{Wordmark: "ZARA"},
		Conceptual: trademark.CategoryIdentical,
		Pairs:      []trademark.GoodsPairDTO{clothingPair(0.6, false)},
	})
	require.NoError(t, err)

	assert.Equal(t, trademark.CategoryIdentical, res.MarkSimilarity.Conceptual)
	// 0.40*0.5 + 0.35*(2/3) + 0.25*0.9 = 0.658 -> high
	assert.Equal(t, trademark.CategoryHigh, res.MarkSimilarity.Overall)
}

func TestAssessCase_RejectsUnknownCategoryInRequest(t *testing.T) {
	svc := newTestService(t, nil)
	_, err := svc.AssessCase(context.Background(), trademark.CaseRequest{
		Applicant:  trademark.MarkDTO{Wordmark: "A"},
		Opponent:   trademark.MarkDTO{Wordmark: "B"},
		Conceptual: trademark.Category("vibes"),
		Pairs:      []trademark.GoodsPairDTO{clothingPair(0.5, false)},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeMarkCategoryInvalid))
}

func TestAssessCase_AssessorFailure(t *testing.T) {
	svc := newTestService(t, failingAssessor{})
	_, err := svc.AssessCase(context.Background(), trademark.CaseRequest{
		Applicant: trademark.MarkDTO{Wordmark: "A"},
		Opponent:  trademark.MarkDTO{Wordmark: "B"},
		Pairs:     []trademark.GoodsPairDTO{clothingPair(0.5, false)},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeSemanticUnavailable))
}

func TestAssessCase_KeepsProvidedCaseID(t *testing.T) {
	svc := newTestService(t, nil)
	id := common.NewID()
	res, err := svc.AssessCase(context.Background(), trademark.CaseRequest{
		CaseID:    id,
		Applicant: trademark.MarkDTO{Wordmark: "A"},
		Opponent:  trademark.MarkDTO{Wordmark: "B"},
		Pairs:     []trademark.GoodsPairDTO{clothingPair(0.5, false)},
	})
	require.NoError(t, err)
	assert.Equal(t, id, res.CaseID)
}

func TestCompareMarks_IdentityFloor(t *testing.T) {
	// Identical wordmarks with a divergent conceptual reading: form identity
	// must dominate, pinning overall to identical.
	svc := newTestService(t, nil)

	res, err := svc.CompareMarks(context.Background(),
		trademark.MarkDTO{Wordmark: "KITKAT"},
		trademark.MarkDTO{Wordmark: "KitKat"})
	require.NoError(t, err)

	assert.Equal(t, 1.0, res.VisualScore)
	assert.Equal(t, 1.0, res.AuralScore)
	assert.Equal(t, trademark.CategoryDissimilar, res.Similarity.Conceptual)
	assert.Equal(t, trademark.CategoryIdentical, res.Similarity.Overall)
	assert.NotEmpty(t, res.Similarity.Reasoning)
}

func TestCompareMarks_UsesAssessorOverall(t *testing.T) {
	assessor := semantic.NewStaticAssessor(trademark.CategoryDissimilar).
		WithPair("ZAREUS", "ZARA", semantic.MarkAssessment{
			Conceptual: trademark.CategoryLow,
			Overall:    trademark.CategoryHigh,
			Reasoning:  "shared ZAR- prefix dominates the comparison",
		})
	svc := newTestService(t, assessor)

	res, err := svc.CompareMarks(context.Background(),
		trademark.MarkDTO{Wordmark: "ZAREUS"},
		trademark.MarkDTO{Wordmark: "ZARA"})
	require.NoError(t, err)

	assert.Equal(t, trademark.CategoryHigh, res.Similarity.Overall)
	assert.Equal(t, "shared ZAR- prefix dominates the comparison", res.Similarity.Reasoning)
}

func TestAssessCase_CancelledContext(t *testing.T) {
	svc := newTestService(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.AssessCase(ctx, trademark.CaseRequest{
		Applicant: trademark.MarkDTO{Wordmark: "A"},
		Opponent:  trademark.MarkDTO{Wordmark: "B"},
		Pairs:     []trademark.GoodsPairDTO{clothingPair(0.5, false)},
	})
	assert.Error(t, err)
}

func TestExpandPairs(t *testing.T) {
	applicants := []trademark.GoodServiceDTO{
		{Term: "clothing", NiceClass: 25},
		{Term: "retail services", NiceClass: 35},
	}
	opponents := []trademark.GoodServiceDTO{
		{Term: "Clothing", NiceClass: 25},
		{Term: "footwear", NiceClass: 25},
		{Term: "software", NiceClass: 9},
	}

	pairs := ExpandPairs(applicants, opponents, nil)
	require.Len(t, pairs, 6)

	// Applicant-major, opponent-minor ordering.
	assert.Equal(t, "clothing", pairs[0].ApplicantGood.Term)
	assert.Equal(t, "Clothing", pairs[0].OpponentGood.Term)
	assert.Equal(t, "software", pairs[2].OpponentGood.Term)
	assert.Equal(t, "retail services", pairs[3].ApplicantGood.Term)

	// Identical normalized term and class.
	assert.Equal(t, 1.0, pairs[0].SimilarityScore)
	assert.True(t, pairs[0].AreCompetitive)
	// Same class, different term.
	assert.Equal(t, 0.5, pairs[1].SimilarityScore)
	// Different class.
	assert.Equal(t, 0.0, pairs[2].SimilarityScore)
	assert.False(t, pairs[2].AreCompetitive)
}

func TestExpandPairs_CustomScorer(t *testing.T) {
	applicants := []trademark.GoodServiceDTO{{Term: "beer", NiceClass: 32}}
	opponents := []trademark.GoodServiceDTO{{Term: "wine", NiceClass: 33}}

	pairs := ExpandPairs(applicants, opponents, func(a, o trademark.GoodServiceDTO) (float64, bool, bool) {
		return 0.8, false, true
	})
	require.Len(t, pairs, 1)
	assert.Equal(t, 0.8, pairs[0].SimilarityScore)
	assert.True(t, pairs[0].AreComplementary)
}

func TestExpandPairs_Empty(t *testing.T) {
	assert.Empty(t, ExpandPairs(nil, nil, nil))
	assert.Empty(t, ExpandPairs([]trademark.GoodServiceDTO{{Term: "x", NiceClass: 1}}, nil, nil))
}
