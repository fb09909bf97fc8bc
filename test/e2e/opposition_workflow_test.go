// End-to-end opposition workflow tests. These run the complete stack
// in-process: configuration defaults, the assessment service, and the
// CLI surface, with no external infrastructure required.
package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conor-Code-Logistic-Tech/brandability/internal/application/assessment"
	"github.com/Conor-Code-Logistic-Tech/brandability/internal/config"
	"github.com/Conor-Code-Logistic-Tech/brandability/internal/intelligence/semantic"
	"github.com/Conor-Code-Logistic-Tech/brandability/internal/interfaces/cli"
	"github.com/Conor-Code-Logistic-Tech/brandability/pkg/types/trademark"
)

func newWorkflowService(t *testing.T, fallback trademark.Category) *assessment.Service {
	t.Helper()
	cfg := config.Default()
	svc, err := assessment.NewService(cfg, semantic.NewStaticAssessor(fallback), nil, nil)
	require.NoError(t, err)
	return svc
}

func TestWorkflow_FullCaseThroughService(t *testing.T) {
	svc := newWorkflowService(t, trademark.CategoryModerate)

	req := trademark.CaseRequest{
		Applicant: trademark.MarkDTO{Wordmark: "ZAREUS"},
		Opponent:  trademark.MarkDTO{Wordmark: "ZARA", IsRegistered: true, RegistrationNumber: "UK00000123456"},
		Pairs: []trademark.GoodsPairDTO{
			{
				ApplicantGood:   trademark.GoodServiceDTO{Term: "clothing", NiceClass: 25},
				OpponentGood:    trademark.GoodServiceDTO{Term: "clothing", NiceClass: 25},
				SimilarityScore: 1.0,
				AreCompetitive:  true,
			},
			{
				ApplicantGood:   trademark.GoodServiceDTO{Term: "footwear", NiceClass: 25},
				OpponentGood:    trademark.GoodServiceDTO{Term: "clothing", NiceClass: 25},
				SimilarityScore: 0.7,
				AreCompetitive:  true,
			},
		},
	}

	result, err := svc.AssessCase(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, trademark.CategoryModerate, result.MarkSimilarity.Overall)
	assert.Equal(t, trademark.OutcomeSucceed, result.Outcome.Outcome)
	assert.InDelta(t, 0.75, result.Outcome.Confidence, 1e-9)
	require.Len(t, result.Determinations, 2)
	for _, d := range result.Determinations {
		assert.True(t, d.LikelihoodOfConfusion)
		assert.Equal(t, trademark.ConfusionDirect, d.ConfusionType)
	}
}

func TestWorkflow_CaseFileThroughCLI(t *testing.T) {
	caseYAML := `case_id: e2e-workflow-case
applicant:
  wordmark: ZAREUS
opponent:
  wordmark: ZARA
  is_registered: true
  registration_number: UK00000123456
conceptual: moderate
pairs:
  - applicant_good:
      term: clothing
      nice_class: 25
    opponent_good:
      term: clothing
      nice_class: 25
    similarity_score: 1.0
    are_competitive: true
`
	path := filepath.Join(t.TempDir(), "case.yaml")
	require.NoError(t, os.WriteFile(path, []byte(caseYAML), 0o644))

	root := cli.NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"assess", "-f", path, "-o", "json"})
	require.NoError(t, root.Execute())

	var result trademark.CaseResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, "e2e-workflow-case", string(result.CaseID))
	assert.Equal(t, trademark.OutcomeSucceed, result.Outcome.Outcome)
	assert.Equal(t, "Opposition likely to succeed", result.Outcome.Result)
}

func TestWorkflow_TunedThresholdsChangeOutcome(t *testing.T) {
	cfg := config.Default()
	// Raise every interdependence threshold past any attainable score so
	// no pair can be confused.
	cfg.Engine.Classifier.ThresholdIdenticalHigh = 1.0
	cfg.Engine.Classifier.ThresholdModerate = 1.0
	cfg.Engine.Classifier.ThresholdLow = 1.0
	cfg.Engine.Classifier.ThresholdDissimilar = 1.0
	cfg.Engine.Classifier.DirectScoreFloor = 1.0

	svc, err := assessment.NewService(cfg, semantic.NewStaticAssessor(trademark.CategoryModerate), nil, nil)
	require.NoError(t, err)

	result, err := svc.AssessCase(context.Background(), trademark.CaseRequest{
		Applicant: trademark.MarkDTO{Wordmark: "ZAREUS"},
		Opponent:  trademark.MarkDTO{Wordmark: "ZARA"},
		Pairs: []trademark.GoodsPairDTO{
			{
				ApplicantGood:   trademark.GoodServiceDTO{Term: "clothing", NiceClass: 25},
				OpponentGood:    trademark.GoodServiceDTO{Term: "clothing", NiceClass: 25},
				SimilarityScore: 0.9,
				AreCompetitive:  true,
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, trademark.OutcomeFail, result.Outcome.Outcome)
	assert.InDelta(t, 0.80, result.Outcome.Confidence, 1e-9)
}
