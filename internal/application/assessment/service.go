// Package assessment orchestrates the full opposition pipeline: mark
// comparison across the visual, aural, and conceptual dimensions, per-pair
// confusion classification fanned out over a bounded worker pool, and
// aggregation into the case outcome.  It is the single entry point for both
// the CLI and embedding systems.
package assessment

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Conor-Code-Logistic-Tech/brandability/internal/config"
	"github.com/Conor-Code-Logistic-Tech/brandability/internal/domain/goods"
	"github.com/Conor-Code-Logistic-Tech/brandability/internal/domain/mark"
	"github.com/Conor-Code-Logistic-Tech/brandability/internal/domain/opposition"
	"github.com/Conor-Code-Logistic-Tech/brandability/internal/infrastructure/monitoring/logging"
	"github.com/Conor-Code-Logistic-Tech/brandability/internal/infrastructure/monitoring/prometheus"
	"github.com/Conor-Code-Logistic-Tech/brandability/internal/intelligence/semantic"
	"github.com/Conor-Code-Logistic-Tech/brandability/pkg/errors"
	"github.com/Conor-Code-Logistic-Tech/brandability/pkg/types/common"
	"github.com/Conor-Code-Logistic-Tech/brandability/pkg/types/trademark"
)

// Service runs opposition assessments.  It is safe for concurrent use.
type Service struct {
	assessor    semantic.Assessor
	classifier  goods.ClassifierTunables
	aggregator  opposition.AggregatorTunables
	concurrency int
	logger      logging.Logger
	metrics     *prometheus.EngineMetrics
}

// NewService wires a Service from validated configuration.  A nil metrics
// argument disables recording.
func NewService(cfg *config.Config, assessor semantic.Assessor, logger logging.Logger, metrics *prometheus.EngineMetrics) (*Service, error) {
	if assessor == nil {
		return nil, errors.New(errors.ErrCodeInternal, "assessment service requires a semantic assessor")
	}
	if err := cfg.Engine.Classifier.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Engine.Aggregator.Validate(); err != nil {
		return nil, err
	}
	if cfg.Worker.Concurrency < 1 {
		return nil, errors.New(errors.ErrCodeCaseConfigInvalid,
			fmt.Sprintf("worker concurrency %d must be >= 1", cfg.Worker.Concurrency))
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if metrics == nil {
		metrics = prometheus.NewEngineMetrics(prometheus.NewNopCollector())
	}
	return &Service{
		assessor:    assessor,
		classifier:  cfg.Engine.Classifier,
		aggregator:  cfg.Engine.Aggregator,
		concurrency: cfg.Worker.Concurrency,
		logger:      logger.Named("assessment"),
		metrics:     metrics,
	}, nil
}

// MarkComparisonResult is the outcome of a standalone mark comparison.
type MarkComparisonResult struct {
	VisualScore float64                     `json:"visual_score" yaml:"visual_score"`
	AuralScore  float64                     `json:"aural_score" yaml:"aural_score"`
	Similarity  trademark.MarkSimilarityDTO `json:"similarity" yaml:"similarity"`
}

// CompareMarks scores two marks on all dimensions.  Conceptual and overall
// judgments come from the semantic assessor; the identity floor is enforced
// on the overall category.
func (s *Service) CompareMarks(ctx context.Context, applicant, opponent trademark.MarkDTO) (*MarkComparisonResult, error) {
	a, err := toDomainMark(applicant)
	if err != nil {
		return nil, err
	}
	b, err := toDomainMark(opponent)
	if err != nil {
		return nil, err
	}
	cmp, assessment, err := s.compare(ctx, a, b)
	if err != nil {
		return nil, err
	}
	return &MarkComparisonResult{
		VisualScore: cmp.VisualScore,
		AuralScore:  cmp.AuralScore,
		Similarity:  toSimilarityDTO(cmp, assessment),
	}, nil
}

// compare runs the deterministic comparison and fills in the conceptual and
// overall categories, consulting the assessor only for what the caller did
// not supply.
func (s *Service) compare(ctx context.Context, a, b mark.Mark) (mark.Comparison, semantic.MarkAssessment, error) {
	cmp, err := mark.Compare(a, b)
	if err != nil {
		return mark.Comparison{}, semantic.MarkAssessment{}, err
	}
	s.metrics.ObserveComparison(cmp.VisualScore, cmp.AuralScore)

	assessment, err := s.assessor.AssessMarks(ctx, a, b)
	if err != nil {
		s.metrics.ObserveAssessorError(errors.GetCode(err).String())
		return mark.Comparison{}, semantic.MarkAssessment{}, errors.Wrap(err,
			errors.ErrCodeSemanticUnavailable, "semantic assessment failed")
	}
	if err := assessment.Validate(); err != nil {
		s.metrics.ObserveAssessorError(errors.GetCode(err).String())
		return mark.Comparison{}, semantic.MarkAssessment{}, err
	}

	if assessment.Overall == "" {
		derived, err := semantic.DeriveOverall(cmp.VisualScore, cmp.AuralScore, assessment.Conceptual)
		if err != nil {
			return mark.Comparison{}, semantic.MarkAssessment{}, err
		}
		assessment.Overall = derived
	}

	floored, err := cmp.FloorOverall(assessment.Overall)
	if err != nil {
		return mark.Comparison{}, semantic.MarkAssessment{}, err
	}
	assessment.Overall = floored

	return cmp, assessment, nil
}

// AssessCase runs the whole pipeline for one opposition case.  The result is
// deterministic: identical requests yield identical results, and the
// determinations come back in input order regardless of classification
// concurrency.
func (s *Service) AssessCase(ctx context.Context, req trademark.CaseRequest) (*trademark.CaseResult, error) {
	started := time.Now()

	if len(req.Pairs) == 0 {
		return nil, errors.New(errors.ErrCodeCaseNoPairs,
			"opposition case requires at least one goods/services pair")
	}

	applicant, err := toDomainMark(req.Applicant)
	if err != nil {
		return nil, err
	}
	opponent, err := toDomainMark(req.Opponent)
	if err != nil {
		return nil, err
	}

	pairs := make([]goods.Pair, len(req.Pairs))
	for i, dto := range req.Pairs {
		pairs[i] = toDomainPair(dto)
		if err := pairs[i].Validate(); err != nil {
			return nil, errors.Wrap(err, errors.GetCode(err),
				fmt.Sprintf("pair %d invalid", i))
		}
	}

	cmp, assessment, err := s.assessMarks(ctx, applicant, opponent, req)
	if err != nil {
		return nil, err
	}

	determinations, err := s.classifyAll(ctx, pairs, assessment.Overall)
	if err != nil {
		return nil, err
	}

	outcome, err := s.aggregator.Aggregate(determinations, assessment.Overall)
	if err != nil {
		return nil, err
	}

	caseID := req.CaseID
	if caseID == "" {
		caseID = common.NewID()
	}

	result := &trademark.CaseResult{
		CaseID:         caseID,
		AssessedAt:     common.NewTimestamp(),
		Applicant:      req.Applicant,
		Opponent:       req.Opponent,
		VisualScore:    cmp.VisualScore,
		AuralScore:     cmp.AuralScore,
		MarkSimilarity: toSimilarityDTO(cmp, assessment),
		Determinations: toConfusionDTOs(req.Pairs, determinations),
		Outcome:        toOutcomeDTO(outcome),
	}

	s.metrics.ObserveCase(outcome.Result, time.Since(started))
	s.logger.Info("case assessed",
		logging.String("case_id", string(caseID)),
		logging.String("outcome", outcome.Result.String()),
		logging.Float64("confidence", outcome.Confidence),
		logging.Int("pairs", len(req.Pairs)),
		logging.Duration("elapsed", time.Since(started)))

	return result, nil
}

// assessMarks honors request-supplied conceptual and overall categories and
// falls back to the assessor for anything missing.
func (s *Service) assessMarks(ctx context.Context, a, b mark.Mark, req trademark.CaseRequest) (mark.Comparison, semantic.MarkAssessment, error) {
	if req.Conceptual == "" {
		return s.compare(ctx, a, b)
	}

	cmp, err := mark.Compare(a, b)
	if err != nil {
		return mark.Comparison{}, semantic.MarkAssessment{}, err
	}
	s.metrics.ObserveComparison(cmp.VisualScore, cmp.AuralScore)

	assessment := semantic.MarkAssessment{
		Conceptual: req.Conceptual,
		Overall:    req.Overall,
	}
	if err := assessment.Validate(); err != nil {
		return mark.Comparison{}, semantic.MarkAssessment{}, errors.Wrap(err,
			errors.ErrCodeMarkCategoryInvalid, "case file carries an unknown category")
	}

	if assessment.Overall == "" {
		derived, err := semantic.DeriveOverall(cmp.VisualScore, cmp.AuralScore, assessment.Conceptual)
		if err != nil {
			return mark.Comparison{}, semantic.MarkAssessment{}, err
		}
		assessment.Overall = derived
	}
	floored, err := cmp.FloorOverall(assessment.Overall)
	if err != nil {
		return mark.Comparison{}, semantic.MarkAssessment{}, err
	}
	assessment.Overall = floored
	return cmp, assessment, nil
}

// classifyAll fans pair classification out over a bounded worker pool.  The
// classifier is a pure function, so workers share nothing but the jobs
// channel; results land at their input index to keep output order stable.
func (s *Service) classifyAll(ctx context.Context, pairs []goods.Pair, markOverall trademark.Category) ([]goods.Determination, error) {
	workers := s.concurrency
	if workers > len(pairs) {
		workers = len(pairs)
	}

	type job struct {
		index int
		pair  goods.Pair
	}

	jobs := make(chan job)
	results := make([]goods.Determination, len(pairs))

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		s.metrics.ActiveWorkers.WithLabelValues().Inc()
		go func() {
			defer wg.Done()
			defer s.metrics.ActiveWorkers.WithLabelValues().Dec()
			for j := range jobs {
				d, err := s.classifier.Classify(j.pair, markOverall)
				if err != nil {
					errOnce.Do(func() { firstErr = err })
					continue
				}
				s.metrics.ObservePair(d.Confusion, d.Type)
				results[j.index] = d
			}
		}()
	}

	for i, p := range pairs {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return nil, ctx.Err()
		case jobs <- job{index: i, pair: p}:
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Pair expansion
// ─────────────────────────────────────────────────────────────────────────────

// PairScorer supplies the goods/services similarity judgment for one
// applicant/opponent term combination.
type PairScorer func(applicant, opponent trademark.GoodServiceDTO) (score float64, competitive, complementary bool)

// DefaultPairScorer is a conservative deterministic scorer: identical
// normalized terms in the same class are fully similar and competitive, terms
// sharing only a class are moderately similar, and everything else is
// dissimilar.
func DefaultPairScorer(applicant, opponent trademark.GoodServiceDTO) (float64, bool, bool) {
	sameClass := applicant.NiceClass == opponent.NiceClass
	if sameClass && mark.Normalize(applicant.Term) == mark.Normalize(opponent.Term) {
		return 1.0, true, false
	}
	if sameClass {
		return 0.5, true, false
	}
	return 0.0, false, false
}

// ExpandPairs builds the full cross product of applicant and opponent
// specifications, scoring each combination.  Order is deterministic:
// applicant-major, opponent-minor.  A nil scorer uses DefaultPairScorer.
func ExpandPairs(applicants, opponents []trademark.GoodServiceDTO, score PairScorer) []trademark.GoodsPairDTO {
	if score == nil {
		score = DefaultPairScorer
	}
	out := make([]trademark.GoodsPairDTO, 0, len(applicants)*len(opponents))
	for _, a := range applicants {
		for _, o := range opponents {
			s, competitive, complementary := score(a, o)
			out = append(out, trademark.GoodsPairDTO{
				ApplicantGood:    a,
				OpponentGood:     o,
				SimilarityScore:  s,
				AreCompetitive:   competitive,
				AreComplementary: complementary,
			})
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// DTO mapping
// ─────────────────────────────────────────────────────────────────────────────

func toDomainMark(dto trademark.MarkDTO) (mark.Mark, error) {
	if dto.IsRegistered {
		return mark.NewRegisteredMark(dto.Wordmark, dto.RegistrationNumber)
	}
	return mark.NewMark(dto.Wordmark)
}

func toDomainPair(dto trademark.GoodsPairDTO) goods.Pair {
	return goods.Pair{
		Applicant:       goods.GoodService{Term: dto.ApplicantGood.Term, NiceClass: dto.ApplicantGood.NiceClass},
		Opponent:        goods.GoodService{Term: dto.OpponentGood.Term, NiceClass: dto.OpponentGood.NiceClass},
		SimilarityScore: dto.SimilarityScore,
		Competitive:     dto.AreCompetitive,
		Complementary:   dto.AreComplementary,
	}
}

func toSimilarityDTO(cmp mark.Comparison, assessment semantic.MarkAssessment) trademark.MarkSimilarityDTO {
	reasoning := assessment.Reasoning
	if reasoning == "" {
		reasoning = fmt.Sprintf("visual %.3f (%s), aural %.3f (%s), conceptual %s",
			cmp.VisualScore, cmp.Visual, cmp.AuralScore, cmp.Aural, assessment.Conceptual)
	}
	return trademark.MarkSimilarityDTO{
		Visual:     cmp.Visual,
		Aural:      cmp.Aural,
		Conceptual: assessment.Conceptual,
		Overall:    assessment.Overall,
		Reasoning:  reasoning,
	}
}

func toConfusionDTOs(pairs []trademark.GoodsPairDTO, determinations []goods.Determination) []trademark.ConfusionDTO {
	out := make([]trademark.ConfusionDTO, len(determinations))
	for i, d := range determinations {
		out[i] = trademark.ConfusionDTO{
			ApplicantGood:         pairs[i].ApplicantGood,
			OpponentGood:          pairs[i].OpponentGood,
			SimilarityScore:       pairs[i].SimilarityScore,
			LikelihoodOfConfusion: d.Confusion,
			ConfusionType:         d.Type,
		}
	}
	return out
}

func toOutcomeDTO(outcome opposition.CaseOutcome) trademark.OutcomeDTO {
	return trademark.OutcomeDTO{
		Result:     outcome.Verdict(),
		Outcome:    outcome.Result,
		Confidence: outcome.Confidence,
		Reasoning:  outcome.Reasoning,
		Facts: trademark.OutcomeFactsDTO{
			TotalPairs:    outcome.Facts.TotalPairs,
			ConfusedPairs: outcome.Facts.ConfusedPairs,
			DirectCount:   outcome.Facts.DirectCount,
			IndirectCount: outcome.Facts.IndirectCount,
			MarkOverall:   outcome.Facts.MarkOverall,
		},
	}
}
