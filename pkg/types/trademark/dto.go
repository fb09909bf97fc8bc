package trademark

import "github.com/Conor-Code-Logistic-Tech/brandability/pkg/types/common"

// The DTOs in this file describe the shape of data crossing into and out of
// the engine: case files consumed by the CLI and embedding systems, and the
// structured assessment returned to them.  YAML tags cover case files on
// disk; JSON tags cover programmatic output.

// MarkDTO is the wire form of a wordmark with optional registration metadata.
type MarkDTO struct {
	Wordmark           string `json:"wordmark" yaml:"wordmark"`
	IsRegistered       bool   `json:"is_registered,omitempty" yaml:"is_registered,omitempty"`
	RegistrationNumber string `json:"registration_number,omitempty" yaml:"registration_number,omitempty"`
}

// GoodServiceDTO is the wire form of a single goods/services term with its
// Nice classification code (1–45).
type GoodServiceDTO struct {
	Term      string `json:"term" yaml:"term"`
	NiceClass int    `json:"nice_class" yaml:"nice_class"`
}

// GoodsPairDTO pairs an applicant term with an opponent term, carrying the
// externally supplied semantic similarity score and the competitive and
// complementary market signals.
type GoodsPairDTO struct {
	ApplicantGood    GoodServiceDTO `json:"applicant_good" yaml:"applicant_good"`
	OpponentGood     GoodServiceDTO `json:"opponent_good" yaml:"opponent_good"`
	SimilarityScore  float64        `json:"similarity_score" yaml:"similarity_score"`
	AreCompetitive   bool           `json:"are_competitive" yaml:"are_competitive"`
	AreComplementary bool           `json:"are_complementary" yaml:"are_complementary"`
}

// MarkSimilarityDTO carries the four-dimension mark comparison.  Visual and
// aural are computed by the engine; conceptual is supplied by the semantic
// oracle and carried through unchanged; overall reflects holistic judgment
// bounded by the engine's identity floor rule.
type MarkSimilarityDTO struct {
	Visual     Category `json:"visual" yaml:"visual"`
	Aural      Category `json:"aural" yaml:"aural"`
	Conceptual Category `json:"conceptual" yaml:"conceptual"`
	Overall    Category `json:"overall" yaml:"overall"`
	Reasoning  string   `json:"reasoning,omitempty" yaml:"reasoning,omitempty"`
}

// ConfusionDTO is the per-pair determination.  ConfusionType is present iff
// LikelihoodOfConfusion is true.
type ConfusionDTO struct {
	ApplicantGood         GoodServiceDTO `json:"applicant_good" yaml:"applicant_good"`
	OpponentGood          GoodServiceDTO `json:"opponent_good" yaml:"opponent_good"`
	SimilarityScore       float64        `json:"similarity_score" yaml:"similarity_score"`
	LikelihoodOfConfusion bool           `json:"likelihood_of_confusion" yaml:"likelihood_of_confusion"`
	ConfusionType         ConfusionType  `json:"confusion_type,omitempty" yaml:"confusion_type,omitempty"`
}

// OutcomeFactsDTO exposes the discrete facts the case rationale must cite.
// They are computed by the aggregator, never parsed back out of prose.
type OutcomeFactsDTO struct {
	TotalPairs    int      `json:"total_pairs" yaml:"total_pairs"`
	ConfusedPairs int      `json:"confused_pairs" yaml:"confused_pairs"`
	DirectCount   int      `json:"direct_count" yaml:"direct_count"`
	IndirectCount int      `json:"indirect_count" yaml:"indirect_count"`
	MarkOverall   Category `json:"mark_overall" yaml:"mark_overall"`
}

// OutcomeDTO is the terminal case-level result.
type OutcomeDTO struct {
	Result     string          `json:"result" yaml:"result"` // long-form verdict phrase
	Outcome    Outcome         `json:"outcome" yaml:"outcome"`
	Confidence float64         `json:"confidence" yaml:"confidence"`
	Reasoning  string          `json:"reasoning" yaml:"reasoning"`
	Facts      OutcomeFactsDTO `json:"facts" yaml:"facts"`
}

// CaseRequest is the full input to a case assessment: the two marks, the
// externally supplied conceptual and overall judgments, and the non-empty
// list of goods/services pairs with pre-computed similarity scores.
type CaseRequest struct {
	CaseID     common.ID      `json:"case_id,omitempty" yaml:"case_id,omitempty"`
	Applicant  MarkDTO        `json:"applicant" yaml:"applicant"`
	Opponent   MarkDTO        `json:"opponent" yaml:"opponent"`
	Conceptual Category       `json:"conceptual,omitempty" yaml:"conceptual,omitempty"`
	Overall    Category       `json:"overall,omitempty" yaml:"overall,omitempty"`
	Pairs      []GoodsPairDTO `json:"pairs" yaml:"pairs"`
}

// CaseResult is the full output of a case assessment.
type CaseResult struct {
	CaseID         common.ID         `json:"case_id" yaml:"case_id"`
	AssessedAt     common.Timestamp  `json:"assessed_at" yaml:"assessed_at"`
	Applicant      MarkDTO           `json:"applicant" yaml:"applicant"`
	Opponent       MarkDTO           `json:"opponent" yaml:"opponent"`
	VisualScore    float64           `json:"visual_score" yaml:"visual_score"`
	AuralScore     float64           `json:"aural_score" yaml:"aural_score"`
	MarkSimilarity MarkSimilarityDTO `json:"mark_comparison" yaml:"mark_comparison"`
	Determinations []ConfusionDTO    `json:"goods_services_determinations" yaml:"goods_services_determinations"`
	Outcome        OutcomeDTO        `json:"opposition_outcome" yaml:"opposition_outcome"`
}
