package model

import "time"

// Dimensions are the eight evaluation criteria, in the order the LLM is
// asked to score them. Each is scored 0-5.
var Dimensions = []string{
	"Problem clarity",
	"User value",
	"Market size & urgency",
	"Differentiation/moat",
	"Technical feasibility in 48 hours",
	"Scalability path",
	"Data dependencies",
	"Risks & compliance",
}

// TimeOptions are the selectable hackathon durations, in hours.
var TimeOptions = []int{24, 36, 48, 60, 72}

// TeamOptions are the selectable team sizes.
var TeamOptions = []int{1, 2, 3, 4, 5, 6}

// Default form selections.
const (
	DefaultTimeConstraint = 48
	DefaultTeamSize       = 3
)

// PitchDeckSlides are the five pitch-deck keys, in presentation order.
var PitchDeckSlides = []string{
	"slide1_problem",
	"slide2_solution",
	"slide3_techstack",
	"slide4_market",
	"slide5_business_model",
}

// IdeaInput is one form submission. The UI guarantees the free-text fields
// are non-empty and the numeric fields come from TimeOptions/TeamOptions;
// the analyzer does not re-validate them.
type IdeaInput struct {
	// Idea is the free-text description of the hackathon concept.
	Idea string `json:"idea"`
	// TargetUsers describes who the idea is for.
	TargetUsers string `json:"target_users"`
	// TimeConstraint is the available build time in hours.
	TimeConstraint int `json:"time_constraint"`
	// TeamSize is the number of people on the team.
	TeamSize int `json:"team_size"`
	// Goals is what the team wants out of the hackathon.
	Goals string `json:"goals"`
}

// EvaluationScore is one scored dimension from the LLM reply.
type EvaluationScore struct {
	Dimension string `json:"dimension"`
	Score     int    `json:"score"`
	Reasoning string `json:"reasoning"`
}

// AnalysisResult is the JSON structure the LLM is instructed to return,
// plus the derived OverallScore. The json tags are the wire schema and
// must stay in sync with the prompt template in internal/analyzer.
type AnalysisResult struct {
	ExecutiveSummary string              `json:"executive_summary"`
	Scores           []EvaluationScore   `json:"scores"`
	DetailedPlan     string              `json:"detailed_plan"`
	RiskFlags        []string            `json:"risk_flags"`
	BuildChecklist   []string            `json:"build_checklist"`
	TechStack        map[string][]string `json:"tech_stack"`
	PitchDeck        map[string]string   `json:"pitch_deck"`

	// OverallScore is the arithmetic mean of Scores[i].Score.
	// Computed after parsing, never read from the wire.
	OverallScore float64 `json:"overall_score"`
}

// OverallScore returns the arithmetic mean of the given scores,
// or exactly 0.0 when there are none.
func OverallScore(scores []EvaluationScore) float64 {
	if len(scores) == 0 {
		return 0.0
	}
	sum := 0
	for _, s := range scores {
		sum += s.Score
	}
	return float64(sum) / float64(len(scores))
}

// EmptyResult is the sentinel returned on any failure: no scores, empty
// collections, overall score exactly 0.0. Maps are non-nil so renderers
// can range over them without nil checks.
func EmptyResult() *AnalysisResult {
	return &AnalysisResult{
		ExecutiveSummary: "Analysis failed",
		Scores:           []EvaluationScore{},
		RiskFlags:        []string{},
		BuildChecklist:   []string{},
		TechStack:        map[string][]string{},
		PitchDeck:        map[string]string{},
		OverallScore:     0.0,
	}
}

// IsEmpty reports whether r is the failure sentinel (no scores, zero mean).
func (r *AnalysisResult) IsEmpty() bool {
	return r == nil || (len(r.Scores) == 0 && r.OverallScore == 0.0)
}

// TokenUsage tracks LLM token consumption for a single analysis.
type TokenUsage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
}

// Analysis is the full record of one analysis run: the parsed result (or
// the failure sentinel) plus call metadata. Produced by coach.Runner.
type Analysis struct {
	Input  IdeaInput       `json:"input"`
	Result *AnalysisResult `json:"result"`

	// Err is the user-visible failure message. Empty on success.
	Err string `json:"error,omitempty"`
	// FailureKind is "config", "transport", or "parse" when Err is set.
	FailureKind string `json:"failure_kind,omitempty"`

	Usage TokenUsage `json:"usage,omitempty"`

	// Model is the LLM model that produced this analysis.
	Model string `json:"model"`
	// Provider is the LLM provider used (e.g., "anthropic", "openai").
	Provider string `json:"provider"`
	// AnalyzedAt is the timestamp when the analysis completed.
	AnalyzedAt time.Time `json:"analyzed_at"`
	// DurationMs is the wall-clock time in milliseconds for the LLM call.
	DurationMs int64 `json:"duration_ms"`
}

// Failed reports whether this analysis ended in the failure sentinel.
func (a *Analysis) Failed() bool {
	return a.Err != ""
}
