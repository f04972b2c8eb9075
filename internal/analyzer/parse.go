package analyzer

import (
	"encoding/json"
	"strings"

	"github.com/geetanshi0205/pitchsnitch/internal/model"
)

// rawResult mirrors the wire schema with pointer fields so a missing key
// is distinguishable from a present-but-empty one.
type rawResult struct {
	ExecutiveSummary *string             `json:"executive_summary"`
	Scores           *[]rawScore         `json:"scores"`
	DetailedPlan     *string             `json:"detailed_plan"`
	RiskFlags        *[]string           `json:"risk_flags"`
	BuildChecklist   *[]string           `json:"build_checklist"`
	TechStack        map[string][]string `json:"tech_stack"`
	PitchDeck        map[string]string   `json:"pitch_deck"`
}

type rawScore struct {
	Dimension *string `json:"dimension"`
	Score     *int    `json:"score"`
	Reasoning *string `json:"reasoning"`
}

// ParseResult interprets raw LLM reply text as an AnalysisResult.
//
// The reply is expected to contain one JSON object, possibly wrapped in
// prose or markdown fences. Extraction takes the substring from the first
// '{' to the last '}' — tolerant of wrapping text, fragile if a string
// value happens to hold the globally first or last brace. That trade-off
// is deliberate; fences are stripped first to narrow the window.
//
// Required top-level fields: executive_summary, scores, detailed_plan,
// risk_flags, build_checklist. Every score entry must carry dimension,
// score, and reasoning. tech_stack and pitch_deck are optional and default
// to empty maps. Any violation returns a parse-kind error and no result —
// all-or-nothing, never partial.
//
// The number of score entries and their dimension labels are not checked
// against model.Dimensions: extra, missing, or unknown dimensions are
// accepted as the model sent them.
func ParseResult(raw string) (*model.AnalysisResult, error) {
	payload, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}

	var parsed rawResult
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, parseErr("reply is not valid JSON: %w", err)
	}

	switch {
	case parsed.ExecutiveSummary == nil:
		return nil, parseErr("reply missing required field %q", "executive_summary")
	case parsed.Scores == nil:
		return nil, parseErr("reply missing required field %q", "scores")
	case parsed.DetailedPlan == nil:
		return nil, parseErr("reply missing required field %q", "detailed_plan")
	case parsed.RiskFlags == nil:
		return nil, parseErr("reply missing required field %q", "risk_flags")
	case parsed.BuildChecklist == nil:
		return nil, parseErr("reply missing required field %q", "build_checklist")
	}

	scores := make([]model.EvaluationScore, 0, len(*parsed.Scores))
	for i, s := range *parsed.Scores {
		switch {
		case s.Dimension == nil:
			return nil, parseErr("scores[%d] missing %q", i, "dimension")
		case s.Score == nil:
			return nil, parseErr("scores[%d] missing %q", i, "score")
		case s.Reasoning == nil:
			return nil, parseErr("scores[%d] missing %q", i, "reasoning")
		}
		scores = append(scores, model.EvaluationScore{
			Dimension: *s.Dimension,
			Score:     *s.Score,
			Reasoning: *s.Reasoning,
		})
	}

	techStack := parsed.TechStack
	if techStack == nil {
		techStack = map[string][]string{}
	}
	pitchDeck := parsed.PitchDeck
	if pitchDeck == nil {
		pitchDeck = map[string]string{}
	}

	return &model.AnalysisResult{
		ExecutiveSummary: *parsed.ExecutiveSummary,
		Scores:           scores,
		DetailedPlan:     *parsed.DetailedPlan,
		RiskFlags:        *parsed.RiskFlags,
		BuildChecklist:   *parsed.BuildChecklist,
		TechStack:        techStack,
		PitchDeck:        pitchDeck,
		OverallScore:     model.OverallScore(scores),
	}, nil
}

// extractJSON returns the candidate JSON payload inside raw: the substring
// from the first '{' to the last '}', after stripping markdown fences.
func extractJSON(raw string) (string, error) {
	text := stripMarkdownFences(raw)

	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", parseErr("no JSON object in reply")
	}
	end := strings.LastIndexByte(text, '}')
	if end < start {
		return "", parseErr("unterminated JSON object in reply")
	}
	return text[start : end+1], nil
}

// stripMarkdownFences removes a wrapping ```json ... ``` (or plain ```)
// code fence, if present. Content without fences is returned unchanged.
func stripMarkdownFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	// Drop the opening fence line (``` or ```json).
	if idx := strings.IndexByte(trimmed, '\n'); idx >= 0 {
		trimmed = trimmed[idx+1:]
	} else {
		return strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
	}

	// Drop the closing fence.
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}
