package analyzer

import (
	"errors"
	"strings"
	"testing"
)

const validReply = `{
	"executive_summary": "Strong idea with a tight but realistic scope.",
	"scores": [
		{"dimension": "Problem clarity", "score": 4, "reasoning": "Well defined pain point."},
		{"dimension": "User value", "score": 5, "reasoning": "Saves real time daily."},
		{"dimension": "Market size & urgency", "score": 3, "reasoning": "Niche but growing."},
		{"dimension": "Differentiation/moat", "score": 2, "reasoning": "Crowded space."},
		{"dimension": "Technical feasibility in 48 hours", "score": 4, "reasoning": "Mostly API glue."},
		{"dimension": "Scalability path", "score": 3, "reasoning": "Standard SaaS path."},
		{"dimension": "Data dependencies", "score": 4, "reasoning": "Public data only."},
		{"dimension": "Risks & compliance", "score": 3, "reasoning": "No PII involved."}
	],
	"detailed_plan": "Hour 0-8: scaffold. Hour 8-24: core flow. Hour 24-48: polish and pitch.",
	"risk_flags": ["API rate limits", "Demo depends on network"],
	"build_checklist": ["Set up repo", "Wire LLM call", "Record backup demo"],
	"tech_stack": {
		"Frontend": ["React", "Tailwind CSS"],
		"Backend": ["Go", "PostgreSQL"]
	},
	"pitch_deck": {
		"slide1_problem": "People waste food because planning is tedious.",
		"slide2_solution": "An assistant that plans meals from the fridge contents.",
		"slide3_techstack": "Go backend, one LLM call, vision API for receipts.",
		"slide4_market": "Every household that cooks.",
		"slide5_business_model": "Freemium with grocery partnerships."
	}
}`

func TestParseResultValid(t *testing.T) {
	result, err := ParseResult(validReply)
	if err != nil {
		t.Fatalf("ParseResult() error = %v", err)
	}

	if result.ExecutiveSummary != "Strong idea with a tight but realistic scope." {
		t.Errorf("ExecutiveSummary = %q", result.ExecutiveSummary)
	}
	if len(result.Scores) != 8 {
		t.Fatalf("got %d scores, want 8", len(result.Scores))
	}
	if result.Scores[0].Dimension != "Problem clarity" || result.Scores[0].Score != 4 {
		t.Errorf("Scores[0] = %+v", result.Scores[0])
	}
	want := 28.0 / 8.0
	if result.OverallScore != want {
		t.Errorf("OverallScore = %v, want %v", result.OverallScore, want)
	}
	if len(result.RiskFlags) != 2 || len(result.BuildChecklist) != 3 {
		t.Errorf("collections: %d risks, %d checklist items", len(result.RiskFlags), len(result.BuildChecklist))
	}
	if got := result.TechStack["Backend"]; len(got) != 2 || got[0] != "Go" {
		t.Errorf("TechStack[Backend] = %v", got)
	}
	if result.PitchDeck["slide5_business_model"] != "Freemium with grocery partnerships." {
		t.Errorf("PitchDeck[slide5_business_model] = %q", result.PitchDeck["slide5_business_model"])
	}
}

func TestParseResultWrappedReplies(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "json code fence",
			raw:  "```json\n" + validReply + "\n```",
		},
		{
			name: "bare code fence",
			raw:  "```\n" + validReply + "\n```",
		},
		{
			name: "prose around fence",
			raw:  "Here is the result:\n```json\n" + validReply + "\n```\nThanks!",
		},
		{
			name: "prose without fence",
			raw:  "Sure! Here is my analysis.\n" + validReply + "\nLet me know if you need more.",
		},
		{
			name: "surrounding whitespace",
			raw:  "\n\n  " + validReply + "  \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseResult(tt.raw)
			if err != nil {
				t.Fatalf("ParseResult() error = %v", err)
			}
			if len(result.Scores) != 8 {
				t.Errorf("got %d scores, want 8", len(result.Scores))
			}
		})
	}
}

func TestParseResultFailures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty reply", raw: ""},
		{name: "no JSON object", raw: "I cannot evaluate this idea."},
		{name: "brace order reversed", raw: "} nothing here {"},
		{name: "invalid JSON", raw: `{"executive_summary": }`},
		{name: "JSON array not object", raw: `no braces [1, 2, 3]`},
		{
			name: "missing executive_summary",
			raw:  `{"scores": [], "detailed_plan": "p", "risk_flags": [], "build_checklist": []}`,
		},
		{
			name: "missing scores",
			raw:  `{"executive_summary": "s", "detailed_plan": "p", "risk_flags": [], "build_checklist": []}`,
		},
		{
			name: "missing detailed_plan",
			raw:  `{"executive_summary": "s", "scores": [], "risk_flags": [], "build_checklist": []}`,
		},
		{
			name: "missing risk_flags",
			raw:  `{"executive_summary": "s", "scores": [], "detailed_plan": "p", "build_checklist": []}`,
		},
		{
			name: "missing build_checklist",
			raw:  `{"executive_summary": "s", "scores": [], "detailed_plan": "p", "risk_flags": []}`,
		},
		{
			name: "score entry missing reasoning",
			raw: `{"executive_summary": "s",
				"scores": [{"dimension": "Problem clarity", "score": 4}],
				"detailed_plan": "p", "risk_flags": [], "build_checklist": []}`,
		},
		{
			name: "score entry missing dimension",
			raw: `{"executive_summary": "s",
				"scores": [{"score": 4, "reasoning": "r"}],
				"detailed_plan": "p", "risk_flags": [], "build_checklist": []}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseResult(tt.raw)
			if err == nil {
				t.Fatal("ParseResult() succeeded, want error")
			}
			if result != nil {
				t.Error("failed parse must not return a partial result")
			}
			if kind := Classify(err); kind != FailureParse {
				t.Errorf("Classify() = %q, want %q", kind, FailureParse)
			}
		})
	}
}

func TestParseResultOptionalFieldsDefault(t *testing.T) {
	raw := `{
		"executive_summary": "Minimal but complete.",
		"scores": [{"dimension": "User value", "score": 3, "reasoning": "ok"}],
		"detailed_plan": "Just build it.",
		"risk_flags": [],
		"build_checklist": ["Ship"]
	}`

	result, err := ParseResult(raw)
	if err != nil {
		t.Fatalf("ParseResult() error = %v", err)
	}
	if result.TechStack == nil || len(result.TechStack) != 0 {
		t.Errorf("TechStack = %v, want empty map", result.TechStack)
	}
	if result.PitchDeck == nil || len(result.PitchDeck) != 0 {
		t.Errorf("PitchDeck = %v, want empty map", result.PitchDeck)
	}
	if result.OverallScore != 3.0 {
		t.Errorf("OverallScore = %v, want 3.0", result.OverallScore)
	}
}

func TestParseResultEmptyScores(t *testing.T) {
	raw := `{
		"executive_summary": "No scores given.",
		"scores": [],
		"detailed_plan": "p",
		"risk_flags": [],
		"build_checklist": []
	}`

	result, err := ParseResult(raw)
	if err != nil {
		t.Fatalf("ParseResult() error = %v", err)
	}
	if result.OverallScore != 0.0 {
		t.Errorf("OverallScore = %v, want exactly 0.0 for empty scores", result.OverallScore)
	}
}

func TestParseResultUnknownDimensionsAccepted(t *testing.T) {
	// Dimension labels are taken as sent, not checked against the fixed list.
	raw := `{
		"executive_summary": "s",
		"scores": [
			{"dimension": "Vibes", "score": 5, "reasoning": "immaculate"},
			{"dimension": "Vibes", "score": 1, "reasoning": "duplicate"}
		],
		"detailed_plan": "p",
		"risk_flags": [],
		"build_checklist": []
	}`

	result, err := ParseResult(raw)
	if err != nil {
		t.Fatalf("ParseResult() error = %v", err)
	}
	if len(result.Scores) != 2 || result.Scores[0].Dimension != "Vibes" {
		t.Errorf("Scores = %+v", result.Scores)
	}
	if result.OverallScore != 3.0 {
		t.Errorf("OverallScore = %v, want 3.0", result.OverallScore)
	}
}

func TestStripMarkdownFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "no fence", in: `{"a": 1}`, want: `{"a": 1}`},
		{name: "json fence", in: "```json\n{\"a\": 1}\n```", want: `{"a": 1}`},
		{name: "plain fence", in: "```\n{\"a\": 1}\n```", want: `{"a": 1}`},
		{name: "fence without newline", in: "```{\"a\": 1}", want: `{"a": 1}`},
		{name: "unclosed fence", in: "```json\n{\"a\": 1}", want: `{"a": 1}`},
		{name: "whitespace padding", in: "  ```json\n{\"a\": 1}\n```  ", want: `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripMarkdownFences(tt.in); got != tt.want {
				t.Errorf("stripMarkdownFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractJSONNarrowsToBraces(t *testing.T) {
	got, err := extractJSON("prefix {\"a\": 1} suffix")
	if err != nil {
		t.Fatalf("extractJSON() error = %v", err)
	}
	if got != `{"a": 1}` {
		t.Errorf("extractJSON() = %q", got)
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	wrapped := transportErr("call failed: %w", inner)
	if !errors.Is(wrapped, inner) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if !strings.Contains(wrapped.Error(), "transport error:") {
		t.Errorf("Error() = %q, want transport prefix", wrapped.Error())
	}
}
