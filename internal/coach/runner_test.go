package coach

import (
	"context"
	"errors"
	"testing"

	"github.com/geetanshi0205/pitchsnitch/internal/model"
)

// fakeAnalyzer returns a canned result or error without any network.
type fakeAnalyzer struct {
	result *model.AnalysisResult
	usage  model.TokenUsage
	err    error
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, input model.IdeaInput) (*model.AnalysisResult, model.TokenUsage, error) {
	return f.result, f.usage, f.err
}

func (f *fakeAnalyzer) Provider() string { return "fake" }
func (f *fakeAnalyzer) Model() string    { return "fake-model" }

func goodResult() *model.AnalysisResult {
	scores := []model.EvaluationScore{
		{Dimension: "Problem clarity", Score: 4, Reasoning: "clear"},
		{Dimension: "User value", Score: 3, Reasoning: "useful"},
	}
	return &model.AnalysisResult{
		ExecutiveSummary: "Solid idea.",
		Scores:           scores,
		DetailedPlan:     "Build the core first.",
		RiskFlags:        []string{"Scope creep"},
		BuildChecklist:   []string{"Repo", "Demo"},
		TechStack:        map[string][]string{"Backend": {"Go"}},
		PitchDeck:        map[string]string{"slide1_problem": "It hurts."},
		OverallScore:     model.OverallScore(scores),
	}
}

func TestRunnerSuccess(t *testing.T) {
	runner := &Runner{
		Analyzer: &fakeAnalyzer{
			result: goodResult(),
			usage:  model.TokenUsage{InputTokens: 100, OutputTokens: 400},
		},
		SessionID: "test-session",
	}

	a := runner.Run(context.Background(), model.IdeaInput{Idea: "x", TimeConstraint: 48, TeamSize: 3})

	if a.Failed() {
		t.Fatalf("analysis failed: %s", a.Err)
	}
	if a.Result == nil || a.Result.ExecutiveSummary != "Solid idea." {
		t.Errorf("Result = %+v", a.Result)
	}
	if a.Provider != "fake" || a.Model != "fake-model" {
		t.Errorf("Provider/Model = %q/%q", a.Provider, a.Model)
	}
	if a.Usage.InputTokens != 100 || a.Usage.OutputTokens != 400 {
		t.Errorf("Usage = %+v", a.Usage)
	}
	if a.AnalyzedAt.IsZero() {
		t.Error("AnalyzedAt not set")
	}
	if a.FailureKind != "" {
		t.Errorf("FailureKind = %q on success", a.FailureKind)
	}
}

func TestRunnerFailure(t *testing.T) {
	runner := &Runner{
		Analyzer: &fakeAnalyzer{err: errors.New("connection refused")},
	}

	a := runner.Run(context.Background(), model.IdeaInput{Idea: "x"})

	if !a.Failed() {
		t.Fatal("analysis should have failed")
	}
	// Every failure yields the sentinel, never a nil or partial result.
	if a.Result == nil || !a.Result.IsEmpty() {
		t.Errorf("Result = %+v, want sentinel", a.Result)
	}
	if a.Result.ExecutiveSummary != "Analysis failed" {
		t.Errorf("ExecutiveSummary = %q", a.Result.ExecutiveSummary)
	}
	if a.Err != "connection refused" {
		t.Errorf("Err = %q", a.Err)
	}
	// Untyped analyzer errors classify as transport.
	if a.FailureKind != "transport" {
		t.Errorf("FailureKind = %q, want transport", a.FailureKind)
	}
}
