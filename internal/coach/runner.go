package coach

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/geetanshi0205/pitchsnitch/internal/analyzer"
	"github.com/geetanshi0205/pitchsnitch/internal/model"
	"github.com/geetanshi0205/pitchsnitch/internal/telemetry"
)

var tracer = otel.Tracer("pitchsnitch")

// Runner wraps an Analyzer with tracing, metrics, and the failure policy:
// every analyzer error is converted into the sentinel result plus a
// user-visible message, so a rendering pass downstream can never crash.
// Each Run is an independent, stateless unit of work.
type Runner struct {
	Analyzer  analyzer.Analyzer
	Metrics   *telemetry.Metrics // OTEL metric counters; nil-safe
	SessionID string             // Langfuse session ID — groups analyses from one run
}

// Run performs one analysis. The returned Analysis always has a non-nil
// Result: the parsed reply on success, the sentinel on any failure.
func (r *Runner) Run(ctx context.Context, input model.IdeaInput) *model.Analysis {
	ctx, span := tracer.Start(ctx, "analyze",
		trace.WithAttributes(
			attribute.Int("idea.time_constraint_hours", input.TimeConstraint),
			attribute.Int("idea.team_size", input.TeamSize),

			// Langfuse trace-level attributes
			attribute.String("langfuse.trace.name", "pitchsnitch-analyze"),
			attribute.String("langfuse.session.id", r.SessionID),
			attribute.StringSlice("langfuse.trace.tags", []string{"pitchsnitch", "analyze"}),
		))
	defer span.End()

	start := time.Now()
	result, usage, err := r.Analyzer.Analyze(ctx, input)
	duration := time.Since(start).Milliseconds()

	analysis := &model.Analysis{
		Input:      input,
		Usage:      usage,
		Model:      r.Analyzer.Model(),
		Provider:   r.Analyzer.Provider(),
		AnalyzedAt: time.Now().UTC(),
		DurationMs: duration,
	}

	r.Metrics.RecordTokens(ctx, analysis.Provider, analysis.Model, usage.InputTokens, usage.OutputTokens)

	if err != nil {
		kind := analyzer.Classify(err)
		analysis.Result = model.EmptyResult()
		analysis.Err = err.Error()
		analysis.FailureKind = string(kind)
		span.SetAttributes(attribute.String("error.type", string(kind)))
		r.Metrics.RecordAnalysis(ctx, string(kind)+"_error", duration)
		return analysis
	}

	analysis.Result = result
	r.Metrics.RecordAnalysis(ctx, "ok", duration)
	return analysis
}
