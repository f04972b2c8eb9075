package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "pitchsnitch"

// Metrics holds all OTEL metric instruments for pitchsnitch.
// All counters are cumulative (monotonic) and safe for concurrent use.
type Metrics struct {
	// LLM token counters (partitioned by provider + model via attributes)
	InputTokens  metric.Int64Counter
	OutputTokens metric.Int64Counter

	// Analysis counters (partitioned by outcome: ok, config_error,
	// transport_error, parse_error)
	Analyses metric.Int64Counter

	// Analysis wall-clock duration in milliseconds
	AnalysisDuration metric.Int64Histogram
}

// NewMetrics creates all metric instruments. Returns no-op instruments
// when no MeterProvider is registered (safe to call unconditionally).
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	m := &Metrics{}
	var err error

	m.InputTokens, err = meter.Int64Counter("llm.tokens.input",
		metric.WithDescription("Total LLM input tokens consumed"),
		metric.WithUnit("{token}"))
	if err != nil {
		return nil, err
	}

	m.OutputTokens, err = meter.Int64Counter("llm.tokens.output",
		metric.WithDescription("Total LLM output tokens consumed"),
		metric.WithUnit("{token}"))
	if err != nil {
		return nil, err
	}

	m.Analyses, err = meter.Int64Counter("analyses.total",
		metric.WithDescription("Total idea analyses partitioned by outcome (ok, config_error, transport_error, parse_error)"))
	if err != nil {
		return nil, err
	}

	m.AnalysisDuration, err = meter.Int64Histogram("analysis.duration",
		metric.WithDescription("Wall-clock duration of one analysis including the LLM call"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}

	return m, nil
}

// RecordTokens records LLM token usage on the metric counters.
func (m *Metrics) RecordTokens(ctx context.Context, provider, model string, input, output int64) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("llm.provider", provider),
		attribute.String("llm.model", model),
	)
	m.InputTokens.Add(ctx, input, attrs)
	m.OutputTokens.Add(ctx, output, attrs)
}

// RecordAnalysis records one completed analysis with its outcome and duration.
func (m *Metrics) RecordAnalysis(ctx context.Context, outcome string, durationMs int64) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("analysis.outcome", outcome),
	)
	m.Analyses.Add(ctx, 1, attrs)
	m.AnalysisDuration.Record(ctx, durationMs, attrs)
}
