package analyzer

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/geetanshi0205/pitchsnitch/internal/model"
)

// OpenAIAnalyzer analyzes ideas using an OpenAI-compatible Chat Completions
// API. Works with OpenAI, Azure OpenAI, and any OpenAI-compatible endpoint.
type OpenAIAnalyzer struct {
	client      openai.Client
	model       string
	maxTokens   int64
	temperature float64
}

// OpenAIConfig holds configuration for the OpenAI analyzer.
type OpenAIConfig struct {
	// BaseURL is the API endpoint.
	BaseURL string
	// APIKey is the API key.
	APIKey string
	// Model is the model name (e.g., "gpt-4o-mini").
	Model string
	// MaxTokens is the maximum number of completion tokens.
	// For reasoning models this must be large enough to accommodate both
	// reasoning tokens and output content.
	MaxTokens int64
	// Temperature is the sampling temperature in [0, 2].
	Temperature float64
	// ExtraHeaders are additional HTTP headers.
	ExtraHeaders map[string]string
}

// NewOpenAIAnalyzer creates a new OpenAI-compatible analyzer.
func NewOpenAIAnalyzer(cfg OpenAIConfig) *OpenAIAnalyzer {
	var opts []option.RequestOption

	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	for k, v := range cfg.ExtraHeaders {
		opts = append(opts, option.WithHeader(k, v))
	}

	client := openai.NewClient(opts...)

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}

	return &OpenAIAnalyzer{
		client:      client,
		model:       cfg.Model,
		maxTokens:   maxTokens,
		temperature: cfg.Temperature,
	}
}

// Provider returns "openai".
func (a *OpenAIAnalyzer) Provider() string {
	return "openai"
}

// Model returns the model name.
func (a *OpenAIAnalyzer) Model() string {
	return a.model
}

// Analyze builds the prompt, performs one Chat Completions call, and
// parses the reply. No retries, no streaming.
func (a *OpenAIAnalyzer) Analyze(ctx context.Context, input model.IdeaInput) (*model.AnalysisResult, model.TokenUsage, error) {
	userMessage := BuildPrompt(input)
	var usage model.TokenUsage

	// Start a GenAI generation span following OTel GenAI semantic conventions.
	ctx, span := analyzeTracer.Start(ctx, "chat "+a.model,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("gen_ai.operation.name", "chat"),
			attribute.String("gen_ai.provider.name", "openai"),
			attribute.String("gen_ai.request.model", a.model),
			attribute.Int64("gen_ai.request.max_tokens", a.maxTokens),
			attribute.Float64("gen_ai.request.temperature", a.temperature),

			// Langfuse-specific: ensure this shows as a "generation"
			attribute.String("langfuse.observation.type", "generation"),
		),
	)
	defer span.End()

	recordInputMessages(span, userMessage)

	resp, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: a.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(SystemPrompt),
			openai.UserMessage(userMessage),
		},
		MaxCompletionTokens: openai.Int(a.maxTokens),
		Temperature:         openai.Float(a.temperature),
	})
	if err != nil {
		span.SetAttributes(attribute.String("error.type", "api_error"))
		return nil, usage, transportErr("openai API call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		span.SetAttributes(attribute.String("error.type", "empty_response"))
		return nil, usage, transportErr("openai API returned empty response")
	}

	rawText := resp.Choices[0].Message.Content

	span.SetAttributes(
		attribute.String("gen_ai.response.model", resp.Model),
		attribute.String("gen_ai.response.id", resp.ID),
		attribute.Int64("gen_ai.usage.input_tokens", resp.Usage.PromptTokens),
		attribute.Int64("gen_ai.usage.output_tokens", resp.Usage.CompletionTokens),
	)
	if resp.Choices[0].FinishReason != "" {
		span.SetAttributes(attribute.StringSlice("gen_ai.response.finish_reasons", []string{string(resp.Choices[0].FinishReason)}))
	}
	recordOutputMessages(span, rawText)

	usage = model.TokenUsage{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
	}

	result, err := ParseResult(rawText)
	if err != nil {
		span.SetAttributes(attribute.String("error.type", "parse_error"))
		return nil, usage, err
	}

	return result, usage, nil
}
