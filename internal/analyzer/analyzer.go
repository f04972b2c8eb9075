// Package analyzer builds the evaluation prompt, performs the single LLM
// call, and parses the model's JSON reply into a model.AnalysisResult.
//
// The prompt template and the parse schema are two halves of one contract:
// the template tells the model exactly which JSON shape to return, and the
// interpreter rejects anything that misses the required fields. Keep them
// in sync.
package analyzer

import (
	"context"

	"github.com/geetanshi0205/pitchsnitch/internal/model"
)

// Analyzer sends an idea to an LLM and returns the parsed analysis.
type Analyzer interface {
	// Analyze builds the prompt for input, performs exactly one LLM call,
	// and parses the reply. Errors carry a FailureKind (config, transport,
	// parse); callers convert them into the sentinel result.
	Analyze(ctx context.Context, input model.IdeaInput) (*model.AnalysisResult, model.TokenUsage, error)

	// Provider returns the provider name (e.g., "anthropic", "openai").
	Provider() string

	// Model returns the model name used for analysis.
	Model() string
}
