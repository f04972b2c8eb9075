package analyzer

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/geetanshi0205/pitchsnitch/internal/model"
)

// SystemPrompt is the system-level instruction for the LLM.
// Loaded from prompts/system.md at compile time.
//
//go:embed prompts/system.md
var SystemPrompt string

// instructionTemplate is the static part of the user prompt: the eight
// evaluation dimensions, the pitch-deck slide briefs, and the exact JSON
// schema the model must return. Loaded from prompts/user.md at compile time.
//
//go:embed prompts/user.md
var instructionTemplate string

// BuildPrompt renders the evaluation prompt for one idea. The five input
// fields are embedded verbatim ahead of the static instructions, so the
// output is byte-identical for identical input. Empty fields still produce
// a prompt; rejecting them is the form's job, not this function's.
func BuildPrompt(input model.IdeaInput) string {
	var b strings.Builder
	b.WriteString("IDEA: ")
	b.WriteString(input.Idea)
	b.WriteString("\nTARGET USERS: ")
	b.WriteString(input.TargetUsers)
	fmt.Fprintf(&b, "\nTIME CONSTRAINT: %d hours", input.TimeConstraint)
	fmt.Fprintf(&b, "\nTEAM SIZE: %d people", input.TeamSize)
	b.WriteString("\nGOALS: ")
	b.WriteString(input.Goals)
	b.WriteString("\n\n")
	b.WriteString(instructionTemplate)
	return b.String()
}
