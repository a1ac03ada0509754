package evaluator

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/N-45div/Agentmesh/internal/model"
)

// SystemPrompt carries the judging role, the five-criterion rubric, and the
// JSON response instructions. Loaded from prompts/system.md at compile time.
//
//go:embed prompts/system.md
var SystemPrompt string

// BuildUserPrompt assembles the user-level message: the evaluation context
// followed by the content fenced as a code block.
func BuildUserPrompt(req model.EvaluationRequest) string {
	return fmt.Sprintf("Context: %s\n\nCode/Output to Evaluate:\n```\n%s\n```", req.Context, req.Content)
}

// stripMarkdownFences removes a wrapping ``` fence, with an optional leading
// language tag, from an LLM response. Models sometimes wrap JSON in fences
// despite instructions; the segment immediately after the first fence
// delimiter is taken as the candidate text.
func stripMarkdownFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	parts := strings.SplitN(s, "```", 3)
	if len(parts) < 2 {
		return s
	}
	inner := strings.TrimPrefix(parts[1], "json")
	return strings.TrimSpace(inner)
}
