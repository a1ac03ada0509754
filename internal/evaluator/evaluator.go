// Package evaluator scores code or text against the five-criterion quality
// rubric. Live evaluators build the judging prompt and parse the model's
// JSON verdict; the heuristic evaluator computes a verdict offline from
// pattern analysis alone.
package evaluator

import (
	"context"

	"github.com/N-45div/Agentmesh/internal/model"
)

// Evaluator produces a rubric verdict for one evaluation request.
type Evaluator interface {
	// Evaluate scores the request's content. A returned error means the
	// evaluator was reachable but could not produce a usable verdict;
	// callers must not degrade past it.
	Evaluate(ctx context.Context, req model.EvaluationRequest) (model.EvaluationResult, error)

	// Provider returns the provider name (e.g., "openai", "anthropic").
	Provider() string

	// Model returns the model name used for evaluation.
	Model() string
}
