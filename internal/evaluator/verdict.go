package evaluator

import (
	"encoding/json"
	"fmt"

	"github.com/N-45div/Agentmesh/internal/model"
)

// parseVerdict decodes the model's response text into the result contract
// and marks it successful. The remote model is trusted to supply the five
// criteria keys and sane score ranges; no clamping is applied here.
//
// A parse failure is a hard failure: a credential was present and a response
// was received, so masking a malformed response behind heuristics would hide
// a real integration fault.
func parseVerdict(text string) (model.EvaluationResult, error) {
	var res model.EvaluationResult
	if err := json.Unmarshal([]byte(text), &res); err != nil {
		return model.EvaluationResult{}, fmt.Errorf("Failed to parse JSON response: %w", err)
	}
	res.Success = true
	return res, nil
}
