// Package model defines the evaluation request and the normalized result
// contract shared by every evaluation tier.
package model

// The five fixed quality criteria. Every tier scores all of them; the set
// never varies with the request's criteria selector.
const (
	CriterionCodeQuality     = "code_quality"
	CriterionSecurity        = "security"
	CriterionPerformance     = "performance"
	CriterionCorrectness     = "correctness"
	CriterionMaintainability = "maintainability"
)

// CriteriaNames lists the criteria in presentation order.
var CriteriaNames = []string{
	CriterionCodeQuality,
	CriterionSecurity,
	CriterionPerformance,
	CriterionCorrectness,
	CriterionMaintainability,
}

// DefaultContext is substituted when the caller provides no context string.
const DefaultContext = "Evaluate this code output from an AI coding assistant"

// DefaultCriteria is the criteria selector applied when none is given.
// Currently a pass-through value: all five criteria are always computed.
const DefaultCriteria = "all"

// EvaluationRequest is the immutable input to an evaluation.
type EvaluationRequest struct {
	// Content is the code or text to evaluate. Required, may be empty.
	Content string `json:"content"`
	// Criteria is a selector, reserved for future filtering.
	Criteria string `json:"criteria"`
	// Context describes the evaluation situation.
	Context string `json:"context"`
}

// NewEvaluationRequest builds a request with defaults applied for empty
// criteria and context.
func NewEvaluationRequest(content, criteria, context string) EvaluationRequest {
	if criteria == "" {
		criteria = DefaultCriteria
	}
	if context == "" {
		context = DefaultContext
	}
	return EvaluationRequest{Content: content, Criteria: criteria, Context: context}
}

// CriteriaScores maps criterion name to an integer score in [1,10].
type CriteriaScores map[string]int

// Complete reports whether the map carries exactly the five fixed criteria,
// each scored within [1,10].
func (c CriteriaScores) Complete() bool {
	if len(c) != len(CriteriaNames) {
		return false
	}
	for _, name := range CriteriaNames {
		score, ok := c[name]
		if !ok || score < 1 || score > 10 {
			return false
		}
	}
	return true
}

// Mean returns the arithmetic mean of all scores, or 0 for an empty map.
func (c CriteriaScores) Mean() float64 {
	if len(c) == 0 {
		return 0
	}
	sum := 0
	for _, score := range c {
		sum += score
	}
	return float64(sum) / float64(len(c))
}

// TokenUsage tracks LLM token consumption for a single evaluation.
type TokenUsage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
}

// EvaluationResult is the single output contract produced by every tier.
// One result is constructed per evaluation and never mutated afterwards.
type EvaluationResult struct {
	// Success is false only when every tier failed to produce a verdict.
	Success bool `json:"success"`
	// OverallScore is an integer in [1,10]. The heuristic tier computes it
	// as the rounded mean of the criteria scores; remote tiers are trusted
	// to supply a representative value.
	OverallScore int `json:"overall_score,omitempty"`
	// CriteriaScores carries all five criteria on every successful result.
	CriteriaScores CriteriaScores `json:"criteria_scores,omitempty"`
	// Feedback is an ordered list of short human-readable observations.
	Feedback []string `json:"feedback,omitempty"`
	// Recommendations is an ordered list of suggested improvements. Never
	// empty when produced by the heuristic tier.
	Recommendations []string `json:"recommendations,omitempty"`
	// Explanation is free text, empty when unavailable.
	Explanation string `json:"explanation,omitempty"`
	// Error is set only when Success is false.
	Error string `json:"error,omitempty"`
	// Note discloses heuristic-only evaluation when no live model was used.
	Note string `json:"note,omitempty"`

	// Usage is populated by the direct API tier when the provider reports
	// token counts. Absent on framework and heuristic results.
	Usage *TokenUsage `json:"usage,omitempty"`
	// Provider and Model identify the live evaluator that produced the
	// verdict, when one was used.
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
}

// ErrorResult builds the failure shape of the contract.
func ErrorResult(msg string) EvaluationResult {
	return EvaluationResult{Success: false, Error: msg}
}
