package evaluator

import (
	"context"
	"math"
	"strings"

	"github.com/N-45div/Agentmesh/internal/model"
)

// HeuristicNote discloses that a verdict was computed offline.
const HeuristicNote = "Heuristic evaluation (no API key configured)"

// Feedback and recommendation lines emitted by the heuristic tier.
const (
	feedbackQualityGood  = "✅ Code structure looks good"
	feedbackQualityWarn  = "⚠️ Consider improving code structure and adding comments"
	feedbackSecurityGood = "✅ No obvious security issues detected"
	feedbackSecurityWarn = "⚠️ Review security practices"

	recommendComments      = "Add comments to explain complex logic"
	recommendErrorHandling = "Add error handling for edge cases"
	recommendTypes         = "Consider adding type annotations"
	recommendNothing       = "Code looks good!"
)

// HeuristicEvaluator computes a verdict from textual pattern presence alone.
// It is the terminal fallback tier: it always succeeds and never errors.
type HeuristicEvaluator struct{}

// Provider returns "heuristic".
func (HeuristicEvaluator) Provider() string {
	return "heuristic"
}

// Model returns "pattern-analysis"; no live model is involved.
func (HeuristicEvaluator) Model() string {
	return "pattern-analysis"
}

// Evaluate satisfies the Evaluator interface. The error is always nil.
func (h HeuristicEvaluator) Evaluate(_ context.Context, req model.EvaluationRequest) (model.EvaluationResult, error) {
	return Heuristic(req.Content), nil
}

// Heuristic scores content with fixed feature detectors. Pure function of
// the content: same input, same verdict.
func Heuristic(content string) model.EvaluationResult {
	lower := strings.ToLower(content)

	hasComments := strings.Contains(content, "//") ||
		strings.Contains(content, "/*") ||
		strings.Contains(content, "#")
	hasErrorHandling := strings.Contains(content, "try") ||
		strings.Contains(content, "catch") ||
		strings.Contains(lower, "error")
	hasTypes := strings.Contains(content, ": ") ||
		strings.Contains(content, "type ") ||
		strings.Contains(content, "interface ")
	hasTests := strings.Contains(lower, "test") ||
		strings.Contains(content, "expect") ||
		strings.Contains(content, "assert")
	hasDocs := strings.Contains(content, `"""`) ||
		strings.Contains(content, "'''") ||
		strings.Contains(content, "/**")

	scores := model.CriteriaScores{
		model.CriterionCodeQuality:     factorScore(hasComments, hasTypes, len(content) > 50),
		model.CriterionSecurity:        factorScore(hasErrorHandling, !strings.Contains(content, "eval("), !strings.Contains(content, "innerHTML")),
		model.CriterionPerformance:     factorScore(!strings.Contains(lower, "nested"), len(content) < 5000),
		model.CriterionCorrectness:     factorScore(hasErrorHandling, hasTypes),
		model.CriterionMaintainability: factorScore(hasComments, hasTests, hasDocs),
	}

	// Rounded half away from zero. The mean of five integer scores is a
	// multiple of 0.2, so a .5 tie cannot occur.
	overall := int(math.Round(scores.Mean()))

	feedback := make([]string, 0, 2)
	if scores[model.CriterionCodeQuality] >= 7 {
		feedback = append(feedback, feedbackQualityGood)
	} else {
		feedback = append(feedback, feedbackQualityWarn)
	}
	if scores[model.CriterionSecurity] >= 7 {
		feedback = append(feedback, feedbackSecurityGood)
	} else {
		feedback = append(feedback, feedbackSecurityWarn)
	}

	var recommendations []string
	if !hasComments {
		recommendations = append(recommendations, recommendComments)
	}
	if !hasErrorHandling {
		recommendations = append(recommendations, recommendErrorHandling)
	}
	if !hasTypes {
		recommendations = append(recommendations, recommendTypes)
	}
	if len(recommendations) == 0 {
		recommendations = []string{recommendNothing}
	}

	return model.EvaluationResult{
		Success:         true,
		OverallScore:    overall,
		CriteriaScores:  scores,
		Feedback:        feedback,
		Recommendations: recommendations,
		Note:            HeuristicNote,
	}
}

// factorScore maps boolean quality factors onto the 1-10 scale: a neutral 5
// plus 2 per satisfied factor, clamped.
func factorScore(factors ...bool) int {
	n := 0
	for _, f := range factors {
		if f {
			n++
		}
	}
	score := 5 + 2*n
	if score > 10 {
		return 10
	}
	if score < 1 {
		return 1
	}
	return score
}
