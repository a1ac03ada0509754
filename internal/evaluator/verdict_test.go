package evaluator

import (
	"strings"
	"testing"
)

func TestParseVerdict(t *testing.T) {
	text := `{
		"overall_score": 8,
		"criteria_scores": {"code_quality": 8, "security": 7, "performance": 9, "correctness": 8, "maintainability": 8},
		"feedback": ["Clean structure"],
		"recommendations": ["Add tests"]
	}`

	res, err := parseVerdict(text)
	if err != nil {
		t.Fatalf("parseVerdict: %v", err)
	}
	if !res.Success {
		t.Error("Success = false on a parsed verdict")
	}
	if res.OverallScore != 8 {
		t.Errorf("OverallScore: got %d, want 8", res.OverallScore)
	}
	if !res.CriteriaScores.Complete() {
		t.Errorf("CriteriaScores incomplete: %v", res.CriteriaScores)
	}
	if len(res.Feedback) != 1 || res.Feedback[0] != "Clean structure" {
		t.Errorf("Feedback: got %v", res.Feedback)
	}
	if len(res.Recommendations) != 1 || res.Recommendations[0] != "Add tests" {
		t.Errorf("Recommendations: got %v", res.Recommendations)
	}
}

func TestParseVerdictMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "prose instead of JSON", text: "The code looks fine to me."},
		{name: "truncated object", text: `{"overall_score": 8, "criteria`},
		{name: "empty string", text: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseVerdict(tt.text)
			if err == nil {
				t.Fatal("parseVerdict accepted malformed input")
			}
			if !strings.HasPrefix(err.Error(), "Failed to parse JSON response: ") {
				t.Errorf("error message: got %q, want the parse-failure prefix", err.Error())
			}
		})
	}
}
