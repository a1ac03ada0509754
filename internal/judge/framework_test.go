package judge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAdaptOutputDefaults(t *testing.T) {
	// Every field missing: defaults apply.
	res := adaptOutput(Output{FieldValues: []byte(`{}`)})

	if !res.Success {
		t.Error("Success = false")
	}
	if res.OverallScore != 7 {
		t.Errorf("OverallScore default: got %d, want 7", res.OverallScore)
	}
	if len(res.CriteriaScores) != 0 {
		t.Errorf("CriteriaScores default: got %v, want empty map", res.CriteriaScores)
	}
	if res.CriteriaScores == nil {
		t.Error("CriteriaScores is nil, want empty map")
	}
	if len(res.Feedback) != 0 || res.Feedback == nil {
		t.Errorf("Feedback default: got %v, want empty list", res.Feedback)
	}
	if len(res.Recommendations) != 0 || res.Recommendations == nil {
		t.Errorf("Recommendations default: got %v, want empty list", res.Recommendations)
	}
	if res.Explanation != "" {
		t.Errorf("Explanation default: got %q, want empty", res.Explanation)
	}
}

func TestAdaptOutputFields(t *testing.T) {
	res := adaptOutput(Output{FieldValues: []byte(`{
		"overall_score": 6,
		"criteria_scores": {"code_quality": 6, "security": 5, "performance": 7, "correctness": 6, "maintainability": 6},
		"feedback": ["dense functions"],
		"recommendations": ["split the handler", "add tests"],
		"explanation": "adequate"
	}`)})

	if res.OverallScore != 6 {
		t.Errorf("OverallScore: got %d, want 6", res.OverallScore)
	}
	if res.CriteriaScores["security"] != 5 {
		t.Errorf("security: got %d, want 5", res.CriteriaScores["security"])
	}
	if len(res.Feedback) != 1 || len(res.Recommendations) != 2 {
		t.Errorf("lists: feedback %v, recommendations %v", res.Feedback, res.Recommendations)
	}
	if res.Explanation != "adequate" {
		t.Errorf("Explanation: got %q", res.Explanation)
	}
}

func TestAdaptOutputNilFieldValues(t *testing.T) {
	res := adaptOutput(Output{})
	if res.OverallScore != 7 {
		t.Errorf("OverallScore: got %d, want default 7", res.OverallScore)
	}
}

func TestNewHTTPFrameworkRejectsBadURL(t *testing.T) {
	tests := []string{"", "not-a-url", "://missing-scheme", "relative/path"}
	for _, raw := range tests {
		if _, err := NewHTTPFramework(raw); err == nil {
			t.Errorf("NewHTTPFramework(%q) accepted an invalid URL", raw)
		}
	}
}

func TestHTTPFrameworkJudge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Dataset []Sample `json:"dataset"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if len(body.Dataset) != 1 || body.Dataset[0].Content != "code under review" {
			t.Errorf("unexpected dataset: %+v", body.Dataset)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"field_values": {"overall_score": 8, "explanation": "fine"}}]`))
	}))
	defer srv.Close()

	fw, err := NewHTTPFramework(srv.URL)
	if err != nil {
		t.Fatalf("NewHTTPFramework: %v", err)
	}

	outputs, err := fw.Judge(context.Background(), []Sample{{Context: "review", Content: "code under review"}})
	if err != nil {
		t.Fatalf("Judge: %v", err)
	}
	if len(outputs) != 1 {
		t.Fatalf("outputs: got %d, want 1", len(outputs))
	}

	res := adaptOutput(outputs[0])
	if res.OverallScore != 8 || res.Explanation != "fine" {
		t.Errorf("adapted output: %+v", res)
	}
}

func TestHTTPFrameworkJudgeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	fw, err := NewHTTPFramework(srv.URL)
	if err != nil {
		t.Fatalf("NewHTTPFramework: %v", err)
	}

	if _, err := fw.Judge(context.Background(), []Sample{{Content: "x"}}); err == nil {
		t.Error("Judge succeeded against a 502 response")
	}
}
