package render

import (
	"strings"
	"testing"

	"github.com/N-45div/Agentmesh/internal/evaluator"
	"github.com/N-45div/Agentmesh/internal/model"
)

func TestResultIncludesEveryCriterion(t *testing.T) {
	res := evaluator.Heuristic("function add(a,b){return a+b}")
	out := Result(res)

	for _, name := range model.CriteriaNames {
		label := strings.ReplaceAll(name, "_", " ")
		if !strings.Contains(out, label) {
			t.Errorf("output missing criterion %q", label)
		}
	}
	if !strings.Contains(out, "7/10") {
		t.Error("output missing the overall score")
	}
	if !strings.Contains(out, evaluator.HeuristicNote) {
		t.Error("output missing the heuristic note")
	}
}

func TestResultFailure(t *testing.T) {
	out := Result(model.ErrorResult("judge service returned 502 Bad Gateway"))

	if !strings.Contains(out, "evaluation failed") {
		t.Error("output missing failure banner")
	}
	if !strings.Contains(out, "judge service returned 502 Bad Gateway") {
		t.Error("output missing the error message")
	}
}
