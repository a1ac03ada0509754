package evaluator

import (
	"strings"
	"testing"

	"github.com/N-45div/Agentmesh/internal/model"
)

func TestStripMarkdownFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain JSON unchanged",
			input: `{"overall_score": 8, "feedback": []}`,
			want:  `{"overall_score": 8, "feedback": []}`,
		},
		{
			name:  "fenced json block",
			input: "```json\n{\"overall_score\": 8}\n```",
			want:  `{"overall_score": 8}`,
		},
		{
			name:  "fenced without language",
			input: "```\n{\"overall_score\": 8}\n```",
			want:  `{"overall_score": 8}`,
		},
		{
			name:  "fenced with whitespace",
			input: "  ```json\n{\"key\": \"value\"}\n```  ",
			want:  `{"key": "value"}`,
		},
		{
			name:  "multiline JSON in fences",
			input: "```json\n{\n  \"overall_score\": 8,\n  \"feedback\": []\n}\n```",
			want:  "{\n  \"overall_score\": 8,\n  \"feedback\": []\n}",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only fences no content",
			input: "```json\n```",
			want:  "",
		},
		{
			name:  "triple backticks inside content preserved",
			input: `{"code": "use backticks"}`,
			want:  `{"code": "use backticks"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripMarkdownFences(tt.input)
			if got != tt.want {
				t.Errorf("stripMarkdownFences(%q) =\n  %q\nwant:\n  %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSystemPromptLoaded(t *testing.T) {
	if SystemPrompt == "" {
		t.Fatal("SystemPrompt is empty — embed directive may have failed")
	}
	for _, name := range model.CriteriaNames {
		if !strings.Contains(SystemPrompt, name) {
			t.Errorf("SystemPrompt missing criterion key %q", name)
		}
	}
	if !strings.Contains(SystemPrompt, "ONLY with valid JSON") {
		t.Error("SystemPrompt missing the JSON-only instruction")
	}
	if !strings.Contains(SystemPrompt, "no markdown") {
		t.Error("SystemPrompt missing the no-markdown instruction")
	}
}

func TestBuildUserPrompt(t *testing.T) {
	req := model.NewEvaluationRequest("func main() {}", "all", "reviewing a PR")
	prompt := BuildUserPrompt(req)

	if !strings.Contains(prompt, "Context: reviewing a PR") {
		t.Error("prompt missing context line")
	}
	if !strings.Contains(prompt, "```\nfunc main() {}\n```") {
		t.Error("prompt missing fenced content")
	}
}

func TestBuildUserPromptDefaultContext(t *testing.T) {
	req := model.NewEvaluationRequest("x", "", "")
	prompt := BuildUserPrompt(req)
	if !strings.Contains(prompt, model.DefaultContext) {
		t.Error("prompt missing default context phrase")
	}
}
