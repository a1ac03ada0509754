// Package render formats an evaluation result for human reading in a
// terminal. The machine-readable surface stays JSON; this is opt-in.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/N-45div/Agentmesh/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	goodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7fd88f"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5a742"))
	badStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e06c75"))
	noteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")).Italic(true)
)

// scoreStyle picks a color band for a 1-10 score.
func scoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 7:
		return goodStyle
	case score >= 5:
		return warnStyle
	default:
		return badStyle
	}
}

// Result renders a verdict as a score table plus feedback and
// recommendation lists.
func Result(res model.EvaluationResult) string {
	var b strings.Builder

	if !res.Success {
		b.WriteString(badStyle.Render("evaluation failed"))
		b.WriteString("\n")
		b.WriteString(res.Error)
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(titleStyle.Render(fmt.Sprintf("Overall: %s", scoreStyle(res.OverallScore).Render(fmt.Sprintf("%d/10", res.OverallScore)))))
	b.WriteString("\n\n")

	for _, name := range model.CriteriaNames {
		score, ok := res.CriteriaScores[name]
		if !ok {
			continue
		}
		label := strings.ReplaceAll(name, "_", " ")
		b.WriteString(fmt.Sprintf("  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-16s", label)),
			scoreStyle(score).Render(fmt.Sprintf("%2d/10", score))))
	}

	if len(res.Feedback) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Feedback"))
		b.WriteString("\n")
		for _, line := range res.Feedback {
			b.WriteString("  " + line + "\n")
		}
	}

	if len(res.Recommendations) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Recommendations"))
		b.WriteString("\n")
		for _, line := range res.Recommendations {
			b.WriteString("  • " + line + "\n")
		}
	}

	if res.Explanation != "" {
		b.WriteString("\n" + res.Explanation + "\n")
	}
	if res.Note != "" {
		b.WriteString("\n" + noteStyle.Render(res.Note) + "\n")
	}

	return b.String()
}
