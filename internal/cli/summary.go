package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/p6tools/p6delta/pkg/models"
)

// Summary block styles.
var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("62")).
				Padding(0, 1)

	summaryBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	delayedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	aheadStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	neutralStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// printSummary renders the post-run summary block to stdout.
func printSummary(rep *models.Report) {
	var lines []string

	lines = append(lines,
		fmt.Sprintf("%s %d", labelStyle.Render("Activities Analyzed:   "), rep.Summary.TotalActivities),
		fmt.Sprintf("%s %d", labelStyle.Render("Delayed Activities:    "), rep.Summary.DelayedCount),
		fmt.Sprintf("%s %d", labelStyle.Render("  - By Itself:         "), rep.Summary.ByItselfCount),
		fmt.Sprintf("%s %d", labelStyle.Render("  - By Predecessor:    "), rep.Summary.ByPredecessorCount),
	)

	lines = append(lines, "")
	lines = append(lines, projectImpactLine(rep.ProjectImpact))

	box := summaryBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	fmt.Println(summaryTitleStyle.Render("ANALYSIS SUMMARY"))
	fmt.Println(box)
}

// projectImpactLine formats the headline schedule slip, styled by sign.
func projectImpactLine(impact *models.ProjectImpact) string {
	label := labelStyle.Render("Project Delay:         ")
	if impact == nil {
		return label + " " + neutralStyle.Render("not computable")
	}

	days := impact.ProjectDelayDays
	text := fmt.Sprintf("%.1f days (%s)", days, impact.TerminalTaskCode)
	switch {
	case days > 0:
		return label + " " + delayedStyle.Render("+"+text)
	case days < 0:
		return label + " " + aheadStyle.Render(text)
	default:
		return label + " " + neutralStyle.Render(text)
	}
}
