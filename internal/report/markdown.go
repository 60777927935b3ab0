package report

import (
	"fmt"
	"strings"

	"github.com/p6tools/p6delta/internal/schedule"
	"github.com/p6tools/p6delta/pkg/models"
)

// maxNameLen caps task names in the appendix table.
const maxNameLen = 50

type markdownRenderer struct{}

// NewMarkdownRenderer creates the human-readable Markdown renderer.
// Delay magnitudes are rounded to one decimal for display; the record
// values keep full precision.
func NewMarkdownRenderer() Renderer {
	return &markdownRenderer{}
}

func (markdownRenderer) Render(r *models.Report) ([]byte, error) {
	var b strings.Builder

	writeHeader(&b, r)
	writeSummary(&b, r)
	writeProjectImpact(&b, r.ProjectImpact)

	byItself, byPredecessor := splitByReason(r.Delayed)

	b.WriteString("## Delays by Itself (Action Required)\n\n")
	b.WriteString("These activities are the source of delays - no predecessor can explain their slippage.\n\n")
	if len(byItself) == 0 {
		b.WriteString("*No activities delayed by itself.*\n\n")
	} else {
		for i, rec := range byItself {
			writeActivitySection(&b, i+1, rec)
		}
	}

	b.WriteString("## Delays by Predecessor\n\n")
	b.WriteString("These activities are delayed due to upstream dependencies.\n\n")
	if len(byPredecessor) == 0 {
		b.WriteString("*No activities delayed by predecessor.*\n\n")
	} else {
		for i, rec := range byPredecessor {
			writeActivitySection(&b, i+1, rec)
		}
	}

	writeAppendix(&b, r.Delayed)

	return []byte(b.String()), nil
}

func writeHeader(b *strings.Builder, r *models.Report) {
	fmt.Fprintf(b, "# Schedule Delay Analysis Report\n\n")
	fmt.Fprintf(b, "**Project**: %s\n", orNA(r.Run.UpdatedProjectCode))
	fmt.Fprintf(b, "**Analysis Date**: %s\n", r.Run.AnalysisDate.Format("2006-01-02"))
	fmt.Fprintf(b, "**Scope**: %s\n", r.Run.Scope)
	fmt.Fprintf(b, "**Baseline**: %s (%s)\n", orNA(r.Run.BaselineFile), r.Run.BaselineProjectCode)
	fmt.Fprintf(b, "**Updated**: %s (%s)\n", orNA(r.Run.UpdatedFile), r.Run.UpdatedProjectCode)
	b.WriteString("\n---\n\n")
}

func writeSummary(b *strings.Builder, r *models.Report) {
	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Count |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(b, "| Activities Analyzed | %d |\n", r.Summary.TotalActivities)
	fmt.Fprintf(b, "| Delayed Activities | %d |\n", r.Summary.DelayedCount)
	fmt.Fprintf(b, "| Delayed by Itself | %d |\n", r.Summary.ByItselfCount)
	fmt.Fprintf(b, "| Delayed by Predecessor | %d |\n", r.Summary.ByPredecessorCount)
	b.WriteString("\n---\n\n")
}

func writeProjectImpact(b *strings.Builder, impact *models.ProjectImpact) {
	b.WriteString("## Project Completion Impact\n\n")
	if impact == nil {
		b.WriteString("*No project impact computable from the critical path.*\n\n---\n\n")
		return
	}
	fmt.Fprintf(b, "Terminal activity `%s` - %s\n\n", impact.TerminalTaskCode, impact.TerminalTaskName)
	b.WriteString("| | Date |\n")
	b.WriteString("|--|------|\n")
	fmt.Fprintf(b, "| Baseline Finish | %s |\n", shortDate(impact.BaselineEnd))
	fmt.Fprintf(b, "| Updated Finish | %s |\n", shortDate(impact.UpdatedEnd))
	fmt.Fprintf(b, "| **Project Delay** | %s |\n", delayCell(impact.ProjectDelayDays))
	b.WriteString("\n---\n\n")
}

func writeActivitySection(b *strings.Builder, n int, rec models.DelayRecord) {
	fmt.Fprintf(b, "### %d. %s - %s\n\n", n, rec.TaskCode, rec.TaskName)
	b.WriteString("| | Baseline | Updated | Delay |\n")
	b.WriteString("|--|----------|---------|-------|\n")
	fmt.Fprintf(b, "| Start | %s | %s | %s |\n", shortDate(rec.BaselineStart), shortDate(rec.UpdatedStart), delayCell(rec.StartDelayDays))
	fmt.Fprintf(b, "| End | %s | %s | %s |\n", shortDate(rec.BaselineEnd), shortDate(rec.UpdatedEnd), delayCell(rec.EndDelayDays))
	b.WriteString("\n")

	if len(rec.CausingPredecessors) > 0 {
		b.WriteString("**Caused By:**\n")
		for _, pred := range rec.CausingPredecessors {
			fmt.Fprintf(b, "- `%s` - %s (%s)\n", pred.TaskCode, pred.TaskName, pred.DependencyType)
		}
		b.WriteString("\n")
	}

	if len(rec.ImpactedSuccessors) > 0 {
		b.WriteString("**Impacted Successors:**\n")
		for _, succ := range rec.ImpactedSuccessors {
			fmt.Fprintf(b, "- `%s` - %s (%s)\n", succ.TaskCode, succ.TaskName, succ.DependencyType)
		}
		b.WriteString("\n")
	} else {
		b.WriteString("**Impacted Successors:** None\n\n")
	}

	b.WriteString("---\n\n")
}

func writeAppendix(b *strings.Builder, records []models.DelayRecord) {
	b.WriteString("## Appendix: All Delayed Activities\n\n")
	b.WriteString("| Task Code | Task Name | Delay Reason | Start Delay | End Delay |\n")
	b.WriteString("|-----------|-----------|--------------|-------------|-----------|\n")
	for _, rec := range records {
		name := rec.TaskName
		if len(name) > maxNameLen {
			name = name[:maxNameLen-3] + "..."
		}
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s |\n",
			rec.TaskCode, name, rec.DelayReason,
			plainDelay(rec.StartDelayDays), plainDelay(rec.EndDelayDays))
	}
	b.WriteString("\n")
}

// splitByReason partitions records by delay reason, preserving order.
func splitByReason(records []models.DelayRecord) (byItself, byPredecessor []models.DelayRecord) {
	for _, rec := range records {
		if rec.DelayReason == models.DelayedByPredecessor {
			byPredecessor = append(byPredecessor, rec)
		} else {
			byItself = append(byItself, rec)
		}
	}
	return byItself, byPredecessor
}

// delayCell formats a delay value for a table cell, bolding positive
// delays so slippage stands out.
func delayCell(days float64) string {
	if days > 0 {
		return fmt.Sprintf("**+%.1f days**", days)
	}
	return fmt.Sprintf("%.1f days", days)
}

// plainDelay formats a delay value for the appendix table.
func plainDelay(days float64) string {
	if days > 0 {
		return fmt.Sprintf("+%.1f days", days)
	}
	return fmt.Sprintf("%.1f days", days)
}

// shortDate reduces a raw export date string to YYYY-MM-DD for display.
// Unknown or unparseable dates render as N/A.
func shortDate(raw string) string {
	t := schedule.ParseDate(raw)
	if t == nil {
		return "N/A"
	}
	return t.Format("2006-01-02")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
