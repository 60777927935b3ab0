package report

import (
	"strings"
	"testing"

	"github.com/p6tools/p6delta/pkg/models"
)

func renderMarkdown(t *testing.T, rep *models.Report) string {
	t.Helper()
	data, err := NewMarkdownRenderer().Render(rep)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return string(data)
}

func TestMarkdown_SectionsPresent(t *testing.T) {
	out := renderMarkdown(t, sampleReport())

	for _, section := range []string{
		"# Schedule Delay Analysis Report",
		"## Summary",
		"## Project Completion Impact",
		"## Delays by Itself (Action Required)",
		"## Delays by Predecessor",
		"## Appendix: All Delayed Activities",
	} {
		if !strings.Contains(out, section) {
			t.Errorf("expected section %q", section)
		}
	}
}

func TestMarkdown_RecordsSplitByReason(t *testing.T) {
	out := renderMarkdown(t, sampleReport())

	itselfIdx := strings.Index(out, "## Delays by Itself")
	predIdx := strings.Index(out, "## Delays by Predecessor")
	t100 := strings.Index(out, "T100 - Pour Concrete")
	t200 := strings.Index(out, "T200 - Cure")

	if !(itselfIdx < t100 && t100 < predIdx) {
		t.Error("expected T100 under the by-itself section")
	}
	if t200 < predIdx {
		t.Error("expected T200 under the by-predecessor section")
	}
	if !strings.Contains(out, "**Caused By:**") {
		t.Error("expected causing predecessors listed")
	}
	if !strings.Contains(out, "**Impacted Successors:**") {
		t.Error("expected impacted successors listed")
	}
}

func TestMarkdown_PositiveDelaysBoldedToOneDecimal(t *testing.T) {
	out := renderMarkdown(t, sampleReport())

	if !strings.Contains(out, "**+5.0 days**") {
		t.Error("expected positive delays rendered bold with one decimal")
	}
	// Zero start delay on T100 stays unstyled.
	if !strings.Contains(out, "0.0 days") {
		t.Error("expected zero delay rendered plainly")
	}
}

func TestMarkdown_DatesShortenedAndUnknownAsNA(t *testing.T) {
	rep := sampleReport()
	rep.Delayed[0].BaselineStart = ""
	out := renderMarkdown(t, rep)

	if !strings.Contains(out, "2024-01-10") {
		t.Error("expected dates reduced to YYYY-MM-DD")
	}
	if !strings.Contains(out, "N/A") {
		t.Error("expected unknown dates rendered as N/A")
	}
}

func TestMarkdown_EmptySectionsAnnotated(t *testing.T) {
	rep := sampleReport()
	rep.Delayed = nil
	rep.ProjectImpact = nil
	out := renderMarkdown(t, rep)

	if !strings.Contains(out, "*No activities delayed by itself.*") {
		t.Error("expected empty by-itself marker")
	}
	if !strings.Contains(out, "*No activities delayed by predecessor.*") {
		t.Error("expected empty by-predecessor marker")
	}
	if !strings.Contains(out, "*No project impact computable from the critical path.*") {
		t.Error("expected missing impact marker")
	}
}

func TestMarkdown_LongNamesTruncatedInAppendix(t *testing.T) {
	rep := sampleReport()
	rep.Delayed[0].TaskName = strings.Repeat("x", 80)
	out := renderMarkdown(t, rep)

	appendix := out[strings.Index(out, "## Appendix"):]
	if strings.Contains(appendix, strings.Repeat("x", 51)) {
		t.Error("expected appendix names capped at 50 characters")
	}
	if !strings.Contains(appendix, strings.Repeat("x", 47)+"...") {
		t.Error("expected truncated name with ellipsis")
	}
}
