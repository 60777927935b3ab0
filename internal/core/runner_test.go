package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/p6tools/p6delta/internal/delay"
	"github.com/p6tools/p6delta/internal/observability"
	"github.com/p6tools/p6delta/internal/schedule"
	"github.com/p6tools/p6delta/pkg/models"
)

const baselineJSON = `{
	"project": {"project_code": "PRJ-BL"},
	"activities": [
		{
			"task_code": "T100",
			"task_name": "Pour Concrete",
			"planned_start_date": "2024-01-05T00:00:00Z",
			"planned_end_date": "2024-01-10T00:00:00Z",
			"dependencies": {"successors": [{"task_code": "T200", "dependency_type": "FS"}]}
		},
		{
			"task_code": "T200",
			"task_name": "Cure",
			"planned_start_date": "2024-01-11T00:00:00Z",
			"planned_end_date": "2024-01-14T00:00:00Z",
			"dependencies": {"predecessors": [{"task_code": "T100", "dependency_type": "FS"}]}
		}
	]
}`

const updatedJSON = `{
	"project": {"project_code": "PRJ-UD"},
	"activities": [
		{
			"task_code": "T100",
			"task_name": "Pour Concrete",
			"planned_start_date": "2024-01-05T00:00:00Z",
			"planned_end_date": "2024-01-15T00:00:00Z",
			"dependencies": {"successors": [{"task_code": "T200", "dependency_type": "FS"}]}
		},
		{
			"task_code": "T200",
			"task_name": "Cure",
			"planned_start_date": "2024-01-11T00:00:00Z",
			"planned_end_date": "2024-01-14T00:00:00Z",
			"dependencies": {"predecessors": [{"task_code": "T100", "dependency_type": "FS"}]}
		}
	]
}`

const criticalJSON = `{
	"project": {"project_code": "PRJ-UD"},
	"critical_paths": [
		{"activities": [{"task_code": "T100"}, {"task_code": "T200"}]}
	]
}`

func writeFixtures(t *testing.T) (string, string, string) {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"baseline.json": baselineJSON,
		"updated.json":  updatedJSON,
		"critical.json": criticalJSON,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("writing fixture %s: %v", name, err)
		}
	}
	return filepath.Join(dir, "baseline.json"),
		filepath.Join(dir, "updated.json"),
		filepath.Join(dir, "critical.json")
}

func newTestRunner(runLog observability.RunLog) AnalysisRunner {
	return NewAnalysisRunner(
		schedule.NewLoader(),
		delay.NewAnalyzer(delay.NewAttributor(), delay.NewPropagator()),
		delay.NewImpactCalculator(),
		runLog,
		nil,
	)
}

func TestRun_EndToEnd(t *testing.T) {
	baseline, updated, critical := writeFixtures(t)

	rep, err := newTestRunner(nil).Run(baseline, updated, critical, models.ScopeCritical)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rep.Summary.TotalActivities != 2 {
		t.Errorf("expected 2 total, got %d", rep.Summary.TotalActivities)
	}
	if rep.Summary.DelayedCount != 1 {
		t.Fatalf("expected 1 delayed, got %d", rep.Summary.DelayedCount)
	}

	rec := rep.Delayed[0]
	if rec.TaskCode != "T100" {
		t.Errorf("expected T100 delayed, got %s", rec.TaskCode)
	}
	if rec.EndDelayDays != 5 {
		t.Errorf("expected 5 day end delay, got %v", rec.EndDelayDays)
	}
	if rec.DelayReason != models.DelayedByItself {
		t.Errorf("expected by_itself, got %s", rec.DelayReason)
	}
	if len(rec.ImpactedSuccessors) != 1 || rec.ImpactedSuccessors[0].TaskCode != "T200" {
		t.Errorf("expected T200 impacted, got %v", rec.ImpactedSuccessors)
	}

	if rep.ProjectImpact == nil {
		t.Fatal("expected computable project impact")
	}
	if rep.ProjectImpact.TerminalTaskCode != "T100" {
		t.Errorf("expected terminal T100 (latest updated end), got %s", rep.ProjectImpact.TerminalTaskCode)
	}
	if rep.ProjectImpact.ProjectDelayDays != 5 {
		t.Errorf("expected 5 day project delay, got %v", rep.ProjectImpact.ProjectDelayDays)
	}

	if rep.Run.BaselineProjectCode != "PRJ-BL" || rep.Run.UpdatedProjectCode != "PRJ-UD" {
		t.Errorf("unexpected project codes in run info: %+v", rep.Run)
	}
	if rep.Run.BaselineFile != "baseline.json" {
		t.Errorf("expected base file name, got %q", rep.Run.BaselineFile)
	}
}

func TestRun_FailedLoadIdentifiesInput(t *testing.T) {
	baseline, updated, _ := writeFixtures(t)

	_, err := newTestRunner(nil).Run(baseline, updated, filepath.Join(t.TempDir(), "nope.json"), models.ScopeCritical)
	if err == nil {
		t.Fatal("expected error for missing critical path file")
	}
	if !strings.Contains(err.Error(), "critical path") {
		t.Errorf("error must identify the failing input, got %q", err)
	}
}

func TestRun_InvalidScopeRejected(t *testing.T) {
	baseline, updated, critical := writeFixtures(t)

	_, err := newTestRunner(nil).Run(baseline, updated, critical, models.Scope("bogus"))
	if err == nil {
		t.Fatal("expected error for invalid scope")
	}
}

func TestRun_AppendsToRunLog(t *testing.T) {
	baseline, updated, critical := writeFixtures(t)

	logPath := filepath.Join(t.TempDir(), "runs.jsonl")
	runLog, err := observability.NewJSONLRunLog(logPath)
	if err != nil {
		t.Fatalf("creating run log: %v", err)
	}
	defer func() { _ = runLog.Close() }()

	if _, err := newTestRunner(runLog).Run(baseline, updated, critical, models.ScopeCritical); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	events, err := runLog.Read(observability.RunFilter{})
	if err != nil {
		t.Fatalf("reading run log: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 run event, got %d", len(events))
	}
	if events[0].DelayedCount != 1 || events[0].Scope != "critical" {
		t.Errorf("unexpected run event: %+v", events[0])
	}
	if events[0].ProjectDelayDays == nil || *events[0].ProjectDelayDays != 5 {
		t.Errorf("expected 5 day project delay in event, got %v", events[0].ProjectDelayDays)
	}
}
