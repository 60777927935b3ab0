package core

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/p6tools/p6delta/internal/delay"
	"github.com/p6tools/p6delta/internal/observability"
	"github.com/p6tools/p6delta/internal/schedule"
	"github.com/p6tools/p6delta/pkg/models"
)

// AnalysisRunner executes one complete delay analysis: load both
// snapshots and the critical path, analyze the candidate set, compute
// the project impact, and assemble the report. Shared by the CLI and
// the MCP server.
type AnalysisRunner interface {
	Run(baselinePath, updatedPath, criticalPath string, scope models.Scope) (*models.Report, error)
}

// Progress receives loader progress notifications. Implementations
// must tolerate being nil-checked away; the runner works without one.
type Progress interface {
	Loaded(what string, count int)
}

type analysisRunner struct {
	loader     schedule.Loader
	analyzer   delay.Analyzer
	impactCalc delay.ImpactCalculator
	runLog     observability.RunLog
	progress   Progress
	now        func() time.Time
}

// NewAnalysisRunner creates an AnalysisRunner. runLog and progress may
// be nil; the audit log and progress reporting are then disabled.
func NewAnalysisRunner(loader schedule.Loader, analyzer delay.Analyzer, impactCalc delay.ImpactCalculator, runLog observability.RunLog, progress Progress) AnalysisRunner {
	return &analysisRunner{
		loader:     loader,
		analyzer:   analyzer,
		impactCalc: impactCalc,
		runLog:     runLog,
		progress:   progress,
		now:        time.Now,
	}
}

// Run performs the analysis. Load failures are fatal and name the
// failing input; everything downstream degrades per field or per link
// instead of aborting.
func (r *analysisRunner) Run(baselinePath, updatedPath, criticalPath string, scope models.Scope) (*models.Report, error) {
	if !scope.Valid() {
		return nil, fmt.Errorf("unknown analysis scope %q", scope)
	}

	baseline, err := r.loader.LoadSnapshot(baselinePath)
	if err != nil {
		return nil, fmt.Errorf("loading baseline schedule: %w", err)
	}
	r.loaded("baseline activities", baseline.Len())

	updated, err := r.loader.LoadSnapshot(updatedPath)
	if err != nil {
		return nil, fmt.Errorf("loading updated schedule: %w", err)
	}
	r.loaded("updated activities", updated.Len())

	critical, err := r.loader.LoadCriticalPath(criticalPath)
	if err != nil {
		return nil, fmt.Errorf("loading critical path: %w", err)
	}
	r.loaded("critical path activities", critical.Len())

	records, summary, err := r.analyzer.Analyze(baseline, updated, critical, scope)
	if err != nil {
		return nil, fmt.Errorf("analyzing delays: %w", err)
	}

	impact := r.impactCalc.ProjectImpact(baseline, updated, critical)

	rep := &models.Report{
		Run: models.RunInfo{
			AnalysisDate:        r.now().UTC(),
			BaselineFile:        filepath.Base(baselinePath),
			UpdatedFile:         filepath.Base(updatedPath),
			CriticalPathFile:    filepath.Base(criticalPath),
			BaselineProjectCode: baseline.Project.ProjectCode,
			UpdatedProjectCode:  updated.Project.ProjectCode,
			Scope:               scope,
		},
		Summary:       summary,
		Delayed:       records,
		ProjectImpact: impact,
	}

	r.logRun(rep)

	return rep, nil
}

// loaded notifies the progress sink, if any.
func (r *analysisRunner) loaded(what string, count int) {
	if r.progress != nil {
		r.progress.Loaded(what, count)
	}
}

// logRun appends the run to the audit log. Audit failures never fail
// the analysis.
func (r *analysisRunner) logRun(rep *models.Report) {
	if r.runLog == nil {
		return
	}
	event := observability.RunEvent{
		Time:             rep.Run.AnalysisDate,
		BaselineFile:     rep.Run.BaselineFile,
		UpdatedFile:      rep.Run.UpdatedFile,
		CriticalPathFile: rep.Run.CriticalPathFile,
		Scope:            string(rep.Run.Scope),
		TotalActivities:  rep.Summary.TotalActivities,
		DelayedCount:     rep.Summary.DelayedCount,
	}
	if rep.ProjectImpact != nil {
		days := rep.ProjectImpact.ProjectDelayDays
		event.ProjectDelayDays = &days
	}
	_ = r.runLog.Append(event)
}
