package delay

import (
	"sort"

	"github.com/p6tools/p6delta/pkg/models"
)

// ImpactCalculator computes the schedule-level completion delay from
// the critical path's terminal activity.
type ImpactCalculator interface {
	ProjectImpact(baseline, updated *models.Snapshot, critical *models.CriticalPathSet) *models.ProjectImpact
}

type impactCalculator struct{}

// NewImpactCalculator creates a stateless ImpactCalculator.
func NewImpactCalculator() ImpactCalculator {
	return &impactCalculator{}
}

// ProjectImpact selects the critical-path activity with the latest
// updated finish date (the terminal activity, which gates project
// completion) and returns its baseline-vs-updated finish delta. Ties
// on the finish date go to the lexicographically smallest task code.
// Returns nil when no impact is computable: no critical activity has a
// resolvable updated end date, or the terminal activity is missing
// from the baseline or has no dates to compare. Nil is absence, not a
// zero delay.
func (c *impactCalculator) ProjectImpact(baseline, updated *models.Snapshot, critical *models.CriticalPathSet) *models.ProjectImpact {
	codes := make([]string, 0, critical.Len())
	for code := range critical.TaskCodes {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	var terminal *models.Activity
	for _, code := range codes {
		activity := updated.Get(code)
		if activity == nil || activity.PlannedEnd == nil {
			continue
		}
		if terminal == nil || activity.PlannedEnd.After(*terminal.PlannedEnd) {
			terminal = activity
		}
	}
	if terminal == nil {
		return nil
	}

	base := baseline.Get(terminal.TaskCode)
	if base == nil {
		return nil
	}

	delayDays, ok := DelayDays(base.PlannedEnd, terminal.PlannedEnd)
	if !ok {
		return nil
	}

	return &models.ProjectImpact{
		ProjectDelayDays: delayDays,
		TerminalTaskCode: terminal.TaskCode,
		TerminalTaskName: terminal.TaskName,
		BaselineEnd:      base.RawEnd,
		UpdatedEnd:       terminal.RawEnd,
	}
}
