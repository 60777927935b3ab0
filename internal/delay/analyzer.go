package delay

import (
	"fmt"
	"sort"

	"github.com/p6tools/p6delta/pkg/models"
)

// Analyzer runs the delay analysis over two schedule snapshots and a
// critical-path set, producing one DelayRecord per delayed activity
// plus summary counts. Each run is a pure function of its inputs; the
// analyzer carries no state between runs.
type Analyzer interface {
	Analyze(baseline, updated *models.Snapshot, critical *models.CriticalPathSet, scope models.Scope) ([]models.DelayRecord, models.Summary, error)
}

type analyzer struct {
	attributor Attributor
	propagator Propagator
}

// NewAnalyzer creates an Analyzer using the given attribution and
// propagation strategies.
func NewAnalyzer(attributor Attributor, propagator Propagator) Analyzer {
	return &analyzer{
		attributor: attributor,
		propagator: propagator,
	}
}

// Analyze examines every candidate activity for slippage between the
// two snapshots. Candidates are the critical-path task codes for
// ScopeCritical, or every task code present in both snapshots for
// ScopeAll. Candidates absent from either snapshot are skipped: added
// or removed scope is not a delay signal. Activities with no slippage
// on either axis produce no record at all. Iteration is in sorted
// task-code order so output is reproducible across runs.
func (a *analyzer) Analyze(baseline, updated *models.Snapshot, critical *models.CriticalPathSet, scope models.Scope) ([]models.DelayRecord, models.Summary, error) {
	candidates, err := candidateCodes(baseline, updated, critical, scope)
	if err != nil {
		return nil, models.Summary{}, err
	}

	var records []models.DelayRecord
	for _, taskCode := range candidates {
		base := baseline.Get(taskCode)
		upd := updated.Get(taskCode)
		if base == nil || upd == nil {
			continue
		}

		startDelayed := IsDelayed(base.PlannedStart, upd.PlannedStart)
		endDelayed := IsDelayed(base.PlannedEnd, upd.PlannedEnd)
		if !startDelayed && !endDelayed {
			continue
		}

		startDelay, _ := DelayDays(base.PlannedStart, upd.PlannedStart)
		endDelay, _ := DelayDays(base.PlannedEnd, upd.PlannedEnd)

		causing := a.attributor.CausingPredecessors(taskCode, baseline, updated)
		reason := models.DelayedByItself
		if len(causing) > 0 {
			reason = models.DelayedByPredecessor
		}

		impacted := a.propagator.ImpactedSuccessors(taskCode, startDelayed, endDelayed, updated)

		records = append(records, models.DelayRecord{
			TaskCode:            taskCode,
			TaskName:            upd.TaskName,
			BaselineStart:       base.RawStart,
			BaselineEnd:         base.RawEnd,
			UpdatedStart:        upd.RawStart,
			UpdatedEnd:          upd.RawEnd,
			StartDelayDays:      startDelay,
			EndDelayDays:        endDelay,
			DelayReason:         reason,
			CausingPredecessors: causing,
			ImpactedSuccessors:  impacted,
		})
	}

	summary := models.Summary{
		TotalActivities: len(candidates),
		DelayedCount:    len(records),
	}
	for _, r := range records {
		switch r.DelayReason {
		case models.DelayedByItself:
			summary.ByItselfCount++
		case models.DelayedByPredecessor:
			summary.ByPredecessorCount++
		}
	}

	return records, summary, nil
}

// candidateCodes resolves the scope to a sorted list of task codes.
func candidateCodes(baseline, updated *models.Snapshot, critical *models.CriticalPathSet, scope models.Scope) ([]string, error) {
	var codes []string

	switch scope {
	case models.ScopeCritical:
		for code := range critical.TaskCodes {
			codes = append(codes, code)
		}
	case models.ScopeAll:
		for code := range updated.Activities {
			if baseline.Get(code) != nil {
				codes = append(codes, code)
			}
		}
	default:
		return nil, fmt.Errorf("unknown analysis scope %q", scope)
	}

	sort.Strings(codes)
	return codes, nil
}
