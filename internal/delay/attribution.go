package delay

import (
	"github.com/p6tools/p6delta/pkg/models"
)

// Attributor decides whether an activity's slippage is explained by an
// upstream dependency. Attribution is a heuristic: a predecessor counts
// as causing if it slipped at all on the axis that governs the link,
// with no check that its delay magnitude accounts for the successor's.
type Attributor interface {
	CausingPredecessors(taskCode string, baseline, updated *models.Snapshot) []models.LinkRef
}

type attributor struct{}

// NewAttributor creates a stateless Attributor.
func NewAttributor() Attributor {
	return &attributor{}
}

// CausingPredecessors walks the activity's predecessor links from the
// updated snapshot, in declared order, and returns every predecessor
// that slipped on the governing axis: finish date for FS/FF links,
// start date for SS/SF. Predecessors absent from either snapshot are
// outside the comparison set and skipped.
func (a *attributor) CausingPredecessors(taskCode string, baseline, updated *models.Snapshot) []models.LinkRef {
	activity := updated.Get(taskCode)
	if activity == nil {
		return nil
	}

	var causing []models.LinkRef
	for _, link := range activity.Dependencies.Predecessors {
		basePred := baseline.Get(link.TaskCode)
		updPred := updated.Get(link.TaskCode)
		if basePred == nil || updPred == nil {
			continue
		}

		var slipped bool
		if link.Type.FinishDriven() {
			slipped = IsDelayed(basePred.PlannedEnd, updPred.PlannedEnd)
		} else {
			slipped = IsDelayed(basePred.PlannedStart, updPred.PlannedStart)
		}

		if slipped {
			causing = append(causing, models.LinkRef{
				TaskCode:       link.TaskCode,
				TaskName:       updPred.TaskName,
				DependencyType: link.Type,
			})
		}
	}

	return causing
}
