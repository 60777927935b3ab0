package delay

import (
	"github.com/p6tools/p6delta/pkg/models"
)

// Propagator determines which direct successors are pushed by an
// activity's slippage. Propagation is one hop only; it does not walk
// the dependency graph transitively.
type Propagator interface {
	ImpactedSuccessors(taskCode string, startDelayed, endDelayed bool, updated *models.Snapshot) []models.LinkRef
}

type propagator struct{}

// NewPropagator creates a stateless Propagator.
func NewPropagator() Propagator {
	return &propagator{}
}

// ImpactedSuccessors walks the activity's successor links from the
// updated snapshot, in declared order. FS/FF successors are impacted
// iff the activity's end is delayed; SS/SF successors iff its start is
// delayed. The delayed flags are supplied by the analyzer, not
// recomputed here. A successor missing from the updated index is still
// reported, with an empty name: the link exists even when the target's
// metadata is unavailable.
func (p *propagator) ImpactedSuccessors(taskCode string, startDelayed, endDelayed bool, updated *models.Snapshot) []models.LinkRef {
	activity := updated.Get(taskCode)
	if activity == nil {
		return nil
	}

	var impacted []models.LinkRef
	for _, link := range activity.Dependencies.Successors {
		var hit bool
		if link.Type.FinishDriven() {
			hit = endDelayed
		} else {
			hit = startDelayed
		}
		if !hit {
			continue
		}

		var name string
		if succ := updated.Get(link.TaskCode); succ != nil {
			name = succ.TaskName
		}
		impacted = append(impacted, models.LinkRef{
			TaskCode:       link.TaskCode,
			TaskName:       name,
			DependencyType: link.Type,
		})
	}

	return impacted
}
