package delay

import (
	"time"

	"github.com/p6tools/p6delta/pkg/models"
)

// actBuilder assembles activities for snapshot fixtures.
type actBuilder struct {
	act *models.Activity
}

func act(taskCode, taskName string) *actBuilder {
	return &actBuilder{act: &models.Activity{
		TaskCode: taskCode,
		TaskName: taskName,
	}}
}

func (b *actBuilder) start(y int, m time.Month, d int) *actBuilder {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	b.act.PlannedStart = &t
	b.act.RawStart = t.Format("2006-01-02T15:04:05Z")
	return b
}

func (b *actBuilder) end(y int, m time.Month, d int) *actBuilder {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	b.act.PlannedEnd = &t
	b.act.RawEnd = t.Format("2006-01-02T15:04:05Z")
	return b
}

func (b *actBuilder) pred(taskCode string, depType models.DependencyType) *actBuilder {
	b.act.Dependencies.Predecessors = append(b.act.Dependencies.Predecessors,
		models.DependencyLink{TaskCode: taskCode, Type: depType})
	return b
}

func (b *actBuilder) succ(taskCode string, depType models.DependencyType) *actBuilder {
	b.act.Dependencies.Successors = append(b.act.Dependencies.Successors,
		models.DependencyLink{TaskCode: taskCode, Type: depType})
	return b
}

// snapshot indexes the given activities.
func snapshot(builders ...*actBuilder) *models.Snapshot {
	snap := &models.Snapshot{Activities: make(map[string]*models.Activity)}
	for _, b := range builders {
		snap.Activities[b.act.TaskCode] = b.act
	}
	return snap
}

// criticalSet builds a CriticalPathSet from task codes.
func criticalSet(codes ...string) *models.CriticalPathSet {
	cp := &models.CriticalPathSet{TaskCodes: make(map[string]struct{})}
	for _, c := range codes {
		cp.TaskCodes[c] = struct{}{}
	}
	return cp
}
