package models

import "time"

// DependencyType identifies which date pair governs a link between two
// activities: Finish-to-Start, Finish-to-Finish, Start-to-Start, or
// Start-to-Finish.
type DependencyType string

const (
	DepFinishToStart  DependencyType = "FS"
	DepFinishToFinish DependencyType = "FF"
	DepStartToStart   DependencyType = "SS"
	DepStartToFinish  DependencyType = "SF"
)

// DefaultDependencyType is assumed when an export omits the link type,
// matching P6 behavior.
const DefaultDependencyType = DepFinishToStart

// FinishDriven reports whether the link keys off the predecessor's
// finish date (FS, FF) rather than its start date (SS, SF).
func (dt DependencyType) FinishDriven() bool {
	return dt == DepFinishToStart || dt == DepFinishToFinish
}

// DependencyLink is one declared predecessor or successor relationship.
type DependencyLink struct {
	TaskCode string         `json:"task_code"`
	Type     DependencyType `json:"dependency_type"`
}

// Dependencies holds an activity's declared links, in export order.
type Dependencies struct {
	Predecessors []DependencyLink `json:"predecessors"`
	Successors   []DependencyLink `json:"successors"`
}

// Activity is one schedule activity from a single snapshot. Dates are
// pointers: a nil date is unknown (absent or unparseable in the export)
// and never participates in delay computation. RawStart/RawEnd keep the
// original date text for display so reports never reformat what the
// export said.
type Activity struct {
	TaskCode     string
	TaskName     string
	PlannedStart *time.Time
	PlannedEnd   *time.Time
	RawStart     string
	RawEnd       string
	Dependencies Dependencies
}

// ProjectInfo is the project metadata block carried by schedule and
// critical-path exports. Fields not present in an export stay empty.
type ProjectInfo struct {
	ProjectCode string `json:"project_code"`
	ProjectName string `json:"project_name"`
}

// Snapshot is one loaded schedule version: activities indexed by task
// code plus the export's project metadata. Entries without a task code
// are dropped at load time, so every key is non-empty.
type Snapshot struct {
	Activities map[string]*Activity
	Project    ProjectInfo
}

// Get returns the activity with the given task code, or nil.
func (s *Snapshot) Get(taskCode string) *Activity {
	if s == nil {
		return nil
	}
	return s.Activities[taskCode]
}

// Len returns the number of indexed activities.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Activities)
}

// CriticalPathSet is the precomputed critical path: the set of task
// codes on it plus the export's project metadata.
type CriticalPathSet struct {
	TaskCodes map[string]struct{}
	Project   ProjectInfo
}

// Contains reports whether the task code is on the critical path.
func (c *CriticalPathSet) Contains(taskCode string) bool {
	if c == nil {
		return false
	}
	_, ok := c.TaskCodes[taskCode]
	return ok
}

// Len returns the number of critical-path task codes.
func (c *CriticalPathSet) Len() int {
	if c == nil {
		return 0
	}
	return len(c.TaskCodes)
}
