package models

import "time"

// DelayReason classifies where a delayed activity's slippage originates.
type DelayReason string

const (
	// DelayedByItself means no predecessor slipped on the axis that
	// governs its link, so the activity is the source of its own delay.
	DelayedByItself DelayReason = "by_itself"
	// DelayedByPredecessor means at least one predecessor slipped on
	// the governing axis. Any causal predecessor reclassifies the
	// activity, regardless of delay magnitude.
	DelayedByPredecessor DelayReason = "by_predecessor"
)

// Scope selects which activities an analysis run covers.
type Scope string

const (
	// ScopeCritical analyzes only critical-path task codes.
	ScopeCritical Scope = "critical"
	// ScopeAll analyzes every task code present in both snapshots.
	ScopeAll Scope = "all"
)

// Valid reports whether s is a recognized scope.
func (s Scope) Valid() bool {
	return s == ScopeCritical || s == ScopeAll
}

// LinkRef identifies a linked activity in analysis output: a causing
// predecessor or an impacted successor. TaskName is resolved from the
// updated snapshot and is empty for dangling links.
type LinkRef struct {
	TaskCode       string         `json:"task_code" yaml:"task_code"`
	TaskName       string         `json:"task_name" yaml:"task_name"`
	DependencyType DependencyType `json:"dependency_type" yaml:"dependency_type"`
}

// DelayRecord is the analysis result for one delayed activity.
// Immutable once produced. Date fields carry the exports' original
// text, not reparsed or reformatted values. Delay magnitudes are
// signed fractional days, 0 when not computable.
type DelayRecord struct {
	TaskCode            string      `json:"task_code" yaml:"task_code"`
	TaskName            string      `json:"task_name" yaml:"task_name"`
	BaselineStart       string      `json:"baseline_start" yaml:"baseline_start"`
	BaselineEnd         string      `json:"baseline_end" yaml:"baseline_end"`
	UpdatedStart        string      `json:"updated_start" yaml:"updated_start"`
	UpdatedEnd          string      `json:"updated_end" yaml:"updated_end"`
	StartDelayDays      float64     `json:"start_delay_days" yaml:"start_delay_days"`
	EndDelayDays        float64     `json:"end_delay_days" yaml:"end_delay_days"`
	DelayReason         DelayReason `json:"delay_reason" yaml:"delay_reason"`
	CausingPredecessors []LinkRef   `json:"causing_predecessors" yaml:"causing_predecessors"`
	ImpactedSuccessors  []LinkRef   `json:"impacted_successors" yaml:"impacted_successors"`
}

// Summary holds the per-run counts exposed to renderers.
type Summary struct {
	TotalActivities    int `json:"total_activities" yaml:"total_activities"`
	DelayedCount       int `json:"delayed_count" yaml:"delayed_count"`
	ByItselfCount      int `json:"by_itself_count" yaml:"by_itself_count"`
	ByPredecessorCount int `json:"by_predecessor_count" yaml:"by_predecessor_count"`
}

// ProjectImpact is the schedule-level summary computed from the
// critical path's terminal activity (latest updated finish). A nil
// *ProjectImpact means no impact was computable, which is distinct
// from a zero delay.
type ProjectImpact struct {
	ProjectDelayDays float64 `json:"project_delay_days" yaml:"project_delay_days"`
	TerminalTaskCode string  `json:"terminal_task_code" yaml:"terminal_task_code"`
	TerminalTaskName string  `json:"terminal_task_name" yaml:"terminal_task_name"`
	BaselineEnd      string  `json:"baseline_end" yaml:"baseline_end"`
	UpdatedEnd       string  `json:"updated_end" yaml:"updated_end"`
}

// RunInfo describes one analysis run for the report header and the
// audit log. The timestamp lives here, never in DelayRecord, so record
// output stays byte-identical across runs on identical inputs.
type RunInfo struct {
	AnalysisDate        time.Time `json:"analysis_date" yaml:"analysis_date"`
	BaselineFile        string    `json:"baseline_file" yaml:"baseline_file"`
	UpdatedFile         string    `json:"updated_file" yaml:"updated_file"`
	CriticalPathFile    string    `json:"critical_path_file" yaml:"critical_path_file"`
	BaselineProjectCode string    `json:"baseline_project_code" yaml:"baseline_project_code"`
	UpdatedProjectCode  string    `json:"updated_project_code" yaml:"updated_project_code"`
	Scope               Scope     `json:"scope" yaml:"scope"`
}

// Report is the complete output of one analysis run, consumed by every
// rendering target.
type Report struct {
	Run           RunInfo        `json:"analysis_info" yaml:"analysis_info"`
	Summary       Summary        `json:"summary" yaml:"summary"`
	Delayed       []DelayRecord  `json:"delayed_activities" yaml:"delayed_activities"`
	ProjectImpact *ProjectImpact `json:"project_impact,omitempty" yaml:"project_impact,omitempty"`
}
