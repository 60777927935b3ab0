package schedule

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/p6tools/p6delta/pkg/models"
)

// Loader reads schedule and critical-path exports from disk.
type Loader interface {
	LoadSnapshot(path string) (*models.Snapshot, error)
	LoadCriticalPath(path string) (*models.CriticalPathSet, error)
}

// jsonLoader implements Loader for the JSON export format produced by
// the P6 extraction pipeline.
type jsonLoader struct{}

// NewLoader creates a Loader for JSON schedule exports.
func NewLoader() Loader {
	return &jsonLoader{}
}

// --- raw export shapes ---

type rawActivity struct {
	TaskCode         string          `json:"task_code"`
	TaskName         string          `json:"task_name"`
	PlannedStartDate string          `json:"planned_start_date"`
	PlannedEndDate   string          `json:"planned_end_date"`
	Dependencies     rawDependencies `json:"dependencies"`
}

type rawDependencies struct {
	Predecessors []rawLink `json:"predecessors"`
	Successors   []rawLink `json:"successors"`
}

type rawLink struct {
	TaskCode       string `json:"task_code"`
	DependencyType string `json:"dependency_type"`
}

type rawSchedule struct {
	Project    models.ProjectInfo `json:"project"`
	Activities []rawActivity      `json:"activities"`
}

type rawCriticalPath struct {
	Project       models.ProjectInfo `json:"project"`
	CriticalPaths []struct {
		Activities []struct {
			TaskCode string `json:"task_code"`
		} `json:"activities"`
	} `json:"critical_paths"`
}

// LoadSnapshot reads an activities export and indexes it by task code.
// Entries without a task code are ignored. A file that cannot be read
// or decoded is a fatal load failure identifying the input path.
func (l *jsonLoader) LoadSnapshot(path string) (*models.Snapshot, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: user-supplied schedule export path
	if err != nil {
		return nil, fmt.Errorf("reading schedule %s: %w", path, err)
	}

	var raw rawSchedule
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing schedule %s: %w", path, err)
	}

	snap := &models.Snapshot{
		Activities: make(map[string]*models.Activity, len(raw.Activities)),
		Project:    raw.Project,
	}

	for _, ra := range raw.Activities {
		if ra.TaskCode == "" {
			continue
		}
		snap.Activities[ra.TaskCode] = &models.Activity{
			TaskCode:     ra.TaskCode,
			TaskName:     ra.TaskName,
			PlannedStart: ParseDate(ra.PlannedStartDate),
			PlannedEnd:   ParseDate(ra.PlannedEndDate),
			RawStart:     ra.PlannedStartDate,
			RawEnd:       ra.PlannedEndDate,
			Dependencies: convertDependencies(ra.Dependencies),
		}
	}

	return snap, nil
}

// LoadCriticalPath reads a critical-path export and collects the task
// codes across all listed paths. Entries without a task code are
// ignored.
func (l *jsonLoader) LoadCriticalPath(path string) (*models.CriticalPathSet, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: user-supplied critical path export path
	if err != nil {
		return nil, fmt.Errorf("reading critical path %s: %w", path, err)
	}

	var raw rawCriticalPath
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing critical path %s: %w", path, err)
	}

	cp := &models.CriticalPathSet{
		TaskCodes: make(map[string]struct{}),
		Project:   raw.Project,
	}
	for _, p := range raw.CriticalPaths {
		for _, a := range p.Activities {
			if a.TaskCode != "" {
				cp.TaskCodes[a.TaskCode] = struct{}{}
			}
		}
	}

	return cp, nil
}

// convertDependencies maps raw links to typed links, dropping entries
// without a task code and defaulting an absent link type to FS.
func convertDependencies(raw rawDependencies) models.Dependencies {
	return models.Dependencies{
		Predecessors: convertLinks(raw.Predecessors),
		Successors:   convertLinks(raw.Successors),
	}
}

func convertLinks(raw []rawLink) []models.DependencyLink {
	var links []models.DependencyLink
	for _, rl := range raw {
		if rl.TaskCode == "" {
			continue
		}
		depType := models.DependencyType(rl.DependencyType)
		switch depType {
		case models.DepFinishToStart, models.DepFinishToFinish,
			models.DepStartToStart, models.DepStartToFinish:
		default:
			depType = models.DefaultDependencyType
		}
		links = append(links, models.DependencyLink{
			TaskCode: rl.TaskCode,
			Type:     depType,
		})
	}
	return links
}
