// Package observability provides the append-only audit log of analysis
// runs, so delay-attribution reports stay traceable to the inputs and
// counts that produced them.
package observability

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// RunEvent records one completed analysis run.
type RunEvent struct {
	Time             time.Time `json:"time"`
	BaselineFile     string    `json:"baseline_file"`
	UpdatedFile      string    `json:"updated_file"`
	CriticalPathFile string    `json:"critical_path_file"`
	Scope            string    `json:"scope"`
	TotalActivities  int       `json:"total_activities"`
	DelayedCount     int       `json:"delayed_count"`
	ProjectDelayDays *float64  `json:"project_delay_days,omitempty"`
}

// RunFilter specifies criteria for reading run events.
type RunFilter struct {
	Since *time.Time
	Scope string
}

// RunLog defines the interface for appending and reading run events.
type RunLog interface {
	Append(event RunEvent) error
	Read(filter RunFilter) ([]RunEvent, error)
	Close() error
}

// jsonlRunLog implements RunLog using an append-only JSONL file.
type jsonlRunLog struct {
	path string
	file *os.File
	mu   sync.Mutex
}

// NewJSONLRunLog creates a RunLog backed by a JSONL file at path.
func NewJSONLRunLog(path string) (RunLog, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // G304: audit log path from config
	if err != nil {
		return nil, fmt.Errorf("opening run log: %w", err)
	}
	return &jsonlRunLog{path: path, file: f}, nil
}

// Append writes a JSON-encoded run event followed by a newline.
func (l *jsonlRunLog) Append(event RunEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshalling run event: %w", err)
	}
	data = append(data, '\n')

	if _, err := l.file.Write(data); err != nil {
		return fmt.Errorf("writing run event: %w", err)
	}
	return nil
}

// Read scans the log file line by line and returns events matching the
// filter. Malformed lines are skipped.
func (l *jsonlRunLog) Read(filter RunFilter) ([]RunEvent, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening run log for reading: %w", err)
	}
	defer func() { _ = f.Close() }()

	var events []RunEvent
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var event RunEvent
		if err := json.Unmarshal(line, &event); err != nil {
			continue
		}

		if matchesRunFilter(event, filter) {
			events = append(events, event)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning run log: %w", err)
	}

	return events, nil
}

// Close closes the underlying log file.
func (l *jsonlRunLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.file.Close(); err != nil {
		return fmt.Errorf("closing run log: %w", err)
	}
	return nil
}

// matchesRunFilter checks whether an event satisfies all filter criteria.
func matchesRunFilter(event RunEvent, filter RunFilter) bool {
	if filter.Since != nil && event.Time.Before(*filter.Since) {
		return false
	}
	if filter.Scope != "" && event.Scope != filter.Scope {
		return false
	}
	return true
}
