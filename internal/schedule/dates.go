// Package schedule loads P6 schedule exports (activities and critical
// path JSON files) into indexed snapshots for analysis.
package schedule

import (
	"strings"
	"time"
)

// dateLayouts are the accepted forms for planned dates at the input
// boundary, tried in order after normalizing a trailing Z to +00:00.
var dateLayouts = []string{
	"2006-01-02T15:04:05-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses an ISO-8601-like date string. An empty or
// unparseable value yields nil: an unknown date, not an error. The
// exports emit either a Z suffix or a numeric offset.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
