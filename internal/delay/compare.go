// Package delay implements the delay-attribution engine: date-pair
// comparison, causal attribution against predecessors, one-hop impact
// propagation to successors, and the project-level impact computed from
// the critical path's terminal activity.
package delay

import "time"

const hoursPerDay = 24

// IsDelayed reports whether the updated instant is strictly later than
// the baseline. An unknown date on either side is never a delay.
func IsDelayed(baseline, updated *time.Time) bool {
	if baseline == nil || updated == nil {
		return false
	}
	return updated.After(*baseline)
}

// DelayDays returns the signed difference between updated and baseline
// in fractional days, and whether it was computable. Positive means
// later than baseline. An unknown date on either side yields (0, false),
// which callers must keep distinct from a genuine zero delay.
func DelayDays(baseline, updated *time.Time) (float64, bool) {
	if baseline == nil || updated == nil {
		return 0, false
	}
	return updated.Sub(*baseline).Hours() / hoursPerDay, true
}
