package delay

import (
	"testing"

	"github.com/p6tools/p6delta/pkg/models"
)

func TestImpactedSuccessors_StartDelayedOnly(t *testing.T) {
	// SS/SF successors key off this activity's start; FS/FF key off its
	// end. With only the start delayed, just the SS successor is hit.
	updated := snapshot(
		act("X", "Source").
			succ("S1", models.DepStartToStart).
			succ("S2", models.DepFinishToStart),
		act("S1", "Start-linked"),
		act("S2", "Finish-linked"),
	)

	impacted := NewPropagator().ImpactedSuccessors("X", true, false, updated)
	if len(impacted) != 1 {
		t.Fatalf("expected 1 impacted successor, got %d", len(impacted))
	}
	if impacted[0].TaskCode != "S1" {
		t.Errorf("expected SS successor S1, got %s", impacted[0].TaskCode)
	}
}

func TestImpactedSuccessors_EndDelayedOnly(t *testing.T) {
	updated := snapshot(
		act("X", "Source").
			succ("S1", models.DepStartToFinish).
			succ("S2", models.DepFinishToFinish),
		act("S1", "Start-linked"),
		act("S2", "Finish-linked"),
	)

	impacted := NewPropagator().ImpactedSuccessors("X", false, true, updated)
	if len(impacted) != 1 {
		t.Fatalf("expected 1 impacted successor, got %d", len(impacted))
	}
	if impacted[0].TaskCode != "S2" {
		t.Errorf("expected FF successor S2, got %s", impacted[0].TaskCode)
	}
}

func TestImpactedSuccessors_BothAxesDelayed(t *testing.T) {
	updated := snapshot(
		act("X", "Source").
			succ("S1", models.DepStartToStart).
			succ("S2", models.DepFinishToStart),
		act("S1", "Start-linked"),
		act("S2", "Finish-linked"),
	)

	impacted := NewPropagator().ImpactedSuccessors("X", true, true, updated)
	if len(impacted) != 2 {
		t.Fatalf("expected both successors impacted, got %d", len(impacted))
	}
	if impacted[0].TaskCode != "S1" || impacted[1].TaskCode != "S2" {
		t.Errorf("expected declared order S1,S2, got %s,%s", impacted[0].TaskCode, impacted[1].TaskCode)
	}
}

func TestImpactedSuccessors_DanglingLinkReportedWithEmptyName(t *testing.T) {
	// S9 is not in the updated index. The link is still reported; only
	// the display name is unavailable.
	updated := snapshot(
		act("X", "Source").succ("S9", models.DepFinishToStart),
	)

	impacted := NewPropagator().ImpactedSuccessors("X", false, true, updated)
	if len(impacted) != 1 {
		t.Fatalf("expected dangling successor to be reported, got %d", len(impacted))
	}
	if impacted[0].TaskCode != "S9" {
		t.Errorf("expected S9, got %s", impacted[0].TaskCode)
	}
	if impacted[0].TaskName != "" {
		t.Errorf("expected empty name for dangling link, got %q", impacted[0].TaskName)
	}
}

func TestImpactedSuccessors_NoDelayNoImpact(t *testing.T) {
	updated := snapshot(
		act("X", "Source").
			succ("S1", models.DepStartToStart).
			succ("S2", models.DepFinishToStart),
	)

	impacted := NewPropagator().ImpactedSuccessors("X", false, false, updated)
	if len(impacted) != 0 {
		t.Fatalf("expected no impact without delay flags, got %v", impacted)
	}
}
