package schedule

import (
	"testing"
	"time"

	"pgregory.net/rapid"
)

// Property: any instant formatted the way the exports format dates
// parses back to the same instant, both with the Z suffix and with a
// numeric offset.
func TestProperty_ParseDateRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		secs := rapid.Int64Range(0, 4_000_000_000).Draw(rt, "secs")
		want := time.Unix(secs, 0).UTC()

		for _, text := range []string{
			want.Format("2006-01-02T15:04:05Z"),
			want.Format("2006-01-02T15:04:05-07:00"),
		} {
			got := ParseDate(text)
			if got == nil {
				t.Fatalf("failed to parse %q", text)
			}
			if !got.Equal(want) {
				t.Fatalf("parsed %q to %v, want %v", text, got, want)
			}
		}
	})
}

// Property: ParseDate never panics and treats arbitrary text as
// unknown rather than an error.
func TestProperty_ParseDateNeverPanics(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		input := rapid.String().Draw(rt, "input")
		_ = ParseDate(input)
	})
}
