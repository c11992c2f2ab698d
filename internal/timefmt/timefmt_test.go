package timefmt

import (
	"testing"
	"time"
)

func TestAge(t *testing.T) {
	loc := time.FixedZone("Test", 9*3600)
	ref := time.Date(2025, time.December, 5, 15, 0, 0, 0, loc)

	cases := []struct {
		name string
		ts   time.Time
		want string
	}{
		{"future", ref.Add(10 * time.Second), "just now"},
		{"subSecond", ref.Add(-300 * time.Millisecond), "just now"},
		{"seconds", ref.Add(-42 * time.Second), "42s ago"},
		{"minutes", ref.Add(-5*time.Minute - 10*time.Second), "5m ago"},
		{"hours", ref.Add(-3 * time.Hour), "3h ago"},
		{"days", ref.Add(-50 * time.Hour), "2d ago"},
		{"sameYear", ref.AddDate(0, -2, 0), "Oct 5"},
		{"differentYear", time.Date(2023, time.January, 2, 15, 0, 0, 0, loc), "Jan 2 2023"},
		{"otherZone", ref.Add(-7 * time.Hour).UTC(), "7h ago"},
		{"unknown", time.Time{}, "unknown"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Age(tc.ts, ref); got != tc.want {
				t.Fatalf("Age(%s) = %q, want %q", tc.name, got, tc.want)
			}
		})
	}
}
