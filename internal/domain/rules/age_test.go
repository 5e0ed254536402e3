package rules

import (
	"testing"
	"time"
)

func TestAgeAt(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		birthdate time.Time
		want      int
	}{
		{"birthday passed", time.Date(1996, 3, 15, 0, 0, 0, 0, time.UTC), 30},
		{"birthday today", time.Date(1996, 8, 30, 0, 0, 0, 0, time.UTC), 30},
		{"birthday upcoming", time.Date(1996, 12, 1, 0, 0, 0, 0, time.UTC), 29},
		{"zero birthdate", time.Time{}, -1},
		{"future birthdate", time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), -1},
	}

	for _, tc := range cases {
		if got := AgeAt(tc.birthdate, now); got != tc.want {
			t.Fatalf("%s: got %d want %d", tc.name, got, tc.want)
		}
	}
}

func TestSameUTCDayIgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2026, 8, 30, 0, 1, 0, 0, time.UTC)
	b := time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC)
	if !SameUTCDay(a, b) {
		t.Fatalf("expected same utc day")
	}
	if SameUTCDay(a, b.Add(time.Minute)) {
		t.Fatalf("expected different utc day after midnight")
	}
}

func TestWithinWindow(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	if !WithinWindow(now.Add(-6*24*time.Hour), now, 7*24*time.Hour) {
		t.Fatalf("expected six days ago inside seven day window")
	}
	if WithinWindow(now.Add(-8*24*time.Hour), now, 7*24*time.Hour) {
		t.Fatalf("expected eight days ago outside seven day window")
	}
	if WithinWindow(time.Time{}, now, 7*24*time.Hour) {
		t.Fatalf("expected zero time outside any window")
	}
	if WithinWindow(now.Add(time.Hour), now, 7*24*time.Hour) {
		t.Fatalf("expected future timestamp outside window")
	}
}
