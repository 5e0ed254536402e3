package rules

import "time"

// Category day boundaries are fixed to UTC so bucketization stays
// deterministic regardless of requester locale.

func UTCDayStart(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func SameUTCDay(a, b time.Time) bool {
	a = a.UTC()
	b = b.UTC()
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func WithinWindow(at, now time.Time, window time.Duration) bool {
	if at.IsZero() || window <= 0 {
		return false
	}
	elapsed := now.UTC().Sub(at.UTC())
	return elapsed >= 0 && elapsed <= window
}
