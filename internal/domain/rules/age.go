package rules

import "time"

// AgeAt returns full years between birthdate and now. Zero birthdates
// yield -1 so callers can treat the age as missing.
func AgeAt(birthdate, now time.Time) int {
	if birthdate.IsZero() {
		return -1
	}

	birthdate = birthdate.UTC()
	now = now.UTC()
	age := now.Year() - birthdate.Year()
	anniversary := time.Date(now.Year(), birthdate.Month(), birthdate.Day(), 0, 0, 0, 0, time.UTC)
	if now.Before(anniversary) {
		age--
	}
	if age < 0 {
		return -1
	}
	return age
}
