package domain

import "time"

// DaysBetween returns the number of whole days from a to b, truncated toward
// zero. Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
