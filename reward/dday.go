package reward

import (
	"math"
	"time"
)

// DDay returns the number of calendar days from now until goal in loc:
// positive while the goal is in the future, zero on the day itself, negative
// after it has passed. Time-of-day on either side never affects the count.
func DDay(goal, now time.Time, loc *time.Location) int {
	g := TruncateToDate(goal, loc)
	n := TruncateToDate(now, loc)
	return int(math.Round(g.Sub(n).Hours() / 24))
}

// TruncateToDate drops the time-of-day component in loc.
func TruncateToDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
