package schedule

import "time"

// Clock abstracts "now" so the resolver, use cases and the maintenance job
// never read the wall clock directly.
type Clock interface {
	Now() time.Time
}

type locationClock struct {
	loc *time.Location
}

func NewClock(loc *time.Location) Clock {
	return locationClock{loc: loc}
}

func (c locationClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// DayOf truncates t to day granularity in its own location.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateKey formats a day as the ISO date string used to key weekly views.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
