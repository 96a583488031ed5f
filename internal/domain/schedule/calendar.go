package schedule

import "time"

// NextMonday returns the next Monday on or after the given day.
func NextMonday(day time.Time) time.Time {
	day = DayOf(day)
	switch wd := day.Weekday(); wd {
	case time.Monday:
		return day
	case time.Sunday:
		return day.AddDate(0, 0, 1)
	default:
		return day.AddDate(0, 0, 8-int(wd))
	}
}

// BusinessDays returns the first n business days (Monday through Friday)
// starting at from, inclusive.
func BusinessDays(from time.Time, n int) []time.Time {
	days := make([]time.Time, 0, n)
	for d := DayOf(from); len(days) < n; d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		days = append(days, d)
	}
	return days
}
