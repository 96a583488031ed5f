package handlers

import (
	"time"

	"github.com/barberia-app/booking-api/internal/timezone"
)

// parseDate reads a "YYYY-MM-DD" string in the shop's timezone.
func parseDate(tz string, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(tz),
	)
}
