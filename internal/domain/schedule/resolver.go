package schedule

import (
	"time"

	"github.com/barberia-app/booking-api/internal/models"
)

// DaySlots is the per-day partition the booking frontend consumes.
type DaySlots struct {
	Date        string   `json:"date"`
	Free        []string `json:"availableSlots"`
	Reserved    []string `json:"reservedSlots"`
	All         []string `json:"allSlots"`
	IsAvailable bool     `json:"isAvailable"`
}

// Resolve partitions a barber's day into free, reserved and all slots.
//
// The enabled set comes from the availability record, or the full catalog
// when no record exists. Reserved slots are the times of non-cancelled
// appointments; a slot stays reserved even if the barber removed it from
// availability after the booking was made.
func Resolve(date time.Time, record *models.BarberAvailability, appointments []models.Appointment) DaySlots {
	var all []string
	if record != nil {
		all = append(all, record.TimeSlots...)
	} else {
		all = Catalog()
	}

	occupied := make(map[string]bool, len(appointments))
	for _, ap := range appointments {
		if IsActive(ap.Status) {
			occupied[ap.Time] = true
		}
	}

	reserved := make([]string, 0, len(occupied))
	for label := range occupied {
		reserved = append(reserved, label)
	}
	reserved = SortByCatalog(reserved)

	free := make([]string, 0, len(all))
	for _, label := range all {
		if !occupied[label] {
			free = append(free, label)
		}
	}

	return DaySlots{
		Date:        DateKey(date),
		Free:        free,
		Reserved:    reserved,
		All:         all,
		IsAvailable: len(free) > 0,
	}
}
