package availability

import (
	"context"
	"time"

	domain "github.com/barberia-app/booking-api/internal/domain/schedule"
	"github.com/barberia-app/booking-api/internal/httperr"
	"github.com/barberia-app/booking-api/internal/models"
)

// ======================================================
// USE CASE: resolve free/reserved/all slots
// ======================================================

type GetSlots struct {
	availability domain.AvailabilityStore
	appointments domain.AppointmentStore
}

func NewGetSlots(
	availability domain.AvailabilityStore,
	appointments domain.AppointmentStore,
) *GetSlots {
	return &GetSlots{
		availability: availability,
		appointments: appointments,
	}
}

// ForDate resolves one barber day. Past dates resolve normally; the read
// path has no reason to reject them.
func (uc *GetSlots) ForDate(
	ctx context.Context,
	barberID uint,
	date time.Time,
) (domain.DaySlots, error) {

	day := domain.DayOf(date)

	rec, err := uc.availability.GetAvailability(ctx, barberID, day)
	if err != nil {
		return domain.DaySlots{}, err
	}

	apps, err := uc.appointments.ListAppointmentsForDay(ctx, barberID, day)
	if err != nil {
		return domain.DaySlots{}, err
	}

	return domain.Resolve(day, rec, apps), nil
}

const maxRangeDays = 31

// ForRange resolves each day of the inclusive range and keys the result by
// ISO date, the shape the weekly calendar view consumes.
func (uc *GetSlots) ForRange(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) (map[string]domain.DaySlots, error) {

	first := domain.DayOf(start)
	last := domain.DayOf(end)

	if last.Before(first) {
		return nil, httperr.ErrValidation("invalid_range")
	}
	if last.Sub(first) > maxRangeDays*24*time.Hour {
		return nil, httperr.ErrValidation("range_too_large")
	}

	recs, err := uc.availability.ListAvailabilityRange(ctx, barberID, first, last)
	if err != nil {
		return nil, err
	}
	byDay := make(map[string]int, len(recs))
	for i := range recs {
		byDay[domain.DateKey(recs[i].Date)] = i
	}

	apps, err := uc.appointments.ListAppointmentsForRange(ctx, barberID, first, last)
	if err != nil {
		return nil, err
	}

	out := make(map[string]domain.DaySlots)
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		key := domain.DateKey(day)

		var rec *models.BarberAvailability
		if i, ok := byDay[key]; ok {
			rec = &recs[i]
		}

		dayApps := apps[:0:0]
		for _, ap := range apps {
			if domain.DateKey(ap.Date) == key {
				dayApps = append(dayApps, ap)
			}
		}

		out[key] = domain.Resolve(day, rec, dayApps)
	}

	return out, nil
}
