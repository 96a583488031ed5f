package appointment

import (
	"context"
	"time"

	"github.com/barberia-app/booking-api/internal/audit"
	domain "github.com/barberia-app/booking-api/internal/domain/schedule"
	"github.com/barberia-app/booking-api/internal/httperr"
	"github.com/barberia-app/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID uint
	BarberID uint

	Date time.Time
	Time string

	Service     string
	DurationMin int
	Notes       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	appointments domain.AppointmentStore
	availability domain.AvailabilityStore
	clock        domain.Clock
	audit        audit.Recorder
}

func NewCreateAppointment(
	appointments domain.AppointmentStore,
	availability domain.AvailabilityStore,
	clock domain.Clock,
	audit audit.Recorder,
) *CreateAppointment {
	return &CreateAppointment{
		appointments: appointments,
		availability: availability,
		clock:        clock,
		audit:        audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if !domain.IsCatalogSlot(in.Time) {
		return nil, httperr.ErrValidation("invalid_time_slot")
	}

	day := domain.DayOf(in.Date)
	today := domain.DayOf(uc.clock.Now())
	if day.Before(today) {
		return nil, httperr.ErrValidation("past_date")
	}

	// The slot must be on offer for that day: either no override record
	// exists (full catalog applies) or the record still lists the label.
	rec, err := uc.availability.GetAvailability(ctx, in.BarberID, day)
	if err != nil {
		return nil, err
	}
	if rec != nil && !contains(rec.TimeSlots, in.Time) {
		return nil, httperr.ErrValidation("slot_not_offered")
	}

	duration := in.DurationMin
	if duration <= 0 {
		duration = 30
	}

	ap := &models.Appointment{
		ClientID:    in.ClientID,
		BarberID:    in.BarberID,
		Date:        day,
		Time:        in.Time,
		Service:     in.Service,
		DurationMin: duration,
		Notes:       in.Notes,
		Status:      string(domain.InitialStatus()),
	}

	// The store rejects the insert atomically when an active appointment
	// already holds the slot.
	if err := uc.appointments.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"barber_id": in.BarberID,
			"date":      domain.DateKey(day),
			"time":      in.Time,
		},
	})

	return ap, nil
}

func contains(set []string, label string) bool {
	for _, s := range set {
		if s == label {
			return true
		}
	}
	return false
}
