package appointment

import (
	"context"

	"github.com/barberia-app/booking-api/internal/audit"
	domain "github.com/barberia-app/booking-api/internal/domain/schedule"
	"github.com/barberia-app/booking-api/internal/httperr"
	"github.com/barberia-app/booking-api/internal/models"
)

type CancelAppointment struct {
	store domain.AppointmentStore
	clock domain.Clock
	audit audit.Recorder
}

func NewCancelAppointment(
	store domain.AppointmentStore,
	clock domain.Clock,
	audit audit.Recorder,
) *CancelAppointment {
	return &CancelAppointment{
		store: store,
		clock: clock,
		audit: audit,
	}
}

// Execute soft-deletes a booking. Only the client who booked or the barber
// who owns the calendar may cancel; the record is kept for history.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actorID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.store.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if ap.ClientID != actorID && ap.BarberID != actorID {
		return nil, httperr.ErrForbidden("not_appointment_party")
	}

	if err := domain.CanCancel(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	ap.Status = string(domain.StatusCancelled)
	ap.CancelledAt = &now

	if err := uc.store.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
