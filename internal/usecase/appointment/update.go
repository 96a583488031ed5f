package appointment

import (
	"context"

	"github.com/barberia-app/booking-api/internal/audit"
	domain "github.com/barberia-app/booking-api/internal/domain/schedule"
	"github.com/barberia-app/booking-api/internal/httperr"
	"github.com/barberia-app/booking-api/internal/models"
)

// FieldsPatch carries the mutable appointment fields. Nil means "leave as
// is"; date/time moves are a cancel-and-rebook, not a patch.
type FieldsPatch struct {
	Service     *string
	DurationMin *int
	Notes       *string
}

type UpdateAppointment struct {
	store domain.AppointmentStore
	audit audit.Recorder
}

func NewUpdateAppointment(
	store domain.AppointmentStore,
	audit audit.Recorder,
) *UpdateAppointment {
	return &UpdateAppointment{
		store: store,
		audit: audit,
	}
}

func (uc *UpdateAppointment) UpdateFields(
	ctx context.Context,
	actorID uint,
	appointmentID uint,
	patch FieldsPatch,
) (*models.Appointment, error) {

	ap, err := uc.authorized(ctx, actorID, appointmentID)
	if err != nil {
		return nil, err
	}

	if patch.Service != nil {
		ap.Service = *patch.Service
	}
	if patch.DurationMin != nil {
		if *patch.DurationMin <= 0 {
			return nil, httperr.ErrValidation("invalid_duration")
		}
		ap.DurationMin = *patch.DurationMin
	}
	if patch.Notes != nil {
		ap.Notes = *patch.Notes
	}

	if err := uc.store.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func (uc *UpdateAppointment) UpdateStatus(
	ctx context.Context,
	actorID uint,
	appointmentID uint,
	status domain.Status,
) (*models.Appointment, error) {

	ap, err := uc.authorized(ctx, actorID, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanTransition(domain.Status(ap.Status), status); err != nil {
		return nil, err
	}

	ap.Status = string(status)

	if err := uc.store.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"status": string(status)},
	})

	return ap, nil
}

func (uc *UpdateAppointment) authorized(
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
	return ap, nil
}
