package availability

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

type SetAvailabilityInput struct {
	BarberID uint
	Date     time.Time
	Action   domain.Action
	Slots    []string
}

// ======================================================
// USE CASE
// ======================================================

type SetAvailability struct {
	store domain.AvailabilityStore
	clock domain.Clock
	audit audit.Recorder
}

func NewSetAvailability(
	store domain.AvailabilityStore,
	clock domain.Clock,
	audit audit.Recorder,
) *SetAvailability {
	return &SetAvailability{
		store: store,
		clock: clock,
		audit: audit,
	}
}

func (uc *SetAvailability) Execute(
	ctx context.Context,
	in SetAvailabilityInput,
) (*models.BarberAvailability, error) {

	if err := domain.ValidateSlots(in.Slots); err != nil {
		return nil, err
	}

	// Barbers may not rewrite history.
	day := domain.DayOf(in.Date)
	today := domain.DayOf(uc.clock.Now())
	if day.Before(today) {
		return nil, httperr.ErrValidation("past_date")
	}

	rec, err := uc.store.GetAvailability(ctx, in.BarberID, day)
	if err != nil {
		return nil, err
	}

	if rec == nil {
		rec = &models.BarberAvailability{
			BarberID:  in.BarberID,
			Date:      day,
			TimeSlots: nil,
		}
		// Add/Remove act on the default catalog; Replace starts empty.
		if in.Action != domain.ActionReplace {
			rec.TimeSlots = domain.Catalog()
		}
	}

	rec.TimeSlots = domain.ApplyMutation(in.Action, rec.TimeSlots, in.Slots)
	rec.IsAvailable = len(rec.TimeSlots) > 0

	if err := uc.store.SaveAvailability(ctx, rec); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.BarberID,
		Action:   "availability_updated",
		Entity:   "availability",
		EntityID: &rec.ID,
		Metadata: map[string]any{
			"date":   domain.DateKey(day),
			"action": string(in.Action),
			"slots":  len(rec.TimeSlots),
		},
	})

	return rec, nil
}
