package appointment

import (
	"context"

	domain "github.com/barberia-app/booking-api/internal/domain/schedule"
	"github.com/barberia-app/booking-api/internal/models"
)

type ListAppointments struct {
	store domain.AppointmentStore
}

func NewListAppointments(store domain.AppointmentStore) *ListAppointments {
	return &ListAppointments{store: store}
}

// ByUser returns every appointment where the user is the client or the
// barber, ordered by date ascending.
func (uc *ListAppointments) ByUser(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {
	return uc.store.ListAppointmentsByUser(ctx, userID)
}
