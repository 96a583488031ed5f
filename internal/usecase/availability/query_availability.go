package availability

import (
	"context"
	"time"

	domain "github.com/barberia-app/booking-api/internal/domain/schedule"
	"github.com/barberia-app/booking-api/internal/models"
)

type QueryAvailability struct {
	store domain.AvailabilityStore
}

func NewQueryAvailability(store domain.AvailabilityStore) *QueryAvailability {
	return &QueryAvailability{store: store}
}

// Execute returns the stored override records for the inclusive range,
// sorted by date. Days without a record are simply absent; they fall back
// to the full catalog at resolve time.
func (uc *QueryAvailability) Execute(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.BarberAvailability, error) {
	return uc.store.ListAvailabilityRange(ctx, barberID, start, end)
}
