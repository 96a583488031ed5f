package schedule

import (
	"context"
	"time"

	"github.com/barberia-app/booking-api/internal/models"
)

// AvailabilityStore persists per-barber, per-day slot overrides.
//
// Get returns (nil, nil) when no record exists for the pair; callers fall
// back to the full catalog.
type AvailabilityStore interface {
	GetAvailability(
		ctx context.Context,
		barberID uint,
		date time.Time,
	) (*models.BarberAvailability, error)

	SaveAvailability(
		ctx context.Context,
		rec *models.BarberAvailability,
	) error

	DeleteAvailability(
		ctx context.Context,
		barberID uint,
		date time.Time,
	) error

	ListAvailabilityRange(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.BarberAvailability, error)

	ListAvailabilityBefore(
		ctx context.Context,
		cutoff time.Time,
	) ([]models.BarberAvailability, error)
}

// AppointmentStore persists bookings. CreateAppointment must be atomic:
// when an active appointment already holds the same (barber, date, time)
// slot it fails with a conflict error and writes nothing.
type AppointmentStore interface {
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForDay(
		ctx context.Context,
		barberID uint,
		date time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForRange(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsByUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)

	ListAllAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)
}

// BarberDirectory exposes the barbers whose calendars the maintenance job
// has to keep populated.
type BarberDirectory interface {
	ListBarbers(ctx context.Context) ([]models.User, error)
}
