package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barberia-app/booking-api/internal/domain/schedule"
	"github.com/barberia-app/booking-api/internal/httperr"
	"github.com/barberia-app/booking-api/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *ScheduleGormRepository) GetAvailability(
	ctx context.Context,
	barberID uint,
	date time.Time,
) (*models.BarberAvailability, error) {

	var rec models.BarberAvailability
	err := r.db.WithContext(ctx).
		Where("barber_id = ? AND date = ?", barberID, domain.DayOf(date)).
		First(&rec).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *ScheduleGormRepository) SaveAvailability(
	ctx context.Context,
	rec *models.BarberAvailability,
) error {
	rec.Date = domain.DayOf(rec.Date)
	return availabilityWriteError(r.db.WithContext(ctx).Save(rec).Error)
}

func (r *ScheduleGormRepository) DeleteAvailability(
	ctx context.Context,
	barberID uint,
	date time.Time,
) error {
	return r.db.WithContext(ctx).
		Where("barber_id = ? AND date = ?", barberID, domain.DayOf(date)).
		Delete(&models.BarberAvailability{}).Error
}

func (r *ScheduleGormRepository) ListAvailabilityRange(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.BarberAvailability, error) {

	var recs []models.BarberAvailability
	err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND date >= ? AND date <= ?",
			barberID, domain.DayOf(start), domain.DayOf(end),
		).
		Order("date ASC").
		Find(&recs).Error

	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *ScheduleGormRepository) ListAvailabilityBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]models.BarberAvailability, error) {

	var recs []models.BarberAvailability
	err := r.db.WithContext(ctx).
		Where("date < ?", domain.DayOf(cutoff)).
		Order("date ASC").
		Find(&recs).Error

	if err != nil {
		return nil, err
	}
	return recs, nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

// CreateAppointment inserts a booking after a locked conflict check, both
// inside one transaction. The partial unique index on active slots backs
// the check, so a race between two inserts surfaces as a unique violation
// and is reported as the same conflict.
func (r *ScheduleGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	ap.Date = domain.DayOf(ap.Date)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				`barber_id = ? AND date = ? AND "time" = ? AND status <> ?`,
				ap.BarberID, ap.Date, ap.Time, string(domain.StatusCancelled),
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrConflict("slot_already_booked")
		}

		return tx.Create(ap).Error
	})

	return appointmentWriteError(err)
}

func (r *ScheduleGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber").
		First(&ap, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *ScheduleGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *ScheduleGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Where("barber_id = ? AND date = ?", barberID, domain.DayOf(date)).
		Order(`"time" ASC`).
		Find(&apps).Error

	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ScheduleGormRepository) ListAppointmentsForRange(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND date >= ? AND date <= ?",
			barberID, domain.DayOf(start), domain.DayOf(end),
		).
		Order(`date ASC, "time" ASC`).
		Find(&apps).Error

	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ScheduleGormRepository) ListAppointmentsByUser(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber").
		Where("client_id = ? OR barber_id = ?", userID, userID).
		Order(`date ASC, "time" ASC`).
		Find(&apps).Error

	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ScheduleGormRepository) ListAllAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Select("id", "barber_id", "client_id", "date", `"time"`, "status").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Barbers
// --------------------------------------------------

func (r *ScheduleGormRepository) ListBarbers(
	ctx context.Context,
) ([]models.User, error) {

	var barbers []models.User
	err := r.db.WithContext(ctx).
		Where("role = ?", models.RoleBarber).
		Order("name ASC").
		Find(&barbers).Error

	if err != nil {
		return nil, err
	}
	return barbers, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// appointmentWriteError maps a unique-index violation from the partial
// active-slot index to the same conflict the locked count reports, so a
// race between two inserts and a sequential double booking look identical
// to the caller.
func appointmentWriteError(err error) error {
	if isUniqueViolation(err) {
		return httperr.ErrConflict("slot_already_booked")
	}
	return err
}

// availabilityWriteError maps a (barber_id, date) unique violation to a
// conflict. Two first-time writes for the same day can race; the loser may
// reload the winner's row and retry.
func availabilityWriteError(err error) error {
	if isUniqueViolation(err) {
		return httperr.ErrConflict("availability_already_exists")
	}
	return err
}

// Compile-time checks
var (
	_ domain.AvailabilityStore = (*ScheduleGormRepository)(nil)
	_ domain.AppointmentStore  = (*ScheduleGormRepository)(nil)
	_ domain.BarberDirectory   = (*ScheduleGormRepository)(nil)
)
