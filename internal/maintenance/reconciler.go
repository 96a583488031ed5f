package maintenance

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	domain "github.com/barberia-app/booking-api/internal/domain/schedule"
	"github.com/barberia-app/booking-api/internal/models"
)

// ======================================================
// CONFIG / REPORT
// ======================================================

type Config struct {
	// WindowDays is how many business days of availability to keep
	// materialized ahead, counted from the next Monday on/after today.
	WindowDays int

	// ProtectCancelled keeps days that only hold cancelled appointments
	// safe from purge and regeneration, matching the historical behavior.
	ProtectCancelled bool
}

type Report struct {
	RunID     string        `json:"run_id"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`

	ProtectedDays int `json:"protected_days"`
	Purged        int `json:"purged"`
	PurgeSkipped  int `json:"purge_skipped"`
	Created       int `json:"created"`
	Updated       int `json:"updated"`
	Unchanged     int `json:"unchanged"`

	// WindowSkipped counts window days left alone because they hold
	// appointments, as opposed to records inspected and found current.
	WindowSkipped int `json:"window_skipped"`

	Errors []string `json:"errors"`
}

func (r *Report) fail(unit string, err error) {
	r.Errors = append(r.Errors, fmt.Sprintf("%s: %v", unit, err))
	log.Printf("maintenance: %s: %v", unit, err)
}

// ======================================================
// RECONCILER
// ======================================================

// Reconciler keeps availability records consistent with the passage of
// time: it purges stale past days, regenerates the rolling future window
// and never touches a day that holds appointments. Runs are idempotent and
// tolerate overlap; every unit failure is recorded and skipped.
type Reconciler struct {
	availability domain.AvailabilityStore
	appointments domain.AppointmentStore
	barbers      domain.BarberDirectory
	clock        domain.Clock
	cfg          Config
}

func NewReconciler(
	availability domain.AvailabilityStore,
	appointments domain.AppointmentStore,
	barbers domain.BarberDirectory,
	clock domain.Clock,
	cfg Config,
) *Reconciler {
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = 20
	}
	return &Reconciler{
		availability: availability,
		appointments: appointments,
		barbers:      barbers,
		clock:        clock,
		cfg:          cfg,
	}
}

func (r *Reconciler) Run(ctx context.Context) (*Report, error) {
	started := r.clock.Now()
	report := &Report{
		RunID:     uuid.NewString(),
		StartedAt: started,
	}

	today := domain.DayOf(started)

	protected, err := r.protectedDays(ctx)
	if err != nil {
		// Without the inventory neither purge nor regeneration is safe.
		return nil, err
	}
	report.ProtectedDays = len(protected)

	r.purgePast(ctx, today, protected, report)
	r.regenerateWindow(ctx, today, protected, report)

	report.Duration = r.clock.Now().Sub(started)
	return report, nil
}

// protectedDays groups appointments into the set of (barber, day) keys the
// reconciler must leave alone.
func (r *Reconciler) protectedDays(ctx context.Context) (map[string]bool, error) {
	apps, err := r.appointments.ListAllAppointments(ctx)
	if err != nil {
		return nil, err
	}

	protected := make(map[string]bool)
	for _, ap := range apps {
		if !r.cfg.ProtectCancelled && !domain.IsActive(ap.Status) {
			continue
		}
		protected[dayKey(ap.BarberID, ap.Date)] = true
	}
	return protected, nil
}

func (r *Reconciler) purgePast(
	ctx context.Context,
	today time.Time,
	protected map[string]bool,
	report *Report,
) {
	past, err := r.availability.ListAvailabilityBefore(ctx, today)
	if err != nil {
		report.fail("list_past_availability", err)
		return
	}

	for _, rec := range past {
		key := dayKey(rec.BarberID, rec.Date)
		if protected[key] {
			report.PurgeSkipped++
			continue
		}

		if err := r.availability.DeleteAvailability(ctx, rec.BarberID, rec.Date); err != nil {
			report.fail("purge "+key, err)
			continue
		}
		report.Purged++
	}
}

func (r *Reconciler) regenerateWindow(
	ctx context.Context,
	today time.Time,
	protected map[string]bool,
	report *Report,
) {
	barbers, err := r.barbers.ListBarbers(ctx)
	if err != nil {
		report.fail("list_barbers", err)
		return
	}

	window := domain.BusinessDays(domain.NextMonday(today), r.cfg.WindowDays)

	for _, barber := range barbers {
		for _, day := range window {
			key := dayKey(barber.ID, day)
			if protected[key] {
				report.WindowSkipped++
				continue
			}

			if err := r.reconcileDay(ctx, barber.ID, day, report); err != nil {
				report.fail("regenerate "+key, err)
			}
		}
	}
}

func (r *Reconciler) reconcileDay(
	ctx context.Context,
	barberID uint,
	day time.Time,
	report *Report,
) error {
	rec, err := r.availability.GetAvailability(ctx, barberID, day)
	if err != nil {
		return err
	}

	if rec == nil {
		rec = &models.BarberAvailability{
			BarberID:    barberID,
			Date:        day,
			TimeSlots:   domain.Catalog(),
			IsAvailable: true,
		}
		if err := r.availability.SaveAvailability(ctx, rec); err != nil {
			return err
		}
		report.Created++
		return nil
	}

	// Drop labels the current catalog no longer offers.
	kept := make([]string, 0, len(rec.TimeSlots))
	for _, slot := range rec.TimeSlots {
		if domain.IsCatalogSlot(slot) {
			kept = append(kept, slot)
		}
	}

	if len(kept) == len(rec.TimeSlots) {
		report.Unchanged++
		return nil
	}

	rec.TimeSlots = kept
	rec.IsAvailable = len(kept) > 0
	if err := r.availability.SaveAvailability(ctx, rec); err != nil {
		return err
	}
	report.Updated++
	return nil
}

func dayKey(barberID uint, date time.Time) string {
	return fmt.Sprintf("%d|%s", barberID, domain.DateKey(date))
}
