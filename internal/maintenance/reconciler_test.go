package maintenance

import (
	"context"
	"fmt"
	"testing"
	"time"

	domain "github.com/barberia-app/booking-api/internal/domain/schedule"
	"github.com/barberia-app/booking-api/internal/models"
)

// ======================================================
// FAKES
// ======================================================

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type memoryStore struct {
	availability map[string]*models.BarberAvailability
	appointments []models.Appointment
	barbers      []models.User
	saves        int
	deletes      int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		availability: make(map[string]*models.BarberAvailability),
	}
}

func key(barberID uint, date time.Time) string {
	return fmt.Sprintf("%d|%s", barberID, domain.DateKey(date))
}

func (s *memoryStore) GetAvailability(_ context.Context, barberID uint, date time.Time) (*models.BarberAvailability, error) {
	rec, ok := s.availability[key(barberID, date)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	cp.TimeSlots = append([]string(nil), rec.TimeSlots...)
	return &cp, nil
}

func (s *memoryStore) SaveAvailability(_ context.Context, rec *models.BarberAvailability) error {
	s.saves++
	cp := *rec
	cp.TimeSlots = append([]string(nil), rec.TimeSlots...)
	s.availability[key(rec.BarberID, rec.Date)] = &cp
	return nil
}

func (s *memoryStore) DeleteAvailability(_ context.Context, barberID uint, date time.Time) error {
	s.deletes++
	delete(s.availability, key(barberID, date))
	return nil
}

func (s *memoryStore) ListAvailabilityRange(_ context.Context, barberID uint, start, end time.Time) ([]models.BarberAvailability, error) {
	var out []models.BarberAvailability
	for _, rec := range s.availability {
		if rec.BarberID == barberID && !rec.Date.Before(start) && !rec.Date.After(end) {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (s *memoryStore) ListAvailabilityBefore(_ context.Context, cutoff time.Time) ([]models.BarberAvailability, error) {
	var out []models.BarberAvailability
	for _, rec := range s.availability {
		if rec.Date.Before(cutoff) {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (s *memoryStore) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	s.appointments = append(s.appointments, *ap)
	return nil
}

func (s *memoryStore) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			return &s.appointments[i], nil
		}
	}
	return nil, fmt.Errorf("not found")
}

func (s *memoryStore) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i := range s.appointments {
		if s.appointments[i].ID == ap.ID {
			s.appointments[i] = *ap
			return nil
		}
	}
	return fmt.Errorf("not found")
}

func (s *memoryStore) ListAppointmentsForDay(_ context.Context, barberID uint, date time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range s.appointments {
		if ap.BarberID == barberID && ap.Date.Equal(domain.DayOf(date)) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (s *memoryStore) ListAppointmentsForRange(_ context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range s.appointments {
		if ap.BarberID == barberID && !ap.Date.Before(start) && !ap.Date.After(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (s *memoryStore) ListAppointmentsByUser(_ context.Context, userID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range s.appointments {
		if ap.ClientID == userID || ap.BarberID == userID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (s *memoryStore) ListAllAppointments(_ context.Context) ([]models.Appointment, error) {
	return append([]models.Appointment(nil), s.appointments...), nil
}

func (s *memoryStore) ListBarbers(_ context.Context) ([]models.User, error) {
	return s.barbers, nil
}

var (
	_ domain.AvailabilityStore = (*memoryStore)(nil)
	_ domain.AppointmentStore  = (*memoryStore)(nil)
	_ domain.BarberDirectory   = (*memoryStore)(nil)
)

// ======================================================
// TESTS
// ======================================================

// Monday 2025-06-02; the regeneration window starts that same day.
var today = time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)

func newTestReconciler(store *memoryStore, cfg Config) *Reconciler {
	return NewReconciler(store, store, store, fixedClock{now: today}, cfg)
}

func day(offset int) time.Time {
	return domain.DayOf(today).AddDate(0, 0, offset)
}

func TestReconcilerPurgesStalePastDays(t *testing.T) {
	store := newMemoryStore()
	store.availability[key(1, day(-3))] = &models.BarberAvailability{
		BarberID: 1, Date: day(-3), TimeSlots: domain.Catalog(),
	}

	report, err := newTestReconciler(store, Config{}).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if report.Purged != 1 {
		t.Fatalf("expected 1 purged record, got %d", report.Purged)
	}
	if _, ok := store.availability[key(1, day(-3))]; ok {
		t.Fatal("stale past record survived the purge")
	}
}

func TestReconcilerPurgeSafety(t *testing.T) {
	store := newMemoryStore()
	store.availability[key(1, day(-3))] = &models.BarberAvailability{
		BarberID: 1, Date: day(-3), TimeSlots: domain.Catalog(),
	}
	store.appointments = append(store.appointments, models.Appointment{
		ID: 1, BarberID: 1, ClientID: 9, Date: day(-3), Time: "10:00", Status: "cancelled",
	})

	report, err := newTestReconciler(store, Config{ProtectCancelled: true}).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if report.Purged != 0 || report.PurgeSkipped != 1 {
		t.Fatalf("expected skip, got purged=%d skipped=%d", report.Purged, report.PurgeSkipped)
	}
	if _, ok := store.availability[key(1, day(-3))]; !ok {
		t.Fatal("protected past record was deleted")
	}
}

// With the protection policy off, a day holding only cancelled
// appointments is fair game for the purge.
func TestReconcilerPurgeWithoutCancelledProtection(t *testing.T) {
	store := newMemoryStore()
	store.availability[key(1, day(-3))] = &models.BarberAvailability{
		BarberID: 1, Date: day(-3), TimeSlots: domain.Catalog(),
	}
	store.appointments = append(store.appointments, models.Appointment{
		ID: 1, BarberID: 1, ClientID: 9, Date: day(-3), Time: "10:00", Status: "cancelled",
	})

	report, err := newTestReconciler(store, Config{ProtectCancelled: false}).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if report.Purged != 1 {
		t.Fatalf("expected purge, got purged=%d skipped=%d", report.Purged, report.PurgeSkipped)
	}
}

func TestReconcilerRegeneratesWindow(t *testing.T) {
	store := newMemoryStore()
	store.barbers = []models.User{{ID: 1, Role: models.RoleBarber}}

	report, err := newTestReconciler(store, Config{WindowDays: 20}).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if report.Created != 20 {
		t.Fatalf("expected 20 created records, got %d", report.Created)
	}
	for _, rec := range store.availability {
		if wd := rec.Date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			t.Fatalf("availability generated for a weekend: %s", domain.DateKey(rec.Date))
		}
		if len(rec.TimeSlots) != 23 {
			t.Fatalf("expected full catalog, got %d slots", len(rec.TimeSlots))
		}
	}
}

func TestReconcilerSkipsBookedDays(t *testing.T) {
	store := newMemoryStore()
	store.barbers = []models.User{{ID: 1, Role: models.RoleBarber}}

	// Barber trimmed this day and a client booked; the reconciler must
	// not restore the full catalog over it.
	custom := []string{"08:00", "08:30"}
	store.availability[key(1, day(1))] = &models.BarberAvailability{
		BarberID: 1, Date: day(1), TimeSlots: append([]string(nil), custom...),
	}
	store.appointments = append(store.appointments, models.Appointment{
		ID: 1, BarberID: 1, ClientID: 9, Date: day(1), Time: "08:00", Status: "pending",
	})

	report, err := newTestReconciler(store, Config{WindowDays: 5}).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	rec := store.availability[key(1, day(1))]
	if len(rec.TimeSlots) != 2 {
		t.Fatalf("booked day was overwritten: %v", rec.TimeSlots)
	}

	// The booked day is skipped, not counted as an inspected record.
	if report.WindowSkipped != 1 {
		t.Fatalf("expected 1 window day skipped, got %d", report.WindowSkipped)
	}
	if report.Unchanged != 0 {
		t.Fatalf("skipped day leaked into unchanged: %d", report.Unchanged)
	}
	if report.Created != 4 {
		t.Fatalf("expected 4 created records around the booked day, got %d", report.Created)
	}
}

func TestReconcilerFiltersStaleLabels(t *testing.T) {
	store := newMemoryStore()
	store.barbers = []models.User{{ID: 1, Role: models.RoleBarber}}

	store.availability[key(1, day(0))] = &models.BarberAvailability{
		BarberID: 1, Date: day(0),
		TimeSlots: []string{"08:00", "07:00", "19:30"},
	}

	report, err := newTestReconciler(store, Config{WindowDays: 1}).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if report.Updated != 1 {
		t.Fatalf("expected 1 updated record, got %d", report.Updated)
	}
	rec := store.availability[key(1, day(0))]
	if len(rec.TimeSlots) != 1 || rec.TimeSlots[0] != "08:00" {
		t.Fatalf("stale labels not filtered: %v", rec.TimeSlots)
	}
}

func TestReconcilerIdempotent(t *testing.T) {
	store := newMemoryStore()
	store.barbers = []models.User{{ID: 1, Role: models.RoleBarber}, {ID: 2, Role: models.RoleBarber}}
	store.availability[key(1, day(-5))] = &models.BarberAvailability{
		BarberID: 1, Date: day(-5), TimeSlots: domain.Catalog(),
	}

	rec := newTestReconciler(store, Config{WindowDays: 20})

	if _, err := rec.Run(context.Background()); err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	saves, deletes := store.saves, store.deletes

	second, err := rec.Run(context.Background())
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if store.saves != saves || store.deletes != deletes {
		t.Fatalf(
			"second run mutated state: saves %d->%d deletes %d->%d",
			saves, store.saves, deletes, store.deletes,
		)
	}
	if second.Created != 0 || second.Updated != 0 || second.Purged != 0 {
		t.Fatalf("second run reported mutations: %+v", second)
	}
}
