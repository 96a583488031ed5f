package appointment

import (
	"context"
	"testing"

	domain "github.com/barberia-app/booking-api/internal/domain/schedule"
	"github.com/barberia-app/booking-api/internal/httperr"
	"github.com/barberia-app/booking-api/internal/models"
)

func seededStore() *fakeAppointmentStore {
	return &fakeAppointmentStore{
		nextID: 1,
		items: []models.Appointment{{
			ID:       1,
			ClientID: 10,
			BarberID: 1,
			Date:     domain.DayOf(now.AddDate(0, 0, 1)),
			Time:     "10:00",
			Status:   "pending",
		}},
	}
}

func TestCancelByClient(t *testing.T) {
	store := seededStore()
	uc := NewCancelAppointment(store, fixedClock{now: now}, noopRecorder{})

	ap, err := uc.Execute(context.Background(), 10, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.Status != string(domain.StatusCancelled) {
		t.Fatalf("expected cancelled, got %s", ap.Status)
	}
	if ap.CancelledAt == nil || !ap.CancelledAt.Equal(now) {
		t.Fatalf("expected cancelled_at %s, got %v", now, ap.CancelledAt)
	}
	if store.items[0].Status != string(domain.StatusCancelled) {
		t.Fatal("cancellation not persisted")
	}
}

func TestCancelByBarber(t *testing.T) {
	uc := NewCancelAppointment(seededStore(), fixedClock{now: now}, noopRecorder{})

	if _, err := uc.Execute(context.Background(), 1, 1); err != nil {
		t.Fatalf("barber should be allowed to cancel: %v", err)
	}
}

func TestCancelByStranger(t *testing.T) {
	uc := NewCancelAppointment(seededStore(), fixedClock{now: now}, noopRecorder{})

	_, err := uc.Execute(context.Background(), 99, 1)
	if !httperr.IsKind(err, httperr.KindForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestCancelTwice(t *testing.T) {
	store := seededStore()
	uc := NewCancelAppointment(store, fixedClock{now: now}, noopRecorder{})

	if _, err := uc.Execute(context.Background(), 10, 1); err != nil {
		t.Fatalf("first cancel failed: %v", err)
	}

	_, err := uc.Execute(context.Background(), 10, 1)
	if !httperr.IsCode(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	store := seededStore()
	uc := NewUpdateAppointment(store, noopRecorder{})

	ap, err := uc.UpdateStatus(context.Background(), 1, 1, domain.StatusConfirmed)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if ap.Status != "confirmed" {
		t.Fatalf("expected confirmed, got %s", ap.Status)
	}

	// confirmed may not go back to pending
	if _, err := uc.UpdateStatus(context.Background(), 1, 1, domain.StatusPending); err == nil {
		t.Fatal("expected invalid transition to be rejected")
	}
}

func TestUpdateFieldsAuthorization(t *testing.T) {
	uc := NewUpdateAppointment(seededStore(), noopRecorder{})

	notes := "trim only"
	_, err := uc.UpdateFields(context.Background(), 99, 1, FieldsPatch{Notes: &notes})
	if !httperr.IsKind(err, httperr.KindForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestUpdateFields(t *testing.T) {
	store := seededStore()
	uc := NewUpdateAppointment(store, noopRecorder{})

	service := "haircut_with_beard"
	duration := 60
	ap, err := uc.UpdateFields(context.Background(), 10, 1, FieldsPatch{
		Service:     &service,
		DurationMin: &duration,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.Service != service || ap.DurationMin != 60 {
		t.Fatalf("patch not applied: %+v", ap)
	}
	// untouched fields survive
	if ap.Time != "10:00" {
		t.Fatalf("time changed unexpectedly: %s", ap.Time)
	}
}
