package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/barberia-app/booking-api/internal/httperr"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"unique violation", unique, true},
		{"wrapped unique violation", fmt.Errorf("insert: %w", unique), true},
		{"other pg error", &pgconn.PgError{Code: "40001"}, false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isUniqueViolation(tt.err); got != tt.want {
				t.Fatalf("isUniqueViolation(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

// A lost race on the active-slot index must look like any other double
// booking, never a raw storage error.
func TestAppointmentWriteError(t *testing.T) {
	err := appointmentWriteError(&pgconn.PgError{Code: "23505"})
	if !httperr.IsCode(err, "slot_already_booked") {
		t.Fatalf("expected slot_already_booked conflict, got %v", err)
	}
	if !httperr.IsKind(err, httperr.KindConflict) {
		t.Fatalf("expected conflict kind, got %v", err)
	}

	passthrough := errors.New("connection reset")
	if got := appointmentWriteError(passthrough); got != passthrough {
		t.Fatalf("unrelated error rewritten: %v", got)
	}
	if appointmentWriteError(nil) != nil {
		t.Fatal("nil error rewritten")
	}
}

// Two first-time availability writes for the same (barber, date) race on
// the unique index; the loser must get a retryable conflict, not a 500.
func TestAvailabilityWriteError(t *testing.T) {
	err := availabilityWriteError(fmt.Errorf("save: %w", &pgconn.PgError{Code: "23505"}))
	if !httperr.IsCode(err, "availability_already_exists") {
		t.Fatalf("expected availability_already_exists conflict, got %v", err)
	}

	passthrough := errors.New("connection reset")
	if got := availabilityWriteError(passthrough); got != passthrough {
		t.Fatalf("unrelated error rewritten: %v", got)
	}
	if availabilityWriteError(nil) != nil {
		t.Fatal("nil error rewritten")
	}
}
