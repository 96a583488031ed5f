package schedule

import "github.com/barberia-app/booking-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

// IsActive reports whether an appointment in this status still occupies its
// slot.
func IsActive(s string) bool {
	return Status(s) != StatusCancelled
}

// CanCancel defines whether an appointment may still be cancelled.
func CanCancel(current Status) error {
	if current == StatusCancelled {
		return httperr.ErrValidation("invalid_state")
	}
	return nil
}

// CanTransition validates a status change requested through the API.
func CanTransition(from, to Status) error {
	switch {
	case from == StatusPending && to == StatusConfirmed:
		return nil
	case from == StatusPending && to == StatusCancelled:
		return nil
	case from == StatusConfirmed && to == StatusCancelled:
		return nil
	}
	return httperr.ErrValidation("invalid_state")
}
