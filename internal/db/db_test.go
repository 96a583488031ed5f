package db

import (
	"strings"
	"testing"
)

// The partial unique index is the storage-level guard against double
// booking; pin its shape so a refactor cannot quietly weaken it.
func TestActiveSlotIndexStatement(t *testing.T) {
	stmt := strings.ToLower(activeSlotIndexSQL)

	for _, fragment := range []string{
		"create unique index",
		"on appointments",
		"barber_id",
		"date",
		`"time"`,
		"where status <> 'cancelled'",
	} {
		if !strings.Contains(stmt, fragment) {
			t.Fatalf("index statement lost %q:\n%s", fragment, activeSlotIndexSQL)
		}
	}
}
