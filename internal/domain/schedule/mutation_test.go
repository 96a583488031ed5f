package schedule

import (
	"reflect"
	"testing"

	"github.com/barberia-app/booking-api/internal/httperr"
)

func TestValidateSlots(t *testing.T) {
	if err := ValidateSlots([]string{"08:00", "18:30"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := ValidateSlots([]string{"08:00", "20:00"})
	if !httperr.IsKind(err, httperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestApplyMutationAdd(t *testing.T) {
	got := ApplyMutation(ActionAdd, []string{"09:00", "08:00"}, []string{"08:30", "09:00"})
	want := []string{"08:00", "08:30", "09:00"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestApplyMutationRemove(t *testing.T) {
	got := ApplyMutation(ActionRemove, []string{"08:00", "08:30", "09:00"}, []string{"08:30"})
	want := []string{"08:00", "09:00"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestApplyMutationRemoveIdempotent(t *testing.T) {
	current := []string{"08:00", "08:30", "09:00"}

	once := ApplyMutation(ActionRemove, current, []string{"08:30"})
	twice := ApplyMutation(ActionRemove, once, []string{"08:30"})

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("remove not idempotent: %v vs %v", once, twice)
	}
}

func TestApplyMutationAddThenRemoveRestores(t *testing.T) {
	start := []string{"08:00", "09:00"}

	added := ApplyMutation(ActionAdd, start, []string{"10:00", "10:30"})
	restored := ApplyMutation(ActionRemove, added, []string{"10:00", "10:30"})

	if !reflect.DeepEqual(restored, start) {
		t.Fatalf("got %v, want %v", restored, start)
	}
}

func TestApplyMutationReplace(t *testing.T) {
	got := ApplyMutation(ActionReplace, Catalog(), []string{"15:00", "09:00", "09:00"})
	want := []string{"09:00", "15:00"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseAction(t *testing.T) {
	for _, s := range []string{"add", "remove", "replace"} {
		if _, err := ParseAction(s); err != nil {
			t.Errorf("ParseAction(%q) failed: %v", s, err)
		}
	}

	if _, err := ParseAction("merge"); !httperr.IsCode(err, "invalid_action") {
		t.Fatalf("expected invalid_action, got %v", err)
	}
}
