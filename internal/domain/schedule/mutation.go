package schedule

import "github.com/barberia-app/booking-api/internal/httperr"

// ===============================
// Availability Mutations
// ===============================

type Action string

const (
	ActionAdd     Action = "add"
	ActionRemove  Action = "remove"
	ActionReplace Action = "replace"
)

func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionAdd, ActionRemove, ActionReplace:
		return Action(s), nil
	}
	return "", httperr.ErrValidation("invalid_action")
}

// ValidateSlots rejects any label that is not part of the catalog.
func ValidateSlots(labels []string) error {
	for _, l := range labels {
		if !IsCatalogSlot(l) {
			return httperr.ErrValidation("invalid_time_slot")
		}
	}
	return nil
}

// ApplyMutation applies an add/remove/replace to the current slot set and
// returns the result deduplicated and in catalog order.
func ApplyMutation(action Action, current []string, labels []string) []string {
	switch action {
	case ActionAdd:
		seen := make(map[string]bool, len(current)+len(labels))
		merged := make([]string, 0, len(current)+len(labels))
		for _, l := range current {
			if !seen[l] {
				seen[l] = true
				merged = append(merged, l)
			}
		}
		for _, l := range labels {
			if !seen[l] {
				seen[l] = true
				merged = append(merged, l)
			}
		}
		return SortByCatalog(merged)

	case ActionRemove:
		drop := make(map[string]bool, len(labels))
		for _, l := range labels {
			drop[l] = true
		}
		kept := make([]string, 0, len(current))
		for _, l := range current {
			if !drop[l] {
				kept = append(kept, l)
			}
		}
		return kept

	default: // ActionReplace
		return SortByCatalog(dedupe(labels))
	}
}

func dedupe(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out
}
