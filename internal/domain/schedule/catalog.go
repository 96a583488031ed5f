package schedule

// Bookable half-hour slots for a working day, 08:00 through 19:00.
var defaultTimeSlots = []string{
	"08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"12:00", "12:30", "13:00", "13:30", "14:00", "14:30", "15:00", "15:30",
	"16:00", "16:30", "17:00", "17:30", "18:00", "18:30", "19:00",
}

var catalogIndex = func() map[string]int {
	idx := make(map[string]int, len(defaultTimeSlots))
	for i, s := range defaultTimeSlots {
		idx[s] = i
	}
	return idx
}()

// Catalog returns the canonical ordered slot labels. Callers get a copy and
// may mutate it freely.
func Catalog() []string {
	out := make([]string, len(defaultTimeSlots))
	copy(out, defaultTimeSlots)
	return out
}

// IsCatalogSlot reports whether label is one of the canonical slots.
func IsCatalogSlot(label string) bool {
	_, ok := catalogIndex[label]
	return ok
}

// SortByCatalog returns labels ordered as they appear in the catalog.
// Labels outside the catalog sort last, keeping their relative order.
func SortByCatalog(labels []string) []string {
	out := make([]string, len(labels))
	copy(out, labels)

	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && catalogRank(out[j]) < catalogRank(out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func catalogRank(label string) int {
	if i, ok := catalogIndex[label]; ok {
		return i
	}
	return len(defaultTimeSlots)
}
