package schedule

import "testing"

func TestCatalog(t *testing.T) {
	catalog := Catalog()

	if len(catalog) != 23 {
		t.Fatalf("expected 23 slots, got %d", len(catalog))
	}
	if catalog[0] != "08:00" {
		t.Fatalf("expected first slot 08:00, got %s", catalog[0])
	}
	if catalog[len(catalog)-1] != "19:00" {
		t.Fatalf("expected last slot 19:00, got %s", catalog[len(catalog)-1])
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	first := Catalog()
	first[0] = "00:00"

	if got := Catalog()[0]; got != "08:00" {
		t.Fatalf("catalog mutated through returned slice: %s", got)
	}
}

func TestIsCatalogSlot(t *testing.T) {
	cases := []struct {
		label string
		want  bool
	}{
		{"08:00", true},
		{"19:00", true},
		{"12:30", true},
		{"19:30", false},
		{"07:30", false},
		{"08:15", false},
		{"8:00", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := IsCatalogSlot(tc.label); got != tc.want {
			t.Errorf("IsCatalogSlot(%q) = %v, want %v", tc.label, got, tc.want)
		}
	}
}

func TestSortByCatalog(t *testing.T) {
	got := SortByCatalog([]string{"14:00", "08:30", "19:00", "08:00"})
	want := []string{"08:00", "08:30", "14:00", "19:00"}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
