package schedule

import (
	"testing"
	"time"
)

func TestNextMonday(t *testing.T) {
	cases := []struct {
		day  time.Time
		want time.Time
	}{
		// Monday stays put
		{date(2025, 6, 2), date(2025, 6, 2)},
		// Tuesday through Saturday jump to the following Monday
		{date(2025, 6, 3), date(2025, 6, 9)},
		{date(2025, 6, 6), date(2025, 6, 9)},
		{date(2025, 6, 7), date(2025, 6, 9)},
		// Sunday jumps one day
		{date(2025, 6, 8), date(2025, 6, 9)},
	}

	for _, tc := range cases {
		if got := NextMonday(tc.day); !got.Equal(tc.want) {
			t.Errorf("NextMonday(%s) = %s, want %s",
				tc.day.Format("2006-01-02"), got.Format("2006-01-02"), tc.want.Format("2006-01-02"))
		}
	}
}

func TestBusinessDays(t *testing.T) {
	days := BusinessDays(date(2025, 6, 2), 20)

	if len(days) != 20 {
		t.Fatalf("expected 20 business days, got %d", len(days))
	}
	for _, d := range days {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			t.Fatalf("weekend day in window: %s", d.Format("2006-01-02"))
		}
	}

	// 20 business days from a Monday span exactly 4 calendar weeks.
	if last := days[len(days)-1]; !last.Equal(date(2025, 6, 27)) {
		t.Fatalf("expected window to end 2025-06-27, got %s", last.Format("2006-01-02"))
	}
}

func TestDayOfAndDateKey(t *testing.T) {
	ts := time.Date(2025, 6, 2, 15, 42, 7, 0, time.UTC)

	day := DayOf(ts)
	if day.Hour() != 0 || day.Minute() != 0 || day.Second() != 0 {
		t.Fatalf("DayOf kept a time-of-day component: %s", day)
	}
	if DateKey(ts) != "2025-06-02" {
		t.Fatalf("unexpected date key: %s", DateKey(ts))
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
