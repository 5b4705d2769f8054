package models

import (
	"testing"
	"time"
)

func TestParseTimePeriod(t *testing.T) {
	for _, s := range []string{"day", "week", "month", "year"} {
		p, err := ParseTimePeriod(s)
		if err != nil {
			t.Errorf("ParseTimePeriod(%q): %v", s, err)
		}
		if string(p) != s {
			t.Errorf("ParseTimePeriod(%q) = %q", s, p)
		}
	}
	if _, err := ParseTimePeriod("fortnight"); err == nil {
		t.Error("ParseTimePeriod(fortnight) should fail")
	}
}

func TestTimePeriod_Label(t *testing.T) {
	tests := []struct {
		period TimePeriod
		want   string
	}{
		{PeriodDay, "today"},
		{PeriodWeek, "this week"},
		{PeriodMonth, "this month"},
		{PeriodYear, "this year"},
	}
	for _, tt := range tests {
		if got := tt.period.Label(); got != tt.want {
			t.Errorf("%s.Label() = %q, want %q", tt.period, got, tt.want)
		}
	}
}

func TestTimePeriod_Range(t *testing.T) {
	// A Wednesday.
	now := time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		period    TimePeriod
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			PeriodDay,
			time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 26, 23, 59, 59, 999_000_000, time.UTC),
		},
		{
			// Weeks run Sunday through Saturday.
			PeriodWeek,
			time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 29, 23, 59, 59, 999_000_000, time.UTC),
		},
		{
			PeriodMonth,
			time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 31, 23, 59, 59, 999_000_000, time.UTC),
		},
		{
			PeriodYear,
			time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 12, 31, 23, 59, 59, 999_000_000, time.UTC),
		},
	}

	for _, tt := range tests {
		start, end := tt.period.Range(now)
		if !start.Equal(tt.wantStart) {
			t.Errorf("%s start = %v, want %v", tt.period, start, tt.wantStart)
		}
		if !end.Equal(tt.wantEnd) {
			t.Errorf("%s end = %v, want %v", tt.period, end, tt.wantEnd)
		}
	}
}

func TestTimePeriod_RangeOnSunday(t *testing.T) {
	// On a Sunday the week starts that same day.
	now := time.Date(2026, 8, 23, 8, 0, 0, 0, time.UTC)
	start, _ := PeriodWeek.Range(now)
	want := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
	if !start.Equal(want) {
		t.Errorf("week start = %v, want %v", start, want)
	}
}
