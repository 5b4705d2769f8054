package models

import (
	"fmt"
	"time"
)

// TimePeriod selects the analysis window for allocations and roasts.
type TimePeriod string

const (
	PeriodDay   TimePeriod = "day"
	PeriodWeek  TimePeriod = "week"
	PeriodMonth TimePeriod = "month"
	PeriodYear  TimePeriod = "year"
)

// ParseTimePeriod converts a string into a TimePeriod.
func ParseTimePeriod(s string) (TimePeriod, error) {
	switch TimePeriod(s) {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return TimePeriod(s), nil
	}
	return "", fmt.Errorf("unknown time period: %q (want day, week, month or year)", s)
}

// Label returns the natural-language label used in prompts.
func (p TimePeriod) Label() string {
	switch p {
	case PeriodDay:
		return "today"
	case PeriodWeek:
		return "this week"
	case PeriodMonth:
		return "this month"
	case PeriodYear:
		return "this year"
	}
	return string(p)
}

// Range resolves the period to a [start, end] window around now.
// Weeks run Sunday through Saturday; all bounds are in now's location.
func (p TimePeriod) Range(now time.Time) (time.Time, time.Time) {
	y, m, d := now.Date()
	loc := now.Location()

	switch p {
	case PeriodDay:
		start := time.Date(y, m, d, 0, 0, 0, 0, loc)
		return start, endOfDay(start)
	case PeriodWeek:
		start := time.Date(y, m, d, 0, 0, 0, 0, loc).AddDate(0, 0, -int(now.Weekday()))
		return start, endOfDay(start.AddDate(0, 0, 6))
	case PeriodMonth:
		start := time.Date(y, m, 1, 0, 0, 0, 0, loc)
		return start, endOfDay(start.AddDate(0, 1, -1))
	case PeriodYear:
		start := time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
		return start, endOfDay(time.Date(y, time.December, 31, 0, 0, 0, 0, loc))
	}

	// Unknown periods fall back to the current day.
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return start, endOfDay(start)
}

func endOfDay(dayStart time.Time) time.Time {
	return dayStart.Add(24*time.Hour - time.Millisecond)
}
