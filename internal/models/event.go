package models

import "time"

// CalendarEvent is a parsed event handed back by the calendar provider.
// The provider guarantees EndTime >= StartTime; zero-duration events are
// legal and negative durations clamp to zero minutes downstream.
type CalendarEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	IsAllDay    bool      `json:"isAllDay"`
}

// DurationMinutes returns the event length in whole minutes, rounded.
// Negative durations clamp to zero so a malformed event can never
// produce a negative allocation.
func (e CalendarEvent) DurationMinutes() int {
	d := e.EndTime.Sub(e.StartTime)
	if d < 0 {
		return 0
	}
	return int(d.Round(time.Minute) / time.Minute)
}

// CategorizedEvent is a CalendarEvent with a category assigned.
// CategoryConfirmed is the UI badge flag: true when the category came
// from a user mapping or a keyword match, false for the default fallback.
type CategorizedEvent struct {
	CalendarEvent
	Category          Category `json:"category"`
	CategoryConfirmed bool     `json:"categoryConfirmed"`
}

// CategoryMapping is a user-defined title-pattern to category override.
// Patterns are stored normalized to lowercase and are unique
// case-insensitively within the Pattern Store.
type CategoryMapping struct {
	Pattern   string    `json:"pattern"`
	Category  Category  `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

// TimeAllocation is the per-category aggregate over a set of events.
// It is a derived view, recomputed fully on every aggregation call.
type TimeAllocation struct {
	Category     Category `json:"category"`
	TotalMinutes int      `json:"totalMinutes"`
	Percentage   int      `json:"percentage"`
	EventCount   int      `json:"eventCount"`
}
