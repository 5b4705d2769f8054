package calendar

import (
	"time"
)

// GoogleDateTime is the wire shape of a Google Calendar event boundary:
// dateTime for timed events, date for all-day events.
type GoogleDateTime struct {
	DateTime string `json:"dateTime,omitempty"` // RFC 3339
	Date     string `json:"date,omitempty"`     // YYYY-MM-DD
	TimeZone string `json:"timeZone,omitempty"`
}

// ParseGoogleDateTime resolves a GoogleDateTime to an instant.
// All-day dates are anchored at local midnight.
func ParseGoogleDateTime(g GoogleDateTime) time.Time {
	if g.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, g.DateTime); err == nil {
			return t
		}
	}
	if g.Date != "" {
		if t, err := time.ParseInLocation("2006-01-02", g.Date, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}

// IsAllDay reports whether the start boundary marks an all-day event.
func IsAllDay(start GoogleDateTime) bool {
	return start.DateTime == "" && start.Date != ""
}

// ToGoogleDateTime converts an instant to the wire shape.
func ToGoogleDateTime(t time.Time, allDay bool) GoogleDateTime {
	if allDay {
		return GoogleDateTime{Date: t.Format("2006-01-02")}
	}
	return GoogleDateTime{
		DateTime: t.Format(time.RFC3339),
		TimeZone: t.Location().String(),
	}
}
