package calendar

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	client.BaseURL = srv.URL
	return client
}

func TestFetchEvents(t *testing.T) {
	var gotQuery map[string]string
	var gotAuth string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]any{
				{
					"id":      "evt-1",
					"summary": "Team Standup",
					"start":   map[string]string{"dateTime": "2026-08-24T09:00:00Z"},
					"end":     map[string]string{"dateTime": "2026-08-24T09:30:00Z"},
					"status":  "confirmed",
				},
				{
					"id":      "evt-2",
					"summary": "Cancelled thing",
					"start":   map[string]string{"dateTime": "2026-08-24T10:00:00Z"},
					"end":     map[string]string{"dateTime": "2026-08-24T11:00:00Z"},
					"status":  "cancelled",
				},
				{
					"id":     "evt-3",
					"start":  map[string]string{"date": "2026-08-25"},
					"end":    map[string]string{"date": "2026-08-26"},
					"status": "confirmed",
				},
			},
		})
	})

	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 30, 23, 59, 59, 0, time.UTC)
	events, err := client.FetchEvents(context.Background(), "tok-123", start, end)
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "true", gotQuery["singleEvents"])
	assert.Equal(t, "startTime", gotQuery["orderBy"])
	assert.Equal(t, "250", gotQuery["maxResults"])
	assert.Equal(t, start.Format(time.RFC3339), gotQuery["timeMin"])
	assert.Equal(t, end.Format(time.RFC3339), gotQuery["timeMax"])

	// Cancelled events are dropped.
	require.Len(t, events, 2)

	assert.Equal(t, "evt-1", events[0].ID)
	assert.Equal(t, "Team Standup", events[0].Title)
	assert.False(t, events[0].IsAllDay)
	assert.Equal(t, 30, events[0].DurationMinutes())

	// Missing summary becomes a placeholder; date-only boundaries mark all-day.
	assert.Equal(t, "(No title)", events[1].Title)
	assert.True(t, events[1].IsAllDay)
}

func TestFetchEvents_HTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	})

	_, err := client.FetchEvents(context.Background(), "bad", time.Now(), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestCreateEvent(t *testing.T) {
	var gotMethod string
	var gotPayload CreateEventPayload

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		json.NewEncoder(w).Encode(map[string]any{
			"id":      "created-1",
			"summary": gotPayload.Summary,
			"start":   gotPayload.Start,
			"end":     gotPayload.End,
			"status":  "confirmed",
		})
	})

	payload := CreateEventPayload{
		Summary: "Dinner",
		Start:   GoogleDateTime{DateTime: "2026-08-24T19:00:00Z", TimeZone: "UTC"},
		End:     GoogleDateTime{DateTime: "2026-08-24T21:00:00Z", TimeZone: "UTC"},
	}
	created, err := client.CreateEvent(context.Background(), "tok", payload)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "Dinner", gotPayload.Summary)
	assert.Equal(t, "created-1", created.ID)
	assert.Equal(t, 120, created.DurationMinutes())
}

func TestUpdateEvent(t *testing.T) {
	var gotMethod, gotPath string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "evt-9",
			"summary": "Renamed",
			"start":   map[string]string{"dateTime": "2026-08-24T09:00:00Z"},
			"end":     map[string]string{"dateTime": "2026-08-24T10:00:00Z"},
		})
	})

	updated, err := client.UpdateEvent(context.Background(), "tok", "evt-9", CreateEventPayload{Summary: "Renamed"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/calendars/primary/events/evt-9", gotPath)
	assert.Equal(t, "Renamed", updated.Title)
}

func TestDeleteEvent(t *testing.T) {
	var gotMethod, gotPath string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteEvent(context.Background(), "tok", "evt-5"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/calendars/primary/events/evt-5", gotPath)
}

func TestParseGoogleDateTime(t *testing.T) {
	timed := ParseGoogleDateTime(GoogleDateTime{DateTime: "2026-08-24T09:00:00+02:00"})
	assert.Equal(t, 7, timed.UTC().Hour())

	allDay := ParseGoogleDateTime(GoogleDateTime{Date: "2026-08-24"})
	y, m, d := allDay.Date()
	assert.Equal(t, 2026, y)
	assert.Equal(t, time.August, m)
	assert.Equal(t, 24, d)
	assert.Equal(t, 0, allDay.Hour())

	assert.True(t, ParseGoogleDateTime(GoogleDateTime{}).IsZero())
	assert.True(t, ParseGoogleDateTime(GoogleDateTime{DateTime: "garbage"}).IsZero())
}

func TestToGoogleDateTime(t *testing.T) {
	instant := time.Date(2026, 8, 24, 19, 0, 0, 0, time.UTC)

	timed := ToGoogleDateTime(instant, false)
	assert.Equal(t, "2026-08-24T19:00:00Z", timed.DateTime)
	assert.Empty(t, timed.Date)

	allDay := ToGoogleDateTime(instant, true)
	assert.Equal(t, "2026-08-24", allDay.Date)
	assert.Empty(t, allDay.DateTime)
	assert.True(t, IsAllDay(allDay))
}
