// Package calendar provides the Google Calendar data provider: it hands
// back parsed CalendarEvent records with resolved instants. OAuth token
// acquisition happens elsewhere; calls take an already-valid access token.
package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/rubicon/gylr-go/internal/metrics"
	"github.com/rubicon/gylr-go/internal/models"
)

const defaultBaseURL = "https://www.googleapis.com/calendar/v3"

// maxResults caps a single fetch; the app reads one primary calendar
// over bounded periods, so pagination is not needed.
const maxResults = "250"

// googleEvent is the wire shape of a calendar event.
type googleEvent struct {
	ID          string         `json:"id"`
	Summary     string         `json:"summary,omitempty"`
	Description string         `json:"description,omitempty"`
	Start       GoogleDateTime `json:"start"`
	End         GoogleDateTime `json:"end"`
	Status      string         `json:"status"`
}

type listResponse struct {
	Items []googleEvent `json:"items"`
}

// CreateEventPayload is the body for event creation and updates.
type CreateEventPayload struct {
	Summary     string         `json:"summary"`
	Description string         `json:"description,omitempty"`
	Start       GoogleDateTime `json:"start"`
	End         GoogleDateTime `json:"end"`
}

// Client talks to the Google Calendar REST API.
type Client struct {
	// BaseURL may be overridden in tests.
	BaseURL string

	httpClient *http.Client
	logger     *slog.Logger
	metrics    *metrics.Collector
}

// NewClient creates a calendar client.
func NewClient(logger *slog.Logger, collector *metrics.Collector) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		BaseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
		metrics:    collector,
	}
}

// FetchEvents returns the primary calendar's events within [start, end],
// recurring events expanded, cancelled events filtered out.
func (c *Client) FetchEvents(ctx context.Context, accessToken string, start, end time.Time) ([]models.CalendarEvent, error) {
	began := time.Now()
	defer func() { c.metrics.RecordTiming(metrics.OpCalendarFetch, time.Since(began)) }()

	params := url.Values{
		"timeMin":      {start.Format(time.RFC3339)},
		"timeMax":      {end.Format(time.RFC3339)},
		"singleEvents": {"true"},
		"orderBy":      {"startTime"},
		"maxResults":   {maxResults},
	}

	var list listResponse
	endpoint := c.BaseURL + "/calendars/primary/events?" + params.Encode()
	if err := c.do(ctx, http.MethodGet, endpoint, accessToken, nil, &list); err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}

	events := make([]models.CalendarEvent, 0, len(list.Items))
	for _, item := range list.Items {
		if item.Status == "cancelled" {
			continue
		}
		events = append(events, transformGoogleEvent(item))
	}
	return events, nil
}

// CreateEvent creates a new event on the primary calendar.
func (c *Client) CreateEvent(ctx context.Context, accessToken string, payload CreateEventPayload) (models.CalendarEvent, error) {
	began := time.Now()
	defer func() { c.metrics.RecordTiming(metrics.OpCalendarWrite, time.Since(began)) }()

	requestID := uuid.NewString()
	c.logger.Debug("creating calendar event", "request_id", requestID, "summary", payload.Summary)

	var created googleEvent
	endpoint := c.BaseURL + "/calendars/primary/events"
	if err := c.do(ctx, http.MethodPost, endpoint, accessToken, payload, &created); err != nil {
		return models.CalendarEvent{}, fmt.Errorf("create event: %w", err)
	}
	return transformGoogleEvent(created), nil
}

// UpdateEvent patches an existing event.
func (c *Client) UpdateEvent(ctx context.Context, accessToken, eventID string, payload CreateEventPayload) (models.CalendarEvent, error) {
	began := time.Now()
	defer func() { c.metrics.RecordTiming(metrics.OpCalendarWrite, time.Since(began)) }()

	var updated googleEvent
	endpoint := c.BaseURL + "/calendars/primary/events/" + url.PathEscape(eventID)
	if err := c.do(ctx, http.MethodPatch, endpoint, accessToken, payload, &updated); err != nil {
		return models.CalendarEvent{}, fmt.Errorf("update event: %w", err)
	}
	return transformGoogleEvent(updated), nil
}

// DeleteEvent removes an event from the primary calendar.
func (c *Client) DeleteEvent(ctx context.Context, accessToken, eventID string) error {
	began := time.Now()
	defer func() { c.metrics.RecordTiming(metrics.OpCalendarWrite, time.Since(began)) }()

	endpoint := c.BaseURL + "/calendars/primary/events/" + url.PathEscape(eventID)
	if err := c.do(ctx, http.MethodDelete, endpoint, accessToken, nil, nil); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// do runs one authenticated API call, encoding body and decoding out
// when non-nil.
func (c *Client) do(ctx context.Context, method, endpoint, accessToken string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// transformGoogleEvent converts the wire shape to the engine's model.
func transformGoogleEvent(g googleEvent) models.CalendarEvent {
	title := g.Summary
	if title == "" {
		title = "(No title)"
	}
	return models.CalendarEvent{
		ID:          g.ID,
		Title:       title,
		Description: g.Description,
		StartTime:   ParseGoogleDateTime(g.Start),
		EndTime:     ParseGoogleDateTime(g.End),
		IsAllDay:    IsAllDay(g.Start),
	}
}
