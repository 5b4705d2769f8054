package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rubicon/gylr-go/internal/calendar"
)

var (
	addStart       string
	addEnd         string
	addDescription string
	addAllDay      bool
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a calendar event",
	Long: `Create an event on the primary calendar.

Times are RFC 3339, e.g. 2026-08-30T13:00:00+02:00. All-day events
take dates (YYYY-MM-DD) instead.

Examples:
  gylr add "Gym" --start 2026-08-30T18:00:00Z --end 2026-08-30T19:00:00Z
  gylr add "Conference" --start 2026-09-01 --end 2026-09-02 --all-day`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addStart, "start", "", "event start (RFC 3339, or date for --all-day)")
	addCmd.Flags().StringVar(&addEnd, "end", "", "event end (RFC 3339, or date for --all-day)")
	addCmd.Flags().StringVar(&addDescription, "description", "", "event description")
	addCmd.Flags().BoolVar(&addAllDay, "all-day", false, "create an all-day event")
	_ = addCmd.MarkFlagRequired("start")
	_ = addCmd.MarkFlagRequired("end")
}

func runAdd(cmd *cobra.Command, args []string) error {
	if cfg.GoogleAccessToken == "" {
		return fmt.Errorf("GOOGLE_ACCESS_TOKEN is not set; export a valid Google Calendar access token")
	}

	start, err := parseEventTime(addStart, addAllDay)
	if err != nil {
		return fmt.Errorf("invalid --start: %w", err)
	}
	end, err := parseEventTime(addEnd, addAllDay)
	if err != nil {
		return fmt.Errorf("invalid --end: %w", err)
	}
	if end.Before(start) {
		return fmt.Errorf("event end must not be before start")
	}

	payload := calendar.CreateEventPayload{
		Summary:     args[0],
		Description: addDescription,
		Start:       calendar.ToGoogleDateTime(start, addAllDay),
		End:         calendar.ToGoogleDateTime(end, addAllDay),
	}

	client := calendar.NewClient(logger, collector)
	event, err := client.CreateEvent(context.Background(), cfg.GoogleAccessToken, payload)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	fmt.Printf("Created %q (%s)\n", event.Title, event.ID)
	return nil
}

func parseEventTime(raw string, allDay bool) (time.Time, error) {
	if allDay {
		return time.ParseInLocation("2006-01-02", raw, time.Local)
	}
	return time.Parse(time.RFC3339, raw)
}
