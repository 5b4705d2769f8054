package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rubicon/gylr-go/internal/calendar"
)

var (
	editStart       string
	editEnd         string
	editDescription string
	editAllDay      bool
)

var editCmd = &cobra.Command{
	Use:   "edit <event-id> <title>",
	Short: "Rewrite a calendar event",
	Long: `Rewrite an event on the primary calendar with a new title and times.
Event IDs are shown by "gylr events --verbose" and returned by "gylr add".

Examples:
  gylr edit abc123 "Gym (moved)" --start 2026-08-30T19:00:00Z --end 2026-08-30T20:00:00Z
  gylr edit abc123 "Conference" --start 2026-09-01 --end 2026-09-02 --all-day`,
	Args: cobra.ExactArgs(2),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editStart, "start", "", "event start (RFC 3339, or date for --all-day)")
	editCmd.Flags().StringVar(&editEnd, "end", "", "event end (RFC 3339, or date for --all-day)")
	editCmd.Flags().StringVar(&editDescription, "description", "", "event description")
	editCmd.Flags().BoolVar(&editAllDay, "all-day", false, "make it an all-day event")
	_ = editCmd.MarkFlagRequired("start")
	_ = editCmd.MarkFlagRequired("end")
}

func runEdit(cmd *cobra.Command, args []string) error {
	if cfg.GoogleAccessToken == "" {
		return fmt.Errorf("GOOGLE_ACCESS_TOKEN is not set; export a valid Google Calendar access token")
	}

	start, err := parseEventTime(editStart, editAllDay)
	if err != nil {
		return fmt.Errorf("invalid --start: %w", err)
	}
	end, err := parseEventTime(editEnd, editAllDay)
	if err != nil {
		return fmt.Errorf("invalid --end: %w", err)
	}
	if end.Before(start) {
		return fmt.Errorf("event end must not be before start")
	}

	payload := calendar.CreateEventPayload{
		Summary:     args[1],
		Description: editDescription,
		Start:       calendar.ToGoogleDateTime(start, editAllDay),
		End:         calendar.ToGoogleDateTime(end, editAllDay),
	}

	client := calendar.NewClient(logger, collector)
	event, err := client.UpdateEvent(context.Background(), cfg.GoogleAccessToken, args[0], payload)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	fmt.Printf("Updated %q (%s)\n", event.Title, event.ID)
	return nil
}
