package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rubicon/gylr-go/internal/calendar"
)

var removeCmd = &cobra.Command{
	Use:   "remove <event-id>",
	Short: "Delete a calendar event",
	Long: `Delete an event from the primary calendar.

Example:
  gylr remove abc123`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	if cfg.GoogleAccessToken == "" {
		return fmt.Errorf("GOOGLE_ACCESS_TOKEN is not set; export a valid Google Calendar access token")
	}

	client := calendar.NewClient(logger, collector)
	if err := client.DeleteEvent(context.Background(), cfg.GoogleAccessToken, args[0]); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	fmt.Printf("Removed event %s\n", args[0])
	return nil
}
