package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rubicon/gylr-go/internal/allocation"
	"github.com/rubicon/gylr-go/internal/models"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List calendar events with their inferred categories",
	Long: `Fetch calendar events for the selected period and show each with
its inferred life category.

Confirmed categories (user mapping or keyword match) are marked with a
filled badge; unmatched events show as uncategorized.

Examples:
  gylr events
  gylr events --period day`,
	Args: cobra.NoArgs,
	RunE: runEvents,
}

func runEvents(cmd *cobra.Command, args []string) error {
	period, err := activePeriod()
	if err != nil {
		return err
	}

	ctx := context.Background()
	events, err := fetchCategorized(ctx, period)
	if err != nil {
		return fmt.Errorf("fetch events: %w", err)
	}

	if len(events) == 0 {
		fmt.Printf("No events found %s.\n", period.Label())
		return nil
	}

	for _, event := range events {
		badge := categoryBadge(event.Category, event.CategoryConfirmed)
		timeRange := event.StartTime.Format("Mon Jan 2 15:04")
		if event.IsAllDay {
			timeRange = event.StartTime.Format("Mon Jan 2") + " (all day)"
		}
		title := event.Title
		if verbose {
			title += "  [" + event.ID + "]"
		}
		fmt.Printf("%s  %-14s %s  %s\n",
			badge,
			allocation.FormatDuration(event.DurationMinutes()),
			timeRange,
			title)
	}

	fmt.Printf("\n%d events, %d categorized\n", len(events), allocation.CategorizedCount(events))
	return nil
}

// categoryBadge renders a colored category label; unconfirmed guesses
// get a question-mark suffix so re-categorization candidates stand out.
func categoryBadge(category models.Category, confirmed bool) string {
	label := category.Label()
	if !confirmed && category == models.CategoryUncategorized {
		label = "?"
	}
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(category.Color())).
		Bold(confirmed).
		Width(14)
	return style.Render(label)
}
