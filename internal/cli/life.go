package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rubicon/gylr-go/internal/allocation"
)

// barWidth is the full width of a 100% allocation bar.
const barWidth = 30

var lifeCmd = &cobra.Command{
	Use:   "life",
	Short: "Show the time-allocation breakdown across life areas",
	Long: `Aggregate the period's categorized events into a per-category
breakdown: share of tracked time, total duration and event count.

Examples:
  gylr life
  gylr life --period month`,
	Args: cobra.NoArgs,
	RunE: runLife,
}

func runLife(cmd *cobra.Command, args []string) error {
	period, err := activePeriod()
	if err != nil {
		return err
	}

	ctx := context.Background()
	events, err := fetchCategorized(ctx, period)
	if err != nil {
		return fmt.Errorf("fetch events: %w", err)
	}

	if !allocation.HasEnoughData(events) {
		fmt.Printf("Nothing categorized %s yet. Categorize a few events and come back.\n", period.Label())
		return nil
	}

	allocations := allocation.Calculate(events)
	totalMinutes := allocation.TotalMinutes(events)

	fmt.Printf("Your life %s (%s tracked):\n\n", period.Label(), allocation.FormatHours(totalMinutes))
	for _, a := range allocations {
		barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(a.Category.Color()))
		filled := barWidth * a.Percentage / 100
		bar := barStyle.Render(strings.Repeat("█", filled)) +
			strings.Repeat("░", barWidth-filled)
		fmt.Printf("%-14s %s %3d%%  %s (%d events)\n",
			a.Category.Label(), bar, a.Percentage,
			allocation.FormatHours(a.TotalMinutes), a.EventCount)
	}

	if top := allocation.TopCategory(allocations); top != nil {
		fmt.Printf("\nMost time: %s (%s)\n", top.Category.Label(), allocation.FormatHours(top.TotalMinutes))
	}
	if bottom := allocation.BottomCategory(allocations); bottom != nil {
		fmt.Printf("Least time: %s (%s)\n", bottom.Category.Label(), allocation.FormatHours(bottom.TotalMinutes))
	}
	return nil
}
