// Package allocation aggregates categorized events into per-category
// time allocations with percentage shares.
package allocation

import (
	"fmt"
	"math"
	"sort"

	"github.com/rubicon/gylr-go/internal/models"
)

// Calculate computes the time allocation across the five selectable
// categories. Uncategorized events are excluded from all sums. The result
// always has exactly five entries, sorted descending by percentage; ties
// retain the fixed category enumeration order.
func Calculate(events []models.CategorizedEvent) []models.TimeAllocation {
	categoryMinutes := make(map[models.Category]int)
	categoryCounts := make(map[models.Category]int)

	for _, event := range events {
		if event.Category == models.CategoryUncategorized {
			continue
		}
		categoryMinutes[event.Category] += event.DurationMinutes()
		categoryCounts[event.Category]++
	}

	totalMinutes := 0
	for _, minutes := range categoryMinutes {
		totalMinutes += minutes
	}

	allocations := make([]models.TimeAllocation, 0, len(models.Categories()))
	for _, category := range models.Categories() {
		minutes := categoryMinutes[category]
		percentage := 0
		if totalMinutes > 0 {
			percentage = int(math.Round(float64(minutes) / float64(totalMinutes) * 100))
		}
		allocations = append(allocations, models.TimeAllocation{
			Category:     category,
			TotalMinutes: minutes,
			Percentage:   percentage,
			EventCount:   categoryCounts[category],
		})
	}

	sort.SliceStable(allocations, func(i, j int) bool {
		return allocations[i].Percentage > allocations[j].Percentage
	})
	return allocations
}

// TotalMinutes sums the duration of all categorized (non-uncategorized) events.
func TotalMinutes(events []models.CategorizedEvent) int {
	total := 0
	for _, event := range events {
		if event.Category == models.CategoryUncategorized {
			continue
		}
		total += event.DurationMinutes()
	}
	return total
}

// TopCategory returns the allocation with the most time, or nil if no
// category has any time. Ties keep the first occurrence in the
// percentage-sorted input, which makes the earlier-listed category win.
func TopCategory(allocations []models.TimeAllocation) *models.TimeAllocation {
	var top *models.TimeAllocation
	for i := range allocations {
		a := &allocations[i]
		if a.TotalMinutes <= 0 {
			continue
		}
		if top == nil || a.TotalMinutes > top.TotalMinutes {
			top = a
		}
	}
	return top
}

// BottomCategory returns the allocation with the least non-zero time, or
// nil if no category has any time. Ties keep the first occurrence.
func BottomCategory(allocations []models.TimeAllocation) *models.TimeAllocation {
	var bottom *models.TimeAllocation
	for i := range allocations {
		a := &allocations[i]
		if a.TotalMinutes <= 0 {
			continue
		}
		if bottom == nil || a.TotalMinutes < bottom.TotalMinutes {
			bottom = a
		}
	}
	return bottom
}

// CategorizedCount returns the number of non-uncategorized events.
func CategorizedCount(events []models.CategorizedEvent) int {
	count := 0
	for _, event := range events {
		if event.Category != models.CategoryUncategorized {
			count++
		}
	}
	return count
}

// HasEnoughData reports whether there is at least one categorized event,
// i.e. whether the allocation view is meaningful versus an empty state.
func HasEnoughData(events []models.CategorizedEvent) bool {
	return CategorizedCount(events) > 0
}

// FormatHours formats minutes as an hours string: "45 min", "2 hrs", "1.5 hrs".
func FormatHours(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	hours := float64(minutes) / 60
	if hours == math.Floor(hours) {
		whole := int(hours)
		if whole == 1 {
			return "1 hr"
		}
		return fmt.Sprintf("%d hrs", whole)
	}
	return fmt.Sprintf("%.1f hrs", hours)
}

// FormatDuration formats minutes compactly: "45m", "2h", "1h 30m".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}
