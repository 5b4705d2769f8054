package classify

import (
	"strings"

	"github.com/rubicon/gylr-go/internal/models"
)

// Source identifies which rule layer produced a classification.
type Source string

const (
	SourceUserMapping Source = "user_mapping"
	SourceKeyword     Source = "keyword"
	SourceDefault     Source = "default"
)

// Confidence is the tri-valued classification strength. It is independent
// of the CategoryConfirmed UI flag: a keyword match is medium confidence
// but still confirmed for badge purposes.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Result is the outcome of classifying a single title.
type Result struct {
	Category   models.Category
	Source     Source
	Confidence Confidence
}

// Confirmed reports whether the classification counts as confirmed for
// display purposes: user mappings always, keyword matches unless they
// somehow land on uncategorized, never the default fallback.
func (r Result) Confirmed() bool {
	switch r.Source {
	case SourceUserMapping:
		return true
	case SourceKeyword:
		return r.Category != models.CategoryUncategorized
	}
	return false
}

// SuggestCategory classifies an event title. Evaluation order is strict
// and first match wins:
//
//  1. user mappings, in insertion order
//  2. the fixed keyword table, in table order
//  3. the uncategorized default
//
// The function is pure: same (title, mappings) always yields the same result.
func SuggestCategory(title string, mappings []models.CategoryMapping) Result {
	for _, m := range mappings {
		if TitleMatchesPattern(title, m.Pattern) {
			return Result{
				Category:   m.Category,
				Source:     SourceUserMapping,
				Confidence: ConfidenceHigh,
			}
		}
	}

	lowerTitle := strings.ToLower(title)
	for _, entry := range keywordTable {
		for _, keyword := range entry.Keywords {
			if strings.Contains(lowerTitle, strings.ToLower(keyword)) {
				return Result{
					Category:   entry.Category,
					Source:     SourceKeyword,
					Confidence: ConfidenceMedium,
				}
			}
		}
	}

	return Result{
		Category:   models.CategoryUncategorized,
		Source:     SourceDefault,
		Confidence: ConfidenceLow,
	}
}

// Categorize classifies a batch of events into CategorizedEvents.
func Categorize(events []models.CalendarEvent, mappings []models.CategoryMapping) []models.CategorizedEvent {
	categorized := make([]models.CategorizedEvent, 0, len(events))
	for _, event := range events {
		result := SuggestCategory(event.Title, mappings)
		categorized = append(categorized, models.CategorizedEvent{
			CalendarEvent:     event,
			Category:          result.Category,
			CategoryConfirmed: result.Confirmed(),
		})
	}
	return categorized
}
