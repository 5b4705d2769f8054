// Package models defines data structures for the GYLR time-allocation engine.
package models

import "fmt"

// Category is a life-area label assigned to calendar events.
type Category string

const (
	CategoryWork          Category = "work"
	CategoryPlay          Category = "play"
	CategoryHealth        Category = "health"
	CategoryRomance       Category = "romance"
	CategoryStudy         Category = "study"
	CategoryUncategorized Category = "uncategorized"
)

// Categories returns the five selectable categories in their fixed
// enumeration order. This order is a contract: it breaks percentage ties
// in allocation output and drives prompt rendering.
func Categories() []Category {
	return []Category{
		CategoryWork,
		CategoryPlay,
		CategoryHealth,
		CategoryRomance,
		CategoryStudy,
	}
}

// ParseCategory converts a string into a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryWork, CategoryPlay, CategoryHealth, CategoryRomance,
		CategoryStudy, CategoryUncategorized:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category: %q", s)
}

// Label returns the display name for the category.
func (c Category) Label() string {
	switch c {
	case CategoryWork:
		return "Work"
	case CategoryPlay:
		return "Play"
	case CategoryHealth:
		return "Health"
	case CategoryRomance:
		return "Romance"
	case CategoryStudy:
		return "Study"
	case CategoryUncategorized:
		return "Uncategorized"
	}
	return string(c)
}

// Color returns the hex color associated with the category.
func (c Category) Color() string {
	switch c {
	case CategoryWork:
		return "#E85D75"
	case CategoryPlay:
		return "#50C878"
	case CategoryHealth:
		return "#4ECDC4"
	case CategoryRomance:
		return "#FF6B9D"
	case CategoryStudy:
		return "#9B59B6"
	}
	return "#6B6B6B"
}
