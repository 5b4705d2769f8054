package judge

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rubicon/gylr-go/internal/models"
)

// Fingerprint derives the content-addressed cache key for a judgment
// request: identical allocation snapshots under the same period and
// personality reuse results. Category:minutes pairs are sorted so the
// key is independent of allocation ordering.
func Fingerprint(allocations []models.TimeAllocation, period models.TimePeriod, personality models.Personality) string {
	pairs := make([]string, 0, len(allocations))
	for _, a := range allocations {
		pairs = append(pairs, fmt.Sprintf("%s:%d", a.Category, a.TotalMinutes))
	}
	sort.Strings(pairs)
	return fmt.Sprintf("%s-%s-%s", period, personality, strings.Join(pairs, "|"))
}
