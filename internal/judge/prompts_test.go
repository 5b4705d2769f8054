package judge

import (
	"strings"
	"testing"

	"github.com/rubicon/gylr-go/internal/models"
)

func TestBuildPrompt_ListsAllFiveCategories(t *testing.T) {
	allocations := []models.TimeAllocation{
		{Category: models.CategoryWork, TotalMinutes: 300, Percentage: 75},
		{Category: models.CategoryPlay, TotalMinutes: 100, Percentage: 25},
	}

	system, user := BuildPrompt(models.PersonalitySarcasticFriend, allocations, models.PeriodWeek, 400)

	if system == "" {
		t.Fatal("system prompt is empty")
	}

	wantLines := []string{
		"- Work: 75% (5 hrs)",
		"- Play: 25% (1.7 hrs)",
		"- Health: 0% (0 min)",
		"- Romance: 0% (0 min)",
		"- Study: 0% (0 min)",
		"Total tracked: 6.7 hrs",
		"this week",
		"Give me a quick roast about this distribution.",
	}
	for _, line := range wantLines {
		if !strings.Contains(user, line) {
			t.Errorf("user prompt missing %q:\n%s", line, user)
		}
	}
}

func TestBuildPrompt_PersonalitiesDiffer(t *testing.T) {
	seen := map[string]models.Personality{}
	for _, p := range models.Personalities() {
		system, _ := BuildPrompt(p, nil, models.PeriodDay, 0)
		if system == "" {
			t.Errorf("%s: empty system prompt", p)
		}
		if prev, dup := seen[system]; dup {
			t.Errorf("%s and %s share a system prompt", p, prev)
		}
		seen[system] = p
	}
}

func TestBuildPrompt_UnknownPersonalityFallsBack(t *testing.T) {
	fallback, _ := BuildPrompt(models.PersonalitySarcasticFriend, nil, models.PeriodDay, 0)
	system, _ := BuildPrompt(models.Personality("nonsense"), nil, models.PeriodDay, 0)
	if system != fallback {
		t.Error("unknown personality should fall back to the sarcastic friend voice")
	}
}

func TestBuildPrompt_PeriodLabel(t *testing.T) {
	tests := []struct {
		period models.TimePeriod
		want   string
	}{
		{models.PeriodDay, "time today"},
		{models.PeriodWeek, "time this week"},
		{models.PeriodMonth, "time this month"},
		{models.PeriodYear, "time this year"},
	}
	for _, tt := range tests {
		_, user := BuildPrompt(models.PersonalitySarcasticFriend, nil, tt.period, 0)
		if !strings.Contains(user, tt.want) {
			t.Errorf("%s: user prompt missing %q", tt.period, tt.want)
		}
	}
}

func TestRandomLoadingMessage(t *testing.T) {
	valid := map[string]bool{}
	for _, m := range LoadingMessages {
		valid[m] = true
	}
	for i := 0; i < 20; i++ {
		if msg := RandomLoadingMessage(); !valid[msg] {
			t.Fatalf("unexpected loading message %q", msg)
		}
	}
}
