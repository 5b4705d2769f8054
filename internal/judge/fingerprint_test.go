package judge

import (
	"testing"

	"github.com/rubicon/gylr-go/internal/models"
)

func TestFingerprint_OrderIndependent(t *testing.T) {
	a := []models.TimeAllocation{
		{Category: models.CategoryWork, TotalMinutes: 120},
		{Category: models.CategoryPlay, TotalMinutes: 30},
	}
	b := []models.TimeAllocation{
		{Category: models.CategoryPlay, TotalMinutes: 30},
		{Category: models.CategoryWork, TotalMinutes: 120},
	}

	if Fingerprint(a, models.PeriodWeek, models.PersonalitySarcasticFriend) !=
		Fingerprint(b, models.PeriodWeek, models.PersonalitySarcasticFriend) {
		t.Error("fingerprint should not depend on allocation order")
	}
}

func TestFingerprint_DistinguishesInputs(t *testing.T) {
	base := []models.TimeAllocation{
		{Category: models.CategoryWork, TotalMinutes: 120},
	}
	ref := Fingerprint(base, models.PeriodWeek, models.PersonalitySarcasticFriend)

	changedMinutes := []models.TimeAllocation{
		{Category: models.CategoryWork, TotalMinutes: 121},
	}
	if Fingerprint(changedMinutes, models.PeriodWeek, models.PersonalitySarcasticFriend) == ref {
		t.Error("fingerprint should change with minutes")
	}
	if Fingerprint(base, models.PeriodDay, models.PersonalitySarcasticFriend) == ref {
		t.Error("fingerprint should change with period")
	}
	if Fingerprint(base, models.PeriodWeek, models.PersonalityCruelComedian) == ref {
		t.Error("fingerprint should change with personality")
	}
}

func TestFingerprint_Shape(t *testing.T) {
	allocations := []models.TimeAllocation{
		{Category: models.CategoryWork, TotalMinutes: 120},
		{Category: models.CategoryPlay, TotalMinutes: 30},
	}

	got := Fingerprint(allocations, models.PeriodWeek, models.PersonalitySarcasticFriend)
	want := "week-sarcastic_friend-play:30|work:120"
	if got != want {
		t.Errorf("Fingerprint = %q, want %q", got, want)
	}
}
