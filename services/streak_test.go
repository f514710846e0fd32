package services

import (
	"testing"
	"time"

	"coinquest/models"
)

func TestRecordLoginFirstEver(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	p := RecordLogin(models.UserProgress{}, now)

	if p.LoginStreak != 1 {
		t.Errorf("Expected streak 1 on first login, got %d", p.LoginStreak)
	}
	if p.LastLoginDate != "2026-03-10" {
		t.Errorf("Expected last login 2026-03-10, got %s", p.LastLoginDate)
	}
}

func TestRecordLoginSameDay(t *testing.T) {
	now := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)
	p := models.UserProgress{LoginStreak: 4, LastLoginDate: "2026-03-10"}

	next := RecordLogin(p, now)
	if next.LoginStreak != 4 {
		t.Errorf("Expected same-day login to keep streak 4, got %d", next.LoginStreak)
	}
}

func TestRecordLoginConsecutiveDay(t *testing.T) {
	now := time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC)
	p := models.UserProgress{LoginStreak: 4, LastLoginDate: "2026-03-10"}

	next := RecordLogin(p, now)
	if next.LoginStreak != 5 {
		t.Errorf("Expected consecutive login to extend streak to 5, got %d", next.LoginStreak)
	}
	if next.LastLoginDate != "2026-03-11" {
		t.Errorf("Expected last login 2026-03-11, got %s", next.LastLoginDate)
	}
}

func TestRecordLoginAfterGap(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	p := models.UserProgress{LoginStreak: 9, LastLoginDate: "2026-03-10"}

	next := RecordLogin(p, now)
	if next.LoginStreak != 1 {
		t.Errorf("Expected gap to reset streak to 1, got %d", next.LoginStreak)
	}
}
