package services

import (
	"time"

	"coinquest/models"
)

const streakDateLayout = "2006-01-02"

// RecordLogin applies a daily login to the profile's streak counters. A
// second login on the same day is a no-op, a consecutive day extends the
// streak, any gap resets it to 1. Only activity-tracker fields are touched.
func RecordLogin(p models.UserProgress, now time.Time) models.UserProgress {
	today := now.Format(streakDateLayout)
	if p.LastLoginDate == today {
		return p
	}

	streak := 1
	if p.LastLoginDate != "" {
		if last, err := time.Parse(streakDateLayout, p.LastLoginDate); err == nil {
			midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
			days := int(midnight.Sub(last).Hours() / 24)
			if days == 1 {
				streak = p.LoginStreak + 1
			}
		}
	}

	p.LoginStreak = streak
	p.LastLoginDate = today
	p.UpdatedAt = now
	return p
}
