package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserProgress is the per-user progression record. Reward fields (level, xp,
// gold, skill points) are mutated only by the reward ledger; the streak and
// snapshot baselines are owned by the activity tracker.
type UserProgress struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email                string             `bson:"email" json:"email"`
	DisplayName          string             `bson:"displayName,omitempty" json:"displayName,omitempty"`
	Level                int                `bson:"level" json:"level"`
	XP                   int                `bson:"xp" json:"xp"`
	TotalXP              int                `bson:"totalXp" json:"totalXp"`
	Gold                 int                `bson:"gold" json:"gold"`
	SkillPoints          int                `bson:"skillPoints" json:"skillPoints"`
	LoginStreak          int                `bson:"loginStreak" json:"loginStreak"`
	LastLoginDate        string             `bson:"lastLoginDate,omitempty" json:"lastLoginDate,omitempty"` // YYYY-MM-DD
	PreviousNetWorth     float64            `bson:"previousNetWorth" json:"previousNetWorth"`
	PreviousDebtSnapshot float64            `bson:"previousDebtSnapshot" json:"previousDebtSnapshot"`
	LastPerformanceScore int                `bson:"lastPerformanceScore" json:"lastPerformanceScore"`
	CreatedAt            time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// NewUserProgress returns a fresh level-1 record for email.
func NewUserProgress(email string) UserProgress {
	now := time.Now()
	return UserProgress{
		Email:     email,
		Level:     1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
