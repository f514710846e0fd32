package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MissionStatus is the lifecycle state of a mission. Statuses only ever
// advance forward (locked -> active -> completed -> claimed).
type MissionStatus string

const (
	MissionLocked    MissionStatus = "locked"
	MissionActive    MissionStatus = "active"
	MissionCompleted MissionStatus = "completed"
	MissionClaimed   MissionStatus = "claimed"
)

// Finished reports whether the mission has already paid out.
func (s MissionStatus) Finished() bool {
	return s == MissionCompleted || s == MissionClaimed
}

// VerificationKind selects the trigger rule used to compute a mission's
// progress from the financial ledger.
type VerificationKind string

const (
	VerifyTransactionCount VerificationKind = "transaction_count"
	VerifySavingsBalance   VerificationKind = "savings_balance"
	VerifyNetWorth         VerificationKind = "net_worth"
	VerifyDebtReduction    VerificationKind = "debt_reduction"
	VerifyLoginStreak      VerificationKind = "login_streak"
	VerifyFirstImport      VerificationKind = "first_import"
	VerifyCategorySpendCap VerificationKind = "category_spend_cap"
)

// Difficulty is a display hint for how hard a mission is.
type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyMedium    Difficulty = "medium"
	DifficultyHard      Difficulty = "hard"
	DifficultyLegendary Difficulty = "legendary"
)

// Mission is a trackable objective with a numeric target and reward.
// RequiredMissionIDs is the canonical prerequisite set; Tier and OrderIndex
// are display and sequencing hints only.
type Mission struct {
	ID                 primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	UserEmail          string               `bson:"userEmail" json:"userEmail"`
	Title              string               `bson:"title" json:"title"`
	Description        string               `bson:"description" json:"description"`
	Tier               int                  `bson:"tier" json:"tier"`
	OrderIndex         int                  `bson:"orderIndex" json:"orderIndex"`
	VerificationKind   VerificationKind     `bson:"verificationKind" json:"verificationKind"`
	Category           string               `bson:"category,omitempty" json:"category,omitempty"` // spend-cap missions only
	TargetValue        float64              `bson:"targetValue" json:"targetValue"`
	CurrentProgress    float64              `bson:"currentProgress" json:"currentProgress"`
	Status             MissionStatus        `bson:"status" json:"status"`
	XPReward           int                  `bson:"xpReward" json:"xpReward"`
	GoldReward         int                  `bson:"goldReward" json:"goldReward"`
	Difficulty         Difficulty           `bson:"difficulty" json:"difficulty"`
	BadgeIcon          string               `bson:"badgeIcon,omitempty" json:"badgeIcon,omitempty"`
	RequiredMissionIDs []primitive.ObjectID `bson:"requiredMissionIds,omitempty" json:"requiredMissionIds,omitempty"`
	CompletedAt        *time.Time           `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	CreatedAt          time.Time            `bson:"createdAt" json:"createdAt"`
}

// CompletedMission is one entry of an evaluation pass result.
type CompletedMission struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	XPReward   int    `json:"xp_reward"`
	GoldReward int    `json:"gold_reward"`
	LeveledUp  bool   `json:"leveled_up"`
	NewLevel   int    `json:"new_level"`
}

// PassResult is the outcome of a single evaluation pass.
type PassResult struct {
	CompletedCount    int                `json:"completed_count"`
	TotalXPGained     int                `json:"total_xp_gained"`
	TotalGoldGained   int                `json:"total_gold_gained"`
	CompletedMissions []CompletedMission `json:"completed_missions"`
}
