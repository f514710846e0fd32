package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SeasonStatus is the lifecycle state of a season.
type SeasonStatus string

const (
	SeasonActive SeasonStatus = "active"
	SeasonEnded  SeasonStatus = "ended"
)

// SeasonTier describes one of a season's three mission tiers. Tiers are
// display groupings; gating runs on mission prerequisite sets.
type SeasonTier struct {
	OrderIndex  int    `bson:"orderIndex" json:"orderIndex"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	Icon        string `bson:"icon,omitempty" json:"icon,omitempty"`
}

// Season is a time-boxed container of mission tiers. At most one season is
// active at a time.
type Season struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SeasonNumber int                `bson:"seasonNumber" json:"seasonNumber"`
	Name         string             `bson:"name" json:"name"`
	Theme        string             `bson:"theme" json:"theme"`
	ThemeColor   string             `bson:"themeColor,omitempty" json:"themeColor,omitempty"`
	StartDate    time.Time          `bson:"startDate" json:"startDate"`
	EndDate      time.Time          `bson:"endDate" json:"endDate"`
	Status       SeasonStatus       `bson:"status" json:"status"`
	Tiers        []SeasonTier       `bson:"tiers" json:"tiers"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
