package models

import "time"

// Progression event types broadcast over the websocket hub.
const (
	EventMissionCompleted = "mission_completed"
	EventLevelUp          = "level_up"
	EventScoreUpdated     = "score_updated"
)

// ProgressionEvent is pushed to connected clients when the engine completes
// a mission, levels a user up, or refreshes the performance score.
type ProgressionEvent struct {
	Type       string    `json:"type"`
	UserEmail  string    `json:"userEmail"`
	MissionID  string    `json:"missionId,omitempty"`
	Title      string    `json:"title,omitempty"`
	XPReward   int       `json:"xpReward,omitempty"`
	GoldReward int       `json:"goldReward,omitempty"`
	NewLevel   int       `json:"newLevel,omitempty"`
	NewScore   int       `json:"newScore,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
