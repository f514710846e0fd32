package controllers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"coinquest/services"
	"coinquest/utils"

	"github.com/gin-gonic/gin"
)

// LeaderboardEntry represents one ranked user.
type LeaderboardEntry struct {
	ID          string `json:"id"`
	Rank        int    `json:"rank"`
	Name        string `json:"name"`
	Level       int    `json:"level"`
	TotalXP     int    `json:"totalXp"`
	Gold        int    `json:"gold"`
	Score       int    `json:"score"`
	CurrentUser bool   `json:"currentUser"`
}

// GetLeaderboard returns the top users ranked by lifetime XP.
func GetLeaderboard(c *gin.Context) {
	currentEmail, exists := c.Get("email")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "User not authenticated"})
		return
	}

	// Get limit from query params (default 50)
	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	profiles, err := services.GetStore().TopProfiles(ctx, limit)
	if err != nil {
		log.Printf("Failed to fetch leaderboard: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch leaderboard data"})
		return
	}

	entries := make([]LeaderboardEntry, 0, len(profiles))
	for i, p := range profiles {
		name := p.DisplayName
		if name == "" {
			name = utils.ExtractNameFromEmail(p.Email)
		}

		entries = append(entries, LeaderboardEntry{
			ID:          p.ID.Hex(),
			Rank:        i + 1,
			Name:        name,
			Level:       p.Level,
			TotalXP:     p.TotalXP,
			Gold:        p.Gold,
			Score:       p.LastPerformanceScore,
			CurrentUser: p.Email == currentEmail,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"total":   len(entries),
	})
}
