package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"coinquest/services"

	"github.com/gin-gonic/gin"
)

// InitializeSeasonRequest carries the optional season number.
type InitializeSeasonRequest struct {
	SeasonNumber int `json:"season_number"`
}

// InitializeSeason bootstraps a new active season with its three tiers.
func InitializeSeason(c *gin.Context) {
	if _, exists := c.Get("email"); !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "User not authenticated"})
		return
	}

	var req InitializeSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	season, err := services.GetCatalog().InitializeSeason(ctx, req.SeasonNumber)
	if err != nil {
		if errors.Is(err, services.ErrActiveSeasonExists) {
			c.JSON(http.StatusConflict, gin.H{
				"success":        false,
				"error":          "An active season already exists",
				"current_season": season,
			})
			return
		}
		log.Printf("Season initialization failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to initialize season"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"season":        season,
		"tiers_created": len(season.Tiers),
	})
}

// CheckSeasonExpiration ends the active season if it has expired and
// bootstraps the next one. Meant to be hit by a daily scheduler.
func CheckSeasonExpiration(c *gin.Context) {
	if _, exists := c.Get("email"); !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now()
	season, renewed, err := services.GetCatalog().RolloverExpiredSeason(ctx, now)
	if err != nil {
		log.Printf("Season expiration check failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to check season expiration"})
		return
	}

	if season == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "action": "none", "message": "No active season"})
		return
	}

	action := "none"
	if renewed {
		action = "season_renewed"
	}
	daysRemaining := int(season.EndDate.Sub(now).Hours() / 24)

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"action":         action,
		"current_season": season,
		"days_remaining": daysRemaining,
	})
}
