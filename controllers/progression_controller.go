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

// EvaluateMissions runs one evaluation pass for the authenticated user and
// returns the completed missions with their XP/gold deltas.
func EvaluateMissions(c *gin.Context) {
	email, exists := c.Get("email")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := services.GetEvaluator().EvaluatePass(ctx, email.(string))
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Profile not found"})
			return
		}
		log.Printf("Evaluation pass failed for %s: %v", email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to evaluate missions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"completed_count":    result.CompletedCount,
		"total_xp_gained":    result.TotalXPGained,
		"total_gold_gained":  result.TotalGoldGained,
		"completed_missions": result.CompletedMissions,
	})
}

// GetProgressionProfile returns the user's level, XP and progress toward
// the next level. First access creates the record and seeds the base
// mission ladder.
func GetProgressionProfile(c *gin.Context) {
	email, exists := c.Get("email")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	profile, err := services.GetCatalog().EnsureProfile(ctx, email.(string))
	if err != nil {
		log.Printf("Failed to load profile for %s: %v", email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load profile"})
		return
	}

	threshold := profile.Level * 100
	progressPercent := 0
	if threshold > 0 {
		progressPercent = profile.XP * 100 / threshold
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"profile": gin.H{
			"level":              profile.Level,
			"xp":                 profile.XP,
			"totalXp":            profile.TotalXP,
			"gold":               profile.Gold,
			"skillPoints":        profile.SkillPoints,
			"loginStreak":        profile.LoginStreak,
			"xpToNextLevel":      threshold,
			"progressPercentage": progressPercent,
			"nextLevelPoints":    threshold - profile.XP,
		},
	})
}

// RecordLogin applies a daily login to the user's streak counters.
func RecordLogin(c *gin.Context) {
	email, exists := c.Get("email")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	profile, err := services.GetCatalog().EnsureProfile(ctx, email.(string))
	if err != nil {
		log.Printf("Failed to load profile for %s: %v", email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load profile"})
		return
	}

	updated := services.RecordLogin(profile, time.Now())
	if err := services.GetStore().UpsertProfile(ctx, updated); err != nil {
		log.Printf("Failed to save streak for %s: %v", email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to record login"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"loginStreak": updated.LoginStreak,
	})
}

// ResetMissions deletes and regenerates the user's mission ladder in two
// explicit phases.
func ResetMissions(c *gin.Context) {
	email, exists := c.Get("email")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	deleted, created, err := services.GetCatalog().ResetMissions(ctx, email.(string))
	if err != nil {
		log.Printf("Mission reset failed for %s: %v", email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to reset missions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"missions_deleted": deleted,
		"missions_created": created,
	})
}

// GenerateMissions creates the personalized mission ladder for a user who
// has none yet.
func GenerateMissions(c *gin.Context) {
	email, exists := c.Get("email")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	created, err := services.GetCatalog().GeneratePersonalizedMissions(ctx, email.(string), false)
	if err != nil {
		if errors.Is(err, services.ErrMissionsExist) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Missions already exist; use reset"})
			return
		}
		log.Printf("Mission generation failed for %s: %v", email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to generate missions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   created,
	})
}
