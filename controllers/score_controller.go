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

// CalculatePerformanceScore computes the user's 0-100 composite financial
// health score. The service rolls the net-worth baseline forward and
// broadcasts the new score to subscribed clients.
func CalculatePerformanceScore(c *gin.Context) {
	email, exists := c.Get("email")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "User not authenticated"})
		return
	}
	user := email.(string)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	report, snap, err := services.GetEvaluator().ScorePass(ctx, user)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Profile not found"})
			return
		}
		log.Printf("Score calculation failed for %s: %v", user, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to calculate performance score"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"total_score":  report.TotalScore,
		"rank":         report.Rank,
		"metrics":      report.Metrics,
		"breakdown":    report.Breakdown,
		"insights":     report.Insights,
		"net_worth":    snap.NetWorth,
		"total_assets": snap.TotalAssets,
		"total_debts":  snap.TotalDebts,
	})
}
