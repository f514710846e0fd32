package services

import (
	"testing"

	"coinquest/models"
)

func TestCalculateScoreEpicScenario(t *testing.T) {
	in := ScoreInput{
		Snapshot: models.FinancialSnapshot{
			NetWorth:               500,
			TotalAssets:            1000,
			TotalDebts:             500,
			SavingsBalance:         250,
			TransactionCount:       20,
			RecentTransactionCount: 4,
		},
		PreviousNetWorth: 440, // ~13.6% growth
		LoginStreak:      10,
		Budgets: []models.BudgetCategory{
			{Budget: 600, Spent: 400},
			{Budget: 400, Spent: 250},
		},
		Goals: []models.Goal{
			{CurrentAmount: 80, TargetAmount: 100, Status: "active"},
			{CurrentAmount: 70, TargetAmount: 100, Status: "active"},
			{CurrentAmount: 100, TargetAmount: 100, Status: "completed"},
		},
	}

	report := CalculateScore(in)

	if report.Breakdown.NetWorthScore != 25 {
		t.Errorf("Expected net worth score 25, got %d", report.Breakdown.NetWorthScore)
	}
	// Debt ratio is exactly 50%, which still lands in the middle band.
	if report.Breakdown.DebtScore != 10 {
		t.Errorf("Expected debt score 10 at ratio 50%%, got %d", report.Breakdown.DebtScore)
	}
	if report.Breakdown.BudgetScore != 20 {
		t.Errorf("Expected budget score 20 at 35%% health, got %d", report.Breakdown.BudgetScore)
	}
	if report.Breakdown.SavingsScore != 12 {
		t.Errorf("Expected savings score 12 at 25%% rate, got %d", report.Breakdown.SavingsScore)
	}
	if report.Breakdown.GoalScore != 10 {
		t.Errorf("Expected goal score 10 at 75%% average, got %d", report.Breakdown.GoalScore)
	}
	if report.Breakdown.ActivityScore != 5 {
		t.Errorf("Expected activity score 5 at streak 10, got %d", report.Breakdown.ActivityScore)
	}

	if report.TotalScore != 82 {
		t.Errorf("Expected total score 82, got %d", report.TotalScore)
	}
	if report.Rank != RankEpic {
		t.Errorf("Expected rank Epic, got %s", report.Rank)
	}
	if report.Metrics.ActiveGoals != 2 {
		t.Errorf("Expected 2 active goals, got %d", report.Metrics.ActiveGoals)
	}
}

func TestCalculateScoreDebtFree(t *testing.T) {
	in := ScoreInput{
		Snapshot: models.FinancialSnapshot{
			NetWorth:       5000,
			TotalAssets:    5000,
			SavingsBalance: 2000,
		},
		PreviousNetWorth: 4000,
		LoginStreak:      30,
		Goals: []models.Goal{
			{CurrentAmount: 90, TargetAmount: 100, Status: "active"},
		},
	}

	report := CalculateScore(in)

	// 25 growth + 20 debt free + 20 neutral budget + 15 savings + 10 goals
	// + 10 activity.
	if report.TotalScore != 100 {
		t.Errorf("Expected total score 100, got %d", report.TotalScore)
	}
	if report.Rank != RankLegendary {
		t.Errorf("Expected rank Legendary, got %s", report.Rank)
	}
	if report.Metrics.BudgetHealth != 50 {
		t.Errorf("Expected neutral budget health 50, got %v", report.Metrics.BudgetHealth)
	}
}

func TestCalculateScoreWorstCase(t *testing.T) {
	in := ScoreInput{
		Snapshot: models.FinancialSnapshot{
			NetWorth:    -1000,
			TotalAssets: 100,
			TotalDebts:  1100,
		},
		PreviousNetWorth: 500,
		Budgets: []models.BudgetCategory{
			{Budget: 100, Spent: 300},
		},
	}

	report := CalculateScore(in)

	// 0 growth + 5 debt + 5 budget + 4 savings + 3 goals + 3 activity.
	if report.TotalScore != 20 {
		t.Errorf("Expected total score 20, got %d", report.TotalScore)
	}
	if report.Rank != RankBeginner {
		t.Errorf("Expected rank Beginner, got %s", report.Rank)
	}
	if report.TotalScore < 0 || report.TotalScore > 100 {
		t.Errorf("Score out of bounds: %d", report.TotalScore)
	}
}

func TestCalculateScoreZeroAssetsWithDebt(t *testing.T) {
	in := ScoreInput{Snapshot: models.FinancialSnapshot{TotalDebts: 500}}

	report := CalculateScore(in)
	if report.Metrics.DebtRatio != 100 {
		t.Errorf("Expected debt ratio 100 with zero assets, got %v", report.Metrics.DebtRatio)
	}
	if report.Breakdown.DebtScore != 5 {
		t.Errorf("Expected debt score 5, got %d", report.Breakdown.DebtScore)
	}
}

func TestCalculateScoreEmptyInput(t *testing.T) {
	report := CalculateScore(ScoreInput{})

	if report.TotalScore < 0 || report.TotalScore > 100 {
		t.Errorf("Score out of bounds: %d", report.TotalScore)
	}
	if report.Rank == "" {
		t.Errorf("Expected a rank for empty input")
	}
}
