package services

import "coinquest/models"

// ScoreInput carries everything the performance score needs: one ledger
// snapshot plus the profile's activity counters.
type ScoreInput struct {
	Snapshot         models.FinancialSnapshot
	PreviousNetWorth float64
	LoginStreak      int
	Budgets          []models.BudgetCategory
	Goals            []models.Goal
}

// ScoreMetrics are the raw percentages behind each sub-score.
type ScoreMetrics struct {
	NetWorthGrowth     float64 `json:"net_worth_growth"`
	DebtRatio          float64 `json:"debt_ratio"`
	BudgetHealth       float64 `json:"budget_health"`
	SavingsRate        float64 `json:"savings_rate"`
	ActiveGoals        int     `json:"active_goals"`
	Streak             int     `json:"streak"`
	RecentTransactions int     `json:"recent_transactions"`
}

// ScoreBreakdown holds the six weighted sub-scores. Maxima: 25, 20, 20,
// 15, 10, 10 — the total is bounded to 0..100 by construction.
type ScoreBreakdown struct {
	NetWorthScore int `json:"net_worth_score"`
	DebtScore     int `json:"debt_score"`
	BudgetScore   int `json:"budget_score"`
	SavingsScore  int `json:"savings_score"`
	GoalScore     int `json:"goal_score"`
	ActivityScore int `json:"activity_score"`
}

// ScoreReport is the full performance score output.
type ScoreReport struct {
	TotalScore int            `json:"total_score"`
	Rank       string         `json:"rank"`
	Metrics    ScoreMetrics   `json:"metrics"`
	Breakdown  ScoreBreakdown `json:"breakdown"`
	Insights   []string       `json:"insights"`
}

// Performance ranks, highest first.
const (
	RankLegendary    = "Legendary"
	RankEpic         = "Epic"
	RankRare         = "Rare"
	RankIntermediate = "Intermediate"
	RankBeginner     = "Beginner"
)

// CalculateScore computes the 0..100 composite performance score. Pure;
// insights are a deterministic function of which band each dimension hit.
func CalculateScore(in ScoreInput) ScoreReport {
	snap := in.Snapshot
	insights := []string{}
	var breakdown ScoreBreakdown

	// Net worth growth (25 pts). Without a stored baseline, assume 5%
	// growth; a non-positive baseline reads as flat.
	previous := in.PreviousNetWorth
	if previous == 0 {
		previous = snap.NetWorth * 0.95
	}
	var growth float64
	if previous > 0 {
		growth = (snap.NetWorth - previous) / previous * 100
	}
	switch {
	case growth >= 10:
		breakdown.NetWorthScore = 25
	case growth >= 5:
		breakdown.NetWorthScore = 20
	case growth >= 2:
		breakdown.NetWorthScore = 15
	case growth >= 0:
		breakdown.NetWorthScore = 10
	default:
		breakdown.NetWorthScore = 0
	}
	if growth < 0 {
		insights = append(insights, "Your net worth shrank - review your spending")
	} else if growth >= 10 {
		insights = append(insights, "Exceptional net worth growth!")
	}

	// Debt management (20 pts).
	var debtRatio float64
	if snap.TotalDebts > 0 {
		if snap.TotalAssets > 0 {
			debtRatio = snap.TotalDebts / snap.TotalAssets * 100
		} else {
			debtRatio = 100
		}
	}
	switch {
	case snap.TotalDebts == 0:
		breakdown.DebtScore = 20
		insights = append(insights, "Debt free - excellent!")
	case debtRatio < 20:
		breakdown.DebtScore = 15
	case debtRatio <= 50:
		breakdown.DebtScore = 10
		insights = append(insights, "Focus on paying down debt to grow faster")
	default:
		breakdown.DebtScore = 5
		insights = append(insights, "High debt load - prioritize repayment")
	}

	// Budget health (20 pts). No budget configured reads as neutral 50%.
	var totalBudget, totalSpent float64
	for _, b := range in.Budgets {
		totalBudget += b.Budget
		totalSpent += b.Spent
	}
	budgetHealth := 50.0
	if totalBudget > 0 {
		budgetHealth = (totalBudget - totalSpent) / totalBudget * 100
	}
	switch {
	case budgetHealth >= 30:
		breakdown.BudgetScore = 20
		insights = append(insights, "Budget under control - you are on track!")
	case budgetHealth >= 10:
		breakdown.BudgetScore = 15
	case budgetHealth >= 0:
		breakdown.BudgetScore = 10
		insights = append(insights, "Tight budget - consider adjusting categories")
	default:
		breakdown.BudgetScore = 5
		insights = append(insights, "Budget blown - act now!")
	}

	// Savings rate (15 pts).
	var savingsRate float64
	if snap.TotalAssets > 0 {
		savingsRate = snap.SavingsBalance / snap.TotalAssets * 100
	}
	switch {
	case savingsRate >= 30:
		breakdown.SavingsScore = 15
	case savingsRate >= 20:
		breakdown.SavingsScore = 12
	case savingsRate >= 10:
		breakdown.SavingsScore = 8
		insights = append(insights, "Grow your emergency fund for more security")
	default:
		breakdown.SavingsScore = 4
		insights = append(insights, "Low reserves - prioritize an emergency fund")
	}

	// Goal progress (10 pts): average completion over active goals.
	var activeGoals int
	var progressSum float64
	for _, g := range in.Goals {
		if g.Status == "completed" || g.TargetAmount <= 0 {
			continue
		}
		activeGoals++
		progressSum += g.CurrentAmount / g.TargetAmount * 100
	}
	var avgProgress float64
	if activeGoals > 0 {
		avgProgress = progressSum / float64(activeGoals)
	}
	switch {
	case avgProgress >= 70:
		breakdown.GoalScore = 10
		insights = append(insights, "Almost there! Your goals are within reach")
	case avgProgress >= 40:
		breakdown.GoalScore = 7
	case avgProgress >= 20:
		breakdown.GoalScore = 5
	default:
		breakdown.GoalScore = 3
		if activeGoals == 0 {
			insights = append(insights, "Set financial goals to stay focused")
		}
	}

	// Activity and consistency (10 pts).
	switch {
	case in.LoginStreak >= 30:
		breakdown.ActivityScore = 10
	case in.LoginStreak >= 14:
		breakdown.ActivityScore = 7
	case in.LoginStreak >= 7:
		breakdown.ActivityScore = 5
	default:
		breakdown.ActivityScore = 3
	}
	if snap.RecentTransactionCount == 0 {
		insights = append(insights, "Log your transactions to stay in control")
	}

	total := breakdown.NetWorthScore + breakdown.DebtScore + breakdown.BudgetScore +
		breakdown.SavingsScore + breakdown.GoalScore + breakdown.ActivityScore

	rank := RankBeginner
	switch {
	case total >= 85:
		rank = RankLegendary
	case total >= 70:
		rank = RankEpic
	case total >= 50:
		rank = RankRare
	case total >= 30:
		rank = RankIntermediate
	}

	return ScoreReport{
		TotalScore: total,
		Rank:       rank,
		Metrics: ScoreMetrics{
			NetWorthGrowth:     growth,
			DebtRatio:          debtRatio,
			BudgetHealth:       budgetHealth,
			SavingsRate:        savingsRate,
			ActiveGoals:        activeGoals,
			Streak:             in.LoginStreak,
			RecentTransactions: snap.RecentTransactionCount,
		},
		Breakdown: breakdown,
		Insights:  insights,
	}
}
