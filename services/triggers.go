package services

import (
	"math"

	"coinquest/models"
)

// TriggerContext carries the per-pass inputs shared by every trigger
// evaluation. The snapshot is computed once per pass, never per mission.
type TriggerContext struct {
	Snapshot     models.FinancialSnapshot
	Profile      models.UserProgress
	Transactions []models.Transaction
}

// TriggerFunc computes a mission's current value and whether its target is
// satisfied.
type TriggerFunc func(m models.Mission, tc TriggerContext) (current float64, satisfied bool)

var triggers = map[models.VerificationKind]TriggerFunc{
	models.VerifyTransactionCount: func(m models.Mission, tc TriggerContext) (float64, bool) {
		v := float64(tc.Snapshot.TransactionCount)
		return v, v >= m.TargetValue
	},
	models.VerifySavingsBalance: func(m models.Mission, tc TriggerContext) (float64, bool) {
		v := tc.Snapshot.SavingsBalance
		return v, v >= m.TargetValue
	},
	models.VerifyNetWorth: func(m models.Mission, tc TriggerContext) (float64, bool) {
		v := tc.Snapshot.NetWorth
		return v, v >= m.TargetValue
	},
	models.VerifyDebtReduction:    debtReductionTrigger,
	models.VerifyLoginStreak:      loginStreakTrigger,
	models.VerifyFirstImport:      firstImportTrigger,
	models.VerifyCategorySpendCap: categorySpendCapTrigger,
}

// RegisterTrigger adds or replaces the evaluator for a verification kind.
// New mission kinds are additive; nothing else needs to change.
func RegisterTrigger(kind models.VerificationKind, fn TriggerFunc) {
	triggers[kind] = fn
}

// EvaluateTrigger dispatches to the registered evaluator for the mission's
// verification kind. ok is false for unknown kinds.
func EvaluateTrigger(m models.Mission, tc TriggerContext) (current float64, satisfied bool, ok bool) {
	fn, ok := triggers[m.VerificationKind]
	if !ok {
		return m.CurrentProgress, false, false
	}
	current, satisfied = fn(m, tc)
	return current, satisfied, true
}

// debtReductionTrigger measures percent reduction against the profile's
// debt baseline. A zero or missing baseline yields 0%, never a division
// error; with no baseline the current total debt is used, which also
// reads as 0% reduction.
func debtReductionTrigger(m models.Mission, tc TriggerContext) (float64, bool) {
	baseline := tc.Profile.PreviousDebtSnapshot
	if baseline == 0 {
		baseline = tc.Snapshot.TotalDebts
	}
	var percent float64
	if baseline > 0 {
		percent = (baseline - tc.Snapshot.TotalDebts) / baseline * 100
	}
	return percent, percent >= m.TargetValue
}

func loginStreakTrigger(m models.Mission, tc TriggerContext) (float64, bool) {
	v := float64(tc.Profile.LoginStreak)
	return v, v >= m.TargetValue
}

func firstImportTrigger(m models.Mission, tc TriggerContext) (float64, bool) {
	var v float64
	if tc.Snapshot.TransactionCount > 0 {
		v = 1
	}
	return v, v >= m.TargetValue
}

// categorySpendCapTrigger is inverted: satisfied means spending in the
// configured category stayed at or under the cap.
func categorySpendCapTrigger(m models.Mission, tc TriggerContext) (float64, bool) {
	var spent float64
	for _, t := range tc.Transactions {
		if t.Type == models.TransactionExpense && t.Category == m.Category {
			spent += math.Abs(t.Value)
		}
	}
	return spent, spent <= m.TargetValue
}
