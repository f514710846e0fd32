package services

import (
	"time"

	"coinquest/models"
)

// recentWindow is the trailing window counted as recent activity.
const recentWindow = 7 * 24 * time.Hour

// Aggregate folds raw ledger records into the derived snapshot used by one
// evaluation pass. Pure: no I/O, safe on nil slices, zero-valued fields
// contribute zero.
func Aggregate(assets []models.Asset, debts []models.Debt, transactions []models.Transaction, now time.Time) models.FinancialSnapshot {
	var snap models.FinancialSnapshot

	for _, a := range assets {
		snap.TotalAssets += a.Value
		if a.Type == models.AssetCash || a.Type == models.AssetInvestment {
			snap.SavingsBalance += a.Value
		}
	}
	for _, d := range debts {
		snap.TotalDebts += d.OutstandingBalance
	}
	snap.NetWorth = snap.TotalAssets - snap.TotalDebts

	snap.TransactionCount = len(transactions)
	cutoff := now.Add(-recentWindow)
	for _, t := range transactions {
		if !t.Date.Before(cutoff) {
			snap.RecentTransactionCount++
		}
	}
	return snap
}
