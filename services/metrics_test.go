package services

import (
	"testing"
	"time"

	"coinquest/models"
)

func TestAggregate(t *testing.T) {
	now := time.Now()
	assets := []models.Asset{
		{Type: models.AssetCash, Value: 1000},
		{Type: models.AssetInvestment, Value: 2000},
		{Type: "property", Value: 5000},
	}
	debts := []models.Debt{
		{OutstandingBalance: 1500},
		{OutstandingBalance: 500},
	}
	transactions := []models.Transaction{
		{Date: now.AddDate(0, 0, -1)},
		{Date: now.AddDate(0, 0, -3)},
		{Date: now.AddDate(0, 0, -30)},
	}

	snap := Aggregate(assets, debts, transactions, now)

	if snap.TotalAssets != 8000 {
		t.Errorf("Expected total assets 8000, got %v", snap.TotalAssets)
	}
	if snap.TotalDebts != 2000 {
		t.Errorf("Expected total debts 2000, got %v", snap.TotalDebts)
	}
	if snap.NetWorth != 6000 {
		t.Errorf("Expected net worth 6000, got %v", snap.NetWorth)
	}
	// Only cash and investment count toward savings.
	if snap.SavingsBalance != 3000 {
		t.Errorf("Expected savings balance 3000, got %v", snap.SavingsBalance)
	}
	if snap.TransactionCount != 3 {
		t.Errorf("Expected 3 transactions, got %d", snap.TransactionCount)
	}
	if snap.RecentTransactionCount != 2 {
		t.Errorf("Expected 2 recent transactions, got %d", snap.RecentTransactionCount)
	}
}

func TestAggregateEmptyLedger(t *testing.T) {
	snap := Aggregate(nil, nil, nil, time.Now())

	if snap.NetWorth != 0 || snap.TotalAssets != 0 || snap.TotalDebts != 0 {
		t.Errorf("Expected zero snapshot, got %+v", snap)
	}
	if snap.TransactionCount != 0 || snap.RecentTransactionCount != 0 {
		t.Errorf("Expected zero transaction counts, got %+v", snap)
	}
}
