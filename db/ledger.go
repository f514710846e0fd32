package db

import (
	"context"
	"fmt"

	"coinquest/models"

	"go.mongodb.org/mongo-driver/bson"
)

// LedgerReader reads a user's raw financial records from MongoDB. It is
// the engine's view of the ledger subsystem; writes belong to the import
// and transaction services, not to this package.
type LedgerReader struct{}

// Assets returns all asset records for a user.
func (LedgerReader) Assets(ctx context.Context, email string) ([]models.Asset, error) {
	cursor, err := GetCollection(CollectionAssets).Find(ctx, bson.M{"userEmail": email})
	if err != nil {
		return nil, fmt.Errorf("find assets: %w", err)
	}
	defer cursor.Close(ctx)

	var assets []models.Asset
	if err := cursor.All(ctx, &assets); err != nil {
		return nil, fmt.Errorf("decode assets: %w", err)
	}
	return assets, nil
}

// Debts returns all liability records for a user.
func (LedgerReader) Debts(ctx context.Context, email string) ([]models.Debt, error) {
	cursor, err := GetCollection(CollectionDebts).Find(ctx, bson.M{"userEmail": email})
	if err != nil {
		return nil, fmt.Errorf("find debts: %w", err)
	}
	defer cursor.Close(ctx)

	var debts []models.Debt
	if err := cursor.All(ctx, &debts); err != nil {
		return nil, fmt.Errorf("decode debts: %w", err)
	}
	return debts, nil
}

// Transactions returns all ledger movements for a user.
func (LedgerReader) Transactions(ctx context.Context, email string) ([]models.Transaction, error) {
	cursor, err := GetCollection(CollectionTransactions).Find(ctx, bson.M{"userEmail": email})
	if err != nil {
		return nil, fmt.Errorf("find transactions: %w", err)
	}
	defer cursor.Close(ctx)

	var transactions []models.Transaction
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}
	return transactions, nil
}

// BudgetCategories returns the user's budget envelopes.
func (LedgerReader) BudgetCategories(ctx context.Context, email string) ([]models.BudgetCategory, error) {
	cursor, err := GetCollection(CollectionBudgets).Find(ctx, bson.M{"userEmail": email})
	if err != nil {
		return nil, fmt.Errorf("find budget categories: %w", err)
	}
	defer cursor.Close(ctx)

	var budgets []models.BudgetCategory
	if err := cursor.All(ctx, &budgets); err != nil {
		return nil, fmt.Errorf("decode budget categories: %w", err)
	}
	return budgets, nil
}

// Goals returns the user's savings goals.
func (LedgerReader) Goals(ctx context.Context, email string) ([]models.Goal, error) {
	cursor, err := GetCollection(CollectionGoals).Find(ctx, bson.M{"userEmail": email})
	if err != nil {
		return nil, fmt.Errorf("find goals: %w", err)
	}
	defer cursor.Close(ctx)

	var goals []models.Goal
	if err := cursor.All(ctx, &goals); err != nil {
		return nil, fmt.Errorf("decode goals: %w", err)
	}
	return goals, nil
}
