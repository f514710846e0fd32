package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Asset types that count toward the savings balance.
const (
	AssetCash       = "cash"
	AssetInvestment = "investment"
)

// Transaction types as recorded by the ledger.
const (
	TransactionExpense = "expense"
	TransactionIncome  = "income"
)

// Asset is a single asset record from the ledger.
type Asset struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	Name      string             `bson:"name" json:"name"`
	Type      string             `bson:"type" json:"type"`
	Value     float64            `bson:"value" json:"value"`
}

// Debt is a single liability record from the ledger.
type Debt struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserEmail          string             `bson:"userEmail" json:"userEmail"`
	Name               string             `bson:"name" json:"name"`
	OutstandingBalance float64            `bson:"outstandingBalance" json:"outstandingBalance"`
}

// Transaction is a single ledger movement.
type Transaction struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	Value     float64            `bson:"value" json:"value"`
	Type      string             `bson:"type" json:"type"`
	Category  string             `bson:"category,omitempty" json:"category,omitempty"`
	Date      time.Time          `bson:"date" json:"date"`
}

// BudgetCategory is a budget envelope with its accumulated spend.
type BudgetCategory struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	Name      string             `bson:"name" json:"name"`
	Budget    float64            `bson:"budget" json:"budget"`
	Spent     float64            `bson:"spent" json:"spent"`
}

// Goal is a savings goal tracked by the ledger.
type Goal struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserEmail     string             `bson:"userEmail" json:"userEmail"`
	Name          string             `bson:"name" json:"name"`
	CurrentAmount float64            `bson:"currentAmount" json:"currentAmount"`
	TargetAmount  float64            `bson:"targetAmount" json:"targetAmount"`
	Status        string             `bson:"status" json:"status"`
}

// FinancialSnapshot is the derived view of a user's ledger for one
// evaluation pass. It is recomputed every pass and never persisted.
type FinancialSnapshot struct {
	NetWorth               float64 `json:"netWorth"`
	TotalAssets            float64 `json:"totalAssets"`
	TotalDebts             float64 `json:"totalDebts"`
	SavingsBalance         float64 `json:"savingsBalance"`
	TransactionCount       int     `json:"transactionCount"`
	RecentTransactionCount int     `json:"recentTransactionCount"`
}
