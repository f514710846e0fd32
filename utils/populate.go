package utils

import (
	"context"
	"time"

	"coinquest/db"
	"coinquest/models"

	"go.mongodb.org/mongo-driver/bson"
)

// PopulateSampleData seeds a couple of demo progression profiles and a small
// set of ledger records so the engine has something to evaluate on a fresh
// database. It is a no-op when profiles already exist.
func PopulateSampleData() {
	collection := db.GetCollection(db.CollectionProgress)
	count, _ := collection.CountDocuments(context.Background(), bson.M{})
	if count > 0 {
		return
	}

	now := time.Now()
	profiles := []models.UserProgress{
		newSampleProfile("demo1@example.com", now),
		newSampleProfile("demo2@example.com", now),
	}

	var documents []interface{}
	for _, p := range profiles {
		documents = append(documents, p)
	}
	if _, err := collection.InsertMany(context.Background(), documents); err != nil {
		return
	}

	assets := []interface{}{
		models.Asset{UserEmail: "demo1@example.com", Name: "Checking", Type: models.AssetCash, Value: 1500},
		models.Asset{UserEmail: "demo1@example.com", Name: "Index fund", Type: models.AssetInvestment, Value: 3200},
	}
	db.GetCollection(db.CollectionAssets).InsertMany(context.Background(), assets)

	transactions := []interface{}{
		models.Transaction{UserEmail: "demo1@example.com", Type: models.TransactionIncome, Category: "Salary", Value: 2500, Date: now.AddDate(0, 0, -3)},
		models.Transaction{UserEmail: "demo1@example.com", Type: models.TransactionExpense, Category: "Dining", Value: -45, Date: now.AddDate(0, 0, -1)},
	}
	db.GetCollection(db.CollectionTransactions).InsertMany(context.Background(), transactions)
}

func newSampleProfile(email string, now time.Time) models.UserProgress {
	p := models.NewUserProgress(email)
	p.CreatedAt = now
	p.UpdatedAt = now
	return p
}
