package db

import (
	"context"
	"time"

	"coinquest/models"
	"coinquest/services"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is the MongoDB-backed progression store. Reward application uses a
// conditional FindOneAndUpdate on the mission status so a mission can only
// ever pay out once, no matter how many passes race.
type Store struct{}

// Profile loads the user's progression record.
func (Store) Profile(ctx context.Context, email string) (models.UserProgress, error) {
	var p models.UserProgress
	err := GetCollection(CollectionProgress).FindOne(ctx, bson.M{"email": email}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return p, services.ErrProfileNotFound
	}
	return p, err
}

// UpsertProfile writes the full progression record, creating it if needed.
func (Store) UpsertProfile(ctx context.Context, p models.UserProgress) error {
	p.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := GetCollection(CollectionProgress).ReplaceOne(ctx, bson.M{"email": p.Email}, p, opts)
	return err
}

// Missions returns all of a user's missions.
func (Store) Missions(ctx context.Context, email string) ([]models.Mission, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "tier", Value: 1}, {Key: "orderIndex", Value: 1}})
	cursor, err := GetCollection(CollectionMissions).Find(ctx, bson.M{"userEmail": email}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var missions []models.Mission
	if err := cursor.All(ctx, &missions); err != nil {
		return nil, err
	}
	return missions, nil
}

// InsertMissions inserts a generated ladder.
func (Store) InsertMissions(ctx context.Context, missions []models.Mission) error {
	if len(missions) == 0 {
		return nil
	}
	docs := make([]interface{}, len(missions))
	for i, m := range missions {
		docs[i] = m
	}
	_, err := GetCollection(CollectionMissions).InsertMany(ctx, docs)
	return err
}

// SaveProgress writes a mission's current progress without touching status.
func (Store) SaveProgress(ctx context.Context, id primitive.ObjectID, current float64) error {
	_, err := GetCollection(CollectionMissions).UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"currentProgress": current},
	})
	return err
}

// ApplyReward transitions a mission to completed and applies its reward to
// the profile as one transaction. The mission update is filtered on status
// still being active; a zero match means another pass got there first and
// the transaction returns ErrRewardConflict without writing anything. The
// profile is re-read and the leveling recomputed inside the transaction, so
// racing passes serialize on the profile document instead of overwriting
// each other's grants with values computed from a stale read.
func (Store) ApplyReward(ctx context.Context, id primitive.ObjectID, progress float64, completedAt time.Time, email string, reward services.MissionReward) (models.UserProgress, bool, error) {
	session, err := MongoClient.StartSession()
	if err != nil {
		return models.UserProgress{}, false, err
	}
	defer session.EndSession(ctx)

	var next models.UserProgress
	var leveled bool
	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res := GetCollection(CollectionMissions).FindOneAndUpdate(sc,
			bson.M{"_id": id, "status": models.MissionActive},
			bson.M{"$set": bson.M{
				"status":          models.MissionCompleted,
				"currentProgress": progress,
				"completedAt":     completedAt,
			}},
		)
		if err := res.Err(); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, services.ErrRewardConflict
			}
			return nil, err
		}

		var p models.UserProgress
		if err := GetCollection(CollectionProgress).FindOne(sc, bson.M{"email": email}).Decode(&p); err != nil {
			return nil, err
		}
		next, leveled = services.ApplyLeveling(p, reward.XP, reward.Gold)
		next.PreviousDebtSnapshot = reward.DebtSnapshot
		next.UpdatedAt = time.Now()

		if _, err := GetCollection(CollectionProgress).ReplaceOne(sc, bson.M{"email": email}, next); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		return models.UserProgress{}, false, err
	}
	return next, leveled, nil
}

// DeleteMissions removes all of a user's missions and reports how many.
func (Store) DeleteMissions(ctx context.Context, email string) (int64, error) {
	res, err := GetCollection(CollectionMissions).DeleteMany(ctx, bson.M{"userEmail": email})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// CountMissions counts a user's missions.
func (Store) CountMissions(ctx context.Context, email string) (int64, error) {
	return GetCollection(CollectionMissions).CountDocuments(ctx, bson.M{"userEmail": email})
}

// ActiveSeason returns the active season, or nil when none exists.
func (Store) ActiveSeason(ctx context.Context) (*models.Season, error) {
	var season models.Season
	err := GetCollection(CollectionSeasons).FindOne(ctx, bson.M{"status": models.SeasonActive}).Decode(&season)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &season, nil
}

// InsertSeason stores a new season.
func (Store) InsertSeason(ctx context.Context, season models.Season) error {
	_, err := GetCollection(CollectionSeasons).InsertOne(ctx, season)
	return err
}

// EndSeason marks a season as ended.
func (Store) EndSeason(ctx context.Context, id primitive.ObjectID) error {
	_, err := GetCollection(CollectionSeasons).UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"status": models.SeasonEnded},
	})
	return err
}

// TopProfiles returns the highest-ranked profiles by lifetime XP.
func (Store) TopProfiles(ctx context.Context, limit int) ([]models.UserProgress, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "totalXp", Value: -1}}).SetLimit(int64(limit))
	cursor, err := GetCollection(CollectionProgress).Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []models.UserProgress
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}
