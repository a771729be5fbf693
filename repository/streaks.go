package repository

import (
	"context"
	"errors"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StreaksRepo struct {
	MongoCollection *mongo.Collection
}

func GetStreaksRepo(client *mongo.Client) *StreaksRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "planner")
	collectionName := utils.GetEnvAsString("STREAKS_COLLECTION", "streaks")
	return &StreaksRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// GetStreak returns the streak record, or nil when the user has never
// logged the activity.
func (r *StreaksRepo) GetStreak(ctx context.Context, userID string, streakType model.StreakType) (*model.Streak, error) {
	filter := bson.M{"user_id": userID, "type": streakType}

	var streak model.Streak
	err := r.MongoCollection.FindOne(ctx, filter).Decode(&streak)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &streak, nil
}

func (r *StreaksRepo) UpsertStreak(ctx context.Context, streak *model.Streak) error {
	if streak.UserID == "" {
		return errors.New("user ID is required")
	}
	streak.UpdatedAt = time.Now()

	filter := bson.M{"user_id": streak.UserID, "type": streak.Type}
	update := bson.M{"$set": bson.M{
		"current_streak":     streak.CurrentStreak,
		"longest_streak":     streak.LongestStreak,
		"last_activity_date": streak.LastActivityDate,
		"updated_at":         streak.UpdatedAt,
	}}

	_, err := r.MongoCollection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}
