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

type SettingsRepo struct {
	MongoCollection *mongo.Collection
}

func GetSettingsRepo(client *mongo.Client) *SettingsRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "planner")
	collectionName := utils.GetEnvAsString("SETTINGS_COLLECTION", "settings")
	return &SettingsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// GetSettings returns the user's planner settings, falling back to
// defaults (4 hours per day, Monday through Friday) when none are stored
// or when stored fields are empty.
func (r *SettingsRepo) GetSettings(ctx context.Context, userID string) (*model.UserSettings, error) {
	var settings model.UserSettings
	err := r.MongoCollection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&settings)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.DefaultSettings(userID), nil
	}
	if err != nil {
		return nil, err
	}

	if settings.MaxStudyHoursPerDay <= 0 {
		settings.MaxStudyHoursPerDay = model.DefaultMaxStudyHoursPerDay
	}
	if len(settings.PreferredStudyDays) == 0 {
		settings.PreferredStudyDays = model.DefaultPreferredStudyDays()
	}
	return &settings, nil
}

func (r *SettingsRepo) UpsertSettings(ctx context.Context, settings *model.UserSettings) error {
	if settings.UserID == "" {
		return errors.New("user ID is required")
	}

	update := bson.M{"$set": bson.M{
		"max_study_hours_per_day": settings.MaxStudyHoursPerDay,
		"preferred_study_days":    settings.PreferredStudyDays,
		"updated_at":              time.Now(),
	}}

	_, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"user_id": settings.UserID}, update, options.Update().SetUpsert(true))
	return err
}
