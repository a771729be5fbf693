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

type WarningsRepo struct {
	MongoCollection *mongo.Collection
}

func GetWarningsRepo(client *mongo.Client) *WarningsRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "planner")
	collectionName := utils.GetEnvAsString("WARNINGS_COLLECTION", "warnings")
	return &WarningsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// CreateWarning inserts a warning. The unique (user, assignment, type,
// day) index makes the lookup-then-insert dance in the risk engine safe
// against concurrent writers: the loser of a race gets a duplicate-key
// error instead of a duplicate warning.
func (r *WarningsRepo) CreateWarning(ctx context.Context, warning *model.Warning) error {
	if warning.UserID == "" {
		return errors.New("user ID is required")
	}
	_, err := r.MongoCollection.InsertOne(ctx, warning)
	return err
}

func (r *WarningsRepo) ExistsForAssignment(ctx context.Context, userID, assignmentID string, wtype model.WarningType, day string) (bool, error) {
	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{
		"user_id":       userID,
		"assignment_id": assignmentID,
		"type":          wtype,
		"day":           day,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *WarningsRepo) ExistsForDay(ctx context.Context, userID string, wtype model.WarningType, day string) (bool, error) {
	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{
		"user_id": userID,
		"type":    wtype,
		"day":     day,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *WarningsRepo) GetUserWarnings(ctx context.Context, userID string, unreadOnly bool) ([]*model.Warning, error) {
	filter := bson.M{"user_id": userID}
	if unreadOnly {
		filter["read"] = false
	}

	cursor, err := r.MongoCollection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var warnings []*model.Warning
	if err = cursor.All(ctx, &warnings); err != nil {
		return nil, err
	}
	return warnings, nil
}

func (r *WarningsRepo) MarkRead(ctx context.Context, warningID, userID string) error {
	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": warningID, "user_id": userID},
		bson.M{"$set": bson.M{"read": true, "read_at": time.Now()}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("warning not found")
	}
	return nil
}

func (r *WarningsRepo) CountUnread(ctx context.Context, userID string) (int, error) {
	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{
		"user_id": userID,
		"read":    false,
	})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
