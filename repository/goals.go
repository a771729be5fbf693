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

type GoalsRepo struct {
	MongoCollection *mongo.Collection
}

func GetGoalsRepo(client *mongo.Client) *GoalsRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "planner")
	collectionName := utils.GetEnvAsString("GOALS_COLLECTION", "goals")
	return &GoalsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *GoalsRepo) CreateGoal(ctx context.Context, goal *model.Goal) error {
	if goal.UserID == "" {
		return errors.New("user ID is required")
	}
	_, err := r.MongoCollection.InsertOne(ctx, goal)
	return err
}

func (r *GoalsRepo) GetGoalByID(ctx context.Context, userID, goalID string) (*model.Goal, error) {
	var goal model.Goal
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": goalID, "user_id": userID}).Decode(&goal)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *GoalsRepo) GetUserGoals(ctx context.Context, userID string) ([]*model.Goal, error) {
	cursor, err := r.MongoCollection.Find(ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var goals []*model.Goal
	if err = cursor.All(ctx, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *GoalsRepo) UpdateGoal(ctx context.Context, goalID, userID string, goal *model.Goal) error {
	filter := bson.M{"_id": goalID, "user_id": userID}
	update := bson.M{"$set": bson.M{
		"title":        goal.Title,
		"description":  goal.Description,
		"priority":     goal.Priority,
		"target_date":  goal.TargetDate,
		"complete":     goal.Complete,
		"completed_at": goal.CompletedAt,
		"updated_at":   time.Now(),
	}}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("goal not found")
	}
	return nil
}

func (r *GoalsRepo) DeleteGoal(ctx context.Context, goalID, userID string) error {
	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": goalID, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("goal not found")
	}
	return nil
}
