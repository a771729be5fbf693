package repository

import (
	"context"
	"errors"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StudySessionsRepo struct {
	MongoCollection *mongo.Collection
}

func GetStudySessionsRepo(client *mongo.Client) *StudySessionsRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "planner")
	collectionName := utils.GetEnvAsString("STUDY_SESSIONS_COLLECTION", "study_sessions")
	return &StudySessionsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *StudySessionsRepo) CreateSession(ctx context.Context, session *model.StudySession) error {
	if session.UserID == "" {
		return errors.New("user ID is required")
	}
	_, err := r.MongoCollection.InsertOne(ctx, session)
	return err
}

func (r *StudySessionsRepo) GetUserSessions(ctx context.Context, userID string, limit int64) ([]*model.StudySession, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []*model.StudySession
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// GetInRange returns every session dated inside [from, to], any class.
func (r *StudySessionsRepo) GetInRange(ctx context.Context, userID string, from, to model.Date) ([]*model.StudySession, error) {
	filter := bson.M{
		"user_id": userID,
		"date": bson.M{
			"$gte": from.Time(),
			"$lte": to.Time(),
		},
	}

	cursor, err := r.MongoCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []*model.StudySession
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// SumByClass aggregates session count and total minutes for one class
// over [from, to]. An empty classID sums general (unassigned) study.
func (r *StudySessionsRepo) SumByClass(ctx context.Context, userID, classID string, from, to model.Date) (int, int, error) {
	match := bson.M{
		"user_id": userID,
		"date": bson.M{
			"$gte": from.Time(),
			"$lte": to.Time(),
		},
	}
	if classID == "" {
		match["class_id"] = bson.M{"$in": bson.A{nil, ""}}
	} else {
		match["class_id"] = classID
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":      nil,
			"sessions": bson.M{"$sum": 1},
			"minutes":  bson.M{"$sum": "$duration_minutes"},
		}}},
	}

	cursor, err := r.MongoCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, err
	}
	defer cursor.Close(ctx)

	var result []struct {
		Sessions int `bson:"sessions"`
		Minutes  int `bson:"minutes"`
	}
	if err = cursor.All(ctx, &result); err != nil {
		return 0, 0, err
	}
	if len(result) == 0 {
		return 0, 0, nil
	}
	return result[0].Sessions, result[0].Minutes, nil
}

// SumAll aggregates session count and total minutes across all classes.
func (r *StudySessionsRepo) SumAll(ctx context.Context, userID string, from, to model.Date) (int, int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"user_id": userID,
			"date": bson.M{
				"$gte": from.Time(),
				"$lte": to.Time(),
			},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":      nil,
			"sessions": bson.M{"$sum": 1},
			"minutes":  bson.M{"$sum": "$duration_minutes"},
		}}},
	}

	cursor, err := r.MongoCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, err
	}
	defer cursor.Close(ctx)

	var result []struct {
		Sessions int `bson:"sessions"`
		Minutes  int `bson:"minutes"`
	}
	if err = cursor.All(ctx, &result); err != nil {
		return 0, 0, err
	}
	if len(result) == 0 {
		return 0, 0, nil
	}
	return result[0].Sessions, result[0].Minutes, nil
}

func (r *StudySessionsRepo) DeleteSession(ctx context.Context, sessionID, userID string) error {
	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": sessionID, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("study session not found")
	}
	return nil
}
