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

type AssignmentsRepo struct {
	MongoCollection *mongo.Collection
}

func GetAssignmentsRepo(client *mongo.Client) *AssignmentsRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "planner")
	collectionName := utils.GetEnvAsString("ASSIGNMENTS_COLLECTION", "assignments")
	return &AssignmentsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *AssignmentsRepo) CreateAssignment(ctx context.Context, assignment *model.Assignment) error {
	if assignment.UserID == "" {
		return errors.New("user ID is required")
	}
	_, err := r.MongoCollection.InsertOne(ctx, assignment)
	return err
}

func (r *AssignmentsRepo) GetAssignmentByID(ctx context.Context, userID, assignmentID string) (*model.Assignment, error) {
	filter := bson.M{"_id": assignmentID, "user_id": userID}

	var assignment model.Assignment
	err := r.MongoCollection.FindOne(ctx, filter).Decode(&assignment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *AssignmentsRepo) GetUserAssignments(ctx context.Context, userID string) ([]*model.Assignment, error) {
	cursor, err := r.MongoCollection.Find(ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assignments []*model.Assignment
	if err = cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// GetPendingInRange returns ungraded assignments due inside [from, to].
// This is the query feeding both the workload projection and the risk
// engine.
func (r *AssignmentsRepo) GetPendingInRange(ctx context.Context, userID string, from, to model.Date) ([]*model.Assignment, error) {
	filter := bson.M{
		"user_id": userID,
		"score":   bson.M{"$exists": false},
		"due_date": bson.M{
			"$gte": from.Time(),
			"$lte": to.Time(),
		},
	}

	cursor, err := r.MongoCollection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assignments []*model.Assignment
	if err = cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *AssignmentsRepo) GetGradedAssignments(ctx context.Context, userID string) ([]*model.Assignment, error) {
	filter := bson.M{
		"user_id": userID,
		"score":   bson.M{"$exists": true},
	}

	cursor, err := r.MongoCollection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "due_date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assignments []*model.Assignment
	if err = cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *AssignmentsRepo) UpdateAssignment(ctx context.Context, assignmentID, userID string, updates *model.Assignment) error {
	filter := bson.M{"_id": assignmentID, "user_id": userID}

	update := bson.M{"$set": bson.M{
		"name":       updates.Name,
		"class_id":   updates.ClassID,
		"class_name": updates.ClassName,
		"category":   updates.Category,
		"due_date":   updates.DueDate,
		"weight":     updates.Weight,
		"difficulty": updates.Difficulty,
		"updated_at": time.Now(),
	}}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("assignment not found")
	}
	return nil
}

// SetScore records a grade, which removes the assignment from every
// future projection.
func (r *AssignmentsRepo) SetScore(ctx context.Context, assignmentID, userID string, score float64, maxScore *float64) error {
	filter := bson.M{"_id": assignmentID, "user_id": userID}

	set := bson.M{
		"score":      score,
		"updated_at": time.Now(),
	}
	if maxScore != nil {
		set["max_score"] = *maxScore
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("assignment not found")
	}
	return nil
}

func (r *AssignmentsRepo) DeleteAssignment(ctx context.Context, assignmentID, userID string) error {
	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": assignmentID, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("assignment not found")
	}
	return nil
}

func (r *AssignmentsRepo) CountByGradedState(ctx context.Context, userID string) (pending int, graded int, err error) {
	pendingCount, err := r.MongoCollection.CountDocuments(ctx, bson.M{
		"user_id": userID,
		"score":   bson.M{"$exists": false},
	})
	if err != nil {
		return 0, 0, err
	}
	gradedCount, err := r.MongoCollection.CountDocuments(ctx, bson.M{
		"user_id": userID,
		"score":   bson.M{"$exists": true},
	})
	if err != nil {
		return 0, 0, err
	}
	return int(pendingCount), int(gradedCount), nil
}
