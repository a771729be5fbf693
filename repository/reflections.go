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

type ReflectionsRepo struct {
	MongoCollection *mongo.Collection
}

func GetReflectionsRepo(client *mongo.Client) *ReflectionsRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "planner")
	collectionName := utils.GetEnvAsString("REFLECTIONS_COLLECTION", "reflections")
	return &ReflectionsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *ReflectionsRepo) CreateReflection(ctx context.Context, reflection *model.Reflection) error {
	if reflection.UserID == "" {
		return errors.New("user ID is required")
	}
	_, err := r.MongoCollection.InsertOne(ctx, reflection)
	return err
}

func (r *ReflectionsRepo) GetReflectionByID(ctx context.Context, userID, reflectionID string) (*model.Reflection, error) {
	var reflection model.Reflection
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": reflectionID, "user_id": userID}).Decode(&reflection)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reflection, nil
}

func (r *ReflectionsRepo) GetUserReflections(ctx context.Context, userID string) ([]*model.Reflection, error) {
	cursor, err := r.MongoCollection.Find(ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reflections []*model.Reflection
	if err = cursor.All(ctx, &reflections); err != nil {
		return nil, err
	}
	return reflections, nil
}

func (r *ReflectionsRepo) GetByClass(ctx context.Context, userID, classID string) ([]*model.Reflection, error) {
	cursor, err := r.MongoCollection.Find(ctx,
		bson.M{"user_id": userID, "class_id": classID},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reflections []*model.Reflection
	if err = cursor.All(ctx, &reflections); err != nil {
		return nil, err
	}
	return reflections, nil
}

func (r *ReflectionsRepo) UpdateReflection(ctx context.Context, reflectionID, userID string, reflection *model.Reflection) error {
	filter := bson.M{"_id": reflectionID, "user_id": userID}
	update := bson.M{"$set": bson.M{
		"title":      reflection.Title,
		"content":    reflection.Content,
		"mood":       reflection.Mood,
		"tags":       reflection.Tags,
		"class_id":   reflection.ClassID,
		"date":       reflection.Date,
		"updated_at": time.Now(),
	}}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("reflection not found")
	}
	return nil
}

func (r *ReflectionsRepo) DeleteReflection(ctx context.Context, reflectionID, userID string) error {
	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": reflectionID, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("reflection not found")
	}
	return nil
}
