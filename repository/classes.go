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

type ClassesRepo struct {
	MongoCollection *mongo.Collection
}

func GetClassesRepo(client *mongo.Client) *ClassesRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "planner")
	collectionName := utils.GetEnvAsString("CLASSES_COLLECTION", "classes")
	return &ClassesRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *ClassesRepo) CreateClass(ctx context.Context, class *model.Class) error {
	if class.UserID == "" {
		return errors.New("user ID is required")
	}
	_, err := r.MongoCollection.InsertOne(ctx, class)
	return err
}

func (r *ClassesRepo) GetClassByID(ctx context.Context, userID, classID string) (*model.Class, error) {
	var class model.Class
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": classID, "user_id": userID}).Decode(&class)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *ClassesRepo) GetUserClasses(ctx context.Context, userID string) ([]*model.Class, error) {
	cursor, err := r.MongoCollection.Find(ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var classes []*model.Class
	if err = cursor.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *ClassesRepo) UpdateClass(ctx context.Context, classID, userID string, updates *model.Class) error {
	filter := bson.M{"_id": classID, "user_id": userID}
	update := bson.M{"$set": bson.M{
		"name":         updates.Name,
		"code":         updates.Code,
		"instructor":   updates.Instructor,
		"color":        updates.Color,
		"credit_hours": updates.CreditHours,
		"updated_at":   time.Now(),
	}}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("class not found")
	}
	return nil
}

func (r *ClassesRepo) DeleteClass(ctx context.Context, classID, userID string) error {
	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": classID, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("class not found")
	}
	return nil
}

func (r *ClassesRepo) CountUserClasses(ctx context.Context, userID string) (int, error) {
	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
