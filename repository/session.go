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

type SessionRepo struct {
	MongoCollection *mongo.Collection
}

func GetSessionRepo(client *mongo.Client) *SessionRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "planner")
	collectionName := utils.GetEnvAsString("SESSION_COLLECTION", "sessions")
	return &SessionRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *SessionRepo) CreateSession(session *model.Session) error {
	if session.SessionID == "" || session.UserID == "" {
		return errors.New("session ID and user ID are required")
	}
	_, err := r.MongoCollection.InsertOne(context.Background(), session)
	return err
}

func (r *SessionRepo) GetSession(sessionID string) (*model.Session, error) {
	var session model.Session
	err := r.MongoCollection.FindOne(context.Background(),
		bson.M{"session_id": sessionID}).Decode(&session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepo) UpdateSession(session *model.Session) error {
	update := bson.M{"$set": bson.M{
		"last_activity_at": session.LastActivityAt,
		"is_active":        session.IsActive,
	}}

	result, err := r.MongoCollection.UpdateOne(context.Background(),
		bson.M{"session_id": session.SessionID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("session not found")
	}
	return nil
}

func (r *SessionRepo) DeleteSession(sessionID string) error {
	_, err := r.MongoCollection.DeleteOne(context.Background(),
		bson.M{"session_id": sessionID})
	return err
}

func (r *SessionRepo) GetUserActiveSessions(userID string) ([]*model.Session, error) {
	cursor, err := r.MongoCollection.Find(context.Background(),
		bson.M{"user_id": userID, "is_active": true},
		options.Find().SetSort(bson.D{{Key: "last_activity_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.Background())

	var sessions []*model.Session
	if err = cursor.All(context.Background(), &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *SessionRepo) CountActiveSessions(userID string) (int, error) {
	count, err := r.MongoCollection.CountDocuments(context.Background(),
		bson.M{"user_id": userID, "is_active": true})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// EndLeastActiveSession deactivates the session with the oldest activity
// timestamp, used when a user hits the active session limit.
func (r *SessionRepo) EndLeastActiveSession(userID string) error {
	var session model.Session
	err := r.MongoCollection.FindOne(context.Background(),
		bson.M{"user_id": userID, "is_active": true},
		options.FindOne().SetSort(bson.D{{Key: "last_activity_at", Value: 1}})).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	if err != nil {
		return err
	}

	session.IsActive = false
	return r.UpdateSession(&session)
}

func (r *SessionRepo) EndAllUserSessions(userID string) (int, error) {
	result, err := r.MongoCollection.UpdateMany(context.Background(),
		bson.M{"user_id": userID, "is_active": true},
		bson.M{"$set": bson.M{"is_active": false}})
	if err != nil {
		return 0, err
	}
	return int(result.ModifiedCount), nil
}
