package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupIndexes creates the planner's indexes. The warnings index is the
// important one: the unique (user_id, assignment_id, type, day) key is
// what makes warning generation idempotent per day even with concurrent
// writers, instead of relying on the check-then-insert in the engine.
func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	assignmentIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "due_date", Value: 1},
			},
			Options: options.Index().SetName("user_assignments_due"),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "class_id", Value: 1},
			},
			Options: options.Index().SetName("user_class_assignments"),
		},
	}

	studySessionIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "date", Value: -1},
			},
			Options: options.Index().SetName("user_sessions_date"),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "class_id", Value: 1},
				{Key: "date", Value: -1},
			},
			Options: options.Index().SetName("user_class_sessions_date"),
		},
	}

	warningIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "assignment_id", Value: 1},
				{Key: "type", Value: 1},
				{Key: "day", Value: 1},
			},
			Options: options.Index().
				SetName("warning_idempotence_key").
				SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "read", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("user_unread_warnings"),
		},
	}

	streakIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "type", Value: 1},
			},
			Options: options.Index().
				SetName("user_streak_type").
				SetUnique(true),
		},
	}

	settingsIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetName("user_settings").
				SetUnique(true),
		},
	}

	userIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "username", Value: 1}},
			Options: options.Index().
				SetName("username_unique").
				SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetName("email_unique").
				SetUnique(true),
		},
	}

	for collection, indexes := range map[string][]mongo.IndexModel{
		"assignments":    assignmentIndexes,
		"study_sessions": studySessionIndexes,
		"warnings":       warningIndexes,
		"streaks":        streakIndexes,
		"settings":       settingsIndexes,
		"users":          userIndexes,
	} {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", collection, err)
		}
	}

	log.Println("Successfully created all indexes")
	return nil
}
