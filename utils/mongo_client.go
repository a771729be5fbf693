package utils

import (
	"context"
	"log"
	"os"

	"main/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is the shared MongoDB client, initialized once at startup.
var MongoClient *mongo.Client

func InitMongoClient() {
	cfg := config.LoadDatabaseConfig()

	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetRetryWrites(cfg.RetryWrites)

	client, err := mongo.Connect(context.Background(), clientOptions)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}

	if err := client.Ping(context.Background(), nil); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Fatal("Failed to ping MongoDB:", err)
	}

	MongoClient = client
}
