package database

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// connectTimeout bounds the initial connect + ping at startup.
const connectTimeout = 10 * time.Second

// Open initializes the Mongo client from the environment.
// MONGO_URL falls back to a local instance when unset.
func Open() (*mongo.Client, error) {
	uri := os.Getenv("MONGO_URL")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	// Delegate the rest of the setup to the generic function
	return OpenWithURI(uri)
}

// OpenWithURI connects to Mongo at the given URI and verifies the
// connection with a ping before returning the client.
func OpenWithURI(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Printf("Error connecting to Mongo at %s: %v", uri, err)
		return nil, err
	}

	log.Println("Mongo connection established successfully")
	return client, nil
}

// Name returns the database name from the environment, defaulting to the
// application database.
func Name() string {
	name := os.Getenv("MONGO_DB")
	if name == "" {
		name = "minimart"
	}
	return name
}

// Close disconnects the client, waiting at most the connect timeout.
func Close(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}
