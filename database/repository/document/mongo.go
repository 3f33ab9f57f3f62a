package documentRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoStore implements DocumentStore on a MongoDB database. Nested collection
// paths are flattened into dotted collection names.
type MongoStore struct {
	client  *mongo.Client
	db      *mongo.Database
	timeout time.Duration
}

// NewMongoStore creates a store on the named database. The store takes ownership of the client.
func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{
		client:  client,
		db:      client.Database(database),
		timeout: 5 * time.Second,
	}
}

func (s *MongoStore) AddDocument(ctx context.Context, collectionPath string, data map[string]interface{}) (string, error) {
	name, err := flatCollectionName(collectionPath)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	id := uuid.New().String()
	doc := copyFields(data)
	doc["_id"] = id

	if _, err := s.db.Collection(name).InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("failed to add document to %s: %w", name, err)
	}
	return id, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}
