package documentRepo

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// FirestoreStore implements DocumentStore on a Cloud Firestore database.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore wraps a Firestore client. The store takes ownership of the client.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) AddDocument(ctx context.Context, collectionPath string, data map[string]interface{}) (string, error) {
	segments, err := splitCollectionPath(collectionPath)
	if err != nil {
		return "", err
	}
	coll := s.client.Collection(strings.Join(segments, "/"))
	if coll == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidCollectionPath, collectionPath)
	}

	ref, _, err := coll.Add(ctx, data)
	if err != nil {
		return "", fmt.Errorf("failed to add document to %s: %w", collectionPath, err)
	}
	return ref.ID, nil
}

// Ping lists at most one root collection; an empty database is still reachable.
func (s *FirestoreStore) Ping(ctx context.Context) error {
	_, err := s.client.Collections(ctx).Next()
	if err != nil && err != iterator.Done {
		return fmt.Errorf("firestore ping failed: %w", err)
	}
	return nil
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}
