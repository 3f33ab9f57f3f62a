package documentRepo

import (
	"context"
	"errors"
)

// ErrInvalidCollectionPath is returned for paths that do not name a collection.
var ErrInvalidCollectionPath = errors.New("invalid collection path")

// DocumentStore is a schemaless document database that assigns an ID to every added document.
type DocumentStore interface {
	// AddDocument writes data as a new document under collectionPath and returns its store-assigned ID.
	AddDocument(ctx context.Context, collectionPath string, data map[string]interface{}) (string, error)
	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
	// Close releases the underlying client.
	Close() error
}
