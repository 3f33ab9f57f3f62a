package documentRepo

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// StoredDocument is a document held by a MemoryStore.
type StoredDocument struct {
	ID         string
	Collection string
	Data       map[string]interface{}
}

// MemoryStore is an in-process DocumentStore for local development and tests.
// FailWith injects write faults.
type MemoryStore struct {
	mu   sync.Mutex
	docs []StoredDocument
	err  error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// FailWith makes subsequent writes and pings fail with err; nil restores normal behavior.
func (s *MemoryStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *MemoryStore) AddDocument(ctx context.Context, collectionPath string, data map[string]interface{}) (string, error) {
	if _, err := splitCollectionPath(collectionPath); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}

	id := uuid.New().String()
	s.docs = append(s.docs, StoredDocument{ID: id, Collection: collectionPath, Data: copyFields(data)})
	return id, nil
}

// Documents returns a snapshot of every stored document, in write order.
func (s *MemoryStore) Documents() []StoredDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]StoredDocument, len(s.docs))
	copy(out, s.docs)
	return out
}

// Collection returns the documents written under collectionPath.
func (s *MemoryStore) Collection(collectionPath string) []StoredDocument {
	var out []StoredDocument
	for _, d := range s.Documents() {
		if d.Collection == collectionPath {
			out = append(out, d)
		}
	}
	return out
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *MemoryStore) Close() error {
	return nil
}
