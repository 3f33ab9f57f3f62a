package documentRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var documentsSchema = []string{
	`CREATE TABLE IF NOT EXISTS documents (
		id         UUID PRIMARY KEY,
		collection TEXT        NOT NULL,
		data       JSONB       NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS documents_collection_idx ON documents (collection, created_at)`,
}

// PostgresStore implements DocumentStore on a single JSONB table keyed by collection path.
type PostgresStore struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

// NewPostgresStore creates the documents table if needed. The store takes ownership of the pool.
func NewPostgresStore(ctx context.Context, db *pgxpool.Pool) (*PostgresStore, error) {
	for _, stmt := range documentsSchema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return nil, fmt.Errorf("create documents schema: %w", err)
		}
	}
	return &PostgresStore{db: db, timeout: 5 * time.Second}, nil
}

func (s *PostgresStore) AddDocument(ctx context.Context, collectionPath string, data map[string]interface{}) (string, error) {
	if _, err := splitCollectionPath(collectionPath); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	id := uuid.New().String()
	if _, err := s.db.Exec(ctx,
		`INSERT INTO documents (id, collection, data) VALUES ($1, $2, $3)`,
		id, collectionPath, data,
	); err != nil {
		return "", fmt.Errorf("insert document into %s: %w", collectionPath, err)
	}
	return id, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *PostgresStore) Close() error {
	s.db.Close()
	return nil
}
