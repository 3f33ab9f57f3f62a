package documentRepo

import (
	"context"
	"os"
	"testing"

	"bookingbridge/database"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests run against real backends and are skipped unless the matching
// environment variable points at one (e.g. a local emulator or container).

func exerciseStore(t *testing.T, s DocumentStore) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, s.Ping(ctx))

	booking := map[string]interface{}{
		"service":     "massage",
		"clientId":    "u123",
		"status":      "pending",
		"therapistId": nil,
	}
	id1, err := s.AddDocument(ctx, "users/u123/orders", booking)
	require.NoError(t, err)
	id2, err := s.AddDocument(ctx, "bookings", booking)
	require.NoError(t, err)

	assert.NotEmpty(t, id1)
	assert.NotEmpty(t, id2)
	assert.NotEqual(t, id1, id2)

	_, err = s.AddDocument(ctx, "users/u123", booking)
	assert.ErrorIs(t, err, ErrInvalidCollectionPath)
}

func TestFirestoreStore(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	client, err := firestore.NewClient(context.Background(), "demo-bookingbridge")
	require.NoError(t, err)
	s := NewFirestoreStore(client)
	defer s.Close()

	exerciseStore(t, s)
}

func TestMongoStore(t *testing.T) {
	url := os.Getenv("TEST_MONGO_URL")
	if url == "" {
		t.Skip("TEST_MONGO_URL not set")
	}
	client, err := database.ConnectMongo(context.Background(), url)
	require.NoError(t, err)
	s := NewMongoStore(client, "bookingbridge_test")
	defer s.Close()

	exerciseStore(t, s)
}

func TestPostgresStore(t *testing.T) {
	url := os.Getenv("TEST_POSTGRES_URL")
	if url == "" {
		t.Skip("TEST_POSTGRES_URL not set")
	}
	ctx := context.Background()
	pool, err := database.ConnectPostgres(ctx, url)
	require.NoError(t, err)
	s, err := NewPostgresStore(ctx, pool)
	require.NoError(t, err)
	defer s.Close()

	exerciseStore(t, s)
}
