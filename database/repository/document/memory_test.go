package documentRepo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreAddDocument(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	data := map[string]interface{}{"service": "massage"}
	id1, err := s.AddDocument(ctx, "bookings", data)
	require.NoError(t, err)
	id2, err := s.AddDocument(ctx, "bookings", data)
	require.NoError(t, err)

	assert.NotEmpty(t, id1)
	assert.NotEqual(t, id1, id2)
	require.Len(t, s.Collection("bookings"), 2)

	// The store keeps its own copy.
	data["service"] = "changed"
	assert.Equal(t, "massage", s.Documents()[0].Data["service"])
}

func TestMemoryStoreFailWith(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	boom := errors.New("permission denied")

	s.FailWith(boom)
	_, err := s.AddDocument(ctx, "bookings", map[string]interface{}{})
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, s.Ping(ctx), boom)
	assert.Empty(t, s.Documents())

	s.FailWith(nil)
	_, err = s.AddDocument(ctx, "bookings", map[string]interface{}{})
	assert.NoError(t, err)
}

func TestMemoryStoreRejectsDocumentPath(t *testing.T) {
	_, err := NewMemoryStore().AddDocument(context.Background(), "users/u123", map[string]interface{}{})
	assert.ErrorIs(t, err, ErrInvalidCollectionPath)
}

func TestMemoryStoreCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewMemoryStore()
	_, err := s.AddDocument(ctx, "bookings", map[string]interface{}{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, s.Documents())
}
