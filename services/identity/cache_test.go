package identity

import (
	"context"
	"os"
	"testing"
	"time"

	"bookingbridge/models"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingVerifier struct {
	calls int
	id    *models.Identity
	err   error
}

func (c *countingVerifier) Verify(context.Context, string) (*models.Identity, error) {
	c.calls++
	return c.id, c.err
}

func TestCacheTTL(t *testing.T) {
	now := time.Now()
	assert.Equal(t, 10*time.Minute, cacheTTL(10*time.Minute, time.Time{}, now))
	assert.Equal(t, 10*time.Minute, cacheTTL(10*time.Minute, now.Add(time.Hour), now))
	assert.Equal(t, 2*time.Minute, cacheTTL(10*time.Minute, now.Add(2*time.Minute), now))
	assert.True(t, cacheTTL(10*time.Minute, now.Add(-time.Minute), now) < 0)
}

func TestCachedVerifierWithoutCache(t *testing.T) {
	next := &countingVerifier{id: &models.Identity{ID: "u123"}}
	v := NewCachedVerifier(next, nil, time.Minute, zap.NewNop())

	for i := 0; i < 2; i++ {
		id, err := v.Verify(context.Background(), "token")
		require.NoError(t, err)
		assert.Equal(t, "u123", id.ID)
	}
	assert.Equal(t, 2, next.calls)
}

func TestCachedVerifierWithRedis(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	token := "token-" + time.Now().Format(time.RFC3339Nano)
	defer client.Del(ctx, AuthCachePrefix+HashToken(token))

	next := &countingVerifier{id: &models.Identity{ID: "u123", ExpiresAt: time.Now().Add(time.Hour)}}
	v := NewCachedVerifier(next, client, time.Minute, zap.NewNop())

	for i := 0; i < 3; i++ {
		id, err := v.Verify(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "u123", id.ID)
	}
	assert.Equal(t, 1, next.calls)
}

func TestHashToken(t *testing.T) {
	assert.Len(t, HashToken("abc"), 64)
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
}
