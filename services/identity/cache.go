package identity

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"bookingbridge/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const AuthCachePrefix = "authCache:"

// CachedVerifier remembers verified tokens in Redis so repeated calls with the
// same token skip signature verification. Cache errors fall back to the wrapped verifier.
type CachedVerifier struct {
	next   Verifier
	cache  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedVerifier wraps next. A nil cache disables caching.
func NewCachedVerifier(next Verifier, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedVerifier {
	return &CachedVerifier{next: next, cache: cache, ttl: ttl, logger: logger}
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// cacheTTL never lets an entry outlive the token it was derived from.
func cacheTTL(ttl time.Duration, expiresAt, now time.Time) time.Duration {
	if expiresAt.IsZero() {
		return ttl
	}
	remaining := expiresAt.Sub(now)
	if remaining < ttl {
		return remaining
	}
	return ttl
}

func (v *CachedVerifier) Verify(ctx context.Context, token string) (*models.Identity, error) {
	if v.cache == nil {
		return v.next.Verify(ctx, token)
	}

	key := AuthCachePrefix + HashToken(token)
	cached, err := v.cache.Get(ctx, key).Result()
	switch {
	case err == nil:
		var id models.Identity
		if jsonErr := json.Unmarshal([]byte(cached), &id); jsonErr == nil && id.ID != "" {
			if id.ExpiresAt.IsZero() || time.Now().Before(id.ExpiresAt) {
				return &id, nil
			}
		}
	case err != redis.Nil:
		v.logger.Warn("auth cache read failed, verifying token directly", zap.Error(err))
	}

	id, err := v.next.Verify(ctx, token)
	if err != nil {
		return nil, err
	}

	ttl := cacheTTL(v.ttl, id.ExpiresAt, time.Now())
	if ttl <= 0 {
		return id, nil
	}
	data, err := json.Marshal(id)
	if err != nil {
		return id, nil
	}
	if err := v.cache.Set(ctx, key, data, ttl).Err(); err != nil {
		v.logger.Warn("auth cache write failed", zap.Error(err))
	}
	return id, nil
}
