package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// TokenStore caches access tokens keyed by credential fingerprint.
// Implementations must be safe for concurrent use.
type TokenStore interface {
	// Get returns the token for key. ok is false on a miss or an expired entry.
	Get(ctx context.Context, key string) (token Token, ok bool, err error)
	// Set stores token until its expiry. Tokens without a future expiry are not stored.
	Set(ctx context.Context, key string, token Token) error
	Delete(ctx context.Context, key string) error
}

// subset of the Redis client used by RedisStore.
type CacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}
