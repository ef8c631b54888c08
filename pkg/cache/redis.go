package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"monnifyease/pkg/logger"

	"github.com/go-redis/redis/v8"
)

// RedisStore shares cached tokens between processes through Redis.
type RedisStore struct {
	client CacheClient
	log    *logger.Logger
	now    func() time.Time
}

// NewRedisStore wraps client. A nil log falls back to the global logger.
func NewRedisStore(client CacheClient, log *logger.Logger) *RedisStore {
	if log == nil {
		log = logger.Default()
	}
	return &RedisStore{client: client, log: log, now: time.Now}
}

// retrieve a token and unmarshal it; redis.Nil is reported as a miss.
func (s *RedisStore) Get(ctx context.Context, key string) (Token, bool, error) {
	start := time.Now()
	val, err := s.client.Get(ctx, key).Result()
	RecordOperationDuration("redis", "get", start)
	if errors.Is(err, redis.Nil) {
		return Token{}, false, nil
	}
	if err != nil {
		IncrementError("redis", "get")
		s.log.Errorf("failed to get key %s: %v", key, err)
		return Token{}, false, NewCacheError("redis", "get", key, err, true)
	}

	var token Token
	if err := json.Unmarshal([]byte(val), &token); err != nil {
		IncrementError("redis", "get_unmarshal")
		s.log.Errorf("failed to unmarshal token for key %s: %v", key, err)
		return Token{}, false, NewCacheError("redis", "unmarshal", key, err, false)
	}
	if !token.Valid(s.now()) {
		return Token{}, false, nil
	}
	return token, true, nil
}

// store a token with an expiration matching its remaining lifetime.
func (s *RedisStore) Set(ctx context.Context, key string, token Token) error {
	ttl := token.TTL(s.now())
	if token.AccessToken == "" || ttl <= 0 {
		return nil
	}

	start := time.Now()
	data, err := json.Marshal(token)
	if err != nil {
		IncrementError("redis", "set_marshal")
		s.log.Errorf("failed to marshal token for key %s: %v", key, err)
		return NewCacheError("redis", "marshal", key, err, false)
	}
	err = s.client.Set(ctx, key, data, ttl).Err()
	RecordOperationDuration("redis", "set", start)
	if err != nil {
		IncrementError("redis", "set")
		s.log.Errorf("failed to set key %s: %v", key, err)
		return NewCacheError("redis", "set", key, err, true)
	}
	return nil
}

// remove a key from the cache.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := s.client.Del(ctx, key).Err()
	RecordOperationDuration("redis", "delete", start)
	if err != nil {
		IncrementError("redis", "delete")
		s.log.Errorf("failed to delete key %s: %v", key, err)
		return NewCacheError("redis", "delete", key, err, true)
	}
	return nil
}
