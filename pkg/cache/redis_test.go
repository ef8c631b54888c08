package cache

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"monnifyease/pkg/logger"

	"github.com/go-redis/redis/v8"
)

type fakeRedis struct {
	data   map[string]string
	ttl    map[string]time.Duration
	getErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	val, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.ttl[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func quietLogger() *logger.Logger {
	return logger.New(&bytes.Buffer{}, "ERROR")
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	fake := newFakeRedis()
	store := NewRedisStore(fake, quietLogger())

	key := TokenKey("fp")
	token := Token{AccessToken: "tok", ExpiresAt: time.Now().Add(10 * time.Minute)}
	if err := store.Set(ctx, key, token); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if ttl := fake.ttl[key]; ttl <= 9*time.Minute || ttl > 10*time.Minute {
		t.Fatalf("unexpected ttl %v", ttl)
	}

	got, ok, err := store.Get(ctx, key)
	if err != nil || !ok {
		t.Fatalf("expected hit, ok=%v err=%v", ok, err)
	}
	if got.AccessToken != "tok" {
		t.Fatalf("AccessToken = %q", got.AccessToken)
	}

	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, err := store.Get(ctx, key); ok || err != nil {
		t.Fatalf("expected clean miss after delete, ok=%v err=%v", ok, err)
	}
}

func TestRedisStoreGetError(t *testing.T) {
	fake := newFakeRedis()
	fake.getErr = errors.New("connection refused")
	store := NewRedisStore(fake, quietLogger())

	_, ok, err := store.Get(context.Background(), "k")
	if ok {
		t.Fatal("expected miss on error")
	}
	var cacheErr *CacheError
	if !errors.As(err, &cacheErr) || cacheErr.Store != "redis" || cacheErr.Operation != "get" || cacheErr.Key != "k" {
		t.Fatalf("expected redis get CacheError for k, got %v", err)
	}
	if !IsRetryable(err) {
		t.Fatal("expected connection failure to be retryable")
	}
}

func TestRedisStoreCorruptValue(t *testing.T) {
	fake := newFakeRedis()
	fake.data["k"] = "not-json"
	store := NewRedisStore(fake, quietLogger())

	_, _, err := store.Get(context.Background(), "k")
	var cacheErr *CacheError
	if !errors.As(err, &cacheErr) || cacheErr.Operation != "unmarshal" {
		t.Fatalf("expected unmarshal CacheError, got %v", err)
	}
	if IsRetryable(err) {
		t.Fatal("expected corrupt entry not to be retryable")
	}
}

func TestRedisStoreSkipsExpiredTokens(t *testing.T) {
	fake := newFakeRedis()
	store := NewRedisStore(fake, quietLogger())

	err := store.Set(context.Background(), "k", Token{AccessToken: "tok", ExpiresAt: time.Now().Add(-time.Minute)})
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if len(fake.data) != 0 {
		t.Fatal("expired token should not be written")
	}
}

func TestIsRetryableDefaultsToTransient(t *testing.T) {
	if !IsRetryable(errors.New("timeout")) {
		t.Fatal("expected plain errors to be retryable")
	}
	if IsRetryable(NewCacheError("memory", "get", "k", errors.New("bad"), false)) {
		t.Fatal("expected non-retryable CacheError")
	}
}
