package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a process-local TokenStore.
type MemoryStore struct {
	store map[string]Token
	mu    sync.RWMutex
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		store: make(map[string]Token),
		now:   time.Now,
	}
}

func (c *MemoryStore) Get(_ context.Context, key string) (Token, bool, error) {
	start := time.Now()
	defer RecordOperationDuration("memory", "get", start)

	c.mu.RLock()
	token, ok := c.store[key]
	c.mu.RUnlock()
	if !ok {
		return Token{}, false, nil
	}
	if !token.Valid(c.now()) {
		c.mu.Lock()
		delete(c.store, key)
		c.mu.Unlock()
		return Token{}, false, nil
	}
	return token, true, nil
}

func (c *MemoryStore) Set(_ context.Context, key string, token Token) error {
	start := time.Now()
	defer RecordOperationDuration("memory", "set", start)

	if !token.Valid(c.now()) {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = token
	return nil
}

func (c *MemoryStore) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, key)
	return nil
}

// Len returns the number of entries, expired ones included.
func (c *MemoryStore) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}
