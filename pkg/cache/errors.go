package cache

import (
	"errors"
	"fmt"
)

// CacheError is a token store failure. Retryable is false when repeating the
// operation cannot succeed, e.g. a stored entry that no longer decodes.
type CacheError struct {
	Store     string
	Operation string
	Key       string
	Err       error
	Retryable bool
}

func NewCacheError(store, operation, key string, err error, retryable bool) *CacheError {
	return &CacheError{Store: store, Operation: operation, Key: key, Err: err, Retryable: retryable}
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("%s token store %s %s: %v", e.Store, e.Operation, e.Key, e.Err)
}

func (e *CacheError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether err is worth another attempt. Errors that are
// not a *CacheError are treated as transient.
func IsRetryable(err error) bool {
	var ce *CacheError
	if errors.As(err, &ce) {
		return ce.Retryable
	}
	return true
}
