package cache

import (
	"time"

	"monnifyease/pkg/metrics"
)

// record the duration of a store operation since start.
func RecordOperationDuration(store, operation string, start time.Time) {
	metrics.CacheOperationDuration.WithLabelValues(store, operation).Observe(time.Since(start).Seconds())
}

// increment the error counter for a store operation.
func IncrementError(store, operation string) {
	metrics.CacheErrorsTotal.WithLabelValues(store, operation).Inc()
}
