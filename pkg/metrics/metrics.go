package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "monnify",
			Name:      "api_requests_total",
			Help:      "Total number of Monnify API requests",
		},
		[]string{"method", "path", "status"},
	)
	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "monnify",
			Name:      "api_request_duration_seconds",
			Help:      "Monnify API request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	APIErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "monnify",
			Name:      "api_errors_total",
			Help:      "Total number of failed Monnify API calls by error code",
		},
		[]string{"method", "path", "code"},
	)
	TokenRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "monnify",
			Name:      "token_requests_total",
			Help:      "Total number of login handshakes by outcome",
		},
		[]string{"outcome"},
	)
	TokenCacheHitsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "monnify",
			Name:      "token_cache_hits_total",
			Help:      "Total number of access tokens served from cache",
		},
	)
	TokenCacheMissesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "monnify",
			Name:      "token_cache_misses_total",
			Help:      "Total number of token cache misses",
		},
	)
	CacheOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "monnify",
			Name:      "cache_operation_duration_seconds",
			Help:      "Token store operation duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"store", "operation"},
	)
	CacheErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "monnify",
			Name:      "cache_errors_total",
			Help:      "Total number of token store errors",
		},
		[]string{"store", "operation"},
	)
)

var initOnce sync.Once

// Collectors lists every collector owned by this package.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		APIRequestsTotal,
		APIRequestDuration,
		APIErrorsTotal,
		TokenRequestsTotal,
		TokenCacheHitsTotal,
		TokenCacheMissesTotal,
		CacheOperationDuration,
		CacheErrorsTotal,
	}
}

// Init registers the collectors with the default registry. Safe to call more than once.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(Collectors()...)
	})
}

// Register registers the collectors with reg.
func Register(reg prometheus.Registerer) error {
	for _, c := range Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
