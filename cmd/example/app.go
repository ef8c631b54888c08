package main

import (
	"context"

	"monnifyease/internal/fakeapi"
	"monnifyease/pkg/cache"
	"monnifyease/pkg/config"
	"monnifyease/pkg/logger"
	"monnifyease/pkg/metrics"
	"monnifyease/pkg/monnify"

	"github.com/go-redis/redis/v8"
	"golang.org/x/time/rate"
)

// App wires the client and its optional collaborators.
type App struct {
	Config *config.Config
	Client *monnify.Client

	redis *redis.Client
	fake  *fakeapi.Server
}

// NewApp builds the client. With useFake set, requests go to an in-process
// fake API instead of Monnify.
func NewApp(ctx context.Context, cfg *config.Config, useFake bool) (*App, error) {
	metrics.Init()
	a := &App{Config: cfg}

	if useFake {
		a.fake = fakeapi.Start("MK_TEST_EXAMPLE", "EXAMPLESECRET", fakeapi.WithLogger(logger.GlobalLogger))
		cfg.Monnify.APIKey = "MK_TEST_EXAMPLE"
		cfg.Monnify.SecretKey = "EXAMPLESECRET"
		cfg.Monnify.BaseURL = a.fake.URL
		logger.GlobalLogger.Printf("Using fake Monnify API: url=%s", a.fake.URL)
	}

	opts := []monnify.Option{monnify.WithLogger(logger.GlobalLogger)}
	if cfg.Redis.Enabled {
		client, err := cache.NewRedisClient(ctx, cfg.Redis, logger.GlobalLogger)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.redis = client
		opts = append(opts, monnify.WithTokenStore(cache.NewRedisStore(client, logger.GlobalLogger)))
	}
	if cfg.RateLimit.RequestsPerSecond > 0 {
		opts = append(opts, monnify.WithRateLimit(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst))
	}

	client, err := monnify.New(cfg.Monnify, opts...)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Client = client
	return a, nil
}

// Close releases the Redis connection and the fake API, if any.
func (a *App) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			logger.GlobalLogger.Errorf("Failed to close Redis client: error=%v", err)
		}
	}
	if a.fake != nil {
		a.fake.Close()
	}
}
