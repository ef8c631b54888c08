package cache

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"monnifyease/pkg/logger"

	"github.com/go-redis/redis/v8"
)

// NewRedisClient connects to Redis with cfg and verifies the connection with a ping.
func NewRedisClient(ctx context.Context, cfg RedisConfig, log *logger.Logger) (*redis.Client, error) {
	if log == nil {
		log = logger.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var tlsConfig *tls.Config
	if cfg.TLSEnabled {
		if cfg.TLSCertFile != "" {
			cert, err := tls.LoadX509KeyPair(cfg.TLSCertFile, cfg.TLSKeyFile)
			if err != nil {
				log.Errorf("failed to load TLS certificate: %v", err)
				return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
			}
			tlsConfig = &tls.Config{
				Certificates: []tls.Certificate{cert},
			}
		} else {
			tlsConfig = &tls.Config{}
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		TLSConfig:    tlsConfig,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	start := time.Now()
	_, err := client.Ping(ctx).Result()
	RecordOperationDuration("redis", "ping", start)
	if err != nil {
		IncrementError("redis", "ping")
		log.Errorf("failed to connect to Redis: addr=%s, error=%v", cfg.Addr(), err)
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Printf("Redis connected successfully: addr=%s", cfg.Addr())
	return client, nil
}
