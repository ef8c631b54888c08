package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"monnifyease/pkg/cache"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Monnify MonnifyConfig     `yaml:"monnify"`
	Redis   cache.RedisConfig `yaml:"redis"`
	Log     struct {
		Level string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	} `yaml:"log"`
	RateLimit struct {
		RequestsPerSecond float64 `yaml:"requests_per_second" validate:"gte=0"`
		Burst             int     `yaml:"burst" validate:"gte=0"`
	} `yaml:"rate_limit"`
}

var validate = validator.New()

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Override with environment variables if set
	if env := os.Getenv("MONNIFY_ENVIRONMENT"); env != "" {
		cfg.Monnify.Environment = env
	}
	if baseURL := os.Getenv("MONNIFY_BASE_URL"); baseURL != "" {
		cfg.Monnify.BaseURL = baseURL
	}
	if timeout := os.Getenv("MONNIFY_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid MONNIFY_TIMEOUT value: %w", err)
		}
		cfg.Monnify.Timeout = d
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if rps := os.Getenv("MONNIFY_RATE_LIMIT_RPS"); rps != "" {
		v, err := strconv.ParseFloat(rps, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid MONNIFY_RATE_LIMIT_RPS value: %w", err)
		}
		cfg.RateLimit.RequestsPerSecond = v
	}
	if err := cfg.Redis.ApplyEnv(); err != nil {
		return nil, err
	}

	// Set default values
	if cfg.Monnify.Environment == "" {
		cfg.Monnify.Environment = EnvironmentSandbox
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.RateLimit.RequestsPerSecond > 0 && cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 1
	}
	cfg.Redis.ApplyDefaults()

	// Validation
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
