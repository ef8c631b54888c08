// Package cache provides access-token storage for the monnify client.
package cache

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// configuration settings for connecting to a Redis instance.
type RedisConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Host        string `yaml:"host" validate:"required"`
	Port        int    `yaml:"port" validate:"required,gt=0,lte=65535"`
	Password    string `yaml:"password"`
	DB          int    `yaml:"db" validate:"gte=0"`
	TLSEnabled  bool   `yaml:"tls_enabled"`
	TLSCertFile string `yaml:"tls_cert_file" validate:"omitempty,file"`
	TLSKeyFile  string `yaml:"tls_key_file" validate:"omitempty,file"`
}

var validate = validator.New()

// Addr returns host:port.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ApplyDefaults fills the host and port when unset.
func (c *RedisConfig) ApplyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 6379
	}
}

// Validate checks the configuration fields.
func (c RedisConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid redis config: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from REDIS_* environment variables.
func (c *RedisConfig) ApplyEnv() error {
	if enabled := os.Getenv("REDIS_ENABLED"); enabled != "" {
		c.Enabled = enabled == "true"
	}
	if host := os.Getenv("REDIS_HOST"); host != "" {
		c.Host = host
	}
	if portStr := os.Getenv("REDIS_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("invalid REDIS_PORT value: %w", err)
		}
		c.Port = port
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		c.Password = password
	}
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return fmt.Errorf("invalid REDIS_DB value: %w", err)
		}
		c.DB = db
	}
	if tlsEnabled := os.Getenv("REDIS_TLS_ENABLED"); tlsEnabled != "" {
		c.TLSEnabled = tlsEnabled == "true"
	}
	if certFile := os.Getenv("REDIS_TLS_CERT_FILE"); certFile != "" {
		c.TLSCertFile = certFile
	}
	if keyFile := os.Getenv("REDIS_TLS_KEY_FILE"); keyFile != "" {
		c.TLSKeyFile = keyFile
	}
	return nil
}

// load and validate Redis configuration from environment variables.
func LoadRedisConfig() (*RedisConfig, error) {
	cfg := &RedisConfig{}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
