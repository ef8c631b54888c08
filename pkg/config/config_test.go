package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleYAML = `
monnify:
  api_key: MK_TEST_KEY
  secret_key: SECRET
  environment: sandbox
  timeout: 15s
redis:
  enabled: false
  host: redis.local
  port: 6379
log:
  level: debug
rate_limit:
  requests_per_second: 5
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("MONNIFY_ENVIRONMENT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("REDIS_HOST", "")

	cfg, err := LoadConfig(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Monnify.APIKey != "MK_TEST_KEY" || cfg.Monnify.Timeout != 15*time.Second {
		t.Fatalf("unexpected monnify section %+v", cfg.Monnify)
	}
	if cfg.Redis.Addr() != "redis.local:6379" {
		t.Fatalf("Redis.Addr = %q", cfg.Redis.Addr())
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("Log.Level = %q", cfg.Log.Level)
	}
	if cfg.RateLimit.RequestsPerSecond != 5 || cfg.RateLimit.Burst != 1 {
		t.Fatalf("unexpected rate limit %+v", cfg.RateLimit)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("MONNIFY_ENVIRONMENT", "live")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("REDIS_HOST", "override.local")

	cfg, err := LoadConfig(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Monnify.Environment != "live" || cfg.Log.Level != "error" || cfg.Redis.Host != "override.local" {
		t.Fatalf("environment overrides not applied: %+v", cfg)
	}
}

func TestLoadConfigRejectsInvalidEnvironment(t *testing.T) {
	t.Setenv("MONNIFY_ENVIRONMENT", "staging")
	if _, err := LoadConfig(writeConfig(t, sampleYAML)); err == nil {
		t.Fatal("expected validation error for unknown environment")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
