package cache

import "testing"

func TestLoadRedisConfigFromEnv(t *testing.T) {
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REDIS_ENABLED", "true")

	cfg, err := LoadRedisConfig()
	if err != nil {
		t.Fatalf("LoadRedisConfig: %v", err)
	}
	if cfg.Addr() != "cache.internal:6380" || cfg.DB != 2 || !cfg.Enabled {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadRedisConfigDefaults(t *testing.T) {
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_PORT", "")
	cfg, err := LoadRedisConfig()
	if err != nil {
		t.Fatalf("LoadRedisConfig: %v", err)
	}
	if cfg.Addr() != "localhost:6379" {
		t.Fatalf("Addr = %q", cfg.Addr())
	}
}

func TestLoadRedisConfigRejectsBadPort(t *testing.T) {
	t.Setenv("REDIS_PORT", "not-a-port")
	if _, err := LoadRedisConfig(); err == nil {
		t.Fatal("expected error for invalid REDIS_PORT")
	}
}

func TestRedisConfigValidate(t *testing.T) {
	cfg := RedisConfig{Host: "localhost", Port: 70000}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected port range validation error")
	}
}
