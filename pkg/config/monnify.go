// Package config resolves client configuration from explicit values, the
// process environment and YAML files.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	apperrors "monnifyease/pkg/errors"
)

const (
	EnvironmentSandbox = "sandbox"
	EnvironmentLive    = "live"

	SandboxBaseURL = "https://sandbox.monnify.com/api/"
	LiveBaseURL    = "https://api.monnify.com/api/"

	DefaultTimeout = 10 * time.Second
)

// MonnifyConfig is the client configuration record.
type MonnifyConfig struct {
	APIKey      string        `yaml:"api_key"`
	SecretKey   string        `yaml:"secret_key"`
	Environment string        `yaml:"environment" validate:"omitempty,oneof=sandbox test live"`
	BaseURL     string        `yaml:"base_url" validate:"omitempty,url"`
	Timeout     time.Duration `yaml:"timeout" validate:"gte=0"`
}

// Credentials is an API key and secret key pair.
type Credentials struct {
	APIKey    string
	SecretKey string
}

// NormalizeEnvironment maps accepted environment names to sandbox or live.
func NormalizeEnvironment(environment string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(environment)) {
	case "", EnvironmentSandbox, "test":
		return EnvironmentSandbox, nil
	case EnvironmentLive:
		return EnvironmentLive, nil
	default:
		return "", apperrors.Configuration(
			fmt.Sprintf("unknown environment %q, expected %q or %q", environment, EnvironmentSandbox, EnvironmentLive), nil)
	}
}

// BaseURLFor returns the API base URL of a normalized environment.
func BaseURLFor(environment string) string {
	if environment == EnvironmentLive {
		return LiveBaseURL
	}
	return SandboxBaseURL
}

// envNames lists the variables consulted for one credential, most specific first.
func envNames(environment, field string) []string {
	prefix := "MONNIFY_TEST_"
	if environment == EnvironmentLive {
		prefix = "MONNIFY_LIVE_"
	}
	return []string{prefix + field, "MONNIFY_" + field}
}

func lookup(names []string) string {
	for _, name := range names {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

// ResolveCredentials returns the explicit values, falling back to the environment.
// It fails with a configuration error wrapping ErrMissingCredentials when either
// value cannot be found.
func ResolveCredentials(environment, apiKey, secretKey string) (Credentials, error) {
	env, err := NormalizeEnvironment(environment)
	if err != nil {
		return Credentials{}, err
	}

	creds := Credentials{APIKey: strings.TrimSpace(apiKey), SecretKey: strings.TrimSpace(secretKey)}
	if creds.APIKey == "" {
		creds.APIKey = lookup(envNames(env, "API_KEY"))
	}
	if creds.SecretKey == "" {
		creds.SecretKey = lookup(envNames(env, "SECRET_KEY"))
	}

	var missing []string
	if creds.APIKey == "" {
		missing = append(missing, strings.Join(envNames(env, "API_KEY"), "/"))
	}
	if creds.SecretKey == "" {
		missing = append(missing, strings.Join(envNames(env, "SECRET_KEY"), "/"))
	}
	if len(missing) > 0 {
		return Credentials{}, apperrors.Configuration(
			"kindly ensure the API key and secret key are set: missing "+strings.Join(missing, ", "),
			apperrors.ErrMissingCredentials)
	}
	return creds, nil
}

// Resolve returns a copy with credentials, environment, base URL and timeout filled in.
func (c MonnifyConfig) Resolve() (MonnifyConfig, error) {
	env, err := NormalizeEnvironment(c.Environment)
	if err != nil {
		return MonnifyConfig{}, err
	}
	creds, err := ResolveCredentials(env, c.APIKey, c.SecretKey)
	if err != nil {
		return MonnifyConfig{}, err
	}

	resolved := c
	resolved.Environment = env
	resolved.APIKey = creds.APIKey
	resolved.SecretKey = creds.SecretKey
	if resolved.BaseURL == "" {
		resolved.BaseURL = BaseURLFor(env)
	}
	if resolved.Timeout <= 0 {
		resolved.Timeout = DefaultTimeout
	}
	return resolved, nil
}
