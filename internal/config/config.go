// Package config loads service configuration from an optional YAML file
// with environment-variable overrides. Invalid override values log a
// warning and fall back to the current value rather than aborting.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the conversion service settings.
type Config struct {
	// HTTPAddr is the listen address for the HTTP server.
	HTTPAddr string `yaml:"http_addr"`
	// TrustProxy enables X-Forwarded-For / X-Real-IP handling in access
	// logs. Only set behind a trusted reverse proxy.
	TrustProxy bool `yaml:"trust_proxy"`
	// AuthEnabled turns on Bearer token auth for the conversion endpoints.
	AuthEnabled bool `yaml:"auth_enabled"`
	// AuthToken is the expected Bearer token. Required when AuthEnabled.
	// Usually supplied via SKYGO_AUTH_TOKEN rather than the YAML file.
	AuthToken string `yaml:"auth_token"`
	// BatchWorkers is the worker count for parallel batch conversion.
	BatchWorkers int `yaml:"batch_workers"`
	// BatchParallelThreshold is the batch size (coordinate pairs) above
	// which requests fan out to the worker pool instead of converting
	// inline.
	BatchParallelThreshold int `yaml:"batch_parallel_threshold"`
}

const (
	// DefaultBatchParallelThreshold keeps small batches on the request
	// goroutine; the fan-out only pays off for larger inputs.
	DefaultBatchParallelThreshold = 256
)

var errAuthTokenRequired = errors.New("auth token is required when auth is enabled")

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		HTTPAddr:               ":8080",
		BatchWorkers:           runtime.NumCPU(),
		BatchParallelThreshold: DefaultBatchParallelThreshold,
	}
}

// Load reads configuration from an optional YAML file, applies
// environment overrides, and validates the result. An empty path skips
// the file and uses defaults plus environment.
func Load(path string, logger *slog.Logger) (*Config, error) {
	cfg := Default()

	if path != "" {
		contents, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(contents, cfg); err != nil {
			return nil, fmt.Errorf("unmarshal config: %w", err)
		}
	}

	cfg.applyEnv(logger)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required fields and restores defaults for zero values.
func (c *Config) Validate() error {
	if c.HTTPAddr == "" {
		c.HTTPAddr = ":8080"
	}
	if c.BatchWorkers < 1 {
		c.BatchWorkers = runtime.NumCPU()
	}
	if c.BatchParallelThreshold < 1 {
		c.BatchParallelThreshold = DefaultBatchParallelThreshold
	}
	if c.AuthEnabled && c.AuthToken == "" {
		return errAuthTokenRequired
	}
	return nil
}

// applyEnv overrides fields from SKYGO_* environment variables. Malformed
// values warn and keep the current setting.
func (c *Config) applyEnv(logger *slog.Logger) {
	if v := os.Getenv("SKYGO_HTTP_ADDR"); v != "" {
		c.HTTPAddr = v
	}

	if v := os.Getenv("SKYGO_TRUST_PROXY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			logger.Warn("invalid SKYGO_TRUST_PROXY value, keeping current", "value", v)
		} else {
			c.TrustProxy = b
		}
	}

	if v := os.Getenv("SKYGO_AUTH_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			logger.Warn("invalid SKYGO_AUTH_ENABLED value, keeping current", "value", v)
		} else {
			c.AuthEnabled = b
		}
	}

	if v := os.Getenv("SKYGO_AUTH_TOKEN"); v != "" {
		c.AuthToken = v
	}

	if v := os.Getenv("SKYGO_BATCH_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			logger.Warn("invalid SKYGO_BATCH_WORKERS value, keeping current", "value", v, "current", c.BatchWorkers)
		} else {
			c.BatchWorkers = n
		}
	}

	if v := os.Getenv("SKYGO_BATCH_PARALLEL_THRESHOLD"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			logger.Warn("invalid SKYGO_BATCH_PARALLEL_THRESHOLD value, keeping current", "value", v, "current", c.BatchParallelThreshold)
		} else {
			c.BatchParallelThreshold = n
		}
	}
}
