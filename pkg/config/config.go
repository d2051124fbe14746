// Package config resolves the endpoints and client settings for one run.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the collaborator endpoints and shared HTTP client settings.
type Config struct {
	// CMDBURL is the base URL of the inventory service.
	CMDBURL string `yaml:"cmdb_url"`

	// ComputeURL is the base URL of the cloud-instance control service.
	ComputeURL string `yaml:"compute_url"`

	// MonitoringURL is the base URL of the monitoring service.
	MonitoringURL string `yaml:"monitoring_url"`

	// RequestTimeout bounds a single HTTP request.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// RateLimit caps outgoing requests per second; RateLimitBurst is the
	// allowed burst above it.
	RateLimit      float64 `yaml:"rate_limit"`
	RateLimitBurst int     `yaml:"rate_limit_burst"`
}

func defaults() *Config {
	return &Config{
		CMDBURL:        "http://localhost:8080",
		ComputeURL:     "http://localhost:8081",
		MonitoringURL:  "http://localhost:8082",
		RequestTimeout: 30 * time.Second,
		RateLimit:      10, // 10 req/s
		RateLimitBurst: 20,
	}
}

// Default returns sensible defaults, overridden by environment variables
// where set.
func Default() *Config {
	cfg := defaults()
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyEnv() {
	if v := os.Getenv("INVCTL_CMDB_URL"); v != "" {
		c.CMDBURL = v
	}
	if v := os.Getenv("INVCTL_COMPUTE_URL"); v != "" {
		c.ComputeURL = v
	}
	if v := os.Getenv("INVCTL_MONITORING_URL"); v != "" {
		c.MonitoringURL = v
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "invctl", "config.yaml")
}

// Load reads a YAML config file over the defaults. An empty path falls back
// to DefaultPath; a missing file at the default location is not an error,
// while an explicitly given path must exist. Environment variables win over
// the file either way.
func Load(path string) (*Config, error) {
	cfg := defaults()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case os.IsNotExist(err) && !explicit:
			// No config file is fine; defaults apply.
		default:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}
