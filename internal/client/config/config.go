// Package config handles configuration for the client component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the Poken client.
//
// Fields:
//   - APIBaseURL: base URL of the backend HTTP API.
//   - CacheDSN: SQLite DSN of the local profile cache.
//   - HTTPTimeout: per-request timeout of the underlying HTTP client.
//   - RequestRetryAttempts: total dispatch attempts for network failures;
//     1 disables retry.
type Config struct {
	APIBaseURL           string
	CacheDSN             string
	HTTPTimeout          time.Duration
	RequestRetryAttempts int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000"
	c.CacheDSN = "poken.db"
	c.HTTPTimeout = 30 * time.Second
	c.RequestRetryAttempts = 1
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
