package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/poken-app/poken/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Timeouts are
// given in seconds; zero values leave the current Config untouched.
type JsonConfig struct {
	APIBaseURL           string `json:"api_base_url"`
	CacheDSN             string `json:"cache_dsn"`
	HTTPTimeoutSeconds   int    `json:"http_timeout_seconds"`
	RequestRetryAttempts int    `json:"request_retry_attempts"`
}

// parseJson overlays Config with values loaded from a JSON file resolved
// via the -c/-config flags. No file means no overlay. Intended usage is:
// defaults -> parseJson -> parseFlags, where later stages override earlier
// ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.CacheDSN != "" {
		cfg.CacheDSN = jc.CacheDSN
	}
	if jc.HTTPTimeoutSeconds > 0 {
		cfg.HTTPTimeout = time.Duration(jc.HTTPTimeoutSeconds) * time.Second
	}
	if jc.RequestRetryAttempts > 0 {
		cfg.RequestRetryAttempts = jc.RequestRetryAttempts
	}
}
