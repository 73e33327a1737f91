package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/poken-app/poken/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// are given in minutes; zero values leave the current Config untouched.
type JsonConfig struct {
	EndpointAddr                      string `json:"endpoint_addr"`
	DatabaseDSN                       string `json:"database_dsn"`
	SecretKey                         string `json:"secret_key"`
	AccessTokenValidityDurationMinute int    `json:"access_token_validity_minutes"`
}

// parseJson overlays Config with values loaded from a JSON file resolved
// via the -c/-config flags. No file means no overlay.
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

	if jc.EndpointAddr != "" {
		cfg.EndpointAddr = jc.EndpointAddr
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.SecretKey != "" {
		cfg.SecretKey = jc.SecretKey
	}
	if jc.AccessTokenValidityDurationMinute > 0 {
		cfg.AccessTokenValidityDuration = time.Duration(jc.AccessTokenValidityDurationMinute) * time.Minute
	}
}
