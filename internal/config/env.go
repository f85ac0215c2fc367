package config

import (
	"os"
	"time"
)

// parseEnv overlays cfg with environment variables. Unset or malformed
// values leave the current value in place.
func parseEnv(cfg *Config) {
	if v := os.Getenv("STYLIST_SERVER_URL"); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv("STYLIST_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	cfg.RequestTimeout = getenvDuration("STYLIST_REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.CacheTTL = getenvDuration("STYLIST_CACHE_TTL", cfg.CacheTTL)
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
