// Package config loads runtime configuration for the stylist CLI.
//
// Sources and precedence:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file, path taken from STYLIST_CONFIG.
//  3. Environment variables, which override earlier values:
//     STYLIST_SERVER_URL, STYLIST_DATA_DIR, STYLIST_REQUEST_TIMEOUT,
//     STYLIST_CACHE_TTL.
//
// Durations accept Go duration strings ("10s", "24h") in both the JSON file
// and the environment.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds runtime settings for the stylist CLI.
type Config struct {
	// ServerBaseURL is the base URL of the styling service; all API paths
	// and item image references resolve against it.
	ServerBaseURL string

	// DataDir is the directory of the on-device store.
	DataDir string

	// RequestTimeout bounds every remote call.
	RequestTimeout time.Duration

	// CacheTTL is the freshness window of the pick-of-the-day cache.
	CacheTTL time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:5000"
	c.DataDir = defaultDataDir()
	c.RequestTimeout = 10 * time.Second
	c.CacheTTL = 24 * time.Hour
}

// Load constructs a Config, applying defaults, then the optional JSON file,
// then environment variables. Later sources take precedence.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg); err != nil {
		return nil, err
	}
	parseEnv(cfg)
	// Relative API and image paths are concatenated onto the base URL, so a
	// trailing slash would produce double-slash URLs.
	cfg.ServerBaseURL = strings.TrimRight(cfg.ServerBaseURL, "/")
	return cfg, nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".stylist"
	}
	return filepath.Join(home, ".stylist", "data")
}
