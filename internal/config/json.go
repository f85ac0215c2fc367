package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// the duration type so intervals can be written as strings like "24h" or as
// integer nanoseconds.
type jsonConfig struct {
	ServerBaseURL  string   `json:"server_base_url"`
	DataDir        string   `json:"data_dir"`
	RequestTimeout duration `json:"request_timeout"`
	CacheTTL       duration `json:"cache_ttl"`
}

// duration wraps time.Duration with flexible JSON decoding.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
	case float64:
		d.Duration = time.Duration(value)
	default:
		return fmt.Errorf("invalid duration value: %v", v)
	}
	return nil
}

// parseJSON overlays cfg with values from the JSON file named by
// STYLIST_CONFIG. No file configured means no overlay. Only fields present
// in the file override earlier values.
func parseJSON(cfg *Config) error {
	path := os.Getenv("STYLIST_CONFIG")
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.CacheTTL.Duration > 0 {
		cfg.CacheTTL = jc.CacheTTL.Duration
	}
	return nil
}
