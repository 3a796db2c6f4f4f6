// Package config handles configuration for the daybox CLI client,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the daybox client.
//
// Fields:
//   - ServerBaseURL: base URL of the daybox service, e.g. "http://localhost:3030".
//   - DataDir: directory holding the guest-mode calendars and the local
//     session cache.
//   - RequestTimeout: per-request timeout for remote calls.
type Config struct {
	ServerBaseURL  string
	DataDir        string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:3030"
	c.DataDir = ".daybox"
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
