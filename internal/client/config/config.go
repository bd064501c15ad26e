package config

import "time"

// Config holds runtime settings for the Shopfront CLI.
//
// Fields:
//   - APIBaseURL: root of the storefront REST API, including the /api prefix.
//   - RequestTimeout: optional client-side bound per request; zero means the
//     runtime's own network timeout is the only bound.
//   - StateDBPath: path of the local sqlite database holding session state.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	StateDBPath    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.RequestTimeout = 0
	c.StateDBPath = "shopfront.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
