// Package config handles configuration for the PostMe CLI, including
// defaults, environment variables, JSON overlay, command-line flags, and the
// backend-configured predicate that drives per-call persistence selection.
package config

import (
	"os"
	"time"
)

// Placeholder sentinels shipped as defaults. While either value is still in
// place the backend is treated as unconfigured and the client runs on
// device-local storage only.
const (
	PlaceholderBackendURL = "https://placeholder.postme.app"
	PlaceholderBackendKey = "placeholder-key"
)

// DefaultGeminiModel is the generation model used for pen-pal replies.
const DefaultGeminiModel = "gemini-3-flash-preview"

// Config holds runtime settings for the PostMe CLI.
//
// Fields:
//   - BackendURL / BackendKey: where the hosted storage service lives and
//     the access key it expects. Defaults are placeholder sentinels.
//   - DualWrite: when the backend is configured, mirror every write into
//     the local fallback store as well (the fallback variant). When false,
//     the client is remote-only: a remote save failure surfaces to the
//     caller and reads never fall back.
//   - LocalDBPath: SQLite file backing the device-local store.
//   - GeminiAPIKey / GeminiModel: text-generation service settings.
//   - RequestTimeout: per-request time limit for backend calls.
type Config struct {
	BackendURL     string
	BackendKey     string
	DualWrite      bool
	LocalDBPath    string
	GeminiAPIKey   string
	GeminiModel    string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BackendURL = PlaceholderBackendURL
	c.BackendKey = PlaceholderBackendKey
	c.DualWrite = true
	c.LocalDBPath = "postme.db"
	c.GeminiModel = DefaultGeminiModel
	c.RequestTimeout = 10 * time.Second
}

// parseEnv overlays values from environment variables. The main loads .env
// first, so a local .env file works the same way.
func parseEnv(c *Config) {
	if v := os.Getenv("POSTME_BACKEND_URL"); v != "" {
		c.BackendURL = v
	}
	if v := os.Getenv("POSTME_BACKEND_KEY"); v != "" {
		c.BackendKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.GeminiAPIKey = v
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, JSON (if present) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
