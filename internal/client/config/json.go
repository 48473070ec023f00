package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/postmeapp/postme/internal/flagx"
	"github.com/postmeapp/postme/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It uses
// timex.Duration so intervals may be written as strings such as "10s" or as
// integer nanoseconds, and a *bool so an explicit "dual_write": false can be
// told apart from the field being absent.
type JsonConfig struct {
	BackendURL     string         `json:"backend_url"`
	BackendKey     string         `json:"backend_key"`
	DualWrite      *bool          `json:"dual_write"`
	LocalDBPath    string         `json:"local_db_path"`
	GeminiAPIKey   string         `json:"gemini_api_key"`
	GeminiModel    string         `json:"gemini_model"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The lookup order for the JSON file path is the -c or -config command-line
// flags; if neither is set, no JSON file is loaded. If the file cannot be
// read or contains invalid JSON, the function panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.BackendURL != "" {
		config.BackendURL = c.BackendURL
	}
	if c.BackendKey != "" {
		config.BackendKey = c.BackendKey
	}
	if c.DualWrite != nil {
		config.DualWrite = *c.DualWrite
	}
	if c.LocalDBPath != "" {
		config.LocalDBPath = c.LocalDBPath
	}
	if c.GeminiAPIKey != "" {
		config.GeminiAPIKey = c.GeminiAPIKey
	}
	if c.GeminiModel != "" {
		config.GeminiModel = c.GeminiModel
	}
	if c.RequestTimeout.Duration != 0 {
		config.RequestTimeout = time.Duration(c.RequestTimeout.Duration)
	}
}
