package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, PlaceholderBackendURL, cfg.BackendURL)
	assert.Equal(t, PlaceholderBackendKey, cfg.BackendKey)
	assert.True(t, cfg.DualWrite)
	assert.Equal(t, "postme.db", cfg.LocalDBPath)
	assert.Equal(t, DefaultGeminiModel, cfg.GeminiModel)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("POSTME_BACKEND_URL", "https://notes.example.com")
	t.Setenv("POSTME_BACKEND_KEY", "secret1")
	t.Setenv("GEMINI_API_KEY", "gk-123")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "https://notes.example.com", cfg.BackendURL)
	assert.Equal(t, "secret1", cfg.BackendKey)
	assert.Equal(t, "gk-123", cfg.GeminiAPIKey)
}

func TestParseJson(t *testing.T) {
	dualWrite := false
	jc := &JsonConfig{
		BackendURL:  "https://letters.example.com",
		BackendKey:  "secret2",
		DualWrite:   &dualWrite,
		LocalDBPath: "letters.db",
	}

	data, err := json.Marshal(jc)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, data, 0600))

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"client", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "https://letters.example.com", cfg.BackendURL)
	assert.Equal(t, "secret2", cfg.BackendKey)
	assert.False(t, cfg.DualWrite)
	assert.Equal(t, "letters.db", cfg.LocalDBPath)
	// untouched fields keep their defaults
	assert.Equal(t, DefaultGeminiModel, cfg.GeminiModel)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		wantDualWrite bool
	}{
		{"separate argument", []string{"-w", "false"}, false},
		{"equals form", []string{"-w=false"}, false},
		{"explicit true", []string{"-w", "true"}, true},
		{"flag absent keeps default", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			defer func() { os.Args = origArgs }()
			os.Args = append([]string{"client", "-a", "https://api.example.com", "-r", "5"}, tt.args...)

			cfg := &Config{}
			cfg.LoadDefaults()
			parseFlags(cfg)

			assert.Equal(t, tt.wantDualWrite, cfg.DualWrite)
			assert.Equal(t, "https://api.example.com", cfg.BackendURL)
			assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
		})
	}
}

func TestBackendConfigured(t *testing.T) {
	tests := []struct {
		name string
		url  string
		key  string
		want bool
	}{
		{"both placeholders", PlaceholderBackendURL, PlaceholderBackendKey, false},
		{"placeholder url only", PlaceholderBackendURL, "real-key", false},
		{"placeholder key only", "https://api.example.com", PlaceholderBackendKey, false},
		{"empty url", "", "real-key", false},
		{"empty key", "https://api.example.com", "", false},
		{"bad scheme", "ftp://api.example.com", "real-key", false},
		{"no host", "https://", "real-key", false},
		{"not a url", "not a url at all", "real-key", false},
		{"space in host", "http://bad host.example.com", "real-key", false},
		{"valid https", "https://api.example.com", "real-key", true},
		{"valid http with port", "http://localhost:8080", "real-key", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.LoadDefaults()
			cfg.BackendURL = tt.url
			cfg.BackendKey = tt.key
			assert.Equal(t, tt.want, cfg.BackendConfigured())
		})
	}
}
