package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "")
	t.Setenv("GEMINI_API_KEY", "")
}

func TestLoadFromFile_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromFile(writeConfig(t, "app:\n  name: agriguru-test\n"))
	require.NoError(t, err)

	assert.Equal(t, "agriguru-test", cfg.App.Name)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Server.Addr())
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, int64(64<<10), cfg.Server.MaxBodyBytes)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, ProviderFixed, cfg.Classifier.Provider)
	assert.Equal(t, 10*time.Minute, cfg.Cache.RegionTTL)
	assert.Zero(t, cfg.Weather.Seed)
}

func TestLoadFromFile_FileValues(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromFile(writeConfig(t, `
server:
  port: "9090"
  shutdown_timeout: 3s
logging:
  level: debug
  format: console
cache:
  region_ttl: 0s
weather:
  seed: 42
`))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Zero(t, cfg.Cache.RegionTTL)
	assert.Equal(t, int64(42), cfg.Weather.Seed)
}

func TestLoadFromFile_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("LOGGING_LEVEL", "warn")

	cfg, err := LoadFromFile(writeConfig(t, "classifier:\n  provider: Gemini\n"))
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, ProviderGemini, cfg.Classifier.Provider)
	assert.Equal(t, "secret", cfg.Classifier.APIKey)
}

func TestLoadFromFile_Invalid(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name string
		body string
		msg  string
	}{
		{"bad port", "server:\n  port: abc\n", "server.port"},
		{"bad level", "logging:\n  level: loud\n", "logging.level"},
		{"bad format", "logging:\n  format: xml\n", "logging.format"},
		{"unknown provider", "classifier:\n  provider: onnx\n", "classifier.provider"},
		{"gemini without key", "classifier:\n  provider: gemini\n", "GEMINI_API_KEY"},
		{"negative ttl", "cache:\n  region_ttl: -1s\n", "cache.region_ttl"},
		{"zero body limit", "server:\n  max_body_bytes: 0\n", "server.max_body_bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_RepositoryConfig(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "agriguru-agent", cfg.App.Name)
}
