package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndEnvironment(t *testing.T) {
	t.Setenv("STEAM_API_KEY", "abc123")
	t.Setenv("STEAM_USER_ID", "76561197999386785")
	t.Setenv("STEAM_TOP_COUNT", "5")
	t.Setenv("PORT", "9000")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "abc123", cfg.Steam.APIKey)
	assert.Equal(t, "76561197999386785", cfg.Steam.UserID)
	assert.Equal(t, 5, cfg.Steam.TopCount)
	assert.Equal(t, 3, cfg.Steam.RecentCount)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.PollInterval())
	assert.True(t, cfg.Server.BackgroundJobsEnabled)
	assert.NoError(t, cfg.Validate())
}

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	unsetenv(t, "STEAM_API_KEY", "LOG_LEVEL")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STEAM_API_KEY=fromfile\nLOG_LEVEL=debug\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fromfile", cfg.Steam.APIKey)
	assert.Equal(t, slog.LevelDebug, cfg.GetLogLevel())
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.ErrorContains(t, cfg.Validate(), "STEAM_API_KEY")

	cfg.Steam.APIKey = "abc123"
	cfg.Steam.UserID = "not-an-id"
	cfg.Steam.TopCount = 11
	err := cfg.Validate()
	assert.ErrorContains(t, err, "STEAM_USER_ID")
	assert.ErrorContains(t, err, "STEAM_TOP_COUNT")

	cfg.Steam.UserID = ""
	cfg.Steam.TopCount = 10
	assert.NoError(t, cfg.Validate())
}

func TestOrigins(t *testing.T) {
	cfg := Default()
	cfg.Server.AllowedOrigins = "https://utf9k.net, http://localhost:1313,,"
	assert.Equal(t, []string{"https://utf9k.net", "http://localhost:1313"}, cfg.Origins())
}

func TestGetLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"error":   slog.LevelError,
		"WARNING": slog.LevelWarn,
		"warn":    slog.LevelWarn,
		"":        slog.LevelInfo,
		"info":    slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"verbose": slog.LevelInfo,
	}
	for input, want := range tests {
		cfg := Config{Server: ServerConfig{LogLevel: input}}
		assert.Equal(t, want, cfg.GetLogLevel(), input)
	}
}

func TestPushoverEnabled(t *testing.T) {
	cfg := Default()
	assert.False(t, cfg.PushoverEnabled())
	cfg.Pushover = PushoverConfig{Token: "t", Recipient: "r"}
	assert.True(t, cfg.PushoverEnabled())
}
