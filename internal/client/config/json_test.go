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

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"remote_url":       "http://www.example/users",
		"request_timeout":  "10s",
		"notification_ttl": 2000000000,
		"submit_delay":     "250ms",
		"strict_website":   false,
		"log_level":        "warn",
	})

	t.Run("loads every field", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJson(cfg, []string{"-config", full}))

		assert.Equal(t, Config{
			RemoteURL:       "http://www.example/users",
			RequestTimeout:  10 * time.Second,
			NotificationTTL: 2 * time.Second,
			SubmitDelay:     250 * time.Millisecond,
			StrictWebsite:   false,
			LogLevel:        "warn",
		}, *cfg)
	})

	t.Run("absent keys keep current values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{"log_level": "debug"})
		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJson(cfg, []string{"-c", partial}))

		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, DefaultRemoteURL, cfg.RemoteURL)
		assert.True(t, cfg.StrictWebsite)
		assert.Equal(t, 3*time.Second, cfg.NotificationTTL)
	})

	t.Run("no config flag leaves config untouched", func(t *testing.T) {
		cfg := &Config{RemoteURL: "defaults", NotificationTTL: 42 * time.Second}
		require.NoError(t, parseJson(cfg, []string{"-u", "ignored"}))

		assert.Equal(t, "defaults", cfg.RemoteURL)
		assert.Equal(t, 42*time.Second, cfg.NotificationTTL)
	})

	t.Run("invalid JSON is an error", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Error(t, parseJson(&Config{}, []string{"-config", bad}))
	})
}
