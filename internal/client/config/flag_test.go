package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected *Config
		name     string
		args     []string
		wantErr  bool
	}{
		{
			name: "all flags",
			args: []string{"-u", "http://127.0.0.1:9090/users", "-t", "5", "-n", "1500", "-d", "0", "-s=false", "-l", "debug"},
			expected: &Config{
				RemoteURL:       "http://127.0.0.1:9090/users",
				RequestTimeout:  5 * time.Second,
				NotificationTTL: 1500 * time.Millisecond,
				SubmitDelay:     0,
				StrictWebsite:   false,
				LogLevel:        "debug",
			},
		},
		{
			name: "unrelated flags are ignored",
			args: []string{"-c", "cfg.json", "-n", "100"},
			expected: &Config{
				RemoteURL:       DefaultRemoteURL,
				NotificationTTL: 100 * time.Millisecond,
				SubmitDelay:     500 * time.Millisecond,
				StrictWebsite:   true,
				LogLevel:        "warn",
			},
		},
		{name: "incorrect ttl", args: []string{"-n", "abc"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.LoadDefaults()

			err := parseFlags(cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
