package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/patientkeeper/internal/flagx"
	"github.com/dmitrijs2005/patientkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	RemoteURL       string         `json:"remote_url"`
	RequestTimeout  timex.Duration `json:"request_timeout"`
	NotificationTTL timex.Duration `json:"notification_ttl"`
	SubmitDelay     timex.Duration `json:"submit_delay"`
	StrictWebsite   bool           `json:"strict_website"`
	LogLevel        string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c/-config in args.
// Without such a flag it does nothing. The DTO is seeded from cfg, so keys
// absent from the file leave the current values untouched.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	jc := JsonConfig{
		RemoteURL:       cfg.RemoteURL,
		RequestTimeout:  timex.Duration{Duration: cfg.RequestTimeout},
		NotificationTTL: timex.Duration{Duration: cfg.NotificationTTL},
		SubmitDelay:     timex.Duration{Duration: cfg.SubmitDelay},
		StrictWebsite:   cfg.StrictWebsite,
		LogLevel:        cfg.LogLevel,
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.RemoteURL = jc.RemoteURL
	cfg.RequestTimeout = jc.RequestTimeout.Duration
	cfg.NotificationTTL = jc.NotificationTTL.Duration
	cfg.SubmitDelay = jc.SubmitDelay.Duration
	cfg.StrictWebsite = jc.StrictWebsite
	cfg.LogLevel = jc.LogLevel
	return nil
}
