package config

import "time"

// DefaultRemoteURL is the mock collection endpoint the client was built against.
const DefaultRemoteURL = "https://63bedcf7f5cfc0949b634fc8.mockapi.io/users"

// Config holds runtime settings for the PatientKeeper CLI.
//
// Fields:
//   - RemoteURL: collection endpoint answering GET with a JSON array.
//   - RequestTimeout: upper bound for the initial fetch; zero disables it.
//   - NotificationTTL: how long a notification stays visible.
//   - SubmitDelay: simulated latency before a form submission is applied.
//   - StrictWebsite: require http:// or https:// on the website field.
//   - LogLevel: slog level name (debug, info, warn, error).
type Config struct {
	RemoteURL       string
	RequestTimeout  time.Duration
	NotificationTTL time.Duration
	SubmitDelay     time.Duration
	StrictWebsite   bool
	LogLevel        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.RemoteURL = DefaultRemoteURL
	c.RequestTimeout = 0
	c.NotificationTTL = 3 * time.Second
	c.SubmitDelay = 500 * time.Millisecond
	c.StrictWebsite = true
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if -c/-config is given) and command-line flags. Later sources take
// precedence over earlier ones. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
