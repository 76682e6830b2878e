package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/patientkeeper/internal/flagx"
)

// parseFlags populates cfg from the short flags it knows about. Other
// arguments (such as -c) are filtered out first with flagx.FilterArgs.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-u", "-t", "-n", "-d", "-s", "-l"})

	fs := flag.NewFlagSet("patientkeeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.RemoteURL, "u", cfg.RemoteURL, "remote collection URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout/time.Second), "initial fetch timeout (seconds, 0 = none)")
	ttl := fs.Int("n", int(cfg.NotificationTTL/time.Millisecond), "notification lifetime (milliseconds)")
	delay := fs.Int("d", int(cfg.SubmitDelay/time.Millisecond), "simulated submit latency (milliseconds)")
	fs.BoolVar(&cfg.StrictWebsite, "s", cfg.StrictWebsite, "require http:// or https:// websites")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	cfg.NotificationTTL = time.Duration(*ttl) * time.Millisecond
	cfg.SubmitDelay = time.Duration(*delay) * time.Millisecond
	return nil
}
