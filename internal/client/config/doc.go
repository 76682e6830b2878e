// Package config loads runtime configuration for the PatientKeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string   remote collection URL
//	-t int      request timeout for the initial fetch (seconds, 0 = none)
//	-n int      notification lifetime (milliseconds)
//	-d int      simulated submit latency (milliseconds)
//	-s bool     strict website validation
//	-l string   log level
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "3s" or
// integer nanoseconds. Keys missing from the file keep their prior value:
//
//	{
//	  "remote_url": "https://example.com/users",
//	  "request_timeout": "10s",
//	  "notification_ttl": "3s",
//	  "submit_delay": "500ms",
//	  "strict_website": true,
//	  "log_level": "debug"
//	}
package config
