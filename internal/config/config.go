// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers defaults, an optional YAML file and environment variables.
// - External errors are wrapped via this package's sentinel kinds.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// SourceURL is the event feed location. Required: this is the one
	// deployment fact the service cannot guess. Which artifact it points
	// at (events.json vs events_upcoming.json) is deployment choice; the
	// data contract is identical.
	SourceURL string `koanf:"source_url"`

	// RequestTimeoutMS bounds the feed request.
	RequestTimeoutMS int `koanf:"request_timeout_ms"`

	// RetryMax is the number of retries after the first fetch attempt.
	// The default 0 keeps the one-attempt-per-load contract.
	RetryMax int `koanf:"retry_max"`

	// RefreshCron re-runs the loader on a schedule. Empty disables it.
	RefreshCron string `koanf:"refresh_cron"`

	// CommunityURL is surfaced to the browser UI as the community link.
	// Empty hides the link.
	CommunityURL string `koanf:"community_url"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":8080",
		SourceURL:        "",
		RequestTimeoutMS: 10_000,
		RetryMax:         0,
		RefreshCron:      "",
		CommunityURL:     "",
	}
}
