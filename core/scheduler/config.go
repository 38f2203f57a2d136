package scheduler

// Config holds the periodic refresh settings.
type Config struct {
	// RefreshIntervalMinutes is the period between scheduled refreshes. Zero disables scheduling.
	RefreshIntervalMinutes int `mapstructure:"refresh_interval_minutes" default:"0"`
	// RefreshOnStart runs the first refresh as soon as the scheduler starts.
	RefreshOnStart bool `mapstructure:"refresh_on_start" default:"false"`
	// JobTimeoutSeconds bounds a single scheduled run.
	JobTimeoutSeconds int `mapstructure:"job_timeout_seconds" default:"120"`
}

// Enabled reports whether a refresh interval is configured.
func (c Config) Enabled() bool {
	return c.RefreshIntervalMinutes > 0
}
