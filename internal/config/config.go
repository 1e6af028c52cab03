// Package config defines process configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load(ctx) layers defaults, an optional YAML file, and env vars.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// RubricPath optionally points at a YAML rubric definition.
	// When empty the built-in rubric is used.
	RubricPath string `koanf:"rubric_path"`

	// AutosaveDebounceMS is the inactivity window before buffered edits commit.
	AutosaveDebounceMS int `koanf:"autosave_debounce_ms"`

	// MaxSelection bounds the number of assessments staged for comparison.
	MaxSelection int `koanf:"max_selection"`

	// PageSize is the batch size for incremental list loading.
	PageSize int `koanf:"page_size"`

	// FetchDelayMS simulates backend latency for incremental list loading.
	FetchDelayMS int `koanf:"fetch_delay_ms"`

	// RecorderSeed seeds the simulated audio recorder for reproducible runs.
	RecorderSeed int64 `koanf:"recorder_seed"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		RubricPath:         "",
		AutosaveDebounceMS: 800,
		MaxSelection:       3,
		PageSize:           25,
		FetchDelayMS:       600,
		RecorderSeed:       42,
	}
}
