// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) returning a Config with defaults.
// - Load layers defaults, optional YAML file, and environment variables.
// - External errors are wrapped with this package's sentinels.
package config

// Default configuration values.
const (
	defaultAddr            = ":9090"
	defaultReplayCacheSize = 65536
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9090".
	Addr string `koanf:"addr"`

	// ReplayCacheSize bounds the LRU cache that drops duplicate
	// draw request ids at the HTTP boundary.
	ReplayCacheSize int `koanf:"replay_cache_size"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            defaultAddr,
		ReplayCacheSize: defaultReplayCacheSize,
	}
}
