package config

import (
	"strings"
	"time"
)

// Default values for unspecified configuration fields.
const (
	defaultLogLevel      = "INFO"
	defaultLogFormat     = "text"
	defaultLogOutput     = "stderr"
	defaultDumpFrames    = 64
	defaultWatchDebounce = 250 * time.Millisecond
)

// GetDefaultConfig returns a configuration populated entirely with defaults.
func GetDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults sets default values for any unspecified configuration
// fields. Zero values are replaced; explicit values are preserved.
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyRecordingDefaults(&cfg.Recording)
	applyWatchDefaults(&cfg.Watch)
}

// applyLoggingDefaults sets logging defaults and normalizes the level.
func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = defaultLogLevel
	}
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = defaultLogFormat
	}
	if cfg.Output == "" {
		cfg.Output = defaultLogOutput
	}
}

func applyRecordingDefaults(cfg *RecordingConfig) {
	if cfg.DumpFrames == 0 {
		cfg.DumpFrames = defaultDumpFrames
	}
}

func applyWatchDefaults(cfg *WatchConfig) {
	if cfg.Debounce == 0 {
		cfg.Debounce = defaultWatchDebounce
	}
}
