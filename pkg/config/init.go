package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// configTemplate is the commented sample configuration written by init.
// It mirrors the defaults in defaults.go.
const configTemplate = `# padrec Configuration File
#
# Every option can be overridden with a PADREC_-prefixed environment
# variable, e.g. PADREC_LOGGING_LEVEL=DEBUG.

logging:
  # Minimum log level: DEBUG, INFO, WARN, ERROR
  level: INFO
  # Output format: text, json
  format: text
  # Where logs go: stdout, stderr, or a file path
  output: stderr

recording:
  # Offered as the author when creating a recording without --author
  default_author: ""
  # Default number of frames shown by the dump command
  dump_frames: 64

watch:
  # How long the watcher waits after a change notification before
  # re-reading the file, coalescing bursts of per-byte writes
  debounce: 250ms
`

// InitConfig writes the sample configuration to the default location.
// Returns the path the file was written to.
func InitConfig(force bool) (string, error) {
	path := GetDefaultConfigPath()
	if err := InitConfigToPath(path, force); err != nil {
		return "", err
	}
	return path, nil
}

// InitConfigToPath writes the sample configuration to an explicit path,
// creating parent directories as needed. Refuses to overwrite an existing
// file unless force is set.
func InitConfigToPath(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfigExists reports whether a config file is present at the
// default location.
func DefaultConfigExists() bool {
	_, err := os.Stat(GetDefaultConfigPath())
	return err == nil
}
