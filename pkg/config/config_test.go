package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Logging.Level != "INFO" {
		t.Errorf("Logging.Level = %q, want INFO", cfg.Logging.Level)
	}
	if cfg.Recording.DumpFrames != 64 {
		t.Errorf("Recording.DumpFrames = %d, want 64", cfg.Recording.DumpFrames)
	}
	if cfg.Watch.Debounce != 250*time.Millisecond {
		t.Errorf("Watch.Debounce = %v, want 250ms", cfg.Watch.Debounce)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	configContent := `
logging:
  level: "debug"
  format: "json"

recording:
  default_author: "alice"
  dump_frames: 120

watch:
  debounce: "1s"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Levels are normalized to uppercase by ApplyDefaults.
	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("Logging.Level = %q, want DEBUG", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
	}
	if cfg.Recording.DefaultAuthor != "alice" {
		t.Errorf("Recording.DefaultAuthor = %q, want alice", cfg.Recording.DefaultAuthor)
	}
	if cfg.Recording.DumpFrames != 120 {
		t.Errorf("Recording.DumpFrames = %d, want 120", cfg.Recording.DumpFrames)
	}
	if cfg.Watch.Debounce != time.Second {
		t.Errorf("Watch.Debounce = %v, want 1s", cfg.Watch.Debounce)
	}
}

func TestLoad_PartialFileGetsDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	configContent := `
recording:
  default_author: "bob"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Recording.DefaultAuthor != "bob" {
		t.Errorf("Recording.DefaultAuthor = %q, want bob", cfg.Recording.DefaultAuthor)
	}
	if cfg.Logging.Level != "INFO" {
		t.Errorf("Logging.Level = %q, want default INFO", cfg.Logging.Level)
	}
	if cfg.Recording.DumpFrames != 64 {
		t.Errorf("Recording.DumpFrames = %d, want default 64", cfg.Recording.DumpFrames)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("logging: ["), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Fatal("Load() with invalid YAML succeeded, want error")
	}
}

