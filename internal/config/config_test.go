package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "docx format",
			config: Config{
				Output: OutputConfig{Format: "DOCX"},
			},
			wantErr: false,
		},
		{
			name: "unknown format",
			config: Config{
				Output: OutputConfig{Format: "pdf"},
			},
			wantErr: true,
		},
		{
			name: "negative concurrency",
			config: Config{
				Performance: PerformanceConfig{MaxConcurrent: -1},
			},
			wantErr: true,
		},
		{
			name: "unknown log level",
			config: Config{
				Logging: LoggingConfig{Level: "verbose"},
			},
			wantErr: true,
		},
		{
			name: "negative settle delay",
			config: Config{
				Watch: WatchConfig{SettleDelay: -time.Second},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output.Format != FormatText {
		t.Errorf("Format = %v, want %v", cfg.Output.Format, FormatText)
	}
	if cfg.Extension() != ".txt" {
		t.Errorf("Extension() = %v, want %v", cfg.Extension(), ".txt")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %v, want %v", cfg.Logging.Level, "info")
	}
	if cfg.Performance.MaxConcurrent != 1 {
		t.Errorf("MaxConcurrent = %v, want %v", cfg.Performance.MaxConcurrent, 1)
	}
	if cfg.Watch.SettleDelay != 500*time.Millisecond {
		t.Errorf("SettleDelay = %v, want %v", cfg.Watch.SettleDelay, 500*time.Millisecond)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vtt2text.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvLogLevel, "")

	path := writeConfig(t, `
output:
  format: "docx"
  join_lines: true

logging:
  level: "debug"

watch:
  settle_delay: 2s
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output.Format != FormatDocx {
		t.Errorf("Format = %v, want %v", cfg.Output.Format, FormatDocx)
	}
	if !cfg.Output.JoinLines {
		t.Error("JoinLines = false, want true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %v, want %v", cfg.Logging.Level, "debug")
	}
	if cfg.Watch.SettleDelay != 2*time.Second {
		t.Errorf("SettleDelay = %v, want %v", cfg.Watch.SettleDelay, 2*time.Second)
	}
	// not in the file, keeps its default
	if cfg.Performance.MaxConcurrent != 1 {
		t.Errorf("MaxConcurrent = %v, want %v", cfg.Performance.MaxConcurrent, 1)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")

	cfg, err := Load(writeConfig(t, "logging:\n  level: debug\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Level = %v, want %v", cfg.Logging.Level, "error")
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "output: [unterminated"},
		{"bad format", "output:\n  format: pdf\n"},
		{"unknown log level", "logging:\n  level: trace\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("Load() should return error")
			}
		})
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadOrDefault(t *testing.T) {
	t.Setenv(EnvLogLevel, "")

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.Output.Format != FormatText {
		t.Errorf("Format = %v, want %v", cfg.Output.Format, FormatText)
	}

	if _, err := LoadOrDefault(writeConfig(t, "output:\n  format: pdf\n")); err == nil {
		t.Error("LoadOrDefault() should still report an invalid existing file")
	}
}

func TestLoadZeroSettleDelay(t *testing.T) {
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load(writeConfig(t, "watch:\n  settle_delay: 0s\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Watch.SettleDelay != 0 {
		t.Errorf("SettleDelay = %v, want 0", cfg.Watch.SettleDelay)
	}
}

func TestLoadNormalisesLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load(writeConfig(t, "logging:\n  level: \" WARN \"\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %v, want %v", cfg.Logging.Level, "warn")
	}
}

func TestLoadEnvInvalidLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "trace")

	if _, err := Load(writeConfig(t, "output:\n  format: txt\n")); err == nil {
		t.Error("Load() should reject an unknown level from the environment")
	}
	if _, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadOrDefault() should reject an unknown level from the environment")
	}
}
