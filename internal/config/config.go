package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nguyentantai21042004/vtt2text/internal/logger"
)

// DefaultPath is the config file picked up from the working directory
const DefaultPath = "vtt2text.yaml"

// EnvLogLevel overrides logging.level when set
const EnvLogLevel = "VTT2TEXT_LOG_LEVEL"

const (
	FormatText = "txt"
	FormatDocx = "docx"
)

type Config struct {
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Watch       WatchConfig       `yaml:"watch"`
}

type OutputConfig struct {
	Format    string `yaml:"format"`
	JoinLines bool   `yaml:"join_lines"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type WatchConfig struct {
	SettleDelay time.Duration `yaml:"settle_delay"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Output:      OutputConfig{Format: FormatText},
		Logging:     LoggingConfig{Level: "info"},
		Performance: PerformanceConfig{MaxConcurrent: 1},
		Watch:       WatchConfig{SettleDelay: 500 * time.Millisecond},
	}
}

// Load reads a YAML config file. Fields missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Logging.Level = level
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but falls back to Default when path does not exist
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = Default()
		if level := os.Getenv(EnvLogLevel); level != "" {
			cfg.Logging.Level = level
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
		return cfg, nil
	}
	return cfg, err
}

// Validate normalises and checks the config. Empty strings and a zero
// max_concurrent get defaults; a zero settle_delay is kept and disables
// the delay.
func (c *Config) Validate() error {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	switch c.Output.Format {
	case "":
		c.Output.Format = FormatText
	case FormatText, FormatDocx:
	default:
		return fmt.Errorf("output.format must be %q or %q, got %q", FormatText, FormatDocx, c.Output.Format)
	}

	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must not be negative")
	}
	if c.Watch.SettleDelay < 0 {
		return fmt.Errorf("watch.settle_delay must not be negative")
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if !logger.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}

	return nil
}

// Extension returns the output file extension for the configured format
func (c *Config) Extension() string {
	return "." + c.Output.Format
}
