package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"patternd/internal/agent"
	"patternd/internal/common/fsutil"
)

// Defaults applied by WithDefaults when corresponding fields are unset.
const (
	DefaultAddr         = ":8080"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "json"
	DefaultMood         = "happy"
	DefaultEventHistory = 100
	DefaultMaxBodyBytes = 1 << 20
)

// HouseConfig sets the levels used when the house turns systems on.
type HouseConfig struct {
	PowerW      int `json:"power_w" yaml:"power_w" toml:"power_w"`
	PressurePSI int `json:"pressure_psi" yaml:"pressure_psi" toml:"pressure_psi"`
}

// Config holds runtime parameters for the daemon.
// Zero values mean "unspecified" and are replaced by WithDefaults.
type Config struct {
	Addr         string      `json:"addr" yaml:"addr" toml:"addr"`
	LogLevel     string      `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat    string      `json:"log_format" yaml:"log_format" toml:"log_format"`
	DefaultMood  string      `json:"default_mood" yaml:"default_mood" toml:"default_mood"`
	CORSOrigins  []string    `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins"`
	EventHistory int         `json:"event_history" yaml:"event_history" toml:"event_history"`
	MaxBodyBytes int64       `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
	House        HouseConfig `json:"house" yaml:"house" toml:"house"`
	// Trace exports notifier spans to stdout.
	Trace bool `json:"trace" yaml:"trace" toml:"trace"`
}

// Default returns a fully populated configuration.
func Default() Config { return Config{}.WithDefaults() }

// WithDefaults returns a copy of c with unset fields filled in.
func (c Config) WithDefaults() Config {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
	if c.DefaultMood == "" {
		c.DefaultMood = DefaultMood
	}
	if c.EventHistory <= 0 {
		c.EventHistory = DefaultEventHistory
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return c
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml. A leading ~ expands to the home directory.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	p, err := fsutil.ExpandHome(path)
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(p)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values no component accepts. Zero values pass; they are
// filled in by WithDefaults.
func (c Config) Validate() error {
	if c.DefaultMood != "" {
		if _, err := agent.ParseMood(c.DefaultMood); err != nil {
			return fmt.Errorf("default_mood: %w", err)
		}
	}
	if c.House.PowerW < 0 {
		return fmt.Errorf("house.power_w must not be negative, got %d", c.House.PowerW)
	}
	if c.House.PressurePSI < 0 {
		return fmt.Errorf("house.pressure_psi must not be negative, got %d", c.House.PressurePSI)
	}
	if c.EventHistory < 0 {
		return fmt.Errorf("event_history must not be negative, got %d", c.EventHistory)
	}
	if c.MaxBodyBytes < 0 {
		return fmt.Errorf("max_body_bytes must not be negative, got %d", c.MaxBodyBytes)
	}
	return nil
}
