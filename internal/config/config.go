// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// DefaultPath is the config file picked up from the working directory when --config is not given
const DefaultPath = "rsb.toml"

// Environment variables that override file values
const (
	EnvLogLevel  = "RSB_LOG_LEVEL"
	EnvLogFormat = "RSB_LOG_FORMAT"
)

// Config represents the CLI configuration that can be loaded from a TOML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Logging
	LogLevel  string `toml:"log_level" validate:"omitempty,oneof=trace debug info warn error"`
	LogFormat string `toml:"log_format" validate:"omitempty,oneof=console json"`

	// Ingestion
	JsonnetPaths []string `toml:"jsonnet_paths" validate:"dive,required"` // Extra jsonnet library directories

	// Lint
	Schema string `toml:"schema"` // JSON Schema file overriding the embedded resume schema
	Strict bool   `toml:"strict"` // Fail validation on any lint finding

	// Export
	PDFTimeout time.Duration `toml:"pdf_timeout" validate:"gte=0"` // e.g. "45s"
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		LogLevel:   "info",
		LogFormat:  "console",
		PDFTimeout: 30 * time.Second,
	}
}

var configValidator = validator.New()

// LoadConfig loads configuration from a TOML file.
// Returns an error if the file cannot be read or parsed, or carries unknown keys.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config TOML: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("config error: unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	return &cfg, nil
}

// Resolve builds the effective configuration: the file at path (or ./rsb.toml when path
// is empty and that file exists), then environment overrides, then defaults. The result
// is validated.
func Resolve(path string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		if _, err := os.Stat(DefaultPath); err == nil {
			path = DefaultPath
		}
	}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.ApplyEnv(lookupEnv)
	merged := cfg.MergeWithDefaults(Defaults())

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// ApplyEnv overrides logging settings from RSB_LOG_LEVEL and RSB_LOG_FORMAT
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) {
	if lookupEnv == nil {
		return
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.LogFormat = strings.ToLower(v)
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check that referenced files exist; the commands report that
// when they use them.
func (c *Config) Validate() error {
	err := configValidator.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("config error: %w", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("config error: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.StructField() {
	case "LogLevel":
		return fmt.Sprintf("'log_level' must be one of: %s (got %q)", fe.Param(), fe.Value())
	case "LogFormat":
		return fmt.Sprintf("'log_format' must be one of: %s (got %q)", fe.Param(), fe.Value())
	case "PDFTimeout":
		return "'pdf_timeout' must be non-negative"
	case "JsonnetPaths":
		return "'jsonnet_paths' must not contain empty entries"
	default:
		return fe.Error()
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}
	if result.Schema == "" {
		result.Schema = defaults.Schema
	}
	if len(result.JsonnetPaths) == 0 {
		result.JsonnetPaths = defaults.JsonnetPaths
	}
	if result.PDFTimeout == 0 {
		result.PDFTimeout = defaults.PDFTimeout
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
