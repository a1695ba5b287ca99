package config

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"gopkg.in/yaml.v3"
)

// DefaultBatchSize is the number of rows read from Parquet per call.
const DefaultBatchSize = 1024

// Config holds all runtime configuration for a datenorm run.
type Config struct {
	DSN        string
	InputPath  string
	OutputPath string
	LogFormat  string // "text" or "json"
	LogLevel   string
	Timezone   string // IANA name; empty means the process local zone
	BatchSize  int    // rows per Parquet read
}

// yamlConfig is the on-disk YAML structure. Zero values leave Config as-is.
type yamlConfig struct {
	Timezone  string `yaml:"timezone"`
	BatchSize int    `yaml:"batch_size"`
	LogFormat string `yaml:"log_format"`
	LogLevel  string `yaml:"log_level"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if yc.Timezone != "" {
		c.Timezone = yc.Timezone
	}
	if yc.BatchSize != 0 {
		c.BatchSize = yc.BatchSize
	}
	if yc.LogFormat != "" {
		c.LogFormat = yc.LogFormat
	}
	if yc.LogLevel != "" {
		c.LogLevel = yc.LogLevel
	}
	return c.validateSettings()
}

// validateSettings checks the values that may come from either flags or a file.
// A zero BatchSize defaults to DefaultBatchSize.
func (c *Config) validateSettings() error {
	if c.BatchSize == 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.BatchSize < 0 {
		return fmt.Errorf("batch_size must be positive, got %d", c.BatchSize)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

// Location resolves Timezone. An empty Timezone is time.Local.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Validate checks required fields and returns an error if the config is invalid.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("--in is required")
	}
	if _, err := os.Stat(c.InputPath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	return c.validateSettings()
}

// ValidateWithOutput checks the input file and that an output path is set.
func (c *Config) ValidateWithOutput() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.OutputPath == "" {
		return fmt.Errorf("--out is required")
	}
	if c.OutputPath == c.InputPath {
		return fmt.Errorf("--out must differ from --in")
	}
	return nil
}

// ValidateWithDSN checks both file and DSN fields.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or DATENORM_DB_URL is required")
	}
	return nil
}
