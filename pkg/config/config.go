// Package config loads runner configuration from an optional
// YAML file, with environment variable overrides on top.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variable names recognised as overrides.
const (
	EnvDataDir    = "ADVENT_DATA_DIR"
	EnvResultsDir = "ADVENT_RESULTS_DIR"
	EnvHistory    = "ADVENT_HISTORY"
	EnvLogFile    = "ADVENT_LOG_FILE"
	EnvYear       = "ADVENT_YEAR"
	EnvVerbose    = "ADVENT_VERBOSE"
)

// Config holds the runner settings.
type Config struct {
	// DataDir is the root of the input tree, holding
	// test/<year>/day-NN.txt and puzzle/<year>/day-NN.txt.
	DataDir string `yaml:"data_dir"`

	// ResultsDir receives JSON and Markdown summaries.
	ResultsDir string `yaml:"results_dir"`

	// HistoryPath is the JSON-lines run log. Empty disables
	// history.
	HistoryPath string `yaml:"history"`

	// LogFile receives structured JSON log entries alongside
	// the console output. Empty disables the file log.
	LogFile string `yaml:"log_file"`

	// DefaultYear is the year used when no --year flag is
	// given.
	DefaultYear int `yaml:"default_year"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		DataDir:     "data",
		ResultsDir:  "results",
		DefaultYear: 2022,
	}
}

// Load reads configuration from path, falling back to defaults
// when the file does not exist. Environment variables override
// file values either way.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Optional file; defaults plus env apply.
	case err != nil:
		return nil, fmt.Errorf(
			"failed to read config file %s: %w", path, err,
		)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf(
				"failed to parse config file %s: %w",
				path, err,
			)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays ADVENT_* environment variables onto the
// config.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvResultsDir); v != "" {
		c.ResultsDir = v
	}
	if v := os.Getenv(EnvHistory); v != "" {
		c.HistoryPath = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv(EnvYear); v != "" {
		if year, err := strconv.Atoi(v); err == nil {
			c.DefaultYear = year
		}
	}
	if v := os.Getenv(EnvVerbose); v != "" {
		if verbose, err := strconv.ParseBool(v); err == nil {
			c.Verbose = verbose
		}
	}
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	if c.DefaultYear < 2015 {
		return fmt.Errorf(
			"default_year %d predates the first event",
			c.DefaultYear,
		)
	}
	return nil
}
