// Package models defines data structures for configuration.
package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultSource is the fallback text when no --source is given.
	DefaultSource = "https://gutenberg.net.au/ebooks01/0100021.txt"

	DefaultWorkers   = 8
	DefaultTopN      = 10
	DefaultTimeout   = 25 * time.Second
	DefaultCacheDir  = ".wordfreq-cache"
	DefaultCacheTTL  = 24 * time.Hour
	DefaultChartPath = "top_words.html"
)

// Config holds runtime configuration for a word-count run. Values come from
// built-in defaults, overlaid by an optional config.yaml, overlaid by CLI
// flags.
type Config struct {
	Source    string
	Workers   int
	TopN      int
	Timeout   time.Duration
	CacheDir  string
	CacheTTL  time.Duration
	ChartPath string
	NoChart   bool
}

// fileConfig mirrors Config for YAML decoding; durations are strings in the
// file ("25s", "24h") and parsed with time.ParseDuration.
type fileConfig struct {
	Source    string `yaml:"source"`
	Workers   int    `yaml:"workers"`
	Top       int    `yaml:"top"`
	Timeout   string `yaml:"timeout"`
	CacheDir  string `yaml:"cache_dir"`
	CacheTTL  string `yaml:"cache_ttl"`
	ChartPath string `yaml:"chart_out"`
	NoChart   bool   `yaml:"no_chart"`
}

// DefaultConfig returns a Config populated with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Source:    DefaultSource,
		Workers:   DefaultWorkers,
		TopN:      DefaultTopN,
		Timeout:   DefaultTimeout,
		CacheDir:  DefaultCacheDir,
		CacheTTL:  DefaultCacheTTL,
		ChartPath: DefaultChartPath,
	}
}

// LoadConfig overlays the YAML file at path onto the defaults. A missing
// file is not an error; the defaults are returned unchanged.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if fc.Source != "" {
		config.Source = fc.Source
	}
	if fc.Workers > 0 {
		config.Workers = fc.Workers
	}
	if fc.Top > 0 {
		config.TopN = fc.Top
	}
	if fc.Timeout != "" {
		timeout, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout in config file: %w", err)
		}
		config.Timeout = timeout
	}
	if fc.CacheDir != "" {
		config.CacheDir = fc.CacheDir
	}
	if fc.CacheTTL != "" {
		ttl, err := time.ParseDuration(fc.CacheTTL)
		if err != nil {
			return nil, fmt.Errorf("invalid cache_ttl in config file: %w", err)
		}
		config.CacheTTL = ttl
	}
	if fc.ChartPath != "" {
		config.ChartPath = fc.ChartPath
	}
	if fc.NoChart {
		config.NoChart = true
	}

	return config, nil
}
