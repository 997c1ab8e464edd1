// Package config loads zoneterm settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when -config is not given.
const DefaultPath = "zoneterm.yaml"

// Config holds runtime settings.
type Config struct {
	Symbol       string        `yaml:"symbol"`
	TickInterval time.Duration `yaml:"tick_interval"`
	// AnalyzeEvery runs the strategy on every Nth price sample.
	AnalyzeEvery int `yaml:"analyze_every"`

	SaveFile string `yaml:"save_file"`

	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`

	Endpoint          string  `yaml:"endpoint"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`

	AlertCapacity int `yaml:"alert_capacity"`
}

func Default() Config {
	return Config{
		Symbol:            "ETHUSDT",
		TickInterval:      2 * time.Second,
		AnalyzeEvery:      5,
		SaveFile:          "bot_data.json",
		LogFile:           "zoneterm.log",
		LogLevel:          "info",
		Endpoint:          "https://api.binance.com",
		RequestsPerSecond: 5,
		AlertCapacity:     50,
	}
}

// Load reads path and merges it over Default. A missing file yields the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var override Config
	if err := yaml.Unmarshal(data, &override); err != nil {
		return Config{}, fmt.Errorf("parsing YAML: %w", err)
	}
	merge(&cfg, &override)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// merge copies the fields set in override into base.
func merge(base, override *Config) {
	if override.Symbol != "" {
		base.Symbol = override.Symbol
	}
	if override.TickInterval != 0 {
		base.TickInterval = override.TickInterval
	}
	if override.AnalyzeEvery != 0 {
		base.AnalyzeEvery = override.AnalyzeEvery
	}
	if override.SaveFile != "" {
		base.SaveFile = override.SaveFile
	}
	if override.LogFile != "" {
		base.LogFile = override.LogFile
	}
	if override.LogLevel != "" {
		base.LogLevel = override.LogLevel
	}
	if override.Endpoint != "" {
		base.Endpoint = override.Endpoint
	}
	if override.RequestsPerSecond != 0 {
		base.RequestsPerSecond = override.RequestsPerSecond
	}
	if override.AlertCapacity != 0 {
		base.AlertCapacity = override.AlertCapacity
	}
}

var ErrInvalid = errors.New("invalid config")

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Symbol) == "" {
		errs = append(errs, fmt.Errorf("%w: symbol is required", ErrInvalid))
	}
	if c.TickInterval < 100*time.Millisecond {
		errs = append(errs, fmt.Errorf("%w: tick_interval %s is below 100ms", ErrInvalid, c.TickInterval))
	}
	if c.AnalyzeEvery < 1 {
		errs = append(errs, fmt.Errorf("%w: analyze_every must be at least 1", ErrInvalid))
	}
	if c.SaveFile == "" {
		errs = append(errs, fmt.Errorf("%w: save_file is required", ErrInvalid))
	}
	if c.AlertCapacity < 1 {
		errs = append(errs, fmt.Errorf("%w: alert_capacity must be at least 1", ErrInvalid))
	}
	if c.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("%w: requests_per_second must not be negative", ErrInvalid))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("%w: unknown log_level %q", ErrInvalid, c.LogLevel))
	}
	return errors.Join(errs...)
}
