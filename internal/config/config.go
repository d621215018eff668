// Package config loads controller settings from a YAML file with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielpatrickdp/synthai/go-core/internal/analysis"
	"github.com/danielpatrickdp/synthai/go-core/internal/logging"
)

// #region types
// Config holds the settings shared by the cmd binaries.
type Config struct {
	Database    string         `yaml:"database"`
	Session     string         `yaml:"session"`
	LogLevel    string         `yaml:"log_level"`
	MetricsFile string         `yaml:"metrics_file"`
	Trigger     string         `yaml:"trigger"`
	Weights     *WeightsConfig `yaml:"weights,omitempty"`
}

// WeightsConfig overrides the hierarchical stage weights.
type WeightsConfig struct {
	Center float64 `yaml:"center"`
	Line   float64 `yaml:"line"`
	Color  float64 `yaml:"color"`
	Tone   float64 `yaml:"tone"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Database: "synthai.db",
		LogLevel: "info",
		Trigger:  "repl",
	}
}

// #endregion types

// #region load
// Load reads path over the defaults, then applies environment overrides.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("unmarshal %s: %w", path, err)
			}
		}
	}

	cfg.Database = envOr("SYNTHAI_DB", cfg.Database)
	cfg.Session = envOr("SYNTHAI_SESSION", cfg.Session)
	cfg.LogLevel = envOr("SYNTHAI_LOG_LEVEL", cfg.LogLevel)
	cfg.MetricsFile = envOr("SYNTHAI_METRICS_FILE", cfg.MetricsFile)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings that would otherwise fail late.
func (c Config) Validate() error {
	if c.Database == "" {
		return fmt.Errorf("validate config: database is required")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	if w := c.Weights; w != nil {
		// Each stage blends (1-w)*acc + w*influence; outside [0,1] the
		// vector can go negative.
		stages := []struct {
			name string
			w    float64
		}{{"center", w.Center}, {"line", w.Line}, {"color", w.Color}, {"tone", w.Tone}}
		for _, st := range stages {
			if st.w < 0 || st.w > 1 {
				return fmt.Errorf("validate config: %s weight %v outside [0,1]", st.name, st.w)
			}
		}
		if w.Center+w.Line+w.Color+w.Tone == 0 {
			return fmt.Errorf("validate config: weights sum to zero")
		}
	}
	return nil
}

// Analysis returns the pipeline configuration with any weight overrides.
func (c Config) Analysis() analysis.Config {
	ac := analysis.DefaultConfig()
	if w := c.Weights; w != nil {
		ac.Weights.Center = w.Center
		ac.Weights.Line = w.Line
		ac.Weights.Color = w.Color
		ac.Weights.Tone = w.Tone
	}
	return ac
}

// #endregion load

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
