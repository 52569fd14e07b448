package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/luca-patrignani/showdown/domain/poker"
)

// Config holds the showdown CLI settings.
type Config struct {
	Rules     string `yaml:"rules"     env:"SHOWDOWN_RULES"`     // faithful | standard
	Output    string `yaml:"output"    env:"SHOWDOWN_OUTPUT"`    // panel | plain
	Reference bool   `yaml:"reference" env:"SHOWDOWN_REFERENCE"` // also print the reference evaluator verdict
	LogLevel  string `yaml:"log_level" env:"SHOWDOWN_LOG_LEVEL"` // debug | info | warn | error
}

// Load reads configuration from a YAML file and then applies environment
// overrides. A missing file is not an error; defaults are used instead.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	applyDefaults(cfg)
	return cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Rules:    poker.Faithful.String(),
		Output:   "panel",
		LogLevel: "info",
	}
}

func applyDefaults(cfg *Config) {
	d := Default()
	if cfg.Rules == "" {
		cfg.Rules = d.Rules
	}
	if cfg.Output == "" {
		cfg.Output = d.Output
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = d.LogLevel
	}
}

// Validate rejects unknown rule sets, outputs and log levels.
func (c *Config) Validate() error {
	if _, err := c.RuleSet(); err != nil {
		return err
	}
	switch c.Output {
	case "panel", "plain":
	default:
		return fmt.Errorf("unknown output %q", c.Output)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// RuleSet returns the configured rule set.
func (c *Config) RuleSet() (poker.RuleSet, error) {
	return poker.ParseRuleSet(c.Rules)
}
