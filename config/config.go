package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/superheroes/core/metrics"
)

type Config struct {
	Heroes   []HeroDef      `json:"heroes"`
	Metrics  metrics.Config `json:"metrics"`
	Logging  LoggingConfig  `json:"logging"`
	Scenario ScenarioConfig `json:"scenario"`
}

// Default returns the built-in configuration: the default roster, no
// metrics sinks and info logging.
func Default() *Config {
	cfg := &Config{Heroes: DefaultRoster()}
	cfg.SetDefaults()
	return cfg
}

// Load reads the configuration at path and applies K_ prefixed environment
// overrides (K_LOGGING__LEVEL=debug sets logging.level). An empty path
// returns Default.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider("K_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "k_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults applies section defaults. A config without heroes gets the
// default roster.
func (c *Config) SetDefaults() {
	if len(c.Heroes) == 0 {
		c.Heroes = DefaultRoster()
	}
	for i := range c.Heroes {
		c.Heroes[i].SetDefaults()
	}
	c.Logging.SetDefaults()
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := ValidateRoster(c.Heroes); err != nil {
		return err
	}
	if err := c.Metrics.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return c.Scenario.Validate()
}
