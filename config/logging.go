package config

import (
	corelogger "github.com/kilianp07/superheroes/core/logger"
)

// LoggingConfig defines the process log level.
type LoggingConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `json:"level"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = string(corelogger.LevelInfo)
	}
}

// Validate checks the level name.
func (c LoggingConfig) Validate() error {
	_, err := corelogger.ParseLevel(c.Level)
	return err
}

// ParsedLevel returns the configured level, LevelInfo when invalid.
func (c LoggingConfig) ParsedLevel() corelogger.Level {
	l, err := corelogger.ParseLevel(c.Level)
	if err != nil {
		return corelogger.LevelInfo
	}
	return l
}
