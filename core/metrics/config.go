package metrics

import (
	"fmt"

	"github.com/kilianp07/superheroes/core/factory"
)

// Config defines settings for metrics sinks.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
	// PrometheusAddr serves /metrics when set and keeps the process alive
	// after the scenario until it is interrupted.
	PrometheusAddr string `json:"prometheus_addr"`
}

// Validate checks every sink names a type.
func (c Config) Validate() error {
	for i, s := range c.Sinks {
		if s.Type == "" {
			return fmt.Errorf("metrics sink %d: type is required", i)
		}
	}
	return nil
}
