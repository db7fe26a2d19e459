package config

import "fmt"

// ScenarioConfig selects the scenario run by the CLI.
type ScenarioConfig struct {
	// Path to a YAML scenario. Empty runs the built-in demonstration.
	Path string `json:"path"`
	// Report prints the final energy table after the run: json or csv.
	Report string `json:"report"`
}

// Validate checks the report format.
func (c ScenarioConfig) Validate() error {
	switch c.Report {
	case "", "json", "csv":
		return nil
	default:
		return fmt.Errorf("scenario: unsupported report format %q", c.Report)
	}
}
