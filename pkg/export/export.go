// Package export writes scenario results in machine-readable formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/kilianp07/superheroes/scenario"
)

// HeroEnergy is one exported row.
type HeroEnergy struct {
	Hero   string `json:"hero"`
	Energy int    `json:"energy"`
}

// Report is the JSON document written by WriteJSON.
type Report struct {
	Scenario   string       `json:"scenario"`
	Actions    int          `json:"actions"`
	Heroes     []HeroEnergy `json:"heroes"`
	Mismatches []string     `json:"mismatches,omitempty"`
}

// NewReport flattens res with heroes sorted by name.
func NewReport(res scenario.Result) Report {
	names := make([]string, 0, len(res.Energy))
	for name := range res.Energy {
		names = append(names, name)
	}
	sort.Strings(names)
	heroes := make([]HeroEnergy, len(names))
	for i, name := range names {
		heroes[i] = HeroEnergy{Hero: name, Energy: res.Energy[name]}
	}
	return Report{Scenario: res.Scenario, Actions: res.Actions, Heroes: heroes, Mismatches: res.Mismatches}
}

// WriteJSON writes the result as a single JSON document.
func WriteJSON(w io.Writer, res scenario.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewReport(res))
}

// WriteCSV writes one hero,energy row per hero.
func WriteCSV(w io.Writer, res scenario.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"hero", "energy"}); err != nil {
		return err
	}
	for _, h := range NewReport(res).Heroes {
		if err := cw.Write([]string{h.Hero, strconv.Itoa(h.Energy)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Write dispatches on format: "json" or "csv".
func Write(w io.Writer, format string, res scenario.Result) error {
	switch format {
	case "json":
		return WriteJSON(w, res)
	case "csv":
		return WriteCSV(w, res)
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
}
