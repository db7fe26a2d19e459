package scenario

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Step actions.
const (
	ActionDescribe  = "describe"
	ActionUsePower  = "use_power"
	ActionRest      = "rest"
	ActionUseGadget = "use_gadget"
	ActionEnergy    = "energy"
	ActionSay       = "say"
)

//go:embed default.yaml
var defaultScenario []byte

// Step is one hero action. Repeat runs it several times; zero means once.
type Step struct {
	Hero   string `yaml:"hero,omitempty"`
	Action string `yaml:"action"`
	Index  int    `yaml:"index,omitempty"`
	Gadget string `yaml:"gadget,omitempty"`
	Text   string `yaml:"text,omitempty"`
	Repeat int    `yaml:"repeat,omitempty"`
}

func (s Step) times() int {
	if s.Repeat <= 0 {
		return 1
	}
	return s.Repeat
}

type Expected struct {
	// Energy maps hero names to their energy level at the end of the run.
	Energy map[string]int `yaml:"energy,omitempty"`
}

type Scenario struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Steps       []Step   `yaml:"steps"`
	Expected    Expected `yaml:"expected"`
}

// Load reads a YAML scenario from path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a YAML scenario.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", sc.Name)
	}
	return &sc, nil
}

// Default returns the built-in demonstration run on the default roster.
func Default() *Scenario {
	sc, err := Parse(defaultScenario)
	if err != nil {
		panic(fmt.Sprintf("embedded scenario: %v", err))
	}
	return sc
}
