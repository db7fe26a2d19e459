package scenario

import (
	"errors"
	"fmt"
	"sort"

	"github.com/kilianp07/superheroes/core/model"
	"github.com/kilianp07/superheroes/core/roster"
)

var (
	ErrUnknownHero   = errors.New("unknown hero")
	ErrUnknownAction = errors.New("unknown action")
	ErrNoGadgets     = errors.New("hero carries no gadgets")
)

// Output receives free-form lines such as hero descriptions.
type Output interface {
	Println(s string)
}

// Result summarises a run.
type Result struct {
	Scenario string
	// Actions counts executed hero actions, repeats included.
	Actions int
	Energy  map[string]int
	// Mismatches lists expectations the final state did not meet.
	Mismatches []string
}

// OK reports whether every expectation was met.
func (r Result) OK() bool { return len(r.Mismatches) == 0 }

// Validate checks every step resolves against rs without running anything.
func (sc *Scenario) Validate(rs *roster.Roster) error {
	for i, st := range sc.Steps {
		if err := validateStep(rs, st); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	for name := range sc.Expected.Energy {
		if _, ok := rs.Get(name); !ok {
			return fmt.Errorf("expected energy: %w %s", ErrUnknownHero, name)
		}
	}
	return nil
}

func validateStep(rs *roster.Roster, st Step) error {
	switch st.Action {
	case ActionSay:
		return nil
	case ActionDescribe, ActionUsePower, ActionRest, ActionEnergy, ActionUseGadget:
	default:
		return fmt.Errorf("%w %q", ErrUnknownAction, st.Action)
	}
	h, ok := rs.Get(st.Hero)
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownHero, st.Hero)
	}
	if st.Action == ActionUseGadget {
		if _, ok := h.(model.GadgetUser); !ok {
			return fmt.Errorf("%s: %w", st.Hero, ErrNoGadgets)
		}
	}
	return nil
}

// Run validates sc against rs, then executes its steps in order. Hero
// outcomes, including refused actions, are reported through the heroes'
// notifier; only malformed steps make Run fail.
func Run(rs *roster.Roster, sc *Scenario, out Output) (Result, error) {
	res := Result{Scenario: sc.Name}
	if err := sc.Validate(rs); err != nil {
		return res, err
	}
	for _, st := range sc.Steps {
		for i := 0; i < st.times(); i++ {
			if runStep(rs, st, out) {
				res.Actions++
			}
		}
	}
	res.Energy = rs.Energy()
	res.Mismatches = compare(sc.Expected, res.Energy)
	return res, nil
}

// runStep executes a validated step and reports whether it was a hero action.
func runStep(rs *roster.Roster, st Step, out Output) bool {
	if st.Action == ActionSay {
		out.Println(st.Text)
		return false
	}
	h, _ := rs.Get(st.Hero)
	switch st.Action {
	case ActionDescribe:
		out.Println(h.Describe())
		return false
	case ActionEnergy:
		out.Println(fmt.Sprintf("%s's energy: %d%%", h.Name(), h.Energy()))
		return false
	case ActionUsePower:
		h.UsePower(st.Index)
	case ActionRest:
		h.Rest()
	case ActionUseGadget:
		h.(model.GadgetUser).UseGadget(st.Gadget)
	}
	return true
}

func compare(exp Expected, energy map[string]int) []string {
	names := make([]string, 0, len(exp.Energy))
	for name := range exp.Energy {
		names = append(names, name)
	}
	sort.Strings(names)
	var out []string
	for _, name := range names {
		if got, want := energy[name], exp.Energy[name]; got != want {
			out = append(out, fmt.Sprintf("%s: expected energy %d, got %d", name, want, got))
		}
	}
	return out
}
