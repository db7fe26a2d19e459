package model

import (
	"fmt"
	"strings"

	"github.com/kilianp07/superheroes/core/events"
)

// Gadget is a named piece of equipment carried by a TechHero.
type Gadget struct {
	Name        string
	Description string
}

// TechHero is a hero relying on gadgets. Power usage costs the same as BaseHero.
type TechHero struct {
	BaseHero
	order   []string
	gadgets map[string]string
}

// NewTechHero creates a tech hero. Gadget names are unique: a repeated name
// keeps its first position and takes the last description.
func NewTechHero(id Identity, gadgets []Gadget, n events.Notifier) *TechHero {
	t := &TechHero{
		BaseHero: *NewBaseHero(id, n),
		gadgets:  make(map[string]string, len(gadgets)),
	}
	for _, g := range gadgets {
		if _, ok := t.gadgets[g.Name]; !ok {
			t.order = append(t.order, g.Name)
		}
		t.gadgets[g.Name] = g.Description
	}
	return t
}

// Gadgets returns the gadgets in declaration order.
func (t *TechHero) Gadgets() []Gadget {
	out := make([]Gadget, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, Gadget{Name: name, Description: t.gadgets[name]})
	}
	return out
}

// UseGadget reports the gadget description. It never changes energy.
func (t *TechHero) UseGadget(name string) {
	desc, ok := t.gadgets[name]
	if !ok {
		t.notify(events.ActionUseGadget, events.KindInvalidSelection, 0,
			fmt.Sprintf("%s doesn't have that gadget!", t.name))
		return
	}
	t.notify(events.ActionUseGadget, events.KindGadgetUsed, 0,
		fmt.Sprintf("%s uses %s: %s!", t.name, name, desc))
}

// Describe extends the base description with the gadget names.
func (t *TechHero) Describe() string {
	return t.BaseHero.Describe() + "\nGadgets: " + strings.Join(t.order, ", ")
}

func (t *TechHero) String() string { return t.Describe() }

var (
	_ Hero       = (*TechHero)(nil)
	_ GadgetUser = (*TechHero)(nil)
)
