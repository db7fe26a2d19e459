// Package roster keeps the heroes taking part in a run, in declaration order.
package roster

import (
	"fmt"

	"github.com/kilianp07/superheroes/core/model"
)

// Roster indexes heroes by name. It is not safe for concurrent use.
type Roster struct {
	order  []model.Hero
	byName map[string]model.Hero
}

// New returns an empty roster.
func New() *Roster {
	return &Roster{byName: make(map[string]model.Hero)}
}

// Add appends h. Hero names are unique.
func (r *Roster) Add(h model.Hero) error {
	if _, ok := r.byName[h.Name()]; ok {
		return fmt.Errorf("hero %s already in roster", h.Name())
	}
	r.order = append(r.order, h)
	r.byName[h.Name()] = h
	return nil
}

// Get returns the hero named name.
func (r *Roster) Get(name string) (model.Hero, bool) {
	h, ok := r.byName[name]
	return h, ok
}

// Heroes returns the heroes in the order they were added.
func (r *Roster) Heroes() []model.Hero {
	return append([]model.Hero(nil), r.order...)
}

// Len returns the number of heroes.
func (r *Roster) Len() int { return len(r.order) }

// Energy returns the current energy level of every hero by name.
func (r *Roster) Energy() map[string]int {
	out := make(map[string]int, len(r.order))
	for _, h := range r.order {
		out[h.Name()] = h.Energy()
	}
	return out
}
