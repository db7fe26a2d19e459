package model

import (
	"fmt"

	"github.com/kilianp07/superheroes/core/events"
)

// MutantHero uses powers at MutantPowerCost instead of BasePowerCost.
type MutantHero struct {
	BaseHero
	mutationLevel int // expected 0-10, not enforced
}

// NewMutantHero creates a mutant hero with the given mutation level.
func NewMutantHero(id Identity, mutationLevel int, n events.Notifier) *MutantHero {
	return &MutantHero{BaseHero: *NewBaseHero(id, n), mutationLevel: mutationLevel}
}

func (m *MutantHero) MutationLevel() int { return m.mutationLevel }

// UsePower uses the power at index for MutantPowerCost energy.
func (m *MutantHero) UsePower(index int) {
	m.BaseHero.usePower(index, MutantPowerCost, " with mutant efficiency")
}

// Describe extends the base description with the mutation level.
func (m *MutantHero) Describe() string {
	return fmt.Sprintf("%s\nMutation Level: %d/10", m.BaseHero.Describe(), m.mutationLevel)
}

func (m *MutantHero) String() string { return m.Describe() }

var _ Hero = (*MutantHero)(nil)
