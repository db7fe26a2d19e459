package model

import (
	"fmt"
	"strings"

	"github.com/kilianp07/superheroes/core/events"
)

const (
	// MaxEnergy is the energy level a hero starts with and can never exceed.
	MaxEnergy = 100
	// RestRecovery is the energy recovered by a single rest.
	RestRecovery = 30
	// BasePowerCost is the energy consumed by one power use of a base or tech hero.
	BasePowerCost = 10
	// MutantPowerCost is the energy consumed by one power use of a mutant hero.
	MutantPowerCost = 5
)

// Hero is the behaviour shared by every hero variant.
type Hero interface {
	Name() string
	SecretIdentity() string
	Powers() []string
	OriginStory() string
	Energy() int
	UsePower(index int)
	Rest()
	Describe() string
}

// GadgetUser is implemented by heroes carrying gadgets.
type GadgetUser interface {
	UseGadget(name string)
}

// Identity holds the immutable attributes of a hero.
type Identity struct {
	Name           string
	SecretIdentity string
	Powers         []string
	OriginStory    string
}

// BaseHero is the default Hero implementation. Variants embed it and call
// its methods explicitly when extending behaviour.
type BaseHero struct {
	name           string
	secretIdentity string
	powers         []string
	originStory    string
	energy         int
	notifier       events.Notifier
}

// NewBaseHero creates a hero at full energy. A nil notifier discards notifications.
func NewBaseHero(id Identity, n events.Notifier) *BaseHero {
	if n == nil {
		n = events.Nop{}
	}
	return &BaseHero{
		name:           id.Name,
		secretIdentity: id.SecretIdentity,
		powers:         append([]string(nil), id.Powers...),
		originStory:    id.OriginStory,
		energy:         MaxEnergy,
		notifier:       n,
	}
}

func (h *BaseHero) Name() string           { return h.name }
func (h *BaseHero) SecretIdentity() string { return h.secretIdentity }
func (h *BaseHero) OriginStory() string    { return h.originStory }
func (h *BaseHero) Energy() int            { return h.energy }

// Powers returns a copy of the hero powers in declaration order.
func (h *BaseHero) Powers() []string {
	return append([]string(nil), h.powers...)
}

// UsePower uses the power at index for BasePowerCost energy.
func (h *BaseHero) UsePower(index int) {
	h.usePower(index, BasePowerCost, "")
}

// usePower checks exhaustion before the index so a depleted hero always
// reports exhaustion. flourish is appended to the power name in the message.
func (h *BaseHero) usePower(index, cost int, flourish string) {
	if h.energy <= 0 {
		h.notify(events.ActionUsePower, events.KindExhausted, 0,
			fmt.Sprintf("%s is too exhausted to use powers!", h.name))
		return
	}
	if index < 0 || index >= len(h.powers) {
		h.notify(events.ActionUsePower, events.KindInvalidSelection, 0, "Invalid power selection!")
		return
	}
	before := h.energy
	h.setEnergy(h.energy - cost)
	h.notify(events.ActionUsePower, events.KindPowerUsed, before-h.energy,
		fmt.Sprintf("%s uses %s%s!", h.name, h.powers[index], flourish))
}

// Rest recovers RestRecovery energy, capped at MaxEnergy.
func (h *BaseHero) Rest() {
	h.setEnergy(h.energy + RestRecovery)
	h.notify(events.ActionRest, events.KindRested, 0,
		fmt.Sprintf("%s rests and recovers energy. Current energy: %d%%", h.name, h.energy))
}

// Describe summarises the hero identity and powers.
func (h *BaseHero) Describe() string {
	return fmt.Sprintf("%s (Secret Identity: %s) with powers: %s",
		h.name, h.secretIdentity, strings.Join(h.powers, ", "))
}

func (h *BaseHero) String() string { return h.Describe() }

func (h *BaseHero) setEnergy(v int) {
	h.energy = clampEnergy(v)
}

func (h *BaseHero) notify(action events.Action, kind events.Kind, cost int, msg string) {
	h.notifier.Notify(events.New(h.name, action, kind, msg, h.energy, cost))
}

func clampEnergy(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxEnergy {
		return MaxEnergy
	}
	return v
}

var _ Hero = (*BaseHero)(nil)
