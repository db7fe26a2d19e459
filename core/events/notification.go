package events

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrExhausted is reported when a hero has no energy left to use a power.
	ErrExhausted = errors.New("hero exhausted")
	// ErrInvalidSelection is reported for an unknown power index or gadget.
	ErrInvalidSelection = errors.New("invalid selection")
)

// Kind classifies the outcome of a hero action.
type Kind int

const (
	KindPowerUsed Kind = iota
	KindRested
	KindGadgetUsed
	KindExhausted
	KindInvalidSelection
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindPowerUsed:
		return "power_used"
	case KindRested:
		return "rested"
	case KindGadgetUsed:
		return "gadget_used"
	case KindExhausted:
		return "exhausted"
	case KindInvalidSelection:
		return "invalid_selection"
	default:
		return "unknown"
	}
}

// Action names the hero operation that produced a notification.
type Action string

const (
	ActionUsePower  Action = "use_power"
	ActionRest      Action = "rest"
	ActionUseGadget Action = "use_gadget"
)

// Notification describes the outcome of a single hero action.
type Notification struct {
	ID      string
	Hero    string
	Action  Action
	Kind    Kind
	Message string
	// Energy is the hero energy level after the action.
	Energy int
	// Cost is the energy consumed by the action, zero when refused.
	Cost int
	Time time.Time
}

// New returns a notification stamped with a fresh ID and the current time.
func New(hero string, action Action, kind Kind, msg string, energy, cost int) Notification {
	return Notification{
		ID:      uuid.NewString(),
		Hero:    hero,
		Action:  action,
		Kind:    kind,
		Message: msg,
		Energy:  energy,
		Cost:    cost,
		Time:    time.Now(),
	}
}

// Failed returns true when the action was refused.
func (n Notification) Failed() bool {
	return n.Kind == KindExhausted || n.Kind == KindInvalidSelection
}

// Err maps refused actions to ErrExhausted or ErrInvalidSelection.
func (n Notification) Err() error {
	switch n.Kind {
	case KindExhausted:
		return ErrExhausted
	case KindInvalidSelection:
		return ErrInvalidSelection
	default:
		return nil
	}
}
