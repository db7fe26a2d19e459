// Package events defines the notifications emitted by heroes when they act.
//
// Available kinds:
//   - KindPowerUsed: a power was used and energy consumed
//   - KindRested: energy was recovered
//   - KindGadgetUsed: a tech hero used one of its gadgets
//   - KindExhausted: a power use was refused because energy is depleted
//   - KindInvalidSelection: a power index or gadget name did not resolve
package events
