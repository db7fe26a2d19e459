package metrics

import (
	"time"

	"github.com/kilianp07/superheroes/core/events"
)

// HeroActionEvent is a single hero action to be recorded.
type HeroActionEvent struct {
	NotificationID string
	Hero           string
	Action         string
	// Outcome is the notification kind, e.g. "power_used" or "exhausted".
	Outcome string
	Energy  int
	Cost    int
	Time    time.Time
}

// FromNotification converts a hero notification into a HeroActionEvent.
func FromNotification(n events.Notification) HeroActionEvent {
	return HeroActionEvent{
		NotificationID: n.ID,
		Hero:           n.Hero,
		Action:         string(n.Action),
		Outcome:        n.Kind.String(),
		Energy:         n.Energy,
		Cost:           n.Cost,
		Time:           n.Time,
	}
}

// MetricsSink records hero actions.
type MetricsSink interface {
	RecordHeroAction(ev HeroActionEvent) error
}

// RosterSizeRecorder records the number of heroes loaded.
type RosterSizeRecorder interface {
	RecordRosterSize(size int) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordHeroAction(HeroActionEvent) error { return nil }
func (NopSink) RecordRosterSize(int) error             { return nil }
