package logger

import "github.com/kilianp07/superheroes/core/events"

// Notifier logs every hero notification at debug level with structured fields.
func Notifier(log Logger) events.Notifier {
	return events.NotifierFunc(func(n events.Notification) {
		log.Debugw("hero action", map[string]any{
			"id":     n.ID,
			"hero":   n.Hero,
			"action": string(n.Action),
			"kind":   n.Kind.String(),
			"energy": n.Energy,
			"cost":   n.Cost,
		})
	})
}
