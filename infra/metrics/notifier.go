package metrics

import (
	"github.com/kilianp07/superheroes/core/events"
	coremetrics "github.com/kilianp07/superheroes/core/metrics"
	"github.com/kilianp07/superheroes/infra/logger"
)

// Notifier records every hero notification on sink. Sink errors are logged
// and never reach the hero.
func Notifier(sink coremetrics.MetricsSink, log logger.Logger) events.Notifier {
	if log == nil {
		log = logger.NopLogger{}
	}
	return events.NotifierFunc(func(n events.Notification) {
		if err := sink.RecordHeroAction(coremetrics.FromNotification(n)); err != nil {
			log.Warnf("record hero action %s for %s: %v", n.Action, n.Hero, err)
		}
	})
}
