package metrics

// MultiSink fans records out to multiple sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordHeroAction forwards the event to all sinks, returning the first error encountered.
func (m *MultiSink) RecordHeroAction(ev HeroActionEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordHeroAction(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordRosterSize forwards the roster size to sinks supporting it.
func (m *MultiSink) RecordRosterSize(size int) error {
	for _, s := range m.Sinks {
		if rr, ok := s.(RosterSizeRecorder); ok {
			if err := rr.RecordRosterSize(size); err != nil {
				return err
			}
		}
	}
	return nil
}
