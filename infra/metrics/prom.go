package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/superheroes/core/metrics"
)

// PromSink records hero actions in Prometheus metrics.
type PromSink struct {
	actions *prometheus.CounterVec
	energy  *prometheus.GaugeVec
	roster  prometheus.Gauge
}

// NewPromSink registers hero metrics on the default Prometheus registerer.
// The HTTP endpoint is started separately with StartPromServer.
func NewPromSink() (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.MetricsSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	actions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hero_actions_total",
		Help: "Total number of hero actions by outcome",
	}, []string{"hero", "action", "outcome"})
	energy := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "hero_energy_level",
		Help: "Energy level of a hero after its latest action",
	}, []string{"hero"})
	roster := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "hero_roster_size",
		Help: "Number of heroes loaded in the roster",
	})

	var err error
	if actions, err = register(reg, actions); err != nil {
		return nil, err
	}
	if energy, err = register(reg, energy); err != nil {
		return nil, err
	}
	if roster, err = register(reg, roster); err != nil {
		return nil, err
	}
	return &PromSink{actions: actions, energy: energy, roster: roster}, nil
}

// register reuses an identical collector when it is already registered.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordHeroAction counts the action and tracks the resulting energy level.
func (s *PromSink) RecordHeroAction(ev coremetrics.HeroActionEvent) error {
	s.actions.WithLabelValues(ev.Hero, ev.Action, ev.Outcome).Inc()
	s.energy.WithLabelValues(ev.Hero).Set(float64(ev.Energy))
	return nil
}

// RecordRosterSize sets the roster gauge.
func (s *PromSink) RecordRosterSize(size int) error {
	s.roster.Set(float64(size))
	return nil
}
