package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kilianp07/superheroes/config"
	"github.com/kilianp07/superheroes/core/events"
	coremetrics "github.com/kilianp07/superheroes/core/metrics"
	"github.com/kilianp07/superheroes/core/roster"
	"github.com/kilianp07/superheroes/infra/console"
	"github.com/kilianp07/superheroes/infra/logger"
	"github.com/kilianp07/superheroes/infra/metrics"
	"github.com/kilianp07/superheroes/pkg/export"
	"github.com/kilianp07/superheroes/scenario"
)

// ErrExpectations is returned by Run when the final state misses the scenario expectations.
var ErrExpectations = errors.New("scenario expectations not met")

// Service wires the roster to its notifiers and metrics sinks.
type Service struct {
	Roster   *roster.Roster
	sink     coremetrics.MetricsSink
	printer  *console.Printer
	out      io.Writer
	report   string
	log      logger.Logger
	promAddr string
	serve    func(ctx context.Context, addr string) error
}

// New creates a Service from the configuration. Hero notifications are
// printed on out, logged at debug level and recorded on the configured sinks.
func New(cfg *config.Config, out io.Writer) (*Service, error) {
	logger.SetLevel(cfg.Logging.ParsedLevel())
	logg := logger.New("service")

	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	if cfg.Metrics.PrometheusAddr != "" && !hasSink(cfg.Metrics, "prometheus") {
		prom, err := metrics.NewPromSink()
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sink = coremetrics.NewMultiSink(sink, prom)
	}

	printer := console.NewPrinter(out)
	notifier := events.NewMulti(
		printer,
		logger.Notifier(logger.New("hero")),
		metrics.Notifier(sink, logg),
	)
	rs, err := BuildRoster(cfg.Heroes, notifier)
	if err != nil {
		return nil, fmt.Errorf("roster: %w", err)
	}
	if rr, ok := sink.(coremetrics.RosterSizeRecorder); ok {
		if err := rr.RecordRosterSize(rs.Len()); err != nil {
			logg.Warnf("record roster size: %v", err)
		}
	}
	logg.Infof("roster loaded with %d heroes", rs.Len())

	return &Service{
		Roster:   rs,
		sink:     sink,
		printer:  printer,
		out:      out,
		report:   cfg.Scenario.Report,
		log:      logg,
		promAddr: cfg.Metrics.PrometheusAddr,
		serve:    metrics.StartPromServer,
	}, nil
}

func hasSink(cfg coremetrics.Config, typ string) bool {
	for _, s := range cfg.Sinks {
		if s.Type == typ {
			return true
		}
	}
	return false
}

// RunScenario executes sc against the roster.
func (s *Service) RunScenario(sc *scenario.Scenario) (scenario.Result, error) {
	res, err := scenario.Run(s.Roster, sc, s.printer)
	if err != nil {
		return res, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}
	s.log.Infof("scenario %s finished after %d actions", res.Scenario, res.Actions)
	return res, nil
}

// Run executes sc, writes the configured report, then serves metrics until ctx is canceled when a
// Prometheus address is configured.
func (s *Service) Run(ctx context.Context, sc *scenario.Scenario) error {
	res, err := s.RunScenario(sc)
	if err != nil {
		return err
	}
	if !res.OK() {
		for _, m := range res.Mismatches {
			s.log.Warnf("scenario %s: %s", res.Scenario, m)
		}
		return fmt.Errorf("%w: %s", ErrExpectations, strings.Join(res.Mismatches, "; "))
	}
	if s.report != "" {
		if err := export.Write(s.out, s.report, res); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	if s.promAddr == "" {
		return nil
	}
	s.log.Infof("serving metrics on %s", s.promAddr)
	return s.serve(ctx, s.promAddr)
}

// Describe prints the description of every roster hero.
func (s *Service) Describe() {
	for i, h := range s.Roster.Heroes() {
		if i > 0 {
			s.printer.Println("")
		}
		s.printer.Println(h.Describe())
	}
}

// Close releases sinks holding resources.
func (s *Service) Close() error {
	return errors.Join(closeSinks(s.sink)...)
}

func closeSinks(sink coremetrics.MetricsSink) []error {
	if m, ok := sink.(*coremetrics.MultiSink); ok {
		var errs []error
		for _, sub := range m.Sinks {
			errs = append(errs, closeSinks(sub)...)
		}
		return errs
	}
	if c, ok := sink.(io.Closer); ok {
		return []error{c.Close()}
	}
	return nil
}
