// Package metrics defines the sinks recording hero actions for observability.
// Sinks like PromSink and InfluxSink live in infra/metrics and register
// themselves on the sink registry; NewMetricsSink combines several configured
// sinks into a MultiSink.
package metrics
