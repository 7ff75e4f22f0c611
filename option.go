package maitre

import (
	"github.com/viant/maitre/arena"
	"github.com/viant/maitre/gate"
	"github.com/viant/maitre/service/event"
	"github.com/viant/maitre/service/journal"
	"github.com/viant/maitre/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option customises the engine service.
type Option func(s *Service)

// WithConfig sets the engine configuration.
func WithConfig(config *Config) Option {
	return func(s *Service) {
		s.config = config
	}
}

// WithArena supplies a pre-built arena, e.g. one shared with a test.
func WithArena(shared *arena.Arena) Option {
	return func(s *Service) {
		s.arena = shared
	}
}

// WithGates supplies a pre-built gate set.
func WithGates(gates *gate.Set) Option {
	return func(s *Service) {
		s.gates = gates
	}
}

// WithJournal overrides the journal selected by the configuration.
func WithJournal(journal journal.Service) Option {
	return func(s *Service) {
		s.journal = journal
	}
}

// WithEventService overrides the default in-memory event service.
func WithEventService(events *event.Service) Option {
	return func(s *Service) {
		s.events = events
	}
}

// WithTracing configures OpenTelemetry tracing. If outputFile is empty the
// stdout exporter is used. Safe to call multiple times - the first
// successful initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		_ = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom
// SpanExporter, e.g. OTLP or Jaeger.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		_ = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
	}
}
