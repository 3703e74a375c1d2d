package monitoring

import (
	"github.com/hengadev/serde/internal/serdeerr"
)

// Event describes one finished codec call.
type Event struct {
	// Action is "encode" or "decode"
	Action string
	// Kind names the adapter shape, e.g. "primitive", "string", "pair"
	Kind string
	// Type is the Go type being converted
	Type string
	// UUID is the identifier declared by the domain type, if any
	UUID string
	// Bytes is the size of the buffer produced or consumed
	Bytes int
	Err   error
}

// ObservabilityHook receives an Event after every codec call it is attached to.
type ObservabilityHook interface {
	OnOperation(event Event)
}

// NoOpObservabilityHook is a no-op implementation of ObservabilityHook
type NoOpObservabilityHook struct{}

func (n *NoOpObservabilityHook) OnOperation(event Event) {}

// LoggingObservabilityHook logs every operation; failures at warn level,
// successes at debug level.
type LoggingObservabilityHook struct {
	logger *StructuredLogger
}

// NewLoggingObservabilityHook creates a new logging observability hook
func NewLoggingObservabilityHook(logger *StructuredLogger) *LoggingObservabilityHook {
	if logger == nil {
		logger = NewStructuredLogger(LoggerConfig{Level: LevelInfo, Format: FormatText})
	}
	return &LoggingObservabilityHook{logger: logger}
}

func (l *LoggingObservabilityHook) OnOperation(event Event) {
	l.logger.LogOperation(event)
}

// MetricsObservabilityHook counts operations and records payload sizes.
type MetricsObservabilityHook struct {
	collector MetricsCollector
}

// NewMetricsObservabilityHook creates a new metrics observability hook
func NewMetricsObservabilityHook(collector MetricsCollector) *MetricsObservabilityHook {
	if collector == nil {
		collector = &NoOpMetricsCollector{}
	}
	return &MetricsObservabilityHook{collector: collector}
}

func (m *MetricsObservabilityHook) OnOperation(event Event) {
	tags := map[string]string{"kind": event.Kind}
	name := "serde." + event.Action
	if event.Err != nil {
		tags["status"] = "error"
		m.collector.IncrementCounter(name, tags)
		m.collector.IncrementCounter("serde.errors", map[string]string{
			"kind":  event.Kind,
			"error": serdeerr.Kind(event.Err),
		})
		return
	}
	tags["status"] = "success"
	m.collector.IncrementCounter(name, tags)
	m.collector.RecordValue(name+".bytes", float64(event.Bytes), map[string]string{"kind": event.Kind})
}

// MultiObservabilityHook fans an event out to several hooks in order.
type MultiObservabilityHook []ObservabilityHook

func (hooks MultiObservabilityHook) OnOperation(event Event) {
	for _, h := range hooks {
		if h != nil {
			h.OnOperation(event)
		}
	}
}
