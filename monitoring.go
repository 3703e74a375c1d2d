package serde

import (
	"github.com/hengadev/serde/internal/monitoring"
)

// Observer receives an Event after every façade call it is attached to.
type Observer = monitoring.ObservabilityHook

// Event describes one finished encode or decode.
type Event = monitoring.Event

type (
	MetricsCollector         = monitoring.MetricsCollector
	NoOpMetricsCollector     = monitoring.NoOpMetricsCollector
	InMemoryMetricsCollector = monitoring.InMemoryMetricsCollector
	StructuredLogger         = monitoring.StructuredLogger
	LoggerConfig             = monitoring.LoggerConfig
	LogLevel                 = monitoring.LogLevel
	LogFormat                = monitoring.LogFormat
	MultiObserver            = monitoring.MultiObservabilityHook
)

const (
	LevelDebug = monitoring.LevelDebug
	LevelInfo  = monitoring.LevelInfo
	LevelWarn  = monitoring.LevelWarn
	LevelError = monitoring.LevelError

	FormatJSON = monitoring.FormatJSON
	FormatText = monitoring.FormatText
)

// NewInMemoryMetricsCollector creates a mutex-protected collector for tests
// and development.
func NewInMemoryMetricsCollector() *InMemoryMetricsCollector {
	return monitoring.NewInMemoryMetricsCollector()
}

// NewStructuredLogger creates a slog-backed logger.
func NewStructuredLogger(config LoggerConfig) *StructuredLogger {
	return monitoring.NewStructuredLogger(config)
}

// NewLoggingObserver logs failures at warn level and successes at debug level.
func NewLoggingObserver(logger *StructuredLogger) Observer {
	return monitoring.NewLoggingObservabilityHook(logger)
}

// NewMetricsObserver counts operations by kind and status and records
// payload sizes.
func NewMetricsObserver(collector MetricsCollector) Observer {
	return monitoring.NewMetricsObservabilityHook(collector)
}
