package serde

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/hengadev/errsx"

	"github.com/hengadev/serde/internal/monitoring"
)

// Config is the file and environment form of Options.
//
// Every field is optional; Validate applies defaults to empty fields.
//
// Example serde.yaml:
//
//	byte_order: little
//	text_encoding: utf-8
//	strict_arrays: true
//	array_pair_policy: exact
//	logging:
//	  enabled: true
//	  level: debug
//	  format: json
type Config struct {
	// ByteOrder is "native", "little" or "big". Default: native.
	ByteOrder string `yaml:"byte_order" json:"byte_order"`

	// TextEncoding is any name ParseTextEncoding accepts. Default: utf-8.
	TextEncoding string `yaml:"text_encoding" json:"text_encoding"`

	// StrictArrays turns a trailing partial array element into an error.
	StrictArrays bool `yaml:"strict_arrays" json:"strict_arrays"`

	// ArrayPairPolicy is "exact" or "best_effort". Default: exact.
	ArrayPairPolicy string `yaml:"array_pair_policy" json:"array_pair_policy"`

	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// LoggingConfig configures the logging observer.
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Level   string `yaml:"level" json:"level"`
	Format  string `yaml:"format" json:"format"`
}

// DefaultConfig returns a Config equivalent to DefaultOptions.
func DefaultConfig() Config {
	return Config{
		ByteOrder:       DefaultByteOrder,
		TextEncoding:    DefaultTextEncoding,
		ArrayPairPolicy: DefaultArrayPairPolicy,
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Validate applies defaults to empty fields and checks every value. All
// problems are reported together in an errsx.Map keyed by field name.
func (c *Config) Validate() error {
	if c.ByteOrder == "" {
		c.ByteOrder = DefaultByteOrder
	}
	if c.TextEncoding == "" {
		c.TextEncoding = DefaultTextEncoding
	}
	if c.ArrayPairPolicy == "" {
		c.ArrayPairPolicy = DefaultArrayPairPolicy
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}

	errs := errsx.Map{}
	if _, err := ParseByteOrder(c.ByteOrder); err != nil {
		errs.Set("byte_order", err)
	}
	if _, err := ParseTextEncoding(c.TextEncoding); err != nil {
		errs.Set("text_encoding", err)
	}
	if _, err := ParseArrayPairPolicy(c.ArrayPairPolicy); err != nil {
		errs.Set("array_pair_policy", err)
	}
	if _, err := monitoring.ParseLogLevel(c.Logging.Level); err != nil {
		errs.Set("logging.level", err)
	}
	if _, err := monitoring.ParseLogFormat(c.Logging.Format); err != nil {
		errs.Set("logging.format", err)
	}
	return errs.AsError()
}

// Options converts the configuration into façade options. The result carries
// no observer; see Observer.
func (c Config) Options() (Options, error) {
	if err := c.Validate(); err != nil {
		return Options{}, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	order, _ := ParseByteOrder(c.ByteOrder)
	enc, _ := ParseTextEncoding(c.TextEncoding)
	policy, _ := ParseArrayPairPolicy(c.ArrayPairPolicy)

	return Options{
		ByteOrder:    order,
		TextEncoding: enc,
		StrictArrays: c.StrictArrays,
		ArrayPair:    policy,
	}, nil
}

// Logger builds a structured logger writing to w from the logging section.
// Invalid level or format names fall back to info and text.
func (c Config) Logger(w io.Writer) *StructuredLogger {
	level, err := monitoring.ParseLogLevel(c.Logging.Level)
	if err != nil {
		level = monitoring.LevelInfo
	}
	format, err := monitoring.ParseLogFormat(c.Logging.Format)
	if err != nil || c.Logging.Format == "" {
		format = monitoring.FormatText
	}
	return monitoring.NewStructuredLogger(monitoring.LoggerConfig{
		Level:     level,
		Format:    format,
		Output:    w,
		Component: "serde",
		Version:   Version,
	})
}

// Observer returns a logging observer writing to w when logging is enabled,
// or nil.
func (c Config) Observer(w io.Writer) Observer {
	if !c.Logging.Enabled {
		return nil
	}
	return NewLoggingObserver(c.Logger(w))
}

// ParseByteOrder maps "native", "little" or "big" (and the usual variants
// such as "le", "be", "network") to a byte order.
func ParseByteOrder(s string) (binary.ByteOrder, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_") {
	case "", ByteOrderNative, "host":
		return binary.NativeEndian, nil
	case ByteOrderLittle, "little_endian", "le":
		return binary.LittleEndian, nil
	case ByteOrderBig, "big_endian", "be", "network":
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("invalid byte order '%s': must be one of [%s, %s, %s]",
			s, ByteOrderNative, ByteOrderLittle, ByteOrderBig)
	}
}
