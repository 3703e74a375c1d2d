package serdeerr

import (
	"errors"
	"fmt"
)

var (
	// Length errors
	ErrLengthMismatch = errors.New("length mismatch")
	ErrOutOfRange     = errors.New("range out of bounds")
	ErrTrailingData   = errors.New("trailing partial element")

	// Value errors
	ErrInvalidRawValue = errors.New("invalid raw value")
	ErrInvalidFormat   = errors.New("invalid format")
	ErrMissingValue    = errors.New("missing string value")

	// Text errors
	ErrInvalidText         = errors.New("invalid text for encoding")
	ErrUnsupportedEncoding = errors.New("unsupported text encoding")

	// Configuration errors
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

func NewLengthMismatchError(typeName string, expected, actual int, action Action) error {
	return fmt.Errorf("%w: %s needs %d bytes to %s, got %d",
		ErrLengthMismatch, typeName, expected, action, actual)
}

func NewShortBufferError(typeName string, minimum, actual int, action Action) error {
	return fmt.Errorf("%w: %s needs at least %d bytes to %s, got %d",
		ErrLengthMismatch, typeName, minimum, action, actual)
}

func NewOutOfRangeError(offset, length, bufferLen int) error {
	return fmt.Errorf("%w: %d bytes at offset %d exceed buffer of %d bytes",
		ErrOutOfRange, length, offset, bufferLen)
}

func NewTrailingDataError(typeName string, elementSize, trailing int) error {
	return fmt.Errorf("%w: %d trailing bytes do not fill a %d byte %s",
		ErrTrailingData, trailing, elementSize, typeName)
}

// NewInvalidRawValueError wraps a reconstruction failure. Errors that already
// carry ErrInvalidRawValue are wrapped without repeating the sentinel.
func NewInvalidRawValueError(typeName string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %s rejected raw value", ErrInvalidRawValue, typeName)
	}
	if errors.Is(cause, ErrInvalidRawValue) {
		return fmt.Errorf("%s: %w", typeName, cause)
	}
	return fmt.Errorf("%w: %s rejected raw value: %w", ErrInvalidRawValue, typeName, cause)
}

func NewInvalidTextError(encoding string, action Action, details string) error {
	if details != "" {
		return fmt.Errorf("%w: cannot %s %s text: %s", ErrInvalidText, action, encoding, details)
	}
	return fmt.Errorf("%w: cannot %s %s text", ErrInvalidText, action, encoding)
}

func NewUnsupportedEncodingError(name string) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
}

func NewInvalidFormatError(input string, formatName string, action Action) error {
	return fmt.Errorf("%w: cannot %s %q as %s", ErrInvalidFormat, action, input, formatName)
}

func NewMissingValueError(typeName, key string) error {
	return fmt.Errorf("%w: %s requires %q", ErrMissingValue, typeName, key)
}

var kinds = []struct {
	sentinel error
	name     string
}{
	{ErrInvalidRawValue, "invalid_raw_value"},
	{ErrLengthMismatch, "length_mismatch"},
	{ErrOutOfRange, "out_of_range"},
	{ErrTrailingData, "trailing_data"},
	{ErrInvalidText, "invalid_text"},
	{ErrUnsupportedEncoding, "unsupported_encoding"},
	{ErrInvalidFormat, "invalid_format"},
	{ErrMissingValue, "missing_value"},
	{ErrInvalidConfiguration, "invalid_configuration"},
}

// Kind names the sentinel err wraps, for use as a metric tag. A
// reconstruction failure reports invalid_raw_value even when its cause is a
// length error. Errors outside this package report "other"; nil reports "".
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.sentinel) {
			return k.name
		}
	}
	return "other"
}
