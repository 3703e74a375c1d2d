package serde

import (
	"errors"

	"github.com/hengadev/serde/internal/serdeerr"
)

var (
	// Length errors
	ErrLengthMismatch = serdeerr.ErrLengthMismatch
	ErrOutOfRange     = serdeerr.ErrOutOfRange
	ErrTrailingData   = serdeerr.ErrTrailingData

	// Value errors
	ErrInvalidRawValue = serdeerr.ErrInvalidRawValue
	ErrInvalidFormat   = serdeerr.ErrInvalidFormat
	ErrMissingValue    = serdeerr.ErrMissingValue

	// Text errors
	ErrInvalidText         = serdeerr.ErrInvalidText
	ErrUnsupportedEncoding = serdeerr.ErrUnsupportedEncoding

	// Configuration errors
	ErrInvalidConfiguration = serdeerr.ErrInvalidConfiguration
)

// IsLengthError reports whether err was caused by a buffer of the wrong size.
func IsLengthError(err error) bool {
	return errors.Is(err, ErrLengthMismatch) ||
		errors.Is(err, ErrOutOfRange) ||
		errors.Is(err, ErrTrailingData)
}

// IsInvalidRawValue reports whether a domain type rejected a decoded raw value.
func IsInvalidRawValue(err error) bool {
	return errors.Is(err, ErrInvalidRawValue)
}

// IsTextError reports whether err came from the string codec.
func IsTextError(err error) bool {
	return errors.Is(err, ErrInvalidText) || errors.Is(err, ErrUnsupportedEncoding)
}

// NewInvalidRawValueError is the error SetRawValue implementations can return
// for raw values outside the type's valid set.
func NewInvalidRawValueError(typeName string, cause error) error {
	return serdeerr.NewInvalidRawValueError(typeName, cause)
}
