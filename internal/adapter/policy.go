package adapter

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// ArrayPairPolicy decides how declared array-pair byte lengths are checked
// against the buffer being decoded.
type ArrayPairPolicy string

const (
	// ArrayPairExact requires the buffer to be exactly size1+size2 bytes
	ArrayPairExact ArrayPairPolicy = "exact"
	// ArrayPairBestEffort clamps both windows to the buffer and lets the
	// domain type reject what it cannot use
	ArrayPairBestEffort ArrayPairPolicy = "best_effort"
)

// IsValid checks if the policy is supported
func (p ArrayPairPolicy) IsValid() bool {
	switch p {
	case ArrayPairExact, ArrayPairBestEffort:
		return true
	default:
		return false
	}
}

// String returns the string representation of the policy
func (p ArrayPairPolicy) String() string {
	return string(p)
}

// ParseArrayPairPolicy parses a policy name, accepting '-' for '_'.
func ParseArrayPairPolicy(s string) (ArrayPairPolicy, error) {
	p := ArrayPairPolicy(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if !p.IsValid() {
		return "", fmt.Errorf("invalid array pair policy '%s': must be one of [%s, %s]",
			s, ArrayPairExact, ArrayPairBestEffort)
	}
	return p, nil
}

// Layout carries the per-call decisions every adapter algorithm needs.
type Layout struct {
	Order        binary.ByteOrder
	StrictArrays bool
	ArrayPair    ArrayPairPolicy
}

// DefaultLayout is host byte order, lenient arrays and exact array pairs.
func DefaultLayout() Layout {
	return Layout{
		Order:     binary.NativeEndian,
		ArrayPair: ArrayPairExact,
	}
}

func (l Layout) order() binary.ByteOrder {
	if l.Order == nil {
		return binary.NativeEndian
	}
	return l.Order
}
