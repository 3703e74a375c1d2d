package serde

import (
	"errors"
	"fmt"
)

// alert is a single-value enum with three valid raw values.
type alert uint8

const (
	alertNone alert = iota
	alertMild
	alertHigh
)

func (alert) UUID() string      { return "2a06" }
func (a alert) RawValue() uint8 { return uint8(a) }
func (a alert) StringValue() map[string]string {
	return map[string]string{"level": FormatPrimitive(uint8(a))}
}

func (a *alert) SetRawValue(raw uint8) error {
	if alert(raw) > alertHigh {
		return fmt.Errorf("unknown alert level %d", raw)
	}
	*a = alert(raw)
	return nil
}

// samples is a total array type: every []int16 is valid.
type samples []int16

func (samples) UUID() string         { return "aa11" }
func (s samples) RawValues() []int16 { return s }

func (s *samples) SetRawValues(raw []int16) error {
	*s = raw
	return nil
}

// reading pairs a 2 byte id with a 4 byte value.
type reading struct {
	ID    uint16
	Value uint32
}

func (reading) UUID() string                { return "aa21" }
func (r reading) RawPair() (uint16, uint32) { return r.ID, r.Value }

func (r *reading) SetRawPair(id uint16, value uint32) error {
	if id == 0 {
		return errors.New("id must not be zero")
	}
	r.ID, r.Value = id, value
	return nil
}

// calibration holds two uint16 gains followed by two int8 offsets.
type calibration struct {
	Gains   []uint16
	Offsets []int8
}

func (calibration) UUID() string              { return "aa31" }
func (calibration) ArrayPairSize() (int, int) { return 4, 2 }
func (c calibration) RawArrayPair() ([]uint16, []int8) {
	return c.Gains, c.Offsets
}

func (c *calibration) SetRawArrayPair(gains []uint16, offsets []int8) error {
	if len(gains) != 2 || len(offsets) != 2 {
		return fmt.Errorf("need 2 gains and 2 offsets, got %d and %d", len(gains), len(offsets))
	}
	c.Gains, c.Offsets = gains, offsets
	return nil
}
