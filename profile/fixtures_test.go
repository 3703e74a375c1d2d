package profile

import (
	"fmt"
	"strconv"

	"github.com/hengadev/serde"
)

type mode uint8

const (
	modeOff mode = iota
	modeOn
)

func (mode) UUID() string           { return "fff1" }
func (m mode) RawValue() uint8      { return uint8(m) }
func (mode) StringValues() []string { return []string{"mode"} }

func (m mode) StringValue() map[string]string {
	if m == modeOn {
		return map[string]string{"mode": "on"}
	}
	return map[string]string{"mode": "off"}
}

func (m *mode) SetRawValue(raw uint8) error {
	if raw > uint8(modeOn) {
		return fmt.Errorf("unknown mode %d", raw)
	}
	*m = mode(raw)
	return nil
}

func (m *mode) SetStringValue(values map[string]string) error {
	switch values["mode"] {
	case "on":
		*m = modeOn
	case "off":
		*m = modeOff
	default:
		return fmt.Errorf("mode must be on or off, got %q", values["mode"])
	}
	return nil
}

type vector []int16

func (vector) UUID() string           { return "fff2" }
func (v vector) RawValues() []int16   { return v }
func (vector) StringValues() []string { return []string{"x", "y"} }

func (v vector) StringValue() map[string]string {
	return map[string]string{"x": strconv.Itoa(int(v[0])), "y": strconv.Itoa(int(v[1]))}
}

func (v *vector) SetRawValues(raw []int16) error {
	if len(raw) != 2 {
		return fmt.Errorf("need 2 values, got %d", len(raw))
	}
	*v = raw
	return nil
}

func (v *vector) SetStringValue(values map[string]string) error {
	x, err := serde.LookupStringValue[int16](values, "x")
	if err != nil {
		return err
	}
	y, err := serde.LookupStringValue[int16](values, "y")
	if err != nil {
		return err
	}
	*v = vector{x, y}
	return nil
}

type point struct {
	Index uint8
	Level uint16
}

func (point) UUID() string               { return "fff3" }
func (p point) RawPair() (uint8, uint16) { return p.Index, p.Level }
func (point) StringValues() []string     { return []string{"index", "level"} }

func (p point) StringValue() map[string]string {
	return map[string]string{
		"index": serde.FormatPrimitive(p.Index),
		"level": serde.FormatPrimitive(p.Level),
	}
}

func (p *point) SetRawPair(index uint8, level uint16) error {
	p.Index, p.Level = index, level
	return nil
}

func (p *point) SetStringValue(values map[string]string) error {
	index, err := serde.LookupStringValue[uint8](values, "index")
	if err != nil {
		return err
	}
	level, err := serde.LookupStringValue[uint16](values, "level")
	if err != nil {
		return err
	}
	p.Index, p.Level = index, level
	return nil
}

type table struct {
	Keys   []uint8
	Values []int16
}

func (table) UUID() string                       { return "fff4" }
func (table) ArrayPairSize() (int, int)          { return 2, 4 }
func (t table) RawArrayPair() ([]uint8, []int16) { return t.Keys, t.Values }
func (table) StringValues() []string             { return []string{"k0", "k1", "v0", "v1"} }

func (t table) StringValue() map[string]string {
	return map[string]string{
		"k0": serde.FormatPrimitive(t.Keys[0]),
		"k1": serde.FormatPrimitive(t.Keys[1]),
		"v0": serde.FormatPrimitive(t.Values[0]),
		"v1": serde.FormatPrimitive(t.Values[1]),
	}
}

func (t *table) SetRawArrayPair(keys []uint8, values []int16) error {
	if len(keys) != 2 || len(values) != 2 {
		return fmt.Errorf("need 2 keys and 2 values")
	}
	t.Keys, t.Values = keys, values
	return nil
}

func (t *table) SetStringValue(values map[string]string) error {
	var keys [2]uint8
	var vals [2]int16
	for i := range 2 {
		k, err := serde.LookupStringValue[uint8](values, "k"+strconv.Itoa(i))
		if err != nil {
			return err
		}
		v, err := serde.LookupStringValue[int16](values, "v"+strconv.Itoa(i))
		if err != nil {
			return err
		}
		keys[i], vals[i] = k, v
	}
	t.Keys, t.Values = keys[:], vals[:]
	return nil
}
