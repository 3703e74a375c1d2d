package sensortag

import (
	"fmt"
	"strings"

	"github.com/hengadev/serde"
)

// Enabled switches a sensor on or off. Enabled and UpdatePeriod are shared by
// several services, so their UUID is declared by each profile instead.
type Enabled uint8

const (
	Disabled Enabled = 0
	On       Enabled = 1
)

func (Enabled) UUID() string           { return "" }
func (e Enabled) RawValue() uint8      { return uint8(e) }
func (Enabled) StringValues() []string { return []string{"enabled"} }

func (e Enabled) String() string {
	if e == On {
		return "yes"
	}
	return "no"
}

func (e Enabled) StringValue() map[string]string {
	return map[string]string{"enabled": e.String()}
}

func (e *Enabled) SetRawValue(raw uint8) error {
	switch Enabled(raw) {
	case Disabled, On:
		*e = Enabled(raw)
		return nil
	default:
		return fmt.Errorf("enabled must be 0 or 1, got %d", raw)
	}
}

func (e *Enabled) SetStringValue(values map[string]string) error {
	v, ok := values["enabled"]
	if !ok {
		return fmt.Errorf("%w: enabled requires %q", serde.ErrMissingValue, "enabled")
	}
	switch strings.ToLower(v) {
	case "yes", "on", "true", "1":
		*e = On
	case "no", "off", "false", "0":
		*e = Disabled
	default:
		return fmt.Errorf("enabled must be yes or no, got %q", v)
	}
	return nil
}

// UpdatePeriod is a notification period in units of 10 ms. Periods below
// 100 ms are rejected by the device.
type UpdatePeriod uint8

const (
	MinUpdatePeriod     UpdatePeriod = 10
	DefaultUpdatePeriod UpdatePeriod = 100
)

func (UpdatePeriod) UUID() string           { return "" }
func (p UpdatePeriod) RawValue() uint8      { return uint8(p) }
func (UpdatePeriod) StringValues() []string { return []string{"period_ms"} }

// Milliseconds returns the period in ms.
func (p UpdatePeriod) Milliseconds() int {
	return int(p) * 10
}

func (p UpdatePeriod) StringValue() map[string]string {
	return map[string]string{"period_ms": fmt.Sprint(p.Milliseconds())}
}

func (p *UpdatePeriod) SetRawValue(raw uint8) error {
	if UpdatePeriod(raw) < MinUpdatePeriod {
		return fmt.Errorf("update period %d ms is below %d ms", int(raw)*10, MinUpdatePeriod.Milliseconds())
	}
	*p = UpdatePeriod(raw)
	return nil
}

func (p *UpdatePeriod) SetStringValue(values map[string]string) error {
	ms, err := serde.LookupStringValue[uint16](values, "period_ms")
	if err != nil {
		return err
	}
	if ms%10 != 0 || ms/10 > 255 {
		return fmt.Errorf("update period must be a multiple of 10 ms up to 2550 ms, got %d", ms)
	}
	return p.SetRawValue(uint8(ms / 10))
}
