// Package ble declares Bluetooth SIG adopted characteristics as serde
// domain types and groups them into service profiles.
package ble

import (
	"fmt"

	"github.com/hengadev/serde"
	"github.com/hengadev/serde/profile"
)

// Assigned numbers of the services and characteristics in this package
const (
	GenericAccessServiceUUID  = "1800"
	ImmediateAlertServiceUUID = "1802"
	TxPowerServiceUUID        = "1804"
	BatteryServiceUUID        = "180f"

	DeviceNameUUID   = "2a00"
	AlertLevelUUID   = "2a06"
	TxPowerLevelUUID = "2a07"
	BatteryLevelUUID = "2a19"
)

// Tag labels every service declared here.
const Tag = "bluetooth-sig"

// BatteryLevel is a charge percentage in [0, 100].
type BatteryLevel uint8

// MaxBatteryLevel is the largest valid BatteryLevel.
const MaxBatteryLevel BatteryLevel = 100

func (BatteryLevel) UUID() string           { return BatteryLevelUUID }
func (b BatteryLevel) RawValue() uint8      { return uint8(b) }
func (BatteryLevel) StringValues() []string { return []string{"level"} }

func (b BatteryLevel) StringValue() map[string]string {
	return map[string]string{"level": serde.FormatPrimitive(uint8(b))}
}

func (b *BatteryLevel) SetRawValue(raw uint8) error {
	if BatteryLevel(raw) > MaxBatteryLevel {
		return fmt.Errorf("battery level %d exceeds %d", raw, MaxBatteryLevel)
	}
	*b = BatteryLevel(raw)
	return nil
}

func (b *BatteryLevel) SetStringValue(values map[string]string) error {
	raw, err := serde.LookupStringValue[uint8](values, "level")
	if err != nil {
		return err
	}
	return b.SetRawValue(raw)
}

// AlertLevel is the Immediate Alert level written by a client.
type AlertLevel uint8

const (
	NoAlert AlertLevel = iota
	MildAlert
	HighAlert
)

var alertNames = map[AlertLevel]string{
	NoAlert:   "none",
	MildAlert: "mild",
	HighAlert: "high",
}

func (AlertLevel) UUID() string           { return AlertLevelUUID }
func (a AlertLevel) RawValue() uint8      { return uint8(a) }
func (AlertLevel) StringValues() []string { return []string{"level"} }

func (a AlertLevel) String() string {
	if name, ok := alertNames[a]; ok {
		return name
	}
	return fmt.Sprintf("AlertLevel(%d)", uint8(a))
}

func (a AlertLevel) StringValue() map[string]string {
	return map[string]string{"level": a.String()}
}

func (a *AlertLevel) SetRawValue(raw uint8) error {
	if _, ok := alertNames[AlertLevel(raw)]; !ok {
		return fmt.Errorf("unknown alert level %d", raw)
	}
	*a = AlertLevel(raw)
	return nil
}

func (a *AlertLevel) SetStringValue(values map[string]string) error {
	name, ok := values["level"]
	if !ok {
		return fmt.Errorf("%w: alert level requires %q", serde.ErrMissingValue, "level")
	}
	for level, n := range alertNames {
		if n == name {
			*a = level
			return nil
		}
	}
	return fmt.Errorf("unknown alert level %q", name)
}

// TxPowerLevel is the transmit power in dBm, -100 to 20.
type TxPowerLevel int8

const (
	MinTxPowerLevel TxPowerLevel = -100
	MaxTxPowerLevel TxPowerLevel = 20
)

func (TxPowerLevel) UUID() string           { return TxPowerLevelUUID }
func (p TxPowerLevel) RawValue() int8       { return int8(p) }
func (TxPowerLevel) StringValues() []string { return []string{"dbm"} }

func (p TxPowerLevel) StringValue() map[string]string {
	return map[string]string{"dbm": serde.FormatPrimitive(int8(p))}
}

func (p *TxPowerLevel) SetRawValue(raw int8) error {
	if level := TxPowerLevel(raw); level < MinTxPowerLevel || level > MaxTxPowerLevel {
		return fmt.Errorf("tx power %d dBm outside [%d, %d]", raw, MinTxPowerLevel, MaxTxPowerLevel)
	}
	*p = TxPowerLevel(raw)
	return nil
}

func (p *TxPowerLevel) SetStringValue(values map[string]string) error {
	raw, err := serde.LookupStringValue[int8](values, "dbm")
	if err != nil {
		return err
	}
	return p.SetRawValue(raw)
}

// Services returns the adopted services declared in this package.
func Services(opts ...serde.Option) []profile.ServiceProfile {
	return []profile.ServiceProfile{
		{
			Name: "Generic Access",
			UUID: GenericAccessServiceUUID,
			Tag:  Tag,
			Characteristics: []profile.CharacteristicProfile{
				profile.NewStringProfile(profile.Meta{
					Name:         "Device Name",
					UUID:         DeviceNameUUID,
					Permissions:  profile.Readable,
					Properties:   profile.Read,
					InitialValue: []byte("serde"),
				}, opts...),
			},
		},
		{
			Name: "Immediate Alert",
			UUID: ImmediateAlertServiceUUID,
			Tag:  Tag,
			Characteristics: []profile.CharacteristicProfile{
				profile.NewRawProfile[uint8, AlertLevel](profile.Meta{
					Name:         "Alert Level",
					Permissions:  profile.Writeable,
					Properties:   profile.WriteWithoutResponse,
					InitialValue: serde.SerializeRaw[uint8](NoAlert),
				}, opts...),
			},
		},
		{
			Name: "Tx Power",
			UUID: TxPowerServiceUUID,
			Tag:  Tag,
			Characteristics: []profile.CharacteristicProfile{
				profile.NewRawProfile[int8, TxPowerLevel](profile.Meta{
					Name:        "Tx Power Level",
					Permissions: profile.Readable,
					Properties:  profile.Read,
				}, opts...),
			},
		},
		{
			Name: "Battery",
			UUID: BatteryServiceUUID,
			Tag:  Tag,
			Characteristics: []profile.CharacteristicProfile{
				profile.NewRawProfile[uint8, BatteryLevel](profile.Meta{
					Name:         "Battery Level",
					Permissions:  profile.Readable,
					Properties:   profile.Read | profile.Notify,
					InitialValue: serde.SerializeRaw[uint8](MaxBatteryLevel),
				}, opts...),
			},
		},
	}
}

// Register adds every service of this package to r.
func Register(r *profile.Registry, opts ...serde.Option) error {
	for _, s := range Services(opts...) {
		if err := r.AddService(s); err != nil {
			return fmt.Errorf("register %s: %w", s.Name, err)
		}
	}
	return nil
}
