// Package sensortag declares the sensor characteristics of the TI CC2541
// SensorTag as serde domain types. Every payload is little-endian.
package sensortag

import (
	"encoding/binary"
	"fmt"

	"github.com/hengadev/serde"
	"github.com/hengadev/serde/profile"
)

// Tag labels every service declared here.
const Tag = "ti-sensortag"

// UUIDs are built on the TI base f000xxxx-0451-4000-b000-000000000000.
const (
	TemperatureServiceUUID = "f000aa00-0451-4000-b000-000000000000"
	TemperatureDataUUID    = "f000aa01-0451-4000-b000-000000000000"
	TemperatureConfigUUID  = "f000aa02-0451-4000-b000-000000000000"

	AccelerometerServiceUUID = "f000aa10-0451-4000-b000-000000000000"
	AccelerometerDataUUID    = "f000aa11-0451-4000-b000-000000000000"
	AccelerometerConfigUUID  = "f000aa12-0451-4000-b000-000000000000"
	AccelerometerPeriodUUID  = "f000aa13-0451-4000-b000-000000000000"

	HumidityServiceUUID = "f000aa20-0451-4000-b000-000000000000"
	HumidityDataUUID    = "f000aa21-0451-4000-b000-000000000000"
	HumidityConfigUUID  = "f000aa22-0451-4000-b000-000000000000"

	MagnetometerServiceUUID = "f000aa30-0451-4000-b000-000000000000"
	MagnetometerDataUUID    = "f000aa31-0451-4000-b000-000000000000"
	MagnetometerConfigUUID  = "f000aa32-0451-4000-b000-000000000000"
	MagnetometerPeriodUUID  = "f000aa33-0451-4000-b000-000000000000"

	BarometerServiceUUID     = "f000aa40-0451-4000-b000-000000000000"
	BarometerDataUUID        = "f000aa41-0451-4000-b000-000000000000"
	BarometerConfigUUID      = "f000aa42-0451-4000-b000-000000000000"
	BarometerCalibrationUUID = "f000aa43-0451-4000-b000-000000000000"
)

// ByteOrder of every SensorTag payload.
var ByteOrder = binary.LittleEndian

// Options returns opts with the SensorTag byte order applied last.
func Options(opts ...serde.Option) []serde.Option {
	out := make([]serde.Option, 0, len(opts)+1)
	out = append(out, opts...)
	return append(out, serde.WithByteOrder(ByteOrder))
}

func sensorMeta(name, uuid string) profile.Meta {
	return profile.Meta{
		Name:        name,
		UUID:        uuid,
		Permissions: profile.Readable,
		Properties:  profile.Read | profile.Notify,
	}
}

func configMeta(name, uuid string, initial []byte) profile.Meta {
	return profile.Meta{
		Name:         name,
		UUID:         uuid,
		Permissions:  profile.Readable | profile.Writeable,
		Properties:   profile.Read | profile.Write,
		InitialValue: initial,
	}
}

// Services returns the sensor services of the SensorTag.
func Services(opts ...serde.Option) []profile.ServiceProfile {
	opts = Options(opts...)
	disabled := []byte{byte(Disabled)}
	period := []byte{byte(DefaultUpdatePeriod)}

	return []profile.ServiceProfile{
		{
			Name: "IR Temperature",
			UUID: TemperatureServiceUUID,
			Tag:  Tag,
			Characteristics: []profile.CharacteristicProfile{
				profile.NewRawPairProfile[int16, int16, TemperatureData](sensorMeta("IR Temperature Data", TemperatureDataUUID), opts...),
				profile.NewRawProfile[uint8, Enabled](configMeta("IR Temperature Enabled", TemperatureConfigUUID, disabled), opts...),
			},
		},
		{
			Name: "Accelerometer",
			UUID: AccelerometerServiceUUID,
			Tag:  Tag,
			Characteristics: []profile.CharacteristicProfile{
				profile.NewRawArrayProfile[int8, AccelerometerData](sensorMeta("Accelerometer Data", AccelerometerDataUUID), opts...),
				profile.NewRawProfile[uint8, Enabled](configMeta("Accelerometer Enabled", AccelerometerConfigUUID, disabled), opts...),
				profile.NewRawProfile[uint8, UpdatePeriod](configMeta("Accelerometer Update Period", AccelerometerPeriodUUID, period), opts...),
			},
		},
		{
			Name: "Humidity",
			UUID: HumidityServiceUUID,
			Tag:  Tag,
			Characteristics: []profile.CharacteristicProfile{
				profile.NewRawPairProfile[uint16, uint16, HumidityData](sensorMeta("Humidity Data", HumidityDataUUID), opts...),
				profile.NewRawProfile[uint8, Enabled](configMeta("Humidity Enabled", HumidityConfigUUID, disabled), opts...),
			},
		},
		{
			Name: "Magnetometer",
			UUID: MagnetometerServiceUUID,
			Tag:  Tag,
			Characteristics: []profile.CharacteristicProfile{
				profile.NewRawArrayProfile[int16, MagnetometerData](sensorMeta("Magnetometer Data", MagnetometerDataUUID), opts...),
				profile.NewRawProfile[uint8, Enabled](configMeta("Magnetometer Enabled", MagnetometerConfigUUID, disabled), opts...),
				profile.NewRawProfile[uint8, UpdatePeriod](configMeta("Magnetometer Update Period", MagnetometerPeriodUUID, period), opts...),
			},
		},
		{
			Name: "Barometer",
			UUID: BarometerServiceUUID,
			Tag:  Tag,
			Characteristics: []profile.CharacteristicProfile{
				profile.NewRawPairProfile[int16, uint16, BarometerData](sensorMeta("Barometer Data", BarometerDataUUID), opts...),
				profile.NewRawProfile[uint8, Enabled](configMeta("Barometer Enabled", BarometerConfigUUID, disabled), opts...),
				profile.NewRawArrayPairProfile[uint16, int16, BarometerCalibration](profile.Meta{
					Name:        "Barometer Calibration",
					UUID:        BarometerCalibrationUUID,
					Permissions: profile.Readable,
					Properties:  profile.Read,
				}, opts...),
			},
		},
	}
}

// Register adds every SensorTag service to r.
func Register(r *profile.Registry, opts ...serde.Option) error {
	for _, s := range Services(opts...) {
		if err := r.AddService(s); err != nil {
			return fmt.Errorf("register %s: %w", s.Name, err)
		}
	}
	return nil
}
