package sensortag

import (
	"fmt"
	"math"
	"slices"

	"github.com/hengadev/serde"
)

// axes are the string-value keys of three-axis sensors.
var axes = []string{"x", "y", "z"}

func axisValues[R serde.Primitive](raw []R) map[string]string {
	out := make(map[string]string, len(axes))
	for i, key := range axes {
		out[key] = serde.FormatPrimitive(raw[i])
	}
	return out
}

func parseAxes[R serde.Primitive](values map[string]string) ([]R, error) {
	out := make([]R, len(axes))
	for i, key := range axes {
		v, err := serde.LookupStringValue[R](values, key)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func checkAxes(n int) error {
	if n != len(axes) {
		return fmt.Errorf("need %d axes, got %d", len(axes), n)
	}
	return nil
}

// AccelerometerData holds raw x, y, z samples in the ±2 g range.
type AccelerometerData struct {
	X, Y, Z int8
}

func (AccelerometerData) UUID() string           { return AccelerometerDataUUID }
func (AccelerometerData) StringValues() []string { return slices.Clone(axes) }

func (a AccelerometerData) RawValues() []int8 {
	return []int8{a.X, a.Y, a.Z}
}

func (a AccelerometerData) StringValue() map[string]string {
	return axisValues(a.RawValues())
}

// G returns the acceleration in g on each axis.
func (a AccelerometerData) G() (x, y, z float64) {
	return float64(a.X) / 64, float64(a.Y) / 64, float64(a.Z) / 64
}

func (a *AccelerometerData) SetRawValues(raw []int8) error {
	if err := checkAxes(len(raw)); err != nil {
		return err
	}
	a.X, a.Y, a.Z = raw[0], raw[1], raw[2]
	return nil
}

func (a *AccelerometerData) SetStringValue(values map[string]string) error {
	raw, err := parseAxes[int8](values)
	if err != nil {
		return err
	}
	return a.SetRawValues(raw)
}

// MagnetometerData holds raw x, y, z samples in the ±1000 µT range.
type MagnetometerData struct {
	X, Y, Z int16
}

func (MagnetometerData) UUID() string           { return MagnetometerDataUUID }
func (MagnetometerData) StringValues() []string { return slices.Clone(axes) }

func (m MagnetometerData) RawValues() []int16 {
	return []int16{m.X, m.Y, m.Z}
}

func (m MagnetometerData) StringValue() map[string]string {
	return axisValues(m.RawValues())
}

// MicroTesla returns the field strength in µT on each axis.
func (m MagnetometerData) MicroTesla() (x, y, z float64) {
	const scale = 2000.0 / 65536.0
	return float64(m.X) * scale, float64(m.Y) * scale, float64(m.Z) * scale
}

func (m *MagnetometerData) SetRawValues(raw []int16) error {
	if err := checkAxes(len(raw)); err != nil {
		return err
	}
	m.X, m.Y, m.Z = raw[0], raw[1], raw[2]
	return nil
}

func (m *MagnetometerData) SetStringValue(values map[string]string) error {
	raw, err := parseAxes[int16](values)
	if err != nil {
		return err
	}
	return m.SetRawValues(raw)
}

// TemperatureData is the IR thermopile reading followed by the die
// temperature, both raw.
type TemperatureData struct {
	Object  int16
	Ambient int16
}

func (TemperatureData) UUID() string              { return TemperatureDataUUID }
func (t TemperatureData) RawPair() (int16, int16) { return t.Object, t.Ambient }
func (TemperatureData) StringValues() []string    { return []string{"object", "ambient"} }

// AmbientCelsius converts the die temperature.
func (t TemperatureData) AmbientCelsius() float64 {
	return float64(t.Ambient) / 128
}

func (t *TemperatureData) SetRawPair(object, ambient int16) error {
	t.Object, t.Ambient = object, ambient
	return nil
}

func (t TemperatureData) StringValue() map[string]string {
	return map[string]string{
		"object":  serde.FormatPrimitive(t.Object),
		"ambient": serde.FormatPrimitive(t.Ambient),
	}
}

func (t *TemperatureData) SetStringValue(values map[string]string) error {
	object, err := serde.LookupStringValue[int16](values, "object")
	if err != nil {
		return err
	}
	ambient, err := serde.LookupStringValue[int16](values, "ambient")
	if err != nil {
		return err
	}
	return t.SetRawPair(object, ambient)
}

// HumidityData is the raw temperature followed by the raw relative humidity.
// The two low bits of each are status bits.
type HumidityData struct {
	Temperature uint16
	Humidity    uint16
}

func (HumidityData) UUID() string                { return HumidityDataUUID }
func (h HumidityData) RawPair() (uint16, uint16) { return h.Temperature, h.Humidity }
func (HumidityData) StringValues() []string      { return []string{"temperature", "humidity"} }

// Celsius converts the raw temperature.
func (h HumidityData) Celsius() float64 {
	return -46.85 + 175.72/65536*float64(h.Temperature&^0x3)
}

// RelativeHumidity converts the raw humidity to percent.
func (h HumidityData) RelativeHumidity() float64 {
	return -6 + 125/65536.0*float64(h.Humidity&^0x3)
}

func (h HumidityData) StringValue() map[string]string {
	return map[string]string{
		"temperature": serde.FormatPrimitive(h.Temperature),
		"humidity":    serde.FormatPrimitive(h.Humidity),
	}
}

func (h *HumidityData) SetRawPair(temperature, humidity uint16) error {
	h.Temperature, h.Humidity = temperature, humidity
	return nil
}

func (h *HumidityData) SetStringValue(values map[string]string) error {
	temperature, err := serde.LookupStringValue[uint16](values, "temperature")
	if err != nil {
		return err
	}
	humidity, err := serde.LookupStringValue[uint16](values, "humidity")
	if err != nil {
		return err
	}
	return h.SetRawPair(temperature, humidity)
}

// BarometerData is the raw temperature followed by the raw pressure. Both
// need a BarometerCalibration to convert.
type BarometerData struct {
	Temperature int16
	Pressure    uint16
}

func (BarometerData) UUID() string               { return BarometerDataUUID }
func (b BarometerData) RawPair() (int16, uint16) { return b.Temperature, b.Pressure }
func (BarometerData) StringValues() []string     { return []string{"temperature", "pressure"} }

func (b BarometerData) StringValue() map[string]string {
	return map[string]string{
		"temperature": serde.FormatPrimitive(b.Temperature),
		"pressure":    serde.FormatPrimitive(b.Pressure),
	}
}

func (b *BarometerData) SetRawPair(temperature int16, pressure uint16) error {
	b.Temperature, b.Pressure = temperature, pressure
	return nil
}

func (b *BarometerData) SetStringValue(values map[string]string) error {
	temperature, err := serde.LookupStringValue[int16](values, "temperature")
	if err != nil {
		return err
	}
	pressure, err := serde.LookupStringValue[uint16](values, "pressure")
	if err != nil {
		return err
	}
	return b.SetRawPair(temperature, pressure)
}

// Celsius converts the raw temperature with the device calibration.
func (b BarometerData) Celsius(c BarometerCalibration) float64 {
	tr := float64(b.Temperature)
	return (float64(c.C[0])*tr/math.Exp2(8) + float64(c.C[1])*math.Exp2(6)) / math.Exp2(16)
}

// Pascal converts the raw pressure with the device calibration.
func (b BarometerData) Pascal(c BarometerCalibration) float64 {
	tr := float64(b.Temperature)
	pr := float64(b.Pressure)
	s := float64(c.C[2]) + float64(c.C[3])*tr/math.Exp2(17) + float64(c.D[0])*tr*tr/math.Exp2(34)
	o := float64(c.D[1])*math.Exp2(14) + float64(c.D[2])*tr/math.Exp2(3) + float64(c.D[3])*tr*tr/math.Exp2(19)
	return (s*pr + o) / math.Exp2(14)
}

// BarometerCalibration holds the eight factory coefficients: four unsigned
// (c1..c4) followed by four signed (c5..c8).
type BarometerCalibration struct {
	C [4]uint16
	D [4]int16
}

// calibrationKeys are c1..c8.
var calibrationKeys = []string{"c1", "c2", "c3", "c4", "c5", "c6", "c7", "c8"}

func (BarometerCalibration) UUID() string              { return BarometerCalibrationUUID }
func (BarometerCalibration) ArrayPairSize() (int, int) { return 8, 8 }
func (BarometerCalibration) StringValues() []string    { return slices.Clone(calibrationKeys) }

func (c BarometerCalibration) RawArrayPair() ([]uint16, []int16) {
	return c.C[:], c.D[:]
}

func (c BarometerCalibration) StringValue() map[string]string {
	out := make(map[string]string, len(calibrationKeys))
	for i := range c.C {
		out[calibrationKeys[i]] = serde.FormatPrimitive(c.C[i])
		out[calibrationKeys[i+4]] = serde.FormatPrimitive(c.D[i])
	}
	return out
}

func (c *BarometerCalibration) SetRawArrayPair(unsigned []uint16, signed []int16) error {
	if len(unsigned) != len(c.C) || len(signed) != len(c.D) {
		return fmt.Errorf("need %d+%d coefficients, got %d+%d", len(c.C), len(c.D), len(unsigned), len(signed))
	}
	copy(c.C[:], unsigned)
	copy(c.D[:], signed)
	return nil
}

func (c *BarometerCalibration) SetStringValue(values map[string]string) error {
	var next BarometerCalibration
	for i := range next.C {
		u, err := serde.LookupStringValue[uint16](values, calibrationKeys[i])
		if err != nil {
			return err
		}
		s, err := serde.LookupStringValue[int16](values, calibrationKeys[i+4])
		if err != nil {
			return err
		}
		next.C[i], next.D[i] = u, s
	}
	*c = next
	return nil
}
