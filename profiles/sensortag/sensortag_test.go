package sensortag

import (
	"testing"

	"github.com/hengadev/serde"
	"github.com/hengadev/serde/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var little = serde.WithByteOrder(ByteOrder)

func TestEnabled(t *testing.T) {
	got, err := serde.DeserializeRaw[uint8, Enabled]([]byte{0x01})
	require.NoError(t, err)
	assert.Equal(t, On, got)

	_, err = serde.DeserializeRaw[uint8, Enabled]([]byte{0x02})
	assert.ErrorIs(t, err, serde.ErrInvalidRawValue)

	var e Enabled
	require.NoError(t, e.SetStringValue(map[string]string{"enabled": "YES"}))
	assert.Equal(t, On, e)
	assert.Error(t, e.SetStringValue(map[string]string{"enabled": "maybe"}))
}

func TestUpdatePeriod(t *testing.T) {
	got, err := serde.DeserializeRaw[uint8, UpdatePeriod]([]byte{50})
	require.NoError(t, err)
	assert.Equal(t, 500, got.Milliseconds())
	assert.Equal(t, map[string]string{"period_ms": "500"}, got.StringValue())

	_, err = serde.DeserializeRaw[uint8, UpdatePeriod]([]byte{9})
	assert.ErrorIs(t, err, serde.ErrInvalidRawValue)

	var p UpdatePeriod
	require.NoError(t, p.SetStringValue(map[string]string{"period_ms": "2550"}))
	assert.Equal(t, UpdatePeriod(255), p)
	assert.Error(t, p.SetStringValue(map[string]string{"period_ms": "105"}))
	assert.Error(t, p.SetStringValue(map[string]string{"period_ms": "2560"}))
}

func TestAccelerometerData(t *testing.T) {
	in := AccelerometerData{X: -64, Y: 0, Z: 64}
	b := serde.SerializeRawArray[int8](in, little)
	assert.Equal(t, []byte{0xc0, 0x00, 0x40}, b)

	got, err := serde.DeserializeRawArray[int8, AccelerometerData](b, little)
	require.NoError(t, err)
	assert.Equal(t, in, got)

	x, _, z := got.G()
	assert.Equal(t, -1.0, x)
	assert.Equal(t, 1.0, z)

	_, err = serde.DeserializeRawArray[int8, AccelerometerData](b[:2], little)
	assert.ErrorIs(t, err, serde.ErrInvalidRawValue)
}

func TestMagnetometerData(t *testing.T) {
	in := MagnetometerData{X: 1, Y: -2, Z: 0x0300}
	b := serde.SerializeRawArray[int16](in, little)
	assert.Equal(t, []byte{0x01, 0x00, 0xfe, 0xff, 0x00, 0x03}, b)

	got, err := serde.DeserializeRawArray[int16, MagnetometerData](b, little)
	require.NoError(t, err)
	assert.Equal(t, in, got)

	got, err = serde.DeserializeRawArray[int16, MagnetometerData](append(b, 0x07), little)
	require.NoError(t, err, "a trailing partial element is dropped")
	assert.Equal(t, in, got)

	_, err = serde.DeserializeRawArray[int16, MagnetometerData](append(b, 0x07), little, serde.WithStrictArrays(true))
	assert.ErrorIs(t, err, serde.ErrTrailingData)
}

func TestTemperatureData(t *testing.T) {
	in := TemperatureData{Object: -200, Ambient: 3200}
	b := serde.SerializeRawPair[int16, int16](in, little)
	require.Len(t, b, 4)

	got, err := serde.DeserializeRawPair[int16, int16, TemperatureData](b, little)
	require.NoError(t, err)
	assert.Equal(t, in, got)
	assert.Equal(t, 25.0, got.AmbientCelsius())

	_, err = serde.DeserializeRawPair[int16, int16, TemperatureData](b[:3], little)
	assert.ErrorIs(t, err, serde.ErrLengthMismatch)
}

func TestHumidityData(t *testing.T) {
	got, err := serde.DeserializeRawPair[uint16, uint16, HumidityData]([]byte{0x00, 0x80, 0x00, 0x80}, little)
	require.NoError(t, err)
	assert.Equal(t, HumidityData{Temperature: 0x8000, Humidity: 0x8000}, got)
	assert.InDelta(t, 41.01, got.Celsius(), 0.01)
	assert.InDelta(t, 56.5, got.RelativeHumidity(), 0.01)
}

func TestBarometer(t *testing.T) {
	cal := BarometerCalibration{
		C: [4]uint16{45697, 25592, 48894, 36174},
		D: [4]int16{7001, 1990, -2369, 5542},
	}
	b := serde.SerializeRawArrayPair[uint16, int16](cal, little)
	require.Len(t, b, 16)

	got, err := serde.DeserializeRawArrayPair[uint16, int16, BarometerCalibration](b, little)
	require.NoError(t, err)
	assert.Equal(t, cal, got)

	_, err = serde.DeserializeRawArrayPair[uint16, int16, BarometerCalibration](b[:15], little)
	assert.ErrorIs(t, err, serde.ErrLengthMismatch)

	_, err = serde.DeserializeRawArrayPair[uint16, int16, BarometerCalibration](b[:15], little,
		serde.WithArrayPairPolicy(serde.ArrayPairBestEffort))
	assert.ErrorIs(t, err, serde.ErrInvalidRawValue)

	data := BarometerData{Temperature: 0x6400, Pressure: 0x9c40}
	assert.Greater(t, data.Celsius(cal), 0.0)
	assert.Greater(t, data.Pascal(cal), 0.0)
}

func TestStringValues_ReturnsCopy(t *testing.T) {
	keys := AccelerometerData{}.StringValues()
	keys[0] = "w"
	_ = append(keys[:1], "q")
	assert.Equal(t, []string{"x", "y", "z"}, AccelerometerData{}.StringValues())
	assert.Equal(t, []string{"x", "y", "z"}, MagnetometerData{}.StringValues())

	coefficients := BarometerCalibration{}.StringValues()
	coefficients[7] = "c0"
	assert.Equal(t, "c8", BarometerCalibration{}.StringValues()[7])
}

func TestRegister(t *testing.T) {
	r := profile.NewRegistry()
	require.NoError(t, Register(r))
	assert.Len(t, r.Services(), 5)

	values, err := r.Decode(AccelerometerDataUUID, []byte{0x01, 0x02, 0xff})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"x": "1", "y": "2", "z": "-1"}, values)

	b, err := r.Encode(MagnetometerPeriodUUID, map[string]string{"period_ms": "1000"})
	require.NoError(t, err)
	assert.Equal(t, []byte{100}, b)

	b, err = r.Encode(BarometerDataUUID, map[string]string{"temperature": "1", "pressure": "2"})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x00, 0x02, 0x00}, b, "payloads are little-endian")

	values, err = r.Decode(BarometerCalibrationUUID, make([]byte, 16))
	require.NoError(t, err)
	assert.Len(t, values, 8)

	c, err := r.Characteristic(HumidityConfigUUID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, c.InitialValue())
	assert.Equal(t, "Humidity Enabled", c.Name())
}
