package profile

import (
	"encoding/binary"
	"testing"

	"github.com/hengadev/serde"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var little = serde.WithByteOrder(binary.LittleEndian)

func TestNewRawProfile(t *testing.T) {
	p := NewRawProfile[uint8, mode](Meta{
		Name:         "Mode",
		Permissions:  Readable | Writeable,
		Properties:   Read | Write,
		InitialValue: []byte{0x00},
	})

	assert.Equal(t, "Mode", p.Name())
	assert.Equal(t, "0000fff1-0000-1000-8000-00805f9b34fb", p.UUID())
	assert.Equal(t, Readable|Writeable, p.Permissions())
	assert.Equal(t, Read|Write, p.Properties())
	assert.Equal(t, []byte{0x00}, p.InitialValue())
	assert.Equal(t, []string{"mode"}, p.StringValues())

	values, err := p.Decode([]byte{0x01})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"mode": "on"}, values)

	b, err := p.Encode(map[string]string{"mode": "off"})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, b)

	_, err = p.Decode([]byte{0x05})
	assert.ErrorIs(t, err, serde.ErrInvalidRawValue)

	_, err = p.Encode(map[string]string{"mode": "sideways"})
	assert.ErrorIs(t, err, serde.ErrInvalidRawValue)
}

func TestNewRawProfile_MetaUUIDWins(t *testing.T) {
	p := NewRawProfile[uint8, mode](Meta{Name: "Mode", UUID: "F000AA01-0451-4000-B000-000000000000"})
	assert.Equal(t, "f000aa01-0451-4000-b000-000000000000", p.UUID())
}

func TestNewRawProfile_InitialValueIsCopied(t *testing.T) {
	p := NewRawProfile[uint8, mode](Meta{InitialValue: []byte{0x01}})
	p.InitialValue()[0] = 0xff
	assert.Equal(t, []byte{0x01}, p.InitialValue())
	assert.Equal(t, "fff1", p.Name())
}

func TestNewRawArrayProfile(t *testing.T) {
	p := NewRawArrayProfile[int16, vector](Meta{Name: "Vector"}, little)

	values, err := p.Decode([]byte{0x01, 0x00, 0xff, 0xff})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"x": "1", "y": "-1"}, values)

	b, err := p.Encode(map[string]string{"x": "256", "y": "2"})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01, 0x02, 0x00}, b)

	_, err = p.Decode([]byte{0x01, 0x00})
	assert.ErrorIs(t, err, serde.ErrInvalidRawValue)

	_, err = p.Encode(map[string]string{"x": "1"})
	assert.ErrorIs(t, err, serde.ErrMissingValue)
}

func TestNewRawPairProfile(t *testing.T) {
	p := NewRawPairProfile[uint8, uint16, point](Meta{Name: "Point"}, little)

	values, err := p.Decode([]byte{0x03, 0x10, 0x27})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"index": "3", "level": "10000"}, values)

	b, err := p.Encode(values)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03, 0x10, 0x27}, b)

	_, err = p.Decode([]byte{0x03, 0x10})
	assert.ErrorIs(t, err, serde.ErrLengthMismatch)
}

func TestNewRawArrayPairProfile(t *testing.T) {
	p := NewRawArrayPairProfile[uint8, int16, table](Meta{Name: "Table"}, little)
	payload := []byte{0x01, 0x02, 0x0a, 0x00, 0xf6, 0xff}

	values, err := p.Decode(payload)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"k0": "1", "k1": "2", "v0": "10", "v1": "-10"}, values)

	b, err := p.Encode(values)
	require.NoError(t, err)
	assert.Equal(t, payload, b)

	_, err = p.Decode(payload[:5])
	assert.ErrorIs(t, err, serde.ErrLengthMismatch)
}

func TestNewPrimitiveProfile(t *testing.T) {
	p := NewPrimitiveProfile[uint16](Meta{Name: "Interval", UUID: "2a21"}, serde.WithByteOrder(binary.BigEndian))

	values, err := p.Decode([]byte{0x01, 0x00})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{ValueKey: "256"}, values)

	b, err := p.Encode(map[string]string{ValueKey: "2"})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x02}, b)

	_, err = p.Encode(map[string]string{ValueKey: "70000"})
	assert.ErrorIs(t, err, serde.ErrInvalidFormat)
}

func TestNewStringProfile(t *testing.T) {
	p := NewStringProfile(Meta{Name: "Device Name", UUID: "2a00"})

	values, err := p.Decode([]byte("SensorTag"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{ValueKey: "SensorTag"}, values)

	b, err := p.Encode(map[string]string{ValueKey: "Tag"})
	require.NoError(t, err)
	assert.Equal(t, []byte("Tag"), b)

	_, err = p.Decode([]byte{0xff, 0xfe})
	assert.ErrorIs(t, err, serde.ErrInvalidText)

	_, err = p.Encode(map[string]string{})
	assert.ErrorIs(t, err, serde.ErrMissingValue)

	latin := NewStringProfile(Meta{Name: "Label", UUID: "2a01"}, serde.WithTextEncoding(serde.ISOLatin1))
	b, err = latin.Encode(map[string]string{ValueKey: "é"})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xe9}, b)
}

func TestNewBytesProfile(t *testing.T) {
	p := NewBytesProfile(Meta{Name: "Raw", UUID: "fff9"})

	values, err := p.Decode([]byte{0xde, 0xad})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{ValueKey: "dead"}, values)

	b, err := p.Encode(map[string]string{ValueKey: "0xBEEF"})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xbe, 0xef}, b)

	_, err = p.Encode(map[string]string{ValueKey: "xyz"})
	assert.ErrorIs(t, err, serde.ErrInvalidFormat)
}
