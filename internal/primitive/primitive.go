// Package primitive converts fixed-width scalars to and from byte sequences.
package primitive

import (
	"encoding/binary"
	"math"
	mathbits "math/bits"
	"reflect"
	"unsafe"

	"github.com/hengadev/serde/internal/buffer"
	"github.com/hengadev/serde/internal/serdeerr"
)

// Primitive is the set of fixed-width scalar types the codec supports.
// Platform-width int and uint are left out because their size is not fixed.
type Primitive interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

// Size returns the number of bytes a T occupies on the wire.
func Size[T Primitive]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// TypeName returns the Go name of T, used in error messages.
func TypeName[T Primitive]() string {
	return reflect.TypeFor[T]().String()
}

// Encode returns the Size[T]() bytes of v in the given byte order.
func Encode[T Primitive](v T, order binary.ByteOrder) []byte {
	buf := make([]byte, Size[T]())
	put(buf, bitsOf(v), order)
	return buf
}

// EncodeAll concatenates the encodings of vs.
func EncodeAll[T Primitive](vs []T, order binary.ByteOrder) []byte {
	size := Size[T]()
	buf := make([]byte, size*len(vs))
	for i, v := range vs {
		put(buf[i*size:(i+1)*size], bitsOf(v), order)
	}
	return buf
}

// Decode parses b as a single T. The buffer must be exactly Size[T]() bytes.
func Decode[T Primitive](b []byte, order binary.ByteOrder) (T, error) {
	size := Size[T]()
	if len(b) != size {
		var zero T
		return zero, serdeerr.NewLengthMismatchError(TypeName[T](), size, len(b), serdeerr.Decode)
	}
	return fromBits[T](get(b, order)), nil
}

// DecodeAt parses the Size[T]() bytes starting at offset.
func DecodeAt[T Primitive](b []byte, offset int, order binary.ByteOrder) (T, error) {
	window, err := buffer.Slice(b, offset, Size[T]())
	if err != nil {
		var zero T
		return zero, err
	}
	return fromBits[T](get(window, order)), nil
}

// DecodeAll walks b in Size[T]() windows. A trailing partial window is
// dropped; Remainder reports how many bytes that was.
func DecodeAll[T Primitive](b []byte, order binary.ByteOrder) []T {
	size := Size[T]()
	out := make([]T, len(b)/size)
	for i := range out {
		out[i] = fromBits[T](get(b[i*size:(i+1)*size], order))
	}
	return out
}

// Remainder returns the number of bytes DecodeAll would drop from b.
func Remainder[T Primitive](b []byte) int {
	return len(b) % Size[T]()
}

// Reverse swaps the byte order of v's in-memory representation.
func Reverse[T Primitive](v T) T {
	b := bitsOf(v)
	switch Size[T]() {
	case 1:
		return v
	case 2:
		b = uint64(mathbits.ReverseBytes16(uint16(b)))
	case 4:
		b = uint64(mathbits.ReverseBytes32(uint32(b)))
	default:
		b = mathbits.ReverseBytes64(b)
	}
	return fromBits[T](b)
}

func kindOf[T Primitive]() reflect.Kind {
	return reflect.TypeFor[T]().Kind()
}

func bitsOf[T Primitive](v T) uint64 {
	switch kindOf[T]() {
	case reflect.Float32:
		return uint64(math.Float32bits(float32(v)))
	case reflect.Float64:
		return math.Float64bits(float64(v))
	default:
		// sign extension is harmless, put keeps only the low Size bytes
		return uint64(v)
	}
}

func fromBits[T Primitive](b uint64) T {
	switch kindOf[T]() {
	case reflect.Float32:
		return T(math.Float32frombits(uint32(b)))
	case reflect.Float64:
		return T(math.Float64frombits(b))
	default:
		return T(b)
	}
}

func put(buf []byte, b uint64, order binary.ByteOrder) {
	switch len(buf) {
	case 1:
		buf[0] = byte(b)
	case 2:
		order.PutUint16(buf, uint16(b))
	case 4:
		order.PutUint32(buf, uint32(b))
	case 8:
		order.PutUint64(buf, b)
	}
}

func get(buf []byte, order binary.ByteOrder) uint64 {
	switch len(buf) {
	case 1:
		return uint64(buf[0])
	case 2:
		return uint64(order.Uint16(buf))
	case 4:
		return uint64(order.Uint32(buf))
	default:
		return order.Uint64(buf)
	}
}
