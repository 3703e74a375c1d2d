package serde

import (
	"reflect"

	"github.com/hengadev/serde/internal/adapter"
	"github.com/hengadev/serde/internal/buffer"
	"github.com/hengadev/serde/internal/primitive"
	"github.com/hengadev/serde/internal/serdeerr"
	"github.com/hengadev/serde/internal/text"
)

const (
	actionEncode = "encode"
	actionDecode = "decode"

	kindPrimitive = "primitive"
	kindSlice     = "slice"
	kindString    = "string"
	kindSingle    = "single"
	kindArray     = "array"
	kindPair      = "pair"
	kindArrayPair = "array_pair"
)

// Primitive is the set of fixed-width scalars the codec converts. Named types
// over these kinds are primitives too; int, uint and uintptr are not.
type Primitive = primitive.Primitive

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

// SizeOf returns the number of bytes a T occupies on the wire.
func SizeOf[T Primitive]() int {
	return primitive.Size[T]()
}

// ReverseBytes swaps the byte order of v's in-memory representation.
func ReverseBytes[T Primitive](v T) T {
	return primitive.Reverse(v)
}

// ParsePrimitive parses the decimal text form of a T. Values outside T's
// range are rejected with ErrInvalidFormat.
func ParsePrimitive[T Primitive](s string) (T, error) {
	return primitive.Parse[T](s)
}

// FormatPrimitive returns the decimal text form of v.
func FormatPrimitive[T Primitive](v T) string {
	return primitive.Format(v)
}

// FromHex decodes a hex string, ignoring whitespace and an optional 0x prefix.
func FromHex(s string) ([]byte, error) {
	return buffer.FromHex(s)
}

// ToHex encodes b as lower-case hex.
func ToHex(b []byte) string {
	return buffer.ToHex(b)
}

// Serialize encodes a primitive into exactly SizeOf[T]() bytes.
func Serialize[T Primitive](v T, opts ...Option) []byte {
	o := resolve(opts)
	b := primitive.Encode(v, o.ByteOrder)
	o.observe(actionEncode, kindPrimitive, typeName[T](), "", len(b), nil)
	return b
}

// Deserialize decodes a primitive. The buffer must be exactly SizeOf[T]() bytes.
func Deserialize[T Primitive](b []byte, opts ...Option) (T, error) {
	o := resolve(opts)
	v, err := primitive.Decode[T](b, o.ByteOrder)
	o.observe(actionDecode, kindPrimitive, typeName[T](), "", len(b), err)
	return v, err
}

// DeserializeAt decodes the primitive stored at offset in b.
func DeserializeAt[T Primitive](b []byte, offset int, opts ...Option) (T, error) {
	o := resolve(opts)
	v, err := primitive.DecodeAt[T](b, offset, o.ByteOrder)
	o.observe(actionDecode, kindPrimitive, typeName[T](), "", len(b), err)
	return v, err
}

// SerializeSlice concatenates the encodings of vs.
func SerializeSlice[T Primitive](vs []T, opts ...Option) []byte {
	o := resolve(opts)
	b := primitive.EncodeAll(vs, o.ByteOrder)
	o.observe(actionEncode, kindSlice, typeName[[]T](), "", len(b), nil)
	return b
}

// DeserializeSlice decodes len(b)/SizeOf[T]() elements. A trailing partial
// element is dropped unless WithStrictArrays is set.
func DeserializeSlice[T Primitive](b []byte, opts ...Option) ([]T, error) {
	o := resolve(opts)
	vs, err := adapter.DecodeArray[T](b, o.layout())
	o.observe(actionDecode, kindSlice, typeName[[]T](), "", len(b), err)
	return vs, err
}

// SerializeString encodes s with the configured text encoding (UTF-8 by
// default). Characters the encoding cannot represent yield ErrInvalidText.
func SerializeString(s string, opts ...Option) ([]byte, error) {
	o := resolve(opts)
	b, err := text.Encode(s, o.TextEncoding)
	o.observe(actionEncode, kindString, o.TextEncoding.String(), "", len(b), err)
	return b, err
}

// DeserializeString decodes b with the configured text encoding. Invalid
// byte sequences yield ErrInvalidText; nothing is replaced silently.
func DeserializeString(b []byte, opts ...Option) (string, error) {
	o := resolve(opts)
	s, err := text.Decode(b, o.TextEncoding)
	o.observe(actionDecode, kindString, o.TextEncoding.String(), "", len(b), err)
	return s, err
}

// SerializeRaw encodes a single-raw-value domain type.
func SerializeRaw[R Primitive](v RawValuer[R], opts ...Option) []byte {
	o := resolve(opts)
	b := adapter.EncodeSingle(v.RawValue(), o.layout())
	o.observe(actionEncode, kindSingle, reflect.TypeOf(v).String(), v.UUID(), len(b), nil)
	return b
}

// DeserializeRaw decodes a T from exactly SizeOf[R]() bytes and rebuilds it
// with SetRawValue.
//
//	level, err := serde.DeserializeRaw[uint8, ble.BatteryLevel](payload)
func DeserializeRaw[R Primitive, T any, PT RawDeserializable[R, T]](b []byte, opts ...Option) (T, error) {
	o := resolve(opts)
	var v T
	uuid := PT(&v).UUID()

	raw, err := adapter.DecodeSingle[R](b, o.layout())
	if err == nil {
		err = reconstruct[T](PT(&v).SetRawValue(raw))
	}
	o.observe(actionDecode, kindSingle, typeName[T](), uuid, len(b), err)
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// SerializeRawArray encodes an array-of-raw-values domain type.
func SerializeRawArray[R Primitive](v RawArrayValuer[R], opts ...Option) []byte {
	o := resolve(opts)
	b := adapter.EncodeArray(v.RawValues(), o.layout())
	o.observe(actionEncode, kindArray, reflect.TypeOf(v).String(), v.UUID(), len(b), nil)
	return b
}

// DeserializeRawArray decodes every whole R in b and rebuilds a T with
// SetRawValues.
func DeserializeRawArray[R Primitive, T any, PT RawArrayDeserializable[R, T]](b []byte, opts ...Option) (T, error) {
	o := resolve(opts)
	var v T
	uuid := PT(&v).UUID()

	raw, err := adapter.DecodeArray[R](b, o.layout())
	if err == nil {
		err = reconstruct[T](PT(&v).SetRawValues(raw))
	}
	o.observe(actionDecode, kindArray, typeName[T](), uuid, len(b), err)
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// SerializeRawPair encodes a pair domain type as [R1][R2].
func SerializeRawPair[R1, R2 Primitive](v RawPairValuer[R1, R2], opts ...Option) []byte {
	o := resolve(opts)
	first, second := v.RawPair()
	b := adapter.EncodePair(first, second, o.layout())
	o.observe(actionEncode, kindPair, reflect.TypeOf(v).String(), v.UUID(), len(b), nil)
	return b
}

// DeserializeRawPair reads [R1][R2] from the front of b and rebuilds a T with
// SetRawPair. Buffers shorter than both primitives fail with
// ErrLengthMismatch; bytes after the pair are ignored.
func DeserializeRawPair[R1, R2 Primitive, T any, PT RawPairDeserializable[R1, R2, T]](b []byte, opts ...Option) (T, error) {
	o := resolve(opts)
	var v T
	uuid := PT(&v).UUID()

	first, second, err := adapter.DecodePair[R1, R2](b, o.layout())
	if err == nil {
		err = reconstruct[T](PT(&v).SetRawPair(first, second))
	}
	o.observe(actionDecode, kindPair, typeName[T](), uuid, len(b), err)
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// SerializeRawArrayPair encodes an array-pair domain type as [R1...][R2...].
func SerializeRawArrayPair[R1, R2 Primitive](v RawArrayPairValuer[R1, R2], opts ...Option) []byte {
	o := resolve(opts)
	first, second := v.RawArrayPair()
	b := adapter.EncodeArrayPair(first, second, o.layout())
	o.observe(actionEncode, kindArrayPair, reflect.TypeOf(v).String(), v.UUID(), len(b), nil)
	return b
}

// DeserializeRawArrayPair splits b into the two byte windows declared by
// ArrayPairSize, decodes each as an array and rebuilds a T with
// SetRawArrayPair. With the default ArrayPairExact policy len(b) must equal
// the sum of the declared sizes.
func DeserializeRawArrayPair[R1, R2 Primitive, T any, PT RawArrayPairDeserializable[R1, R2, T]](b []byte, opts ...Option) (T, error) {
	o := resolve(opts)
	var v T
	uuid := PT(&v).UUID()
	size1, size2 := PT(&v).ArrayPairSize()

	first, second, err := adapter.DecodeArrayPair[R1, R2](b, size1, size2, o.layout())
	if err == nil {
		err = reconstruct[T](PT(&v).SetRawArrayPair(first, second))
	}
	o.observe(actionDecode, kindArrayPair, typeName[T](), uuid, len(b), err)
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

func reconstruct[T any](err error) error {
	if err == nil {
		return nil
	}
	return serdeerr.NewInvalidRawValueError(typeName[T](), err)
}

// LookupStringValue parses the primitive stored under key, for use in
// SetStringValue implementations.
func LookupStringValue[T Primitive](values map[string]string, key string) (T, error) {
	s, ok := values[key]
	if !ok {
		var zero T
		return zero, serdeerr.NewMissingValueError(typeName[T](), key)
	}
	return primitive.Parse[T](s)
}
