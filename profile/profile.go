// Package profile binds serde adapters to Bluetooth characteristic and
// service metadata and routes payloads to them by UUID.
//
// A CharacteristicProfile presents every decoded value as named text fields,
// the form a developer tool or an edit screen works with, and rebuilds
// payloads from the same fields.
package profile

import (
	"fmt"
	"reflect"

	"github.com/hengadev/serde"
)

// ValueKey is the string-value key used by profiles that hold one unnamed
// value, such as strings, plain primitives and opaque bytes.
const ValueKey = "value"

// Meta is the static description of a characteristic.
type Meta struct {
	Name        string
	UUID        string
	Permissions Permissions
	Properties  Properties
	// InitialValue is the payload a peripheral exposes before any write.
	InitialValue []byte
}

// CharacteristicProfile converts between a characteristic payload and its
// string values.
type CharacteristicProfile interface {
	Name() string
	// UUID is the canonical 128-bit form when the declared UUID is valid.
	UUID() string
	Permissions() Permissions
	Properties() Properties
	InitialValue() []byte
	// StringValues lists the keys Decode returns and Encode expects.
	StringValues() []string
	Decode(b []byte) (map[string]string, error)
	Encode(values map[string]string) ([]byte, error)
}

type characteristic struct {
	meta   Meta
	uuid   string
	keys   []string
	decode func([]byte) (map[string]string, error)
	encode func(map[string]string) ([]byte, error)
}

func (c *characteristic) Name() string             { return c.meta.Name }
func (c *characteristic) UUID() string             { return c.uuid }
func (c *characteristic) Permissions() Permissions { return c.meta.Permissions }
func (c *characteristic) Properties() Properties   { return c.meta.Properties }

func (c *characteristic) InitialValue() []byte {
	if c.meta.InitialValue == nil {
		return nil
	}
	out := make([]byte, len(c.meta.InitialValue))
	copy(out, c.meta.InitialValue)
	return out
}

func (c *characteristic) StringValues() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

func (c *characteristic) Decode(b []byte) (map[string]string, error) {
	values, err := c.decode(b)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.meta.Name, err)
	}
	return values, nil
}

func (c *characteristic) Encode(values map[string]string) ([]byte, error) {
	b, err := c.encode(values)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", c.meta.Name, err)
	}
	return b, nil
}

func newCharacteristic(meta Meta, typeUUID string, keys []string) *characteristic {
	if meta.UUID == "" {
		meta.UUID = typeUUID
	}
	if meta.Name == "" {
		meta.Name = meta.UUID
	}
	return &characteristic{meta: meta, uuid: normalizeOrLower(meta.UUID), keys: keys}
}

// fromStrings rebuilds a T from string values.
func fromStrings[T any, PT serde.StringDeserializable[T]](values map[string]string) (T, error) {
	var v T
	if err := PT(&v).SetStringValue(values); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %s: %w", serde.ErrInvalidRawValue, reflect.TypeFor[T](), err)
	}
	return v, nil
}

// RawProfile is satisfied by *T when T is a single-raw-value type with
// string values.
type RawProfile[R serde.Primitive, T any] interface {
	serde.RawDeserializable[R, T]
	serde.StringDeserializable[T]
}

// NewRawProfile binds a single-raw-value type to meta. An empty meta.UUID
// takes the type's UUID.
func NewRawProfile[R serde.Primitive, T any, PT RawProfile[R, T]](meta Meta, opts ...serde.Option) CharacteristicProfile {
	var zero T
	c := newCharacteristic(meta, PT(&zero).UUID(), PT(&zero).StringValues())
	c.decode = func(b []byte) (map[string]string, error) {
		v, err := serde.DeserializeRaw[R, T, PT](b, opts...)
		if err != nil {
			return nil, err
		}
		return PT(&v).StringValue(), nil
	}
	c.encode = func(values map[string]string) ([]byte, error) {
		v, err := fromStrings[T, PT](values)
		if err != nil {
			return nil, err
		}
		return serde.SerializeRaw[R](PT(&v), opts...), nil
	}
	return c
}

// RawArrayProfile is satisfied by *T when T is an array-of-raw-values type
// with string values.
type RawArrayProfile[R serde.Primitive, T any] interface {
	serde.RawArrayDeserializable[R, T]
	serde.StringDeserializable[T]
}

// NewRawArrayProfile binds an array-of-raw-values type to meta.
func NewRawArrayProfile[R serde.Primitive, T any, PT RawArrayProfile[R, T]](meta Meta, opts ...serde.Option) CharacteristicProfile {
	var zero T
	c := newCharacteristic(meta, PT(&zero).UUID(), PT(&zero).StringValues())
	c.decode = func(b []byte) (map[string]string, error) {
		v, err := serde.DeserializeRawArray[R, T, PT](b, opts...)
		if err != nil {
			return nil, err
		}
		return PT(&v).StringValue(), nil
	}
	c.encode = func(values map[string]string) ([]byte, error) {
		v, err := fromStrings[T, PT](values)
		if err != nil {
			return nil, err
		}
		return serde.SerializeRawArray[R](PT(&v), opts...), nil
	}
	return c
}

// RawPairProfile is satisfied by *T when T is a pair type with string values.
type RawPairProfile[R1, R2 serde.Primitive, T any] interface {
	serde.RawPairDeserializable[R1, R2, T]
	serde.StringDeserializable[T]
}

// NewRawPairProfile binds a pair type to meta.
func NewRawPairProfile[R1, R2 serde.Primitive, T any, PT RawPairProfile[R1, R2, T]](meta Meta, opts ...serde.Option) CharacteristicProfile {
	var zero T
	c := newCharacteristic(meta, PT(&zero).UUID(), PT(&zero).StringValues())
	c.decode = func(b []byte) (map[string]string, error) {
		v, err := serde.DeserializeRawPair[R1, R2, T, PT](b, opts...)
		if err != nil {
			return nil, err
		}
		return PT(&v).StringValue(), nil
	}
	c.encode = func(values map[string]string) ([]byte, error) {
		v, err := fromStrings[T, PT](values)
		if err != nil {
			return nil, err
		}
		return serde.SerializeRawPair[R1, R2](PT(&v), opts...), nil
	}
	return c
}

// RawArrayPairProfile is satisfied by *T when T is an array-pair type with
// string values.
type RawArrayPairProfile[R1, R2 serde.Primitive, T any] interface {
	serde.RawArrayPairDeserializable[R1, R2, T]
	serde.StringDeserializable[T]
}

// NewRawArrayPairProfile binds an array-pair type to meta.
func NewRawArrayPairProfile[R1, R2 serde.Primitive, T any, PT RawArrayPairProfile[R1, R2, T]](meta Meta, opts ...serde.Option) CharacteristicProfile {
	var zero T
	c := newCharacteristic(meta, PT(&zero).UUID(), PT(&zero).StringValues())
	c.decode = func(b []byte) (map[string]string, error) {
		v, err := serde.DeserializeRawArrayPair[R1, R2, T, PT](b, opts...)
		if err != nil {
			return nil, err
		}
		return PT(&v).StringValue(), nil
	}
	c.encode = func(values map[string]string) ([]byte, error) {
		v, err := fromStrings[T, PT](values)
		if err != nil {
			return nil, err
		}
		return serde.SerializeRawArrayPair[R1, R2](PT(&v), opts...), nil
	}
	return c
}

// NewPrimitiveProfile binds a plain primitive to meta under ValueKey.
func NewPrimitiveProfile[T serde.Primitive](meta Meta, opts ...serde.Option) CharacteristicProfile {
	c := newCharacteristic(meta, "", []string{ValueKey})
	c.decode = func(b []byte) (map[string]string, error) {
		v, err := serde.Deserialize[T](b, opts...)
		if err != nil {
			return nil, err
		}
		return map[string]string{ValueKey: serde.FormatPrimitive(v)}, nil
	}
	c.encode = func(values map[string]string) ([]byte, error) {
		v, err := serde.LookupStringValue[T](values, ValueKey)
		if err != nil {
			return nil, err
		}
		return serde.Serialize(v, opts...), nil
	}
	return c
}

// NewStringProfile binds text to meta under ValueKey. The text encoding comes
// from opts (UTF-8 by default).
func NewStringProfile(meta Meta, opts ...serde.Option) CharacteristicProfile {
	c := newCharacteristic(meta, "", []string{ValueKey})
	c.decode = func(b []byte) (map[string]string, error) {
		s, err := serde.DeserializeString(b, opts...)
		if err != nil {
			return nil, err
		}
		return map[string]string{ValueKey: s}, nil
	}
	c.encode = func(values map[string]string) ([]byte, error) {
		s, ok := values[ValueKey]
		if !ok {
			return nil, fmt.Errorf("%w: string requires %q", serde.ErrMissingValue, ValueKey)
		}
		return serde.SerializeString(s, opts...)
	}
	return c
}

// NewBytesProfile exposes an opaque payload as hex text under ValueKey.
func NewBytesProfile(meta Meta) CharacteristicProfile {
	c := newCharacteristic(meta, "", []string{ValueKey})
	c.decode = func(b []byte) (map[string]string, error) {
		return map[string]string{ValueKey: serde.ToHex(b)}, nil
	}
	c.encode = func(values map[string]string) ([]byte, error) {
		s, ok := values[ValueKey]
		if !ok {
			return nil, fmt.Errorf("%w: bytes require %q", serde.ErrMissingValue, ValueKey)
		}
		return serde.FromHex(s)
	}
	return c
}

// ServiceProfile groups the characteristics of one GATT service.
type ServiceProfile struct {
	Name string
	UUID string
	// Tag is a short free-form label, e.g. the vendor or device family.
	Tag             string
	Characteristics []CharacteristicProfile
}
