package serde

// Identifier is implemented by every adapter-bearing domain type. The codec
// treats the UUID as opaque metadata and only forwards it to observers.
type Identifier interface {
	UUID() string
}

// RawValuer projects a domain value onto a single raw primitive.
type RawValuer[R Primitive] interface {
	Identifier
	RawValue() R
}

// RawDeserializable is satisfied by *T when T can be rebuilt from a single
// raw primitive. SetRawValue returns an error for raw values outside the
// type's valid set; the receiver must not be used after a failure.
type RawDeserializable[R Primitive, T any] interface {
	*T
	RawValuer[R]
	SetRawValue(raw R) error
}

// RawArrayValuer projects a domain value onto a sequence of one primitive type.
type RawArrayValuer[R Primitive] interface {
	Identifier
	RawValues() []R
}

// RawArrayDeserializable is satisfied by *T when T can be rebuilt from a
// sequence of raw primitives.
type RawArrayDeserializable[R Primitive, T any] interface {
	*T
	RawArrayValuer[R]
	SetRawValues(raw []R) error
}

// RawPairValuer projects a domain value onto two consecutive primitives.
type RawPairValuer[R1, R2 Primitive] interface {
	Identifier
	RawPair() (R1, R2)
}

// RawPairDeserializable is satisfied by *T when T can be rebuilt from two
// consecutive raw primitives.
type RawPairDeserializable[R1, R2 Primitive, T any] interface {
	*T
	RawPairValuer[R1, R2]
	SetRawPair(first R1, second R2) error
}

// RawArrayPairValuer projects a domain value onto two primitive sequences.
//
// ArrayPairSize reports the byte lengths of the two windows, not element
// counts. It is called on the zero value when decoding, so it must not depend
// on receiver state.
type RawArrayPairValuer[R1, R2 Primitive] interface {
	Identifier
	ArrayPairSize() (int, int)
	RawArrayPair() ([]R1, []R2)
}

// RawArrayPairDeserializable is satisfied by *T when T can be rebuilt from
// two raw primitive sequences.
type RawArrayPairDeserializable[R1, R2 Primitive, T any] interface {
	*T
	RawArrayPairValuer[R1, R2]
	SetRawArrayPair(first []R1, second []R2) error
}

// StringValuer presents a decoded value as named text fields.
type StringValuer interface {
	StringValue() map[string]string
}

// StringDeserializable is satisfied by *T when T can be rebuilt from named
// text fields. StringValues lists the keys SetStringValue expects, in display
// order.
type StringDeserializable[T any] interface {
	*T
	StringValuer
	StringValues() []string
	SetStringValue(values map[string]string) error
}
