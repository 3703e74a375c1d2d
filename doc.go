// Package serde converts typed Go values to and from fixed-layout byte
// buffers, such as Bluetooth LE characteristic payloads.
//
// A domain type declares how it maps onto raw primitives by implementing one
// capability, and the matching façade function does the rest. The Go type
// parameters select the adapter at compile time; nothing is looked up at run
// time.
//
// # Capabilities
//
//	primitive   Serialize / Deserialize / DeserializeAt
//	slice       SerializeSlice / DeserializeSlice
//	string      SerializeString / DeserializeString
//	single      SerializeRaw / DeserializeRaw               (RawValuer, RawDeserializable)
//	array       SerializeRawArray / DeserializeRawArray     (RawArrayValuer, RawArrayDeserializable)
//	pair        SerializeRawPair / DeserializeRawPair       (RawPairValuer, RawPairDeserializable)
//	array-pair  SerializeRawArrayPair / DeserializeRawArrayPair
//
// # Quick Start
//
//	type BatteryLevel uint8
//
//	func (BatteryLevel) UUID() string          { return "2a19" }
//	func (b BatteryLevel) RawValue() uint8     { return uint8(b) }
//	func (b *BatteryLevel) SetRawValue(raw uint8) error {
//	    if raw > 100 {
//	        return serde.NewInvalidRawValueError("BatteryLevel", nil)
//	    }
//	    *b = BatteryLevel(raw)
//	    return nil
//	}
//
//	payload := serde.SerializeRaw[uint8](BatteryLevel(87))
//	level, err := serde.DeserializeRaw[uint8, BatteryLevel](payload)
//
// # Layouts
//
// A pair is laid out as [R1][R2]. An array-pair is laid out as a window of
// size1 bytes of R1 followed by size2 bytes of R2, where ArrayPairSize
// declares the byte lengths. Primitives use the host byte order unless
// WithByteOrder says otherwise.
//
// # Failure policy
//
// Decoding never returns a partially populated value. Short or oversized
// buffers fail with ErrLengthMismatch, rejected raw values with
// ErrInvalidRawValue and malformed text with ErrInvalidText. A trailing
// partial array element is dropped unless WithStrictArrays is set, and
// array-pair sizes must match the buffer exactly unless
// WithArrayPairPolicy(ArrayPairBestEffort) is set.
//
// All functions are stateless and safe for concurrent use. Observers attached
// with WithObserver are the only side effect.
package serde
