// Package adapter lays raw values out in buffers for the four adapter shapes:
// single, array, pair and array-pair. Reconstruction of domain values is left
// to the caller; this package only moves primitives in and out of bytes.
package adapter

import (
	"fmt"

	"github.com/hengadev/serde/internal/buffer"
	"github.com/hengadev/serde/internal/primitive"
	"github.com/hengadev/serde/internal/serdeerr"
)

// EncodeSingle lays out one raw primitive.
func EncodeSingle[R primitive.Primitive](raw R, l Layout) []byte {
	return primitive.Encode(raw, l.order())
}

// DecodeSingle reads one raw primitive; b must be exactly its size.
func DecodeSingle[R primitive.Primitive](b []byte, l Layout) (R, error) {
	return primitive.Decode[R](b, l.order())
}

// EncodeArray lays the elements of raw out back to back.
func EncodeArray[R primitive.Primitive](raw []R, l Layout) []byte {
	return primitive.EncodeAll(raw, l.order())
}

// DecodeArray decodes every whole element of b. With StrictArrays a trailing
// partial element is an error instead of being dropped.
func DecodeArray[R primitive.Primitive](b []byte, l Layout) ([]R, error) {
	if l.StrictArrays {
		if trailing := primitive.Remainder[R](b); trailing != 0 {
			return nil, serdeerr.NewTrailingDataError(primitive.TypeName[R](), primitive.Size[R](), trailing)
		}
	}
	return primitive.DecodeAll[R](b, l.order()), nil
}

// EncodePair lays out [r1][r2].
func EncodePair[R1, R2 primitive.Primitive](r1 R1, r2 R2, l Layout) []byte {
	return buffer.Concat(primitive.Encode(r1, l.order()), primitive.Encode(r2, l.order()))
}

// DecodePair reads [R1][R2] from the front of b. Bytes after the pair are
// ignored.
func DecodePair[R1, R2 primitive.Primitive](b []byte, l Layout) (R1, R2, error) {
	var (
		zero1 R1
		zero2 R2
	)
	size1 := primitive.Size[R1]()
	size2 := primitive.Size[R2]()
	if len(b) < size1+size2 {
		name := fmt.Sprintf("(%s, %s)", primitive.TypeName[R1](), primitive.TypeName[R2]())
		return zero1, zero2, serdeerr.NewShortBufferError(name, size1+size2, len(b), serdeerr.Decode)
	}

	r1, err := primitive.DecodeAt[R1](b, 0, l.order())
	if err != nil {
		return zero1, zero2, err
	}
	r2, err := primitive.DecodeAt[R2](b, size1, l.order())
	if err != nil {
		return zero1, zero2, err
	}
	return r1, r2, nil
}

// EncodeArrayPair lays out [r1...][r2...].
func EncodeArrayPair[R1, R2 primitive.Primitive](r1 []R1, r2 []R2, l Layout) []byte {
	return buffer.Concat(primitive.EncodeAll(r1, l.order()), primitive.EncodeAll(r2, l.order()))
}

// DecodeArrayPair splits b into a size1 byte window of R1 and a size2 byte
// window of R2 and decodes both as arrays. How the declared sizes are checked
// against len(b) depends on l.ArrayPair.
func DecodeArrayPair[R1, R2 primitive.Primitive](b []byte, size1, size2 int, l Layout) ([]R1, []R2, error) {
	name := fmt.Sprintf("([%s], [%s])", primitive.TypeName[R1](), primitive.TypeName[R2]())
	if size1 < 0 || size2 < 0 {
		return nil, nil, fmt.Errorf("%w: %s declares negative size (%d, %d)",
			serdeerr.ErrLengthMismatch, name, size1, size2)
	}

	var part1, part2 []byte
	switch l.ArrayPair {
	case ArrayPairBestEffort:
		part1 = buffer.Clamp(b, 0, size1)
		part2 = buffer.Clamp(b, size1, size2)
	default:
		if len(b) != size1+size2 {
			return nil, nil, serdeerr.NewLengthMismatchError(name, size1+size2, len(b), serdeerr.Decode)
		}
		part1, part2 = b[:size1], b[size1:]
	}

	raw1, err := DecodeArray[R1](part1, l)
	if err != nil {
		return nil, nil, err
	}
	raw2, err := DecodeArray[R2](part2, l)
	if err != nil {
		return nil, nil, err
	}
	return raw1, raw2, nil
}
