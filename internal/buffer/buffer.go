// Package buffer holds the byte buffer helpers shared by the codecs.
//
// Buffers are plain byte slices owned by the caller. Nothing in this package
// mutates its input; sub-ranges are returned as capacity-limited views so an
// append on the view can never write into the parent buffer.
package buffer

import (
	"encoding/hex"
	"strings"
	"unicode"

	"github.com/hengadev/serde/internal/serdeerr"
)

// Slice returns the window b[offset:offset+length] without copying.
func Slice(b []byte, offset, length int) ([]byte, error) {
	if offset < 0 || length < 0 || offset > len(b) || length > len(b)-offset {
		return nil, serdeerr.NewOutOfRangeError(offset, length, len(b))
	}
	end := offset + length
	return b[offset:end:end], nil
}

// Clamp returns the part of b[offset:offset+length] that lies inside b.
// It never fails; windows starting past the end yield an empty slice.
func Clamp(b []byte, offset, length int) []byte {
	if offset < 0 {
		offset = 0
	}
	if offset > len(b) {
		offset = len(b)
	}
	end := offset + length
	if length < 0 || end > len(b) {
		end = len(b)
	}
	return b[offset:end:end]
}

// Concat joins parts into a newly allocated buffer.
func Concat(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// FromHex parses hexadecimal text into bytes. An optional 0x prefix and any
// whitespace between digits are accepted.
func FromHex(s string) ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	cleaned = strings.TrimPrefix(strings.TrimPrefix(cleaned, "0x"), "0X")

	out, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, serdeerr.NewInvalidFormatError(s, "hex", serdeerr.Parse)
	}
	return out, nil
}

// ToHex formats b as lower-case hexadecimal text without separators.
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}
