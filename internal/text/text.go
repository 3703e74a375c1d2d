// Package text converts strings to and from byte buffers under a selectable
// character encoding.
//
// Conversions are strict: characters that the target encoding cannot
// represent fail to encode, and byte sequences that are not valid in the
// source encoding fail to decode. Nothing is replaced with U+FFFD.
package text

import (
	"bytes"
	"unicode/utf8"

	"github.com/hengadev/serde/internal/serdeerr"
)

var (
	bomBE = []byte{0xfe, 0xff}
	bomLE = []byte{0xff, 0xfe}
)

// Encode converts s to bytes in the given encoding.
func Encode(s string, enc Encoding) ([]byte, error) {
	if !enc.IsValid() {
		return nil, serdeerr.NewUnsupportedEncodingError(string(enc))
	}
	if !utf8.ValidString(s) {
		return nil, serdeerr.NewInvalidTextError(enc.String(), serdeerr.Encode, "input is not valid UTF-8")
	}

	switch enc {
	case UTF8:
		return []byte(s), nil
	case ASCII:
		for i := 0; i < len(s); i++ {
			if s[i] >= utf8.RuneSelf {
				return nil, serdeerr.NewInvalidTextError(enc.String(), serdeerr.Encode, "non-ASCII character")
			}
		}
		return []byte(s), nil
	case UTF16:
		body, err := Encode(s, UTF16BE)
		if err != nil {
			return nil, err
		}
		return append(append([]byte{}, bomBE...), body...), nil
	}

	out, err := enc.codec().NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, serdeerr.NewInvalidTextError(enc.String(), serdeerr.Encode, err.Error())
	}
	return out, nil
}

// Decode converts b to a string, failing on any byte sequence that is not
// valid in the given encoding.
func Decode(b []byte, enc Encoding) (string, error) {
	if !enc.IsValid() {
		return "", serdeerr.NewUnsupportedEncodingError(string(enc))
	}

	switch enc {
	case UTF8:
		if !utf8.Valid(b) {
			return "", serdeerr.NewInvalidTextError(enc.String(), serdeerr.Decode, "")
		}
		return string(b), nil
	case ASCII:
		for _, c := range b {
			if c >= utf8.RuneSelf {
				return "", serdeerr.NewInvalidTextError(enc.String(), serdeerr.Decode, "non-ASCII byte")
			}
		}
		return string(b), nil
	case UTF16:
		switch {
		case bytes.HasPrefix(b, bomBE):
			return Decode(b[len(bomBE):], UTF16BE)
		case bytes.HasPrefix(b, bomLE):
			return Decode(b[len(bomLE):], UTF16LE)
		default:
			return Decode(b, UTF16BE)
		}
	}

	codec := enc.codec()
	decoded, err := codec.NewDecoder().Bytes(b)
	if err != nil {
		return "", serdeerr.NewInvalidTextError(enc.String(), serdeerr.Decode, err.Error())
	}
	if !bytes.ContainsRune(decoded, utf8.RuneError) {
		return string(decoded), nil
	}
	// x/text decoders substitute U+FFFD for invalid input. Only an input that
	// really encodes U+FFFD survives the re-encoding unchanged.
	reencoded, err := codec.NewEncoder().Bytes(decoded)
	if err != nil || !bytes.Equal(reencoded, b) {
		return "", serdeerr.NewInvalidTextError(enc.String(), serdeerr.Decode, "")
	}
	return string(decoded), nil
}
