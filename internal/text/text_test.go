package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hengadev/serde/internal/serdeerr"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		encoding Encoding
		input    string
	}{
		{"utf-8 ascii", UTF8, "hello"},
		{"utf-8 multibyte", UTF8, "héllo wörld ✓"},
		{"utf-8 empty", UTF8, ""},
		{"ascii", ASCII, "BlueCap 1.0"},
		{"latin1", ISOLatin1, "café crème"},
		{"latin2", ISOLatin2, "Łódź"},
		{"windows-1251", Windows1251, "Привет"},
		{"windows-1252", Windows1252, "naïve €"},
		{"mac roman", MacOSRoman, "résumé"},
		{"utf-16", UTF16, "hello ✓"},
		{"utf-16be", UTF16BE, "𝄞 clef"},
		{"utf-16le", UTF16LE, "hello"},
		{"utf-32be", UTF32BE, "abc"},
		{"utf-32le", UTF32LE, "日本"},
		{"shift_jis", ShiftJIS, "こんにちは"},
		{"euc-jp", EUCJP, "日本語"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Encode(tt.input, tt.encoding)
			require.NoError(t, err)

			got, err := Decode(data, tt.encoding)
			require.NoError(t, err)
			assert.Equal(t, tt.input, got)
		})
	}
}

func TestEncode_Layout(t *testing.T) {
	data, err := Encode("hello", UTF8)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	data, err = Encode("A", UTF16)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xfe, 0xff, 0x00, 0x41}, data)

	data, err = Encode("A", UTF16LE)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x41, 0x00}, data)

	data, err = Encode("é", ISOLatin1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xe9}, data)
}

func TestEncode_Unrepresentable(t *testing.T) {
	tests := []struct {
		name     string
		encoding Encoding
		input    string
	}{
		{"ascii accent", ASCII, "café"},
		{"latin1 cjk", ISOLatin1, "日本"},
		{"windows-1251 latin accent", Windows1251, "é"},
		{"invalid go string", UTF8, string([]byte{0xff})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(tt.input, tt.encoding)
			assert.ErrorIs(t, err, serdeerr.ErrInvalidText)
		})
	}
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		encoding Encoding
		input    []byte
	}{
		{"utf-8 ff fe", UTF8, []byte{0xff, 0xfe}},
		{"utf-8 truncated sequence", UTF8, []byte{0xe2, 0x9c}},
		{"ascii high bit", ASCII, []byte{0x41, 0x80}},
		{"utf-16 odd length", UTF16BE, []byte{0x00, 0x41, 0x00}},
		{"utf-16 lone surrogate", UTF16BE, []byte{0xd8, 0x00}},
		{"utf-32 out of range", UTF32BE, []byte{0x00, 0x11, 0x00, 0x00}},
		{"shift_jis truncated", ShiftJIS, []byte{0x82}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.input, tt.encoding)
			assert.ErrorIs(t, err, serdeerr.ErrInvalidText)
		})
	}
}

func TestDecode_AlternateSequences(t *testing.T) {
	tests := []struct {
		name     string
		encoding Encoding
		input    []byte
		want     string
	}{
		{"shift_jis ibm extension roman numeral", ShiftJIS, []byte{0xfa, 0x40}, "ⅰ"},
		{"shift_jis ibm extension not sign", ShiftJIS, []byte{0xfa, 0x54}, "\uFFE2"},
		{"utf-8 encoded replacement character", UTF8, []byte{0xef, 0xbf, 0xbd}, "\uFFFD"},
		{"utf-16 encoded replacement character", UTF16BE, []byte{0xff, 0xfd}, "\uFFFD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.input, tt.encoding)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_UTF16ByteOrderMark(t *testing.T) {
	got, err := Decode([]byte{0xff, 0xfe, 0x41, 0x00}, UTF16)
	require.NoError(t, err)
	assert.Equal(t, "A", got)

	got, err = Decode([]byte{0xfe, 0xff, 0x00, 0x41}, UTF16)
	require.NoError(t, err)
	assert.Equal(t, "A", got)

	got, err = Decode([]byte{0x00, 0x41}, UTF16)
	require.NoError(t, err)
	assert.Equal(t, "A", got)
}

func TestUnsupportedEncoding(t *testing.T) {
	_, err := Encode("x", Encoding("klingon"))
	assert.ErrorIs(t, err, serdeerr.ErrUnsupportedEncoding)

	_, err = Decode([]byte("x"), Encoding(""))
	assert.ErrorIs(t, err, serdeerr.ErrUnsupportedEncoding)
}
