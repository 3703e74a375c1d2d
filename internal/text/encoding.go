package text

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// Encoding selects the character set used to convert text to bytes.
type Encoding string

const (
	// UTF8 is the default encoding
	UTF8 Encoding = "utf-8"
	// ASCII accepts only 7-bit characters
	ASCII Encoding = "us-ascii"
	// ISOLatin1 is ISO 8859-1
	ISOLatin1 Encoding = "iso-8859-1"
	// ISOLatin2 is ISO 8859-2
	ISOLatin2   Encoding = "iso-8859-2"
	Windows1250 Encoding = "windows-1250"
	Windows1251 Encoding = "windows-1251"
	Windows1252 Encoding = "windows-1252"
	Windows1253 Encoding = "windows-1253"
	Windows1254 Encoding = "windows-1254"
	// MacOSRoman is the classic Mac OS Roman character set
	MacOSRoman Encoding = "macintosh"
	// UTF16 writes a big-endian byte order mark and honours one when decoding
	UTF16   Encoding = "utf-16"
	UTF16BE Encoding = "utf-16be"
	UTF16LE Encoding = "utf-16le"
	UTF32BE Encoding = "utf-32be"
	UTF32LE Encoding = "utf-32le"
	// ShiftJIS and EUCJP are the Japanese multi-byte encodings
	ShiftJIS Encoding = "shift_jis"
	EUCJP    Encoding = "euc-jp"
)

var allEncodings = []Encoding{
	UTF8, ASCII, ISOLatin1, ISOLatin2,
	Windows1250, Windows1251, Windows1252, Windows1253, Windows1254,
	MacOSRoman, UTF16, UTF16BE, UTF16LE, UTF32BE, UTF32LE, ShiftJIS, EUCJP,
}

var aliases = map[string]Encoding{
	"utf8":      UTF8,
	"ascii":     ASCII,
	"latin1":    ISOLatin1,
	"latin2":    ISOLatin2,
	"mac-roman": MacOSRoman,
	"utf16":     UTF16,
	"utf16be":   UTF16BE,
	"utf16le":   UTF16LE,
	"utf32be":   UTF32BE,
	"utf32le":   UTF32LE,
	"sjis":      ShiftJIS,
	"eucjp":     EUCJP,
}

// IsValid checks if the encoding is supported
func (e Encoding) IsValid() bool {
	for _, known := range allEncodings {
		if e == known {
			return true
		}
	}
	return false
}

// String returns the canonical name of the encoding
func (e Encoding) String() string {
	return string(e)
}

// ParseEncoding parses a case-insensitive encoding name or alias.
func ParseEncoding(s string) (Encoding, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if alias, ok := aliases[name]; ok {
		return alias, nil
	}
	enc := Encoding(name)
	if !enc.IsValid() {
		return "", fmt.Errorf("invalid text encoding '%s': must be one of %v", s, allEncodings)
	}
	return enc, nil
}

// AllEncodings returns all supported encodings
func AllEncodings() []Encoding {
	out := make([]Encoding, len(allEncodings))
	copy(out, allEncodings)
	return out
}

// codec returns the x/text implementation behind e. UTF8, ASCII and UTF16
// are handled before this is reached.
func (e Encoding) codec() encoding.Encoding {
	switch e {
	case ISOLatin1:
		return charmap.ISO8859_1
	case ISOLatin2:
		return charmap.ISO8859_2
	case Windows1250:
		return charmap.Windows1250
	case Windows1251:
		return charmap.Windows1251
	case Windows1252:
		return charmap.Windows1252
	case Windows1253:
		return charmap.Windows1253
	case Windows1254:
		return charmap.Windows1254
	case MacOSRoman:
		return charmap.Macintosh
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case UTF32BE:
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)
	case UTF32LE:
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
	case ShiftJIS:
		return japanese.ShiftJIS
	case EUCJP:
		return japanese.EUCJP
	default:
		return nil
	}
}
