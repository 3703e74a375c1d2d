package serde

import (
	"github.com/hengadev/serde/internal/adapter"
	"github.com/hengadev/serde/internal/text"
)

// TextEncoding selects the character set used by the string codec.
type TextEncoding = text.Encoding

const (
	UTF8        = text.UTF8
	ASCII       = text.ASCII
	ISOLatin1   = text.ISOLatin1
	ISOLatin2   = text.ISOLatin2
	Windows1250 = text.Windows1250
	Windows1251 = text.Windows1251
	Windows1252 = text.Windows1252
	Windows1253 = text.Windows1253
	Windows1254 = text.Windows1254
	MacOSRoman  = text.MacOSRoman
	UTF16       = text.UTF16
	UTF16BE     = text.UTF16BE
	UTF16LE     = text.UTF16LE
	UTF32BE     = text.UTF32BE
	UTF32LE     = text.UTF32LE
	ShiftJIS    = text.ShiftJIS
	EUCJP       = text.EUCJP
)

// ParseTextEncoding parses a case-insensitive encoding name or alias such as
// "utf8" or "latin1".
func ParseTextEncoding(s string) (TextEncoding, error) {
	return text.ParseEncoding(s)
}

// AllTextEncodings returns every supported encoding.
func AllTextEncodings() []TextEncoding {
	return text.AllEncodings()
}

// ArrayPairPolicy decides how declared array-pair sizes are checked against
// the buffer being decoded.
type ArrayPairPolicy = adapter.ArrayPairPolicy

const (
	ArrayPairExact      = adapter.ArrayPairExact
	ArrayPairBestEffort = adapter.ArrayPairBestEffort
)

// ParseArrayPairPolicy parses "exact" or "best_effort" (also "best-effort").
func ParseArrayPairPolicy(s string) (ArrayPairPolicy, error) {
	return adapter.ParseArrayPairPolicy(s)
}
