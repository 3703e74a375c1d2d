package profile

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// baseUUIDSuffix completes 16 and 32 bit Bluetooth SIG short forms into the
// Bluetooth base UUID 0000xxxx-0000-1000-8000-00805f9b34fb.
const baseUUIDSuffix = "-0000-1000-8000-00805f9b34fb"

// NormalizeUUID returns the lower-case canonical 128-bit form of s.
// 16 bit ("2a19") and 32 bit ("00002a19") short forms are expanded over the
// Bluetooth base UUID; an optional 0x prefix is accepted on short forms.
func NormalizeUUID(s string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	short := strings.TrimPrefix(trimmed, "0x")

	switch len(short) {
	case 4:
		short = "0000" + short
		fallthrough
	case 8:
		if _, err := hex.DecodeString(short); err != nil {
			return "", NewInvalidUUIDError(s)
		}
		trimmed = short + baseUUIDSuffix
	}

	u, err := uuid.Parse(trimmed)
	if err != nil {
		return "", NewInvalidUUIDError(s)
	}
	return u.String(), nil
}

// ShortUUID returns the 16 or 32 bit short form of a UUID built on the
// Bluetooth base UUID. Other UUIDs are returned in canonical form and ok is
// false.
func ShortUUID(s string) (short string, ok bool) {
	full, err := NormalizeUUID(s)
	if err != nil {
		return s, false
	}
	if !strings.HasSuffix(full, baseUUIDSuffix) {
		return full, false
	}
	prefix := strings.TrimSuffix(full, baseUUIDSuffix)
	if strings.HasPrefix(prefix, "0000") {
		return prefix[4:], true
	}
	return prefix, true
}

func normalizeOrLower(s string) string {
	if full, err := NormalizeUUID(s); err == nil {
		return full
	}
	return strings.ToLower(strings.TrimSpace(s))
}
