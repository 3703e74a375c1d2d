package profile

import "strings"

// Permissions are the access rights of a characteristic value.
type Permissions uint8

const (
	Readable Permissions = 1 << iota
	Writeable
	ReadEncryptionRequired
	WriteEncryptionRequired
)

var permissionNames = []string{"read", "write", "read_encrypted", "write_encrypted"}

// Has reports whether every bit of q is set in p.
func (p Permissions) Has(q Permissions) bool {
	return p&q == q
}

func (p Permissions) String() string {
	return flagString(uint8(p), permissionNames)
}

// Properties are the characteristic property bits advertised in the GATT
// characteristic declaration.
type Properties uint8

const (
	Broadcast Properties = 1 << iota
	Read
	WriteWithoutResponse
	Write
	Notify
	Indicate
	AuthenticatedSignedWrites
	ExtendedProperties
)

var propertyNames = []string{
	"broadcast", "read", "write_without_response", "write",
	"notify", "indicate", "authenticated_signed_writes", "extended_properties",
}

// Has reports whether every bit of q is set in p.
func (p Properties) Has(q Properties) bool {
	return p&q == q
}

func (p Properties) String() string {
	return flagString(uint8(p), propertyNames)
}

func flagString(bits uint8, names []string) string {
	if bits == 0 {
		return "none"
	}
	var parts []string
	for i, name := range names {
		if bits&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}
