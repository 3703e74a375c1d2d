package serde

// Environment variable names
const (
	// EnvByteOrder selects the wire byte order: "native", "little" or "big".
	EnvByteOrder = "SERDE_BYTE_ORDER"

	// EnvTextEncoding selects the string codec encoding, e.g. "utf-8" or "latin1".
	EnvTextEncoding = "SERDE_TEXT_ENCODING"

	// EnvStrictArrays makes array decoding fail on a trailing partial element.
	// Accepts any value strconv.ParseBool understands.
	EnvStrictArrays = "SERDE_STRICT_ARRAYS"

	// EnvArrayPairPolicy selects "exact" or "best_effort" array-pair validation.
	EnvArrayPairPolicy = "SERDE_ARRAY_PAIR_POLICY"

	// EnvLogLevel and EnvLogFormat configure the logging observer.
	EnvLogLevel  = "SERDE_LOG_LEVEL"
	EnvLogFormat = "SERDE_LOG_FORMAT"
)

// Default values
const (
	DefaultByteOrder       = ByteOrderNative
	DefaultTextEncoding    = "utf-8"
	DefaultArrayPairPolicy = "exact"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"

	// DefaultConfigFile is the YAML file serdectl reads when -config is not given.
	DefaultConfigFile = "serde.yaml"
)

// Byte order names accepted in configuration
const (
	ByteOrderNative = "native"
	ByteOrderLittle = "little"
	ByteOrderBig    = "big"
)
