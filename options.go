package serde

import (
	"encoding/binary"

	"github.com/hengadev/serde/internal/adapter"
	"github.com/hengadev/serde/internal/monitoring"
)

// Options holds the per-call settings of the façade. The zero value of each
// field means "use the default".
type Options struct {
	// ByteOrder of every primitive on the wire. Default: host order.
	ByteOrder binary.ByteOrder
	// TextEncoding used by the string codec. Default: UTF8.
	TextEncoding TextEncoding
	// StrictArrays turns a trailing partial array element into ErrTrailingData
	// instead of dropping it.
	StrictArrays bool
	// ArrayPair decides how declared array-pair sizes are checked.
	ArrayPair ArrayPairPolicy
	// Observer receives an Event after every call. Default: none.
	Observer Observer
}

// Option modifies Options for a single call.
type Option func(*Options)

// DefaultOptions returns host byte order, UTF-8, lenient arrays, exact array
// pairs and no observer.
func DefaultOptions() Options {
	return Options{
		ByteOrder:    binary.NativeEndian,
		TextEncoding: UTF8,
		ArrayPair:    ArrayPairExact,
	}
}

// WithByteOrder sets the wire byte order of primitives.
func WithByteOrder(order binary.ByteOrder) Option {
	return func(o *Options) {
		o.ByteOrder = order
	}
}

// WithTextEncoding sets the encoding used by SerializeString and DeserializeString.
func WithTextEncoding(enc TextEncoding) Option {
	return func(o *Options) {
		o.TextEncoding = enc
	}
}

// WithStrictArrays makes array decoding fail on a trailing partial element.
func WithStrictArrays(strict bool) Option {
	return func(o *Options) {
		o.StrictArrays = strict
	}
}

// WithArrayPairPolicy sets how array-pair decoding validates declared sizes.
func WithArrayPairPolicy(policy ArrayPairPolicy) Option {
	return func(o *Options) {
		o.ArrayPair = policy
	}
}

// WithObserver attaches an observer. Several observers can be combined with
// MultiObserver.
func WithObserver(observer Observer) Option {
	return func(o *Options) {
		o.Observer = observer
	}
}

// WithOptions replaces every setting with opts, typically the result of
// Config.Options.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		*o = opts
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.ByteOrder == nil {
		o.ByteOrder = binary.NativeEndian
	}
	if o.TextEncoding == "" {
		o.TextEncoding = UTF8
	}
	if o.ArrayPair == "" {
		o.ArrayPair = ArrayPairExact
	}
	return o
}

func (o Options) layout() adapter.Layout {
	return adapter.Layout{
		Order:        o.ByteOrder,
		StrictArrays: o.StrictArrays,
		ArrayPair:    o.ArrayPair,
	}
}

func (o Options) observe(action, kind, typeName, uuid string, n int, err error) {
	if o.Observer == nil {
		return
	}
	o.Observer.OnOperation(monitoring.Event{
		Action: action,
		Kind:   kind,
		Type:   typeName,
		UUID:   uuid,
		Bytes:  n,
		Err:    err,
	})
}
