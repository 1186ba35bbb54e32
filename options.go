package lens

import "github.com/lens-format/lens-go/types"

// ExtHandler is called by the encoder for values it has no built-in
// encoding for. It returns the extension id and payload to emit, or
// ok=false to decline, in which case encoding fails.
type ExtHandler func(v types.Value) (id uint64, payload []byte, ok bool)

// ExtHook is called by the decoder for every extension value. When no
// hook is set, extensions decode to types.ExtensionValue.
type ExtHook func(id uint64, payload []byte) (types.Value, error)

// TimestampHook is called by the decoder for every timestamp with the
// raw signed millisecond count since the Unix epoch. When no hook is
// set, timestamps decode to types.TimestampValue in UTC.
type TimestampHook func(ms int64) (types.Value, error)

// EncoderOption configures an Encoder.
type EncoderOption func(*Encoder)

// WithExtHandler installs the encoder's fallback for unsupported
// values.
func WithExtHandler(h ExtHandler) EncoderOption {
	return func(e *Encoder) {
		e.ext = h
	}
}

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithZeroCopy makes decoded byte and string payloads alias the input
// buffer instead of owning a copy. The input must be kept alive and
// unmodified for as long as the decoded value is in use.
func WithZeroCopy() DecoderOption {
	return func(d *Decoder) {
		d.zeroCopy = true
	}
}

// WithStrict makes Decode fail with ErrTrailingBytes when input
// remains after the first value. The default is lenient: the first
// value wins and trailing bytes are left unread.
func WithStrict() DecoderOption {
	return func(d *Decoder) {
		d.strict = true
	}
}

// WithMaxDepth overrides the maximum container nesting depth.
func WithMaxDepth(n int) DecoderOption {
	return func(d *Decoder) {
		d.maxDepth = n
	}
}

// WithExtHook installs the decoder's extension callback.
func WithExtHook(h ExtHook) DecoderOption {
	return func(d *Decoder) {
		d.extHook = h
	}
}

// WithTimestampHook installs the decoder's timestamp callback.
func WithTimestampHook(h TimestampHook) DecoderOption {
	return func(d *Decoder) {
		d.tsHook = h
	}
}
