package encoding

import "github.com/cockroachdb/errors"

// Decoding errors. They are matched with errors.Is; decode sites wrap
// them with the byte offset at which decoding failed.
var (
	ErrTruncated        = errors.New("truncated input")
	ErrVarintOverflow   = errors.New("varint overflow")
	ErrUnknownTag       = errors.New("unknown tag")
	ErrMissingKeyPrefix = errors.New("object key is not a symbol reference")
	ErrSymbolOutOfRange = errors.New("symbol index out of range")
	ErrDepthExceeded    = errors.New("maximum nesting depth exceeded")
	ErrTrailingBytes    = errors.New("trailing bytes after value")
)

// Encoding errors.
var (
	ErrUnsupportedValue = errors.New("unsupported value type")
	ErrUnknownSymbol    = errors.New("symbol not in table")
)
