package lens

import "github.com/lens-format/lens-go/internal/encoding"

// Decoding errors, matched with errors.Is.
var (
	ErrTruncated        = encoding.ErrTruncated
	ErrVarintOverflow   = encoding.ErrVarintOverflow
	ErrUnknownTag       = encoding.ErrUnknownTag
	ErrMissingKeyPrefix = encoding.ErrMissingKeyPrefix
	ErrSymbolOutOfRange = encoding.ErrSymbolOutOfRange
	ErrDepthExceeded    = encoding.ErrDepthExceeded
	ErrTrailingBytes    = encoding.ErrTrailingBytes
)

// Encoding errors, matched with errors.Is.
var (
	ErrUnsupportedValue = encoding.ErrUnsupportedValue
	ErrUnknownSymbol    = encoding.ErrUnknownSymbol
)
