package lens

import "github.com/lens-format/lens-go/types"

// Encode serializes v against the given symbol table and returns the
// encoded bytes.
func Encode(v types.Value, symbols []string, opts ...EncoderOption) ([]byte, error) {
	return NewEncoder(NewSymbolTable(symbols...), opts...).Encode(v)
}

// Decode reads the first value from data against the given symbol
// table. Trailing bytes are ignored unless WithStrict is passed.
func Decode(data []byte, symbols []string, opts ...DecoderOption) (types.Value, error) {
	return NewDecoder(data, NewSymbolTable(symbols...), opts...).Decode()
}
