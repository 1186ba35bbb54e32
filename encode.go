package lens

import (
	"github.com/cockroachdb/errors"
	"github.com/lens-format/lens-go/internal/encoding"
	"github.com/lens-format/lens-go/types"
)

// Encoder serializes value trees against a fixed symbol table. It
// keeps its output buffer across calls; the slice returned by Encode
// is only valid until the next call.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	symbols *SymbolTable
	ext     ExtHandler
	buf     []byte
}

// NewEncoder returns an Encoder bound to the given symbol table.
func NewEncoder(symbols *SymbolTable, opts ...EncoderOption) *Encoder {
	e := Encoder{symbols: symbols}
	for _, opt := range opts {
		opt(&e)
	}
	return &e
}

// Encode serializes one value. The output is a single tagged value
// whose length covers the whole slice. On error the buffer state is
// unspecified and the output must be discarded.
func (e *Encoder) Encode(v types.Value) ([]byte, error) {
	buf, err := e.encodeValue(e.buf[:0], v)
	if err != nil {
		return nil, err
	}

	e.buf = buf
	return buf, nil
}

func (e *Encoder) encodeValue(dst []byte, v types.Value) ([]byte, error) {
	if v == nil {
		return encoding.EncodeNull(dst), nil
	}

	var err error

	switch x := v.(type) {
	case types.NullValue:
		return encoding.EncodeNull(dst), nil
	case types.BooleanValue:
		return encoding.EncodeBoolean(dst, bool(x)), nil
	case types.IntegerValue:
		return encoding.EncodeInt(dst, int64(x)), nil
	case types.DoubleValue:
		return encoding.EncodeFloat64(dst, float64(x)), nil
	case types.TextValue:
		// strings present in the symbol table travel as references
		if idx, ok := e.symbols.Index(string(x)); ok {
			return encoding.EncodeSymbol(dst, idx), nil
		}
		return encoding.EncodeText(dst, string(x)), nil
	case types.TimestampValue:
		return encoding.EncodeTimestamp(dst, types.AsTime(x)), nil
	case types.ArrayValue:
		dst = encoding.EncodeArrayLen(dst, len(x))
		for _, el := range x {
			dst, err = e.encodeValue(dst, el)
			if err != nil {
				return nil, err
			}
		}
		return dst, nil
	case types.TupleValue:
		dst = encoding.EncodeTupleLen(dst, len(x))
		for _, el := range x {
			dst, err = e.encodeValue(dst, el)
			if err != nil {
				return nil, err
			}
		}
		return dst, nil
	case *types.SetValue:
		dst = encoding.EncodeSetLen(dst, x.Len())
		for _, el := range x.Elems() {
			dst, err = e.encodeValue(dst, el)
			if err != nil {
				return nil, err
			}
		}
		return dst, nil
	case *types.ObjectValue:
		dst = encoding.EncodeObjectLen(dst, x.Len())
		for _, f := range x.Fields() {
			idx, ok := e.symbols.Index(f.Name)
			if !ok {
				return nil, errors.Wrapf(ErrUnknownSymbol, "object key %q", f.Name)
			}
			dst = encoding.EncodeSymbol(dst, idx)
			dst, err = e.encodeValue(dst, f.Value)
			if err != nil {
				return nil, err
			}
		}
		return dst, nil
	case types.BlobValue:
		return encoding.EncodeBlob(dst, x), nil
	case types.ExtensionValue:
		return encoding.EncodeExt(dst, x.ID, x.Payload), nil
	}

	// no built-in encoding: give the extension handler one chance
	if e.ext != nil {
		if id, payload, ok := e.ext(v); ok {
			return encoding.EncodeExt(dst, id, payload), nil
		}
	}

	return nil, errors.Wrapf(ErrUnsupportedValue, "%T", v)
}
