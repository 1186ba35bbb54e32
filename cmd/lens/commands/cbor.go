package commands

import (
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/lens-format/lens-go/types"
)

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer
// encoding, no indefinite-length items.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("cbor encoder initialization failed: " + err.Error())
	}
}

// marshalCBOR transcodes a decoded value tree to CBOR. Extensions map
// onto CBOR tags, tuples and sets onto arrays.
func marshalCBOR(v types.Value) ([]byte, error) {
	return encMode.Marshal(toNative(v))
}

func toNative(v types.Value) any {
	switch x := v.(type) {
	case nil, types.NullValue:
		return nil
	case types.BooleanValue:
		return bool(x)
	case types.IntegerValue:
		return int64(x)
	case types.DoubleValue:
		return float64(x)
	case types.TextValue:
		return string(x)
	case types.BlobValue:
		return []byte(x)
	case types.TimestampValue:
		return time.Time(x)
	case types.ArrayValue:
		return nativeSequence(x)
	case types.TupleValue:
		return nativeSequence(x)
	case *types.SetValue:
		return nativeSequence(x.Elems())
	case *types.ObjectValue:
		m := make(map[string]any, x.Len())
		for _, f := range x.Fields() {
			m[f.Name] = toNative(f.Value)
		}
		return m
	case types.ExtensionValue:
		return cbor.Tag{Number: x.ID, Content: x.Payload}
	}

	return v.V()
}

func nativeSequence(vals []types.Value) []any {
	out := make([]any, len(vals))
	for i, e := range vals {
		out[i] = toNative(e)
	}
	return out
}
