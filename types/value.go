package types

import (
	"math"
	"sort"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/lens-format/lens-go/internal/encoding"
)

func AsBool(v Value) bool {
	return v.V().(bool)
}

func AsInt64(v Value) int64 {
	iv, ok := v.(IntegerValue)
	if ok {
		return int64(iv)
	}

	return v.V().(int64)
}

func AsFloat64(v Value) float64 {
	dv, ok := v.(DoubleValue)
	if ok {
		return float64(dv)
	}

	return v.V().(float64)
}

func AsString(v Value) string {
	tv, ok := v.(TextValue)
	if ok {
		return string(tv)
	}

	return v.V().(string)
}

func AsByteSlice(v Value) []byte {
	bv, ok := v.(BlobValue)
	if ok {
		return bv
	}

	return v.V().([]byte)
}

func AsTime(v Value) time.Time {
	tv, ok := v.(TimestampValue)
	if ok {
		return time.Time(tv)
	}

	return v.V().(time.Time)
}

func AsObject(v Value) *ObjectValue {
	return v.(*ObjectValue)
}

func AsSet(v Value) *SetValue {
	return v.(*SetValue)
}

func IsNull(v Value) bool {
	return v == nil || v.Type() == TypeNull
}

// NewValue converts a native Go value into a codec value. Map keys
// are sorted so that the conversion of a given map is deterministic.
func NewValue(x any) (Value, error) {
	switch v := x.(type) {
	case nil:
		return NewNullValue(), nil
	case Value:
		return v, nil
	case bool:
		return NewBooleanValue(v), nil
	case int:
		return NewIntegerValue(int64(v)), nil
	case int8:
		return NewIntegerValue(int64(v)), nil
	case int16:
		return NewIntegerValue(int64(v)), nil
	case int32:
		return NewIntegerValue(int64(v)), nil
	case int64:
		return NewIntegerValue(v), nil
	case uint:
		if uint64(v) > math.MaxInt64 {
			return nil, errors.Wrapf(encoding.ErrUnsupportedValue, "uint value %d overflows int64", v)
		}
		return NewIntegerValue(int64(v)), nil
	case uint8:
		return NewIntegerValue(int64(v)), nil
	case uint16:
		return NewIntegerValue(int64(v)), nil
	case uint32:
		return NewIntegerValue(int64(v)), nil
	case uint64:
		if v > math.MaxInt64 {
			return nil, errors.Wrapf(encoding.ErrUnsupportedValue, "uint64 value %d overflows int64", v)
		}
		return NewIntegerValue(int64(v)), nil
	case float32:
		return NewDoubleValue(float64(v)), nil
	case float64:
		return NewDoubleValue(v), nil
	case string:
		return NewTextValue(v), nil
	case []byte:
		return NewBlobValue(v), nil
	case time.Time:
		return NewTimestampValue(v), nil
	case []any:
		vals := make([]Value, len(v))
		for i, e := range v {
			ev, err := NewValue(e)
			if err != nil {
				return nil, err
			}
			vals[i] = ev
		}
		return NewArrayValue(vals), nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		o := NewObjectValue()
		for _, k := range keys {
			ev, err := NewValue(v[k])
			if err != nil {
				return nil, err
			}
			o.Set(k, ev)
		}
		return o, nil
	}

	return nil, errors.Wrapf(encoding.ErrUnsupportedValue, "%T", x)
}
