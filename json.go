package lens

import (
	"bytes"

	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"
	"github.com/lens-format/lens-go/types"
)

// FromJSON builds a value tree from JSON text. Object fields keep
// their order of appearance in the document. Numbers become integers
// when they fit in an int64 and doubles otherwise.
func FromJSON(data []byte) (types.Value, error) {
	return fromJSON(data, false)
}

// FromJSONWithTimestamps is FromJSON with date-like strings parsed as
// timestamps. Strings that start with a YYYY-MM-DD shape but fail to
// parse stay text.
func FromJSONWithTimestamps(data []byte) (types.Value, error) {
	return fromJSON(data, true)
}

func fromJSON(data []byte, timestamps bool) (types.Value, error) {
	value, dt, _, err := jsonparser.Get(bytes.TrimSpace(data))
	if err != nil {
		return nil, err
	}

	return parseJSONValue(dt, value, timestamps)
}

func parseJSONValue(dataType jsonparser.ValueType, data []byte, timestamps bool) (types.Value, error) {
	switch dataType {
	case jsonparser.Null:
		return types.NewNullValue(), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(data)
		if err != nil {
			return nil, err
		}
		return types.NewBooleanValue(b), nil
	case jsonparser.Number:
		i, err := jsonparser.ParseInt(data)
		if err != nil {
			// not an int64 (fractional, exponent or too big), parse as
			// a floating point number
			f, err := jsonparser.ParseFloat(data)
			if err != nil {
				return nil, err
			}
			return types.NewDoubleValue(f), nil
		}
		return types.NewIntegerValue(i), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, err
		}
		if timestamps && looksLikeDate(s) {
			if ts, err := types.ParseTimestamp(s); err == nil {
				return types.NewTimestampValue(ts), nil
			}
		}
		return types.NewTextValue(s), nil
	case jsonparser.Array:
		var vals []types.Value
		var cbErr error
		_, err := jsonparser.ArrayEach(data, func(v []byte, dt jsonparser.ValueType, _ int, err error) {
			if cbErr != nil {
				return
			}
			if err != nil {
				cbErr = err
				return
			}
			ev, err := parseJSONValue(dt, v, timestamps)
			if err != nil {
				cbErr = err
				return
			}
			vals = append(vals, ev)
		})
		if err != nil {
			return nil, err
		}
		if cbErr != nil {
			return nil, cbErr
		}
		return types.NewArrayValue(vals), nil
	case jsonparser.Object:
		o := types.NewObjectValue()
		err := jsonparser.ObjectEach(data, func(key, v []byte, dt jsonparser.ValueType, _ int) error {
			ev, err := parseJSONValue(dt, v, timestamps)
			if err != nil {
				return err
			}
			o.Set(string(key), ev)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return o, nil
	}

	return nil, errors.Errorf("unsupported JSON type: %v", dataType)
}

func looksLikeDate(s string) bool {
	return len(s) >= 10 && s[4] == '-' && s[7] == '-'
}
