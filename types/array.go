package types

import "bytes"

var _ Value = NewArrayValue(nil)

type ArrayValue []Value

// NewArrayValue returns an ordered sequence value.
func NewArrayValue(x []Value) ArrayValue {
	return ArrayValue(x)
}

func (v ArrayValue) V() any {
	return []Value(v)
}

func (v ArrayValue) Type() Type {
	return TypeArray
}

func (v ArrayValue) String() string {
	data, _ := v.MarshalJSON()
	return string(data)
}

func (v ArrayValue) MarshalJSON() ([]byte, error) {
	return marshalSequence(v)
}

func marshalSequence(vals []Value) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, e := range vals {
		if i > 0 {
			buf.WriteString(", ")
		}
		data, err := e.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
