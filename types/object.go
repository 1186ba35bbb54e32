package types

import "bytes"

var _ Value = NewObjectValue()

// Field is a single object entry.
type Field struct {
	Name  string
	Value Value
}

// ObjectValue is a mapping from string keys to values. Fields keep
// their insertion order so that encoding is deterministic for a given
// value, but equality is order-insensitive.
type ObjectValue struct {
	fields []Field
}

// NewObjectValue returns an object value containing the given fields.
func NewObjectValue(fields ...Field) *ObjectValue {
	o := ObjectValue{fields: make([]Field, 0, len(fields))}
	for _, f := range fields {
		o.Set(f.Name, f.Value)
	}
	return &o
}

// Set assigns v to the given key, overwriting any previous value and
// keeping the key's original position.
func (o *ObjectValue) Set(name string, v Value) {
	for i := range o.fields {
		if o.fields[i].Name == name {
			o.fields[i].Value = v
			return
		}
	}
	o.fields = append(o.fields, Field{Name: name, Value: v})
}

// Get returns the value assigned to the given key.
func (o *ObjectValue) Get(name string) (Value, bool) {
	for i := range o.fields {
		if o.fields[i].Name == name {
			return o.fields[i].Value, true
		}
	}
	return nil, false
}

// Fields returns the fields in insertion order. The returned slice
// must not be mutated.
func (o *ObjectValue) Fields() []Field {
	return o.fields
}

func (o *ObjectValue) Len() int {
	return len(o.fields)
}

func (o *ObjectValue) V() any {
	return o.fields
}

func (o *ObjectValue) Type() Type {
	return TypeObject
}

func (o *ObjectValue) String() string {
	data, _ := o.MarshalJSON()
	return string(data)
}

func (o *ObjectValue) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o.fields {
		if i > 0 {
			buf.WriteString(", ")
		}
		data, err := NewTextValue(f.Name).MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(data)
		buf.WriteString(": ")
		data, err = f.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
