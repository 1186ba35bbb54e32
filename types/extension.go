package types

import (
	"bytes"
	"strconv"
)

var _ Value = NewExtensionValue(0, nil)

// ExtensionValue carries an application-defined value: a numeric
// identifier and an opaque payload. The meaning of a given ID is a
// private contract between the encoding and decoding applications.
type ExtensionValue struct {
	ID      uint64
	Payload []byte
}

// NewExtensionValue returns an extension value.
func NewExtensionValue(id uint64, payload []byte) ExtensionValue {
	return ExtensionValue{ID: id, Payload: payload}
}

func (v ExtensionValue) V() any {
	return v.Payload
}

func (v ExtensionValue) Type() Type {
	return TypeExtension
}

func (v ExtensionValue) String() string {
	data, _ := v.MarshalJSON()
	return string(data)
}

func (v ExtensionValue) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"$ext": `)
	buf.WriteString(strconv.FormatUint(v.ID, 10))
	buf.WriteString(`, "data": `)
	data, err := NewBlobValue(v.Payload).MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf.Write(data)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
