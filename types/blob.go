package types

import (
	"bytes"
	"encoding/base64"
)

var _ Value = NewBlobValue(nil)

type BlobValue []byte

// NewBlobValue returns an opaque byte sequence value.
func NewBlobValue(x []byte) BlobValue {
	return BlobValue(x)
}

func (v BlobValue) V() any {
	return []byte(v)
}

func (v BlobValue) Type() Type {
	return TypeBlob
}

func (v BlobValue) String() string {
	data, _ := v.MarshalJSON()
	return string(data)
}

func (v BlobValue) MarshalJSON() ([]byte, error) {
	var dst bytes.Buffer
	dst.WriteByte('"')
	enc := base64.NewEncoder(base64.StdEncoding, &dst)
	_, _ = enc.Write(v)
	_ = enc.Close()
	dst.WriteByte('"')
	return dst.Bytes(), nil
}
