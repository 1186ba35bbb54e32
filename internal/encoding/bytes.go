package encoding

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
)

func EncodeBlob(dst []byte, x []byte) []byte {
	// encode the length as a varint
	buf := make([]byte, binary.MaxVarintLen64+1)
	buf[0] = BlobValue
	n := binary.PutUvarint(buf[1:], uint64(len(x)))

	dst = append(dst, buf[:n+1]...)
	return append(dst, x...)
}

func EncodeText(dst []byte, x string) []byte {
	// encode the length as a varint
	buf := make([]byte, binary.MaxVarintLen64+1)
	buf[0] = TextValue
	n := binary.PutUvarint(buf[1:], uint64(len(x)))

	dst = append(dst, buf[:n+1]...)
	return append(dst, x...)
}

func EncodeSymbol(dst []byte, index uint64) []byte {
	return appendUvarint(append(dst, SymbolValue), index)
}

func EncodeArrayLen(dst []byte, l int) []byte {
	return appendUvarint(append(dst, ArrayValue), uint64(l))
}

func EncodeTupleLen(dst []byte, l int) []byte {
	return appendUvarint(append(dst, TupleValue), uint64(l))
}

func EncodeSetLen(dst []byte, l int) []byte {
	return appendUvarint(append(dst, SetValue), uint64(l))
}

func EncodeObjectLen(dst []byte, l int) []byte {
	return appendUvarint(append(dst, ObjectValue), uint64(l))
}

func EncodeExt(dst []byte, id uint64, payload []byte) []byte {
	dst = appendUvarint(append(dst, ExtValue), id)
	dst = appendUvarint(dst, uint64(len(payload)))
	return append(dst, payload...)
}

// DecodeSpan decodes a varint length followed by that many raw bytes,
// positioned right after the tag. The returned slice aliases b; the
// caller decides whether to copy it.
func DecodeSpan(b []byte) ([]byte, int, error) {
	l, n, err := DecodeUvarint(b)
	if err != nil {
		return nil, 0, err
	}
	if l > uint64(len(b)-n) {
		return nil, 0, errors.WithStack(ErrTruncated)
	}

	return b[n : n+int(l)], n + int(l), nil
}
