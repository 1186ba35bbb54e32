package encoding

import (
	"encoding/binary"
	"math"

	"github.com/cockroachdb/errors"
)

// ZigZag maps signed integers to unsigned integers so that numbers
// with a small absolute value have a small varint encoding.
func ZigZag(n int64) uint64 {
	return uint64(n<<1) ^ uint64(n>>63)
}

// UnZigZag is the inverse of ZigZag.
func UnZigZag(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

func EncodeNull(dst []byte) []byte {
	return append(dst, NullValue)
}

func EncodeBoolean(dst []byte, x bool) []byte {
	if x {
		return append(dst, TrueValue)
	}

	return append(dst, FalseValue)
}

func EncodeInt(dst []byte, n int64) []byte {
	return appendUvarint(append(dst, IntValue), ZigZag(n))
}

func EncodeFloat64(dst []byte, x float64) []byte {
	return write8(dst, FloatValue, math.Float64bits(x))
}

// DecodeUvarint decodes a varint positioned right after its tag.
// It returns the decoded value and the number of bytes read.
func DecodeUvarint(b []byte) (uint64, int, error) {
	x, n := binary.Uvarint(b)
	if n == 0 {
		return 0, 0, errors.WithStack(ErrTruncated)
	}
	if n < 0 {
		return 0, 0, errors.WithStack(ErrVarintOverflow)
	}

	return x, n, nil
}

func DecodeInt(b []byte) (int64, int, error) {
	x, n, err := DecodeUvarint(b)
	if err != nil {
		return 0, 0, err
	}

	return UnZigZag(x), n, nil
}

func DecodeFloat64(b []byte) (float64, int, error) {
	if len(b) < 8 {
		return 0, 0, errors.WithStack(ErrTruncated)
	}

	x := (uint64(b[0]) << 56) |
		(uint64(b[1]) << 48) |
		(uint64(b[2]) << 40) |
		(uint64(b[3]) << 32) |
		(uint64(b[4]) << 24) |
		(uint64(b[5]) << 16) |
		(uint64(b[6]) << 8) |
		uint64(b[7])
	return math.Float64frombits(x), 8, nil
}
