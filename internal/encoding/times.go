package encoding

import "time"

// Timestamps travel as the signed number of milliseconds since the
// Unix epoch, ZigZag-encoded like integers. Sub-millisecond precision
// is truncated.

func EncodeTimestamp(dst []byte, t time.Time) []byte {
	return appendUvarint(append(dst, TimestampValue), ZigZag(t.UnixMilli()))
}

// DecodeTimestamp decodes the millisecond count positioned right
// after the tag.
func DecodeTimestamp(b []byte) (int64, int, error) {
	return DecodeInt(b)
}

// ConvertToTimestamp converts a decoded millisecond count to its UTC
// instant.
func ConvertToTimestamp(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
