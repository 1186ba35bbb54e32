package types

import (
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dromara/carbon/v2"
)

var _ Value = NewTimestampValue(time.Time{})

type TimestampValue time.Time

// NewTimestampValue returns a timestamp value. The instant is stored
// in UTC; the wire format carries millisecond precision.
func NewTimestampValue(x time.Time) TimestampValue {
	return TimestampValue(x.UTC())
}

func (v TimestampValue) V() any {
	return time.Time(v)
}

func (v TimestampValue) Type() Type {
	return TypeTimestamp
}

func (v TimestampValue) String() string {
	return strconv.Quote(time.Time(v).Format(time.RFC3339Nano))
}

func (v TimestampValue) MarshalJSON() ([]byte, error) {
	return []byte(v.String()), nil
}

// ParseTimestamp parses a human-written timestamp in any of the usual
// layouts (RFC 3339, date only, date and time, etc.).
func ParseTimestamp(s string) (time.Time, error) {
	c := carbon.Parse(s, "UTC")
	if c.Error != nil {
		return time.Time{}, errors.New("invalid timestamp")
	}

	return c.StdTime(), nil
}
