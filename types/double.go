package types

import (
	"math"
	"strconv"
)

var _ Value = NewDoubleValue(0)

type DoubleValue float64

// NewDoubleValue returns an IEEE-754 double precision value.
func NewDoubleValue(x float64) DoubleValue {
	return DoubleValue(x)
}

func (v DoubleValue) V() any {
	return float64(v)
}

func (v DoubleValue) Type() Type {
	return TypeDouble
}

func (v DoubleValue) String() string {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	// by default the fractional part is not displayed when the number
	// is round, which would make it read back as an integer
	prec := -1
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		prec = 1
	}
	return strconv.FormatFloat(f, 'f', prec, 64)
}

func (v DoubleValue) MarshalJSON() ([]byte, error) {
	return []byte(v.String()), nil
}
