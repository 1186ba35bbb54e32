package lens_test

import (
	"math"
	"strings"
	"testing"
	"time"

	lens "github.com/lens-format/lens-go"
	"github.com/lens-format/lens-go/types"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, v types.Value, symbols []string) types.Value {
	t.Helper()

	data, err := lens.Encode(v, symbols)
	require.NoError(t, err)

	got, err := lens.Decode(data, symbols, lens.WithStrict())
	require.NoError(t, err)
	return got
}

func TestRoundTripScalars(t *testing.T) {
	tests := []struct {
		name string
		v    types.Value
	}{
		{"null", types.NewNullValue()},
		{"true", types.NewBooleanValue(true)},
		{"false", types.NewBooleanValue(false)},
		{"zero", types.NewIntegerValue(0)},
		{"max int64", types.NewIntegerValue(math.MaxInt64)},
		{"min int64", types.NewIntegerValue(math.MinInt64)},
		{"double", types.NewDoubleValue(3.14159)},
		{"negative zero", types.NewDoubleValue(math.Copysign(0, -1))},
		{"infinity", types.NewDoubleValue(math.Inf(1))},
		{"nan", types.NewDoubleValue(math.NaN())},
		{"empty text", types.NewTextValue("")},
		{"unicode text", types.NewTextValue("héllo wörld 日本")},
		{"text at varint boundary", types.NewTextValue(strings.Repeat("x", 127))},
		{"text past varint boundary", types.NewTextValue(strings.Repeat("x", 128))},
		{"empty blob", types.NewBlobValue([]byte{})},
		{"blob", types.NewBlobValue([]byte{0x00, 0xFF, 0x7F})},
		{"timestamp", types.NewTimestampValue(time.Date(2023, 4, 2, 10, 30, 0, 0, time.UTC))},
		{"pre-epoch timestamp", types.NewTimestampValue(time.Date(1903, 12, 17, 10, 35, 0, 0, time.UTC))},
		{"extension", types.NewExtensionValue(200, []byte("opaque"))},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := roundTrip(t, test.v, nil)
			require.True(t, types.Equal(test.v, got), "got %s", got)
			require.Equal(t, test.v.Type(), got.Type())
		})
	}
}

func TestRoundTripIntegerSweep(t *testing.T) {
	// powers of two and their neighbors cross every varint width
	for shift := 0; shift < 63; shift++ {
		for _, delta := range []int64{-1, 0, 1} {
			n := int64(1)<<shift + delta
			for _, x := range []int64{n, -n} {
				got := roundTrip(t, types.NewIntegerValue(x), nil)
				require.Equal(t, x, types.AsInt64(got))
			}
		}
	}
}

func TestRoundTripFloatBits(t *testing.T) {
	patterns := []uint64{
		0x0000000000000000, // +0
		0x8000000000000000, // -0
		0x3FF0000000000000, // 1.0
		0x7FF0000000000000, // +inf
		0xFFF0000000000000, // -inf
		0x7FF8000000000001, // NaN with a payload
		0x0000000000000001, // smallest subnormal
	}

	for _, bits := range patterns {
		v := types.NewDoubleValue(math.Float64frombits(bits))
		got := roundTrip(t, v, nil)
		require.Equal(t, bits, math.Float64bits(types.AsFloat64(got)))
	}
}

func TestRoundTripTimestampTruncation(t *testing.T) {
	ts := time.Date(2023, 4, 2, 10, 30, 0, 123_999_999, time.UTC)

	got := roundTrip(t, types.NewTimestampValue(ts), nil)
	require.Equal(t, ts.Truncate(time.Millisecond), types.AsTime(got))
}

func TestRoundTripContainers(t *testing.T) {
	symbols := []string{"id", "name", "tags", "meta", "payload"}

	tests := []struct {
		name string
		v    types.Value
	}{
		{"empty array", types.NewArrayValue(nil)},
		{"empty tuple", types.NewTupleValue(nil)},
		{"empty set", types.NewSetValue()},
		{"empty object", types.NewObjectValue()},
		{
			"mixed array",
			types.NewArrayValue([]types.Value{
				types.NewNullValue(),
				types.NewIntegerValue(-42),
				types.NewTextValue("id"), // in the symbol table, travels as a reference
				types.NewTextValue("free text"),
				types.NewBlobValue([]byte{0x01}),
			}),
		},
		{
			"tuple of tuples",
			types.NewTupleValue([]types.Value{
				types.NewTupleValue([]types.Value{types.NewIntegerValue(1)}),
				types.NewTupleValue(nil),
			}),
		},
		{
			"set of text",
			types.NewSetValue(
				types.NewTextValue("a"),
				types.NewTextValue("b"),
				types.NewTextValue("c"),
			),
		},
		{
			"nested object",
			types.NewObjectValue(
				types.Field{Name: "id", Value: types.NewIntegerValue(7)},
				types.Field{Name: "name", Value: types.NewTextValue("x")},
				types.Field{Name: "tags", Value: types.NewSetValue(
					types.NewTextValue("red"),
					types.NewTextValue("green"),
				)},
				types.Field{Name: "meta", Value: types.NewObjectValue(
					types.Field{Name: "payload", Value: types.NewBlobValue([]byte{0xDE, 0xAD})},
				)},
			),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := roundTrip(t, test.v, symbols)
			require.True(t, types.Equal(test.v, got), "got %s", got)
			require.Equal(t, test.v.Type(), got.Type())
		})
	}
}

func TestRoundTripTupleStaysTuple(t *testing.T) {
	v := types.NewTupleValue([]types.Value{
		types.NewIntegerValue(1),
		types.NewIntegerValue(2),
		types.NewIntegerValue(3),
	})

	got := roundTrip(t, v, nil)
	require.Equal(t, types.TypeTuple, got.Type())

	arr := roundTrip(t, types.NewArrayValue([]types.Value(v)), nil)
	require.Equal(t, types.TypeArray, arr.Type())
}

func TestRoundTripSymbolIndexZero(t *testing.T) {
	got := roundTrip(t, types.NewTextValue("first"), []string{"first"})
	require.Equal(t, "first", types.AsString(got))
}
