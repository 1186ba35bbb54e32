package lens_test

import (
	"testing"

	lens "github.com/lens-format/lens-go"
	"github.com/lens-format/lens-go/types"
	"github.com/stretchr/testify/require"
)

func TestEncodeScalars(t *testing.T) {
	tests := []struct {
		name string
		v    types.Value
		want []byte
	}{
		{"null", types.NewNullValue(), []byte{0x00}},
		{"nil value", nil, []byte{0x00}},
		{"true", types.NewBooleanValue(true), []byte{0x01}},
		{"false", types.NewBooleanValue(false), []byte{0x02}},
		{"minus one", types.NewIntegerValue(-1), []byte{0x03, 0x01}},
		{"three hundred", types.NewIntegerValue(300), []byte{0x03, 0xD8, 0x04}},
		{"short text", types.NewTextValue("x"), []byte{0x05, 0x01, 'x'}},
		{"blob", types.NewBlobValue([]byte{0xAA}), []byte{0x09, 0x01, 0xAA}},
		{"extension", types.NewExtensionValue(7, []byte{0x01, 0x02}), []byte{0x0B, 0x07, 0x02, 0x01, 0x02}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := lens.Encode(test.v, nil)
			require.NoError(t, err)
			require.Equal(t, test.want, got)
		})
	}
}

func TestEncodeObject(t *testing.T) {
	symbols := []string{"id", "name"}

	o := types.NewObjectValue(
		types.Field{Name: "id", Value: types.NewIntegerValue(7)},
		types.Field{Name: "name", Value: types.NewTextValue("x")},
	)

	got, err := lens.Encode(o, symbols)
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x07, 0x02, // object, 2 entries
		0x08, 0x00, // symref "id"
		0x03, 0x0E, // int 7
		0x08, 0x01, // symref "name"
		0x05, 0x01, 'x', // text "x"
	}, got)

	decoded, err := lens.Decode(got, symbols)
	require.NoError(t, err)
	require.True(t, types.Equal(o, decoded))
}

func TestEncodeSequences(t *testing.T) {
	elems := []types.Value{
		types.NewIntegerValue(1),
		types.NewIntegerValue(2),
		types.NewIntegerValue(3),
	}

	tuple, err := lens.Encode(types.NewTupleValue(elems), nil)
	require.NoError(t, err)
	require.Equal(t, byte(0x0D), tuple[0])
	require.Equal(t, byte(0x03), tuple[1])

	array, err := lens.Encode(types.NewArrayValue(elems), nil)
	require.NoError(t, err)
	require.Equal(t, byte(0x06), array[0])

	// the two encodings differ only by the leading tag
	require.NotEqual(t, tuple, array)
	require.Equal(t, tuple[1:], array[1:])

	set, err := lens.Encode(types.NewSetValue(elems...), nil)
	require.NoError(t, err)
	require.Equal(t, byte(0x0C), set[0])
}

func TestEncodeSymbolCompaction(t *testing.T) {
	longKey := "a_very_long_symbol_name_that_would_be_expensive_to_repeat"
	symbols := []string{longKey}

	// a string in the table travels as a 2-byte reference
	got, err := lens.Encode(types.NewTextValue(longKey), symbols)
	require.NoError(t, err)
	require.Equal(t, []byte{0x08, 0x00}, got)

	// object keys are always references: 1 tag byte + varint index,
	// independent of the key length
	o := types.NewObjectValue(types.Field{Name: longKey, Value: types.NewNullValue()})
	got, err = lens.Encode(o, symbols)
	require.NoError(t, err)
	require.Equal(t, []byte{0x07, 0x01, 0x08, 0x00, 0x00}, got)

	// the same string off the table travels in full
	got, err = lens.Encode(types.NewTextValue(longKey), nil)
	require.NoError(t, err)
	require.Equal(t, 2+len(longKey), len(got))
}

func TestEncodeUnknownSymbol(t *testing.T) {
	o := types.NewObjectValue(types.Field{Name: "missing", Value: types.NewNullValue()})

	_, err := lens.Encode(o, []string{"id"})
	require.ErrorIs(t, err, lens.ErrUnknownSymbol)
}

// customValue implements types.Value but has no built-in encoding.
type customValue struct{}

func (customValue) Type() types.Type             { return types.TypeExtension }
func (customValue) V() any                       { return nil }
func (customValue) String() string               { return "custom" }
func (customValue) MarshalJSON() ([]byte, error) { return []byte(`"custom"`), nil }

func TestEncodeExtHandler(t *testing.T) {
	t.Run("no handler", func(t *testing.T) {
		_, err := lens.Encode(customValue{}, nil)
		require.ErrorIs(t, err, lens.ErrUnsupportedValue)
	})

	t.Run("handler declines", func(t *testing.T) {
		handler := func(v types.Value) (uint64, []byte, bool) {
			return 0, nil, false
		}
		_, err := lens.Encode(customValue{}, nil, lens.WithExtHandler(handler))
		require.ErrorIs(t, err, lens.ErrUnsupportedValue)
	})

	t.Run("handler encodes", func(t *testing.T) {
		var calls int
		handler := func(v types.Value) (uint64, []byte, bool) {
			calls++
			return 9, []byte{0xCA, 0xFE}, true
		}

		got, err := lens.Encode(customValue{}, nil, lens.WithExtHandler(handler))
		require.NoError(t, err)
		require.Equal(t, []byte{0x0B, 0x09, 0x02, 0xCA, 0xFE}, got)
		require.Equal(t, 1, calls)
	})
}

func TestEncoderReuse(t *testing.T) {
	e := lens.NewEncoder(lens.NewSymbolTable())

	first, err := e.Encode(types.NewTextValue("hello"))
	require.NoError(t, err)
	require.Equal(t, []byte{0x05, 0x05, 'h', 'e', 'l', 'l', 'o'}, first)

	second, err := e.Encode(types.NewIntegerValue(1))
	require.NoError(t, err)
	require.Equal(t, []byte{0x03, 0x02}, second)
}
