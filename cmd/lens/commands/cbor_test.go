package commands

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/lens-format/lens-go/types"
	"github.com/stretchr/testify/require"
)

func TestMarshalCBOR(t *testing.T) {
	v := types.NewObjectValue(
		types.Field{Name: "id", Value: types.NewIntegerValue(7)},
		types.Field{Name: "tags", Value: types.NewSetValue(
			types.NewTextValue("a"),
			types.NewTextValue("b"),
		)},
		types.Field{Name: "raw", Value: types.NewBlobValue([]byte{0xDE, 0xAD})},
	)

	data, err := marshalCBOR(v)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, cbor.Unmarshal(data, &got))
	require.Equal(t, uint64(7), got["id"])
	require.Equal(t, []any{"a", "b"}, got["tags"])
	require.Equal(t, []byte{0xDE, 0xAD}, got["raw"])
}

func TestMarshalCBORExtension(t *testing.T) {
	data, err := marshalCBOR(types.NewExtensionValue(40, []byte{0x01}))
	require.NoError(t, err)

	var tag cbor.RawTag
	require.NoError(t, cbor.Unmarshal(data, &tag))
	require.Equal(t, uint64(40), tag.Number)
}
