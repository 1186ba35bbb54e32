package encoding

// Tags used to encode values on the wire.
// Each value starts with a 1-byte tag followed by a type-specific
// payload. Composite tags (array, object, set, tuple) are followed by
// a varint element count and that many encoded values; object entries
// are a bare symbol reference followed by the entry value.
const (
	NullValue      byte = 0
	TrueValue      byte = 1
	FalseValue     byte = 2
	IntValue       byte = 3
	FloatValue     byte = 4
	TextValue      byte = 5
	ArrayValue     byte = 6
	ObjectValue    byte = 7
	SymbolValue    byte = 8
	BlobValue      byte = 9
	TimestampValue byte = 10
	ExtValue       byte = 11
	SetValue       byte = 12
	TupleValue     byte = 13
)
