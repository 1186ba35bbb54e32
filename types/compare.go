package types

import (
	"bytes"
	"math"
)

// Equal reports whether two values are equal under the codec's
// equivalence: arrays and tuples compare element-wise, sets compare as
// sets, objects compare key by key regardless of field order, doubles
// compare by bit pattern so that NaN payloads are preserved.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}

	switch a.Type() {
	case TypeNull:
		return true
	case TypeBoolean:
		return AsBool(a) == AsBool(b)
	case TypeInteger:
		return AsInt64(a) == AsInt64(b)
	case TypeDouble:
		return math.Float64bits(AsFloat64(a)) == math.Float64bits(AsFloat64(b))
	case TypeText:
		return AsString(a) == AsString(b)
	case TypeBlob:
		return bytes.Equal(AsByteSlice(a), AsByteSlice(b))
	case TypeTimestamp:
		return AsTime(a).Equal(AsTime(b))
	case TypeArray:
		return equalSequences([]Value(a.(ArrayValue)), []Value(b.(ArrayValue)))
	case TypeTuple:
		return equalSequences([]Value(a.(TupleValue)), []Value(b.(TupleValue)))
	case TypeSet:
		return equalSets(AsSet(a), AsSet(b))
	case TypeObject:
		return equalObjects(AsObject(a), AsObject(b))
	case TypeExtension:
		ea, eb := a.(ExtensionValue), b.(ExtensionValue)
		return ea.ID == eb.ID && bytes.Equal(ea.Payload, eb.Payload)
	}

	return false
}

func equalSequences(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalSets(a, b *SetValue) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, e := range a.Elems() {
		if !b.Contains(e) {
			return false
		}
	}
	return true
}

func equalObjects(a, b *ObjectValue) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, f := range a.Fields() {
		other, ok := b.Get(f.Name)
		if !ok || !Equal(f.Value, other) {
			return false
		}
	}
	return true
}
