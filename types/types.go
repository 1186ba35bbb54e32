// Package types defines the closed set of value variants transported
// by the Lens codec.
package types

import "fmt"

// Type represents a type supported by the codec.
type Type uint8

// List of supported types.
const (
	TypeNull Type = iota
	TypeBoolean
	TypeInteger
	TypeDouble
	TypeText
	TypeBlob
	TypeTimestamp
	TypeArray
	TypeTuple
	TypeSet
	TypeObject
	TypeExtension
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeInteger:
		return "integer"
	case TypeDouble:
		return "double"
	case TypeText:
		return "text"
	case TypeBlob:
		return "blob"
	case TypeTimestamp:
		return "timestamp"
	case TypeArray:
		return "array"
	case TypeTuple:
		return "tuple"
	case TypeSet:
		return "set"
	case TypeObject:
		return "object"
	case TypeExtension:
		return "extension"
	}

	panic(fmt.Sprintf("unsupported type %#v", t))
}

// Value is a value transported by the codec.
type Value interface {
	Type() Type
	V() any
	String() string
	MarshalJSON() ([]byte, error)
}
