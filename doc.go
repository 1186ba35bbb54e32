/*
Package lens implements the Lens binary serialization format: a
self-describing, tag-based codec for structured values, parameterised
by an externally supplied symbol table that shortens repeated string
keys into small integer references.

Values are encoded as a 1-byte tag followed by a type-specific
payload. Integers and timestamps use ZigZag varints, floats the
big-endian IEEE-754 bit pattern, strings and byte sequences a varint
length prefix. Object keys must be present in the symbol table and
travel as symbol references.

The simplest way in and out is the package-level pair:

	data, err := lens.Encode(v, symbols)
	v, err := lens.Decode(data, symbols)

Both sides must use the same symbol table for decoding to be correct.
Reusable Encoder and Decoder instances expose the same operations with
buffer reuse and per-instance options; see NewEncoder and NewDecoder.

Decoding is iterative: nesting is bounded by a configurable depth
limit instead of the native stack, so attacker-controlled inputs
cannot trigger unbounded recursion.
*/
package lens
