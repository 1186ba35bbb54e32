package lens

import "github.com/cockroachdb/errors"

// SymbolTable is an ordered table of strings agreed on by both peers.
// The encoder consults it to turn strings into indexes, the decoder to
// turn indexes back into strings. Duplicate entries are allowed; the
// encoder uses the first occurrence.
type SymbolTable struct {
	names []string
	index map[string]uint64
}

// NewSymbolTable builds a table from names, in order.
func NewSymbolTable(names ...string) *SymbolTable {
	st := SymbolTable{
		names: names,
		index: make(map[string]uint64, len(names)),
	}

	for i, n := range names {
		if _, ok := st.index[n]; !ok {
			st.index[n] = uint64(i)
		}
	}

	return &st
}

// Index returns the index of name in the table.
func (st *SymbolTable) Index(name string) (uint64, bool) {
	i, ok := st.index[name]
	return i, ok
}

// Name returns the string at the given index.
func (st *SymbolTable) Name(i uint64) (string, error) {
	if i >= uint64(len(st.names)) {
		return "", errors.Wrapf(ErrSymbolOutOfRange, "index %d, table size %d", i, len(st.names))
	}

	return st.names[i], nil
}

// Len returns the number of entries in the table.
func (st *SymbolTable) Len() int {
	return len(st.names)
}
