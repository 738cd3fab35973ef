package table2md

import (
	"fmt"
	"maps"
	"slices"
)

// Table is tabular data in its canonical form: rows of string cells, the
// first row being the header.
//
// A Table may hold a ragged grid. Nothing checks the shape until
// [Table.Validate] (or [Table.Print]) is called.
type Table struct {
	Data [][]string
}

// New wraps data without copying or validating it. The table aliases the
// caller's slices: writing to data after New changes what the table renders.
// Use the From* builders to get an independent copy.
func New(data [][]string) *Table {
	return &Table{Data: data}
}

// --- Capability interfaces ---

// Headed provides the column names of a record. Only the first record's
// header is used.
type Headed interface {
	Header() []string
}

// Valuer provides a record's raw values in header order.
type Valuer interface {
	Values() []any
}

// Rower provides a record's cells already formatted as strings. It lets a
// type control how its values print (percentages, zero padding) without
// wrapping every field in a fmt.Stringer.
type Rower interface {
	Row() []string
}

// Record is accepted by [FromRecords].
type Record interface {
	Headed
	Valuer
}

// Serializable is accepted by [FromSerializable].
type Serializable interface {
	Headed
	Rower
}

// Mapping is a key-value item with an ordered key set. It is accepted by
// [FromMappings].
type Mapping interface {
	Keys() []string
	Lookup(key string) (any, bool)
}

// --- Mapping implementations ---

// KeyValue is a single key-value pair.
type KeyValue struct {
	Key   string
	Value any
}

// OrderedMap is a [Mapping] that keeps keys in insertion order.
type OrderedMap []KeyValue

// Keys returns the keys in order. A repeated key is reported once, at its
// first position.
func (m OrderedMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for _, kv := range m {
		if !slices.Contains(keys, kv.Key) {
			keys = append(keys, kv.Key)
		}
	}
	return keys
}

// Lookup returns the value of the last pair with the given key, so a repeated
// key behaves like a later assignment overriding an earlier one.
func (m OrderedMap) Lookup(key string) (any, bool) {
	for i := len(m) - 1; i >= 0; i-- {
		if m[i].Key == key {
			return m[i].Value, true
		}
	}
	return nil, false
}

// SortedMap adapts a Go map to [Mapping]. Go maps have no order, so keys are
// sorted to keep the header deterministic.
type SortedMap[V any] map[string]V

// Keys returns the map's keys in ascending order.
func (m SortedMap[V]) Keys() []string {
	return slices.Sorted(maps.Keys(m))
}

func (m SortedMap[V]) Lookup(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// cellString converts an arbitrary value to its cell text.
func cellString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
