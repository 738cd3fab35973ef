package table2md

import (
	"slices"
)

// FromRows builds a table from rows of arbitrary values. Every cell is
// converted to text (a fmt.Stringer is honored) and the result never shares
// memory with rows, unlike [New]. The first row is the header.
func FromRows[T any](rows ...[]T) *Table {
	data := make([][]string, len(rows))
	for i, row := range rows {
		data[i] = stringRow(row)
	}
	return New(data)
}

// FromMappings builds a table from key-value items.
//
// The header is the key list of the first item; keys that only appear in
// later items are ignored. Every item, the first included, contributes one row
// holding its values for the header keys. An item missing one of those keys
// fails with a [*MissingKeyError].
//
// No items yields an empty table, which fails [Table.Validate] with
// [ErrNoData].
func FromMappings[M Mapping](items ...M) (*Table, error) {
	return FromMappingsIter(slices.Values(items))
}

// FromRecords builds a table from records exposing their values.
//
// The header is the first record's [Headed.Header]. Each record contributes
// the text of its [Valuer.Values]. Records are not checked against the
// header, so records of different shapes produce a ragged table that only
// [Table.Validate] reports.
func FromRecords[R Record](items ...R) *Table {
	return FromRecordsIter(slices.Values(items))
}

// FromSerializable is [FromRecords] for records that format their own cells:
// each row is the record's [Rower.Row].
func FromSerializable[S Serializable](items ...S) *Table {
	return FromSerializableIter(slices.Values(items))
}

func stringRow[T any](row []T) []string {
	cells := make([]string, len(row))
	for i, cell := range row {
		cells[i] = cellString(cell)
	}
	return cells
}
