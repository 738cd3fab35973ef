package table2md

import (
	"iter"
	"slices"
)

// FromRowsIter is [FromRows] for lazily produced rows. The sequences are
// consumed once.
func FromRowsIter[T any](rows iter.Seq[iter.Seq[T]]) *Table {
	var data [][]string
	for row := range rows {
		cells := []string{}
		for cell := range row {
			cells = append(cells, cellString(cell))
		}
		data = append(data, cells)
	}
	return New(data)
}

// FromMappingsIter is [FromMappings] over a sequence. Consumption stops at the
// first item with a missing key.
func FromMappingsIter[M Mapping](seq iter.Seq[M]) (*Table, error) {
	var data [][]string
	i := 0
	for m := range seq {
		if len(data) == 0 {
			data = append(data, slices.Clone(m.Keys()))
		}
		header := data[0]
		row := make([]string, len(header))
		for j, key := range header {
			v, ok := m.Lookup(key)
			if !ok {
				return nil, &MissingKeyError{Index: i, Key: key}
			}
			row[j] = cellString(v)
		}
		data = append(data, row)
		i++
	}
	return New(data), nil
}

// FromRecordsIter is [FromRecords] over a sequence.
func FromRecordsIter[R Record](seq iter.Seq[R]) *Table {
	return fromHeaded(seq, func(r R) []string {
		return stringRow(r.Values())
	})
}

// FromSerializableIter is [FromSerializable] over a sequence.
func FromSerializableIter[S Serializable](seq iter.Seq[S]) *Table {
	return fromHeaded(seq, func(s S) []string {
		return slices.Clone(s.Row())
	})
}

func fromHeaded[T Headed](seq iter.Seq[T], row func(T) []string) *Table {
	var data [][]string
	for item := range seq {
		if len(data) == 0 {
			data = append(data, slices.Clone(item.Header()))
		}
		data = append(data, row(item))
	}
	return New(data)
}
