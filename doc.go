// Package table2md renders tabular data as a Markdown table.
//
// A [Table] holds rows of string cells; the first row is the header. Tables
// are built from whatever shape the data already has, checked with
// [Table.Validate], and rendered with [Table.String] or [Table.Print]:
//
//	t := table2md.FromRows(
//		[]string{"foo", "bar"},
//		[]string{"spam", "eggs"},
//		[]string{"hello", "world"},
//	)
//	if err := t.Print(); err != nil { ... }
//
// prints
//
//	|  foo  |  bar  |
//	|-------|-------|
//	| spam  | eggs  |
//	| hello | world |
//
// Header cells are centered, data cells are left-justified, and every column
// is as wide as its longest cell. Width is the number of runes in a cell.
//
// # Building Tables
//
//   - [New] wraps a [][]string as is. The table shares the caller's slices.
//   - [FromRows] converts rows of any values to text, always copying.
//   - [FromMappings] reads key-value items; the first item's keys are the
//     header. See [OrderedMap] and [SortedMap].
//   - [FromRecords] reads [Record] values (header plus raw values).
//   - [FromSerializable] reads [Serializable] values (header plus preformatted
//     cells).
//   - [FromStructs] reads struct fields through reflection.
//
// Each builder except [FromStructs] has an iter.Seq variant.
//
// # Validation
//
// Builders do not check the shape of what they build. A table built from
// records of different shapes is constructed fine and only fails when
// validated. [Table.Print] validates before writing; [Table.String] and
// [Table.WriteTo] do not.
//
// # Errors
//
//   - [ErrInvalidData] — parent of both validation errors
//   - [ErrNoData] — no header, or a header with no data rows
//   - [ErrMisalignedRows] — rows whose cell count differs from the header's;
//     the concrete [*MisalignedRowsError] lists them
//   - [ErrMissingKey] — a mapping lacks a header key; see [*MissingKeyError]
//   - [ErrNotStruct] — [FromStructs] got something other than a struct
package table2md
