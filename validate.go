package table2md

import "fmt"

// Validate reports whether the table is fit to print: it needs a header, at
// least one data row, and every data row must have as many cells as the
// header. It returns an error wrapping [ErrNoData], or a
// [*MisalignedRowsError] naming every offending row.
func (t *Table) Validate() error {
	switch len(t.Data) {
	case 0:
		return fmt.Errorf("%w: missing header row", ErrNoData)
	case 1:
		return fmt.Errorf("%w: only the header is present", ErrNoData)
	}
	expected := len(t.Data[0])
	var bad []int
	for i, row := range t.Data[1:] {
		if len(row) != expected {
			bad = append(bad, i+1)
		}
	}
	if len(bad) > 0 {
		return &MisalignedRowsError{Expected: expected, Rows: bad}
	}
	return nil
}
