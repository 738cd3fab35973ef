package table2md

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	// ErrInvalidData is the parent of every structural validation failure.
	ErrInvalidData = errors.New("invalid data")
	// ErrNoData means the table has no header, or a header and no data rows.
	ErrNoData = fmt.Errorf("%w: no data", ErrInvalidData)
	// ErrMisalignedRows means a data row has more or fewer cells than the
	// header. The concrete error is a [*MisalignedRowsError].
	ErrMisalignedRows = fmt.Errorf("%w: misaligned rows", ErrInvalidData)
	// ErrMissingKey is returned by the mapping builders when an item lacks a
	// header key. The concrete error is a [*MissingKeyError].
	ErrMissingKey = errors.New("missing key")
	// ErrNotStruct is returned by [FromStructs] for items that are not structs.
	ErrNotStruct = errors.New("not a struct")
)

// MisalignedRowsError lists every data row whose cell count differs from the
// header's. Row indices count the header as row 0.
type MisalignedRowsError struct {
	Expected int
	Rows     []int
}

func (e *MisalignedRowsError) Error() string {
	rows := make([]string, len(e.Rows))
	for i, r := range e.Rows {
		rows[i] = strconv.Itoa(r)
	}
	return fmt.Sprintf("%s: expected %d cells, violated by rows %s", ErrMisalignedRows, e.Expected, strings.Join(rows, ", "))
}

func (e *MisalignedRowsError) Unwrap() error { return ErrMisalignedRows }

// MissingKeyError reports the first mapping that lacks one of the header keys.
// Index is the 0-based position of the mapping in the input.
type MissingKeyError struct {
	Index int
	Key   string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s: item %d has no key %q", ErrMissingKey, e.Index, e.Key)
}

func (e *MissingKeyError) Unwrap() error { return ErrMissingKey }
